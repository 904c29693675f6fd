// file: internals/seeds/tenant/seed_school.go
package tenant

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/seeds/profile"
)

// EnsureSchool returns the School row for the profile's domain, creating
// it when absent. Lookup-then-create, not transactional: concurrent seed
// runs against the same domain can race and surface a unique violation.
func EnsureSchool(db *gorm.DB, p *profile.TenantProfile) (*schoolModel.SchoolModel, error) {
	var existing schoolModel.SchoolModel
	err := db.Where("school_domain = ?", p.SchoolDomain).First(&existing).Error
	if err == nil {
		log.Printf("ℹ️ School '%s' already exists, skipping create.", p.SchoolDomain)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup school %s: %w", p.SchoolDomain, err)
	}

	school := schoolModel.SchoolModel{
		SchoolName:        p.SchoolName,
		SchoolDomain:      p.SchoolDomain,
		SchoolMaxStudents: p.MaxStudents,
		SchoolMaxTeachers: p.MaxTeachers,
	}
	if p.SchoolEmail != "" {
		school.SchoolEmail = &p.SchoolEmail
	}
	if p.SchoolPhone != "" {
		school.SchoolPhone = &p.SchoolPhone
	}
	if p.Address != "" {
		school.SchoolAddress = &p.Address
	}

	if err := db.Create(&school).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fmt.Errorf("school %s created concurrently: %w", p.SchoolDomain, err)
		}
		return nil, fmt.Errorf("create school %s: %w", p.SchoolDomain, err)
	}
	log.Printf("✅ School '%s' created (%s)", school.SchoolName, school.SchoolDomain)
	return &school, nil
}

// FindSchool looks up a tenant by domain without creating it. Seeders
// that depend on an existing tenant (community qbank import) use this to
// fail fast with a clear message.
func FindSchool(db *gorm.DB, domain string) (*schoolModel.SchoolModel, error) {
	var school schoolModel.SchoolModel
	if err := db.Where("school_domain = ?", domain).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("school '%s' not found, seed the tenant first", domain)
		}
		return nil, fmt.Errorf("lookup school %s: %w", domain, err)
	}
	return &school, nil
}
