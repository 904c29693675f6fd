// file: internals/seeds/profile/profile.go
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// TenantProfile parameterizes one seed run. The per-school seed scripts
// are this struct plus a cmd/ entry point, not a copy of the pipeline.
type TenantProfile struct {
	SchoolName   string `json:"school_name" validate:"required"`
	SchoolDomain string `json:"school_domain" validate:"required,hostname_rfc1123"`
	SchoolEmail  string `json:"school_email" validate:"omitempty,email"`
	SchoolPhone  string `json:"school_phone"`
	Address      string `json:"address"`

	AcademicYear string `json:"academic_year" validate:"required"`

	MaxStudents int `json:"max_students" validate:"gte=0"`
	MaxTeachers int `json:"max_teachers" validate:"gte=0"`

	Students     int      `json:"students" validate:"gte=0"`
	Teachers     int      `json:"teachers" validate:"gte=1"`
	Grades       []int    `json:"grades" validate:"min=1,dive,gte=1,lte=12"`
	Sections     []string `json:"sections" validate:"min=1"`
	Books        int      `json:"books" validate:"gte=0"`
	Applications int      `json:"applications" validate:"gte=0"`

	// Attendance history window, in school days.
	AttendanceDays int `json:"attendance_days" validate:"gte=0"`

	// Shared demo credential for every generated account. Demo tenants
	// only; never reuse this pattern outside throwaway data.
	DemoPassword string `json:"demo_password" validate:"required,min=8"`

	// "father" or "mother"; which guardian link gets is_primary.
	// Business rule still unconfirmed upstream, so it stays configurable.
	PrimaryGuardian string `json:"primary_guardian" validate:"oneof=father mother"`

	// Seed for the injected RNG so generated names are reproducible.
	RandomSeed int64 `json:"random_seed"`
}

var validate = validator.New()

// Validate checks the profile before any row is written.
func (p *TenantProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("tenant profile invalid: %w", err)
	}
	return nil
}

// LoadProfile reads a tenant profile from a JSON file.
func LoadProfile(path string) (*TenantProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	var p TenantProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Demo is the default demo tenant.
func Demo() *TenantProfile {
	return &TenantProfile{
		SchoolName:      "Greenfield Demo School",
		SchoolDomain:    "demo",
		SchoolEmail:     "info@demo.schoolku.io",
		SchoolPhone:     "+249 91 000 0000",
		Address:         "12 Nile Avenue, Khartoum",
		AcademicYear:    "2025/2026",
		MaxStudents:     500,
		MaxTeachers:     50,
		Students:        60,
		Teachers:        8,
		Grades:          []int{7, 8},
		Sections:        []string{"A", "B"},
		Books:           100,
		Applications:    25,
		AttendanceDays:  10,
		DemoPassword:    "schoolku-demo-2025",
		PrimaryGuardian: "father",
		RandomSeed:      20250801,
	}
}

// PortSudan is the Port Sudan demo tenant.
func PortSudan() *TenantProfile {
	p := Demo()
	p.SchoolName = "Port Sudan Model School"
	p.SchoolDomain = "portsudan"
	p.SchoolEmail = "info@portsudan.schoolku.io"
	p.SchoolPhone = "+249 91 555 0101"
	p.Address = "Harbor Road, Port Sudan"
	p.Students = 80
	p.Teachers = 10
	p.Grades = []int{7, 8, 9}
	p.Sections = []string{"A", "B"}
	p.RandomSeed = 20250802
	return p
}
