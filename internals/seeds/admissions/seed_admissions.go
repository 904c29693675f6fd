// file: internals/seeds/admissions/seed_admissions.go
package admissions

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	admissionsModel "schoolku_backend/internals/features/school/admissions/model"
	"schoolku_backend/internals/seeds/namegen"
	"schoolku_backend/internals/seeds/profile"
)

// statusCycle spreads applications over the whole review lifecycle.
var statusCycle = []string{
	admissionsModel.ApplicationStatusSubmitted,
	admissionsModel.ApplicationStatusSubmitted,
	admissionsModel.ApplicationStatusUnderReview,
	admissionsModel.ApplicationStatusSelected,
	admissionsModel.ApplicationStatusAdmitted,
	admissionsModel.ApplicationStatusRejected,
}

// SeedAdmissions opens one intake campaign for the lowest seeded grade
// and files the profile's number of applications against it. Application
// numbers are derived from the campaign index so reruns find the same rows.
func SeedAdmissions(db *gorm.DB, schoolID uuid.UUID, p *profile.TenantProfile, gen *namegen.Generator) error {
	log.Println("📥 Seeding admission campaign & applications...")

	intakeGrade := p.Grades[0]
	campaign := admissionsModel.AdmissionCampaignModel{
		AdmissionCampaignSchoolID: schoolID,
		AdmissionCampaignName:     fmt.Sprintf("Grade %d Intake %s", intakeGrade, p.AcademicYear),
		AdmissionCampaignGrade:    intakeGrade,
		AdmissionCampaignSeats:    40,
		AdmissionCampaignOpensAt:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		AdmissionCampaignClosesAt: time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
		AdmissionCampaignIsOpen:   true,
	}
	if err := db.
		Where("admission_campaign_school_id = ? AND admission_campaign_name = ?",
			schoolID, campaign.AdmissionCampaignName).
		FirstOrCreate(&campaign).Error; err != nil {
		return fmt.Errorf("upsert admission campaign: %w", err)
	}

	for i := 0; i < p.Applications; i++ {
		gender := gen.Gender()
		app := admissionsModel.AdmissionApplicationModel{
			AdmissionApplicationSchoolID:      schoolID,
			AdmissionApplicationCampaignID:    campaign.AdmissionCampaignID,
			AdmissionApplicationNo:            fmt.Sprintf("APP-%s-%04d", p.SchoolDomain, i+1),
			AdmissionApplicationApplicantName: gen.FullName(gender),
			AdmissionApplicationGuardianPhone: gen.Phone(),
			AdmissionApplicationDateOfBirth:   time.Date(time.Now().Year()-(6+intakeGrade), time.Month(1+gen.Intn(12)), 1+gen.Intn(28), 0, 0, 0, 0, time.UTC),
			AdmissionApplicationStatus:        statusCycle[i%len(statusCycle)],
			AdmissionApplicationExtra: datatypes.JSONMap{
				"previous_school": fmt.Sprintf("%s Primary School", gen.Surname()),
				"gender":          gender,
			},
		}
		if err := db.
			Where("admission_application_no = ?", app.AdmissionApplicationNo).
			FirstOrCreate(&app).Error; err != nil {
			return fmt.Errorf("upsert application %s: %w", app.AdmissionApplicationNo, err)
		}
	}

	log.Printf("✅ Admissions ready: 1 campaign, %d applications", p.Applications)
	return nil
}
