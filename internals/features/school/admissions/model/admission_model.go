// file: internals/features/school/admissions/model/admission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application status lifecycle:
// submitted → under_review → selected | admitted | rejected
const (
	ApplicationStatusSubmitted   = "submitted"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusSelected    = "selected"
	ApplicationStatusAdmitted    = "admitted"
	ApplicationStatusRejected    = "rejected"
)

type AdmissionCampaignModel struct {
	// PK & tenant
	AdmissionCampaignID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_campaign_id" json:"admission_campaign_id"`
	AdmissionCampaignSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_admission_campaigns_school_name;column:admission_campaign_school_id" json:"admission_campaign_school_id"`

	AdmissionCampaignName      string    `gorm:"type:varchar(160);not null;uniqueIndex:uq_admission_campaigns_school_name;column:admission_campaign_name" json:"admission_campaign_name"`
	AdmissionCampaignGrade     int       `gorm:"not null;column:admission_campaign_grade" json:"admission_campaign_grade"`
	AdmissionCampaignSeats     int       `gorm:"not null;column:admission_campaign_seats" json:"admission_campaign_seats"`
	AdmissionCampaignOpensAt   time.Time `gorm:"type:timestamptz;not null;column:admission_campaign_opens_at" json:"admission_campaign_opens_at"`
	AdmissionCampaignClosesAt  time.Time `gorm:"type:timestamptz;not null;column:admission_campaign_closes_at" json:"admission_campaign_closes_at"`
	AdmissionCampaignIsOpen    bool      `gorm:"not null;default:true;column:admission_campaign_is_open" json:"admission_campaign_is_open"`

	AdmissionCampaignCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:admission_campaign_created_at" json:"admission_campaign_created_at"`
	AdmissionCampaignUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:admission_campaign_updated_at" json:"admission_campaign_updated_at"`
	AdmissionCampaignDeletedAt gorm.DeletedAt `gorm:"column:admission_campaign_deleted_at;index" json:"admission_campaign_deleted_at,omitempty"`
}

func (AdmissionCampaignModel) TableName() string { return "admission_campaigns" }

type AdmissionApplicationModel struct {
	// PK & tenant
	AdmissionApplicationID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_application_id" json:"admission_application_id"`
	AdmissionApplicationSchoolID uuid.UUID `gorm:"type:uuid;not null;column:admission_application_school_id" json:"admission_application_school_id"`

	AdmissionApplicationCampaignID uuid.UUID `gorm:"type:uuid;not null;column:admission_application_campaign_id" json:"admission_application_campaign_id"`

	AdmissionApplicationNo            string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_admission_applications_no;column:admission_application_no" json:"admission_application_no"`
	AdmissionApplicationApplicantName string    `gorm:"type:varchar(160);not null;column:admission_application_applicant_name" json:"admission_application_applicant_name"`
	AdmissionApplicationGuardianPhone string    `gorm:"type:varchar(32);not null;column:admission_application_guardian_phone" json:"admission_application_guardian_phone"`
	AdmissionApplicationDateOfBirth   time.Time `gorm:"type:timestamptz;not null;column:admission_application_date_of_birth" json:"admission_application_date_of_birth"`
	AdmissionApplicationStatus        string    `gorm:"type:varchar(16);not null;default:'submitted';column:admission_application_status" json:"admission_application_status"`

	// Free-form applicant extras (previous school, notes, …)
	AdmissionApplicationExtra datatypes.JSONMap `gorm:"type:jsonb;column:admission_application_extra" json:"admission_application_extra,omitempty"`

	AdmissionApplicationCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:admission_application_created_at" json:"admission_application_created_at"`
	AdmissionApplicationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:admission_application_updated_at" json:"admission_application_updated_at"`
	AdmissionApplicationDeletedAt gorm.DeletedAt `gorm:"column:admission_application_deleted_at;index" json:"admission_application_deleted_at,omitempty"`
}

func (AdmissionApplicationModel) TableName() string { return "admission_applications" }
