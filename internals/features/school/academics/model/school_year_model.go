// file: internals/features/school/academics/model/school_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolYearModel struct {
	// PK & tenant
	SchoolYearID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_year_id" json:"school_year_id"`
	SchoolYearSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_school_years_school_name;column:school_year_school_id" json:"school_year_school_id"`

	// Example name: "2025/2026"
	SchoolYearName string `gorm:"type:varchar(24);not null;uniqueIndex:uq_school_years_school_name;column:school_year_name" json:"school_year_name"`

	SchoolYearStartDate time.Time `gorm:"type:timestamptz;not null;column:school_year_start_date" json:"school_year_start_date"`
	SchoolYearEndDate   time.Time `gorm:"type:timestamptz;not null;column:school_year_end_date" json:"school_year_end_date"`

	SchoolYearIsActive  bool           `gorm:"not null;default:true;column:school_year_is_active" json:"school_year_is_active"`
	SchoolYearCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_year_created_at" json:"school_year_created_at"`
	SchoolYearUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_year_updated_at" json:"school_year_updated_at"`
	SchoolYearDeletedAt gorm.DeletedAt `gorm:"column:school_year_deleted_at;index" json:"school_year_deleted_at,omitempty"`
}

func (SchoolYearModel) TableName() string { return "school_years" }
