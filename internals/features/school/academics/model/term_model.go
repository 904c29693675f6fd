// file: internals/features/school/academics/model/term_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TermModel struct {
	// PK & tenant
	TermID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:term_id" json:"term_id"`
	TermSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_terms_school_year_name;column:term_school_id" json:"term_school_id"`

	TermSchoolYearID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_terms_school_year_name;column:term_school_year_id" json:"term_school_year_id"`

	// Example name: "Term 1" | "Term 2"
	TermName string `gorm:"type:varchar(40);not null;uniqueIndex:uq_terms_school_year_name;column:term_name" json:"term_name"`

	TermStartDate time.Time `gorm:"type:timestamptz;not null;column:term_start_date" json:"term_start_date"`
	TermEndDate   time.Time `gorm:"type:timestamptz;not null;column:term_end_date" json:"term_end_date"`

	TermIsActive  bool           `gorm:"not null;default:true;column:term_is_active" json:"term_is_active"`
	TermCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:term_created_at" json:"term_created_at"`
	TermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:term_updated_at" json:"term_updated_at"`
	TermDeletedAt gorm.DeletedAt `gorm:"column:term_deleted_at;index" json:"term_deleted_at,omitempty"`
}

func (TermModel) TableName() string { return "terms" }
