// file: internals/features/school/curriculum/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel belongs to exactly one department; name is unique within
// (school, department).
type SubjectModel struct {
	// PK & tenant
	SubjectID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subjects_school_department_name;column:subject_school_id" json:"subject_school_id"`

	SubjectDepartmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subjects_school_department_name;column:subject_department_id" json:"subject_department_id"`

	SubjectName string  `gorm:"type:varchar(120);not null;uniqueIndex:uq_subjects_school_department_name;column:subject_name" json:"subject_name"`
	SubjectCode string  `gorm:"type:varchar(40);not null;column:subject_code" json:"subject_code"`
	SubjectSlug string  `gorm:"type:varchar(160);not null;column:subject_slug" json:"subject_slug"`
	SubjectDesc *string `gorm:"type:text;column:subject_desc" json:"subject_desc,omitempty"`

	// Core subjects get class sections built by the class seeder.
	SubjectIsCore bool `gorm:"not null;default:false;column:subject_is_core" json:"subject_is_core"`

	SubjectIsActive  bool           `gorm:"not null;default:true;column:subject_is_active" json:"subject_is_active"`
	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
