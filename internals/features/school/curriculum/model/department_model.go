// file: internals/features/school/curriculum/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	// PK & tenant
	DepartmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`
	DepartmentSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_departments_school_name;column:department_school_id" json:"department_school_id"`

	DepartmentName string  `gorm:"type:varchar(120);not null;uniqueIndex:uq_departments_school_name;column:department_name" json:"department_name"`
	DepartmentDesc *string `gorm:"type:text;column:department_desc" json:"department_desc,omitempty"`

	DepartmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_created_at" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_updated_at" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
