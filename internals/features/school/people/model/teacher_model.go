// file: internals/features/school/people/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel is the role profile linked 1:1 to a User account.
type TeacherModel struct {
	// PK & tenant
	TeacherID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teachers_school_employee_no;column:teacher_school_id" json:"teacher_school_id"`

	// 1:1 account link
	TeacherUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teachers_user;column:teacher_user_id" json:"teacher_user_id"`

	TeacherFullName     string     `gorm:"type:varchar(160);not null;column:teacher_full_name" json:"teacher_full_name"`
	TeacherGender       string     `gorm:"type:varchar(8);not null;column:teacher_gender" json:"teacher_gender"`
	TeacherEmployeeNo   string     `gorm:"type:varchar(24);not null;uniqueIndex:uq_teachers_school_employee_no;column:teacher_employee_no" json:"teacher_employee_no"`
	TeacherDepartmentID *uuid.UUID `gorm:"type:uuid;column:teacher_department_id" json:"teacher_department_id,omitempty"`
	TeacherJoinedAt     *time.Time `gorm:"type:timestamptz;column:teacher_joined_at" json:"teacher_joined_at,omitempty"`

	TeacherIsActive  bool           `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`
	TeacherCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
