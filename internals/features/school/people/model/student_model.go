// file: internals/features/school/people/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// StudentModel is the role profile linked 1:1 to a User account.
// Guardians attach through StudentGuardianModel.
type StudentModel struct {
	// PK & tenant
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_school_admission_no;column:student_school_id" json:"student_school_id"`

	// 1:1 account link
	StudentUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_user;column:student_user_id" json:"student_user_id"`

	StudentFullName    string    `gorm:"type:varchar(160);not null;column:student_full_name" json:"student_full_name"`
	StudentGender      string    `gorm:"type:varchar(8);not null;column:student_gender" json:"student_gender"`
	StudentDateOfBirth time.Time `gorm:"type:timestamptz;not null;column:student_date_of_birth" json:"student_date_of_birth"`
	StudentAdmissionNo string    `gorm:"type:varchar(24);not null;uniqueIndex:uq_students_school_admission_no;column:student_admission_no" json:"student_admission_no"`
	StudentGrade       int       `gorm:"not null;default:0;column:student_grade" json:"student_grade"`

	StudentIsActive  bool           `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
