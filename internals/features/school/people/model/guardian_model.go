// file: internals/features/school/people/model/guardian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuardianModel struct {
	// PK & tenant
	GuardianID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guardian_id" json:"guardian_id"`
	GuardianSchoolID uuid.UUID `gorm:"type:uuid;not null;column:guardian_school_id" json:"guardian_school_id"`

	// 1:1 account link (nullable; minimal demo seeds skip guardian accounts)
	GuardianUserID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_guardians_user;column:guardian_user_id" json:"guardian_user_id,omitempty"`

	GuardianFullName   string  `gorm:"type:varchar(160);not null;column:guardian_full_name" json:"guardian_full_name"`
	GuardianGender     string  `gorm:"type:varchar(8);not null;column:guardian_gender" json:"guardian_gender"`
	GuardianPhone      string  `gorm:"type:varchar(32);not null;column:guardian_phone" json:"guardian_phone"`
	GuardianEmail      *string `gorm:"type:varchar(120);column:guardian_email" json:"guardian_email,omitempty"`
	GuardianOccupation *string `gorm:"type:varchar(80);column:guardian_occupation" json:"guardian_occupation,omitempty"`

	GuardianCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:guardian_created_at" json:"guardian_created_at"`
	GuardianUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:guardian_updated_at" json:"guardian_updated_at"`
	GuardianDeletedAt gorm.DeletedAt `gorm:"column:guardian_deleted_at;index" json:"guardian_deleted_at,omitempty"`
}

func (GuardianModel) TableName() string { return "guardians" }

// StudentGuardianModel is the typed join between a student and a guardian.
// Invariant (enforced by the people seeder, asserted in tests): exactly one
// row per student carries student_guardian_is_primary = true.
type StudentGuardianModel struct {
	// PK & tenant
	StudentGuardianID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_guardian_id" json:"student_guardian_id"`
	StudentGuardianSchoolID uuid.UUID `gorm:"type:uuid;not null;column:student_guardian_school_id" json:"student_guardian_school_id"`

	StudentGuardianStudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_guardians_pair;column:student_guardian_student_id" json:"student_guardian_student_id"`
	StudentGuardianGuardianID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_guardians_pair;column:student_guardian_guardian_id" json:"student_guardian_guardian_id"`

	// See constants.GuardianType*
	StudentGuardianType      string `gorm:"type:varchar(16);not null;column:student_guardian_type" json:"student_guardian_type"`
	StudentGuardianIsPrimary bool   `gorm:"not null;default:false;column:student_guardian_is_primary" json:"student_guardian_is_primary"`

	StudentGuardianCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_guardian_created_at" json:"student_guardian_created_at"`
	StudentGuardianUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_guardian_updated_at" json:"student_guardian_updated_at"`
	StudentGuardianDeletedAt gorm.DeletedAt `gorm:"column:student_guardian_deleted_at;index" json:"student_guardian_deleted_at,omitempty"`
}

func (StudentGuardianModel) TableName() string { return "student_guardians" }
