// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel is a timetabled section: subject + teacher + term + room +
// period. Name ("Mathematics 7A") is unique within (school, term).
type ClassModel struct {
	// PK & tenant
	ClassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classes_school_term_name;column:class_school_id" json:"class_school_id"`

	// Relations (IDs only)
	ClassSubjectID   uuid.UUID `gorm:"type:uuid;not null;column:class_subject_id" json:"class_subject_id"`
	ClassTeacherID   uuid.UUID `gorm:"type:uuid;not null;column:class_teacher_id" json:"class_teacher_id"`
	ClassTermID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classes_school_term_name;column:class_term_id" json:"class_term_id"`
	ClassClassroomID uuid.UUID `gorm:"type:uuid;not null;column:class_classroom_id" json:"class_classroom_id"`
	ClassPeriodID    uuid.UUID `gorm:"type:uuid;not null;column:class_period_id" json:"class_period_id"`

	ClassName          string `gorm:"type:varchar(120);not null;uniqueIndex:uq_classes_school_term_name;column:class_name" json:"class_name"`
	ClassGrade         int    `gorm:"not null;column:class_grade" json:"class_grade"`
	ClassSectionLetter string `gorm:"type:varchar(4);not null;column:class_section_letter" json:"class_section_letter"`

	ClassIsActive  bool           `gorm:"not null;default:true;column:class_is_active" json:"class_is_active"`
	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// StudentClassModel enrolls a student into a class section (many-to-many).
type StudentClassModel struct {
	// PK & tenant
	StudentClassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_class_id" json:"student_class_id"`
	StudentClassSchoolID uuid.UUID `gorm:"type:uuid;not null;column:student_class_school_id" json:"student_class_school_id"`

	StudentClassStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_classes_pair;column:student_class_student_id" json:"student_class_student_id"`
	StudentClassClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_classes_pair;column:student_class_class_id" json:"student_class_class_id"`

	StudentClassEnrolledAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_class_enrolled_at" json:"student_class_enrolled_at"`

	StudentClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_class_created_at" json:"student_class_created_at"`
	StudentClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_class_updated_at" json:"student_class_updated_at"`
	StudentClassDeletedAt gorm.DeletedAt `gorm:"column:student_class_deleted_at;index" json:"student_class_deleted_at,omitempty"`
}

func (StudentClassModel) TableName() string { return "student_classes" }
