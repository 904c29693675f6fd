// file: internals/features/school/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamModel struct {
	// PK & tenant
	ExamID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`
	ExamSchoolID uuid.UUID `gorm:"type:uuid;not null;column:exam_school_id" json:"exam_school_id"`

	ExamClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exams_class_name;column:exam_class_id" json:"exam_class_id"`
	ExamSubjectID uuid.UUID `gorm:"type:uuid;not null;column:exam_subject_id" json:"exam_subject_id"`

	ExamName     string    `gorm:"type:varchar(160);not null;uniqueIndex:uq_exams_class_name;column:exam_name" json:"exam_name"`
	ExamDate     time.Time `gorm:"type:timestamptz;not null;column:exam_date" json:"exam_date"`
	ExamMaxMarks int       `gorm:"not null;default:100;column:exam_max_marks" json:"exam_max_marks"`

	ExamCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:exam_created_at" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:exam_updated_at" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }

type ExamResultModel struct {
	// PK & tenant
	ExamResultID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_result_id" json:"exam_result_id"`
	ExamResultSchoolID uuid.UUID `gorm:"type:uuid;not null;column:exam_result_school_id" json:"exam_result_school_id"`

	ExamResultExamID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exam_results_pair;column:exam_result_exam_id" json:"exam_result_exam_id"`
	ExamResultStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exam_results_pair;column:exam_result_student_id" json:"exam_result_student_id"`

	ExamResultMarks int    `gorm:"not null;column:exam_result_marks" json:"exam_result_marks"`
	ExamResultGrade string `gorm:"type:varchar(2);not null;column:exam_result_grade" json:"exam_result_grade"`

	ExamResultCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:exam_result_created_at" json:"exam_result_created_at"`
	ExamResultUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:exam_result_updated_at" json:"exam_result_updated_at"`
	ExamResultDeletedAt gorm.DeletedAt `gorm:"column:exam_result_deleted_at;index" json:"exam_result_deleted_at,omitempty"`
}

func (ExamResultModel) TableName() string { return "exam_results" }
