// file: internals/features/school/classes/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubmissionStatusSubmitted    = "submitted"
	SubmissionStatusNotSubmitted = "not_submitted"
	SubmissionStatusLate         = "late"
)

type AssignmentModel struct {
	// PK & tenant
	AssignmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentSchoolID uuid.UUID `gorm:"type:uuid;not null;column:assignment_school_id" json:"assignment_school_id"`

	AssignmentClassID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_class_title;column:assignment_class_id" json:"assignment_class_id"`

	AssignmentTitle   string    `gorm:"type:varchar(160);not null;uniqueIndex:uq_assignments_class_title;column:assignment_title" json:"assignment_title"`
	AssignmentDesc    *string   `gorm:"type:text;column:assignment_desc" json:"assignment_desc,omitempty"`
	AssignmentDueDate time.Time `gorm:"type:timestamptz;not null;column:assignment_due_date" json:"assignment_due_date"`
	AssignmentMaxMark int       `gorm:"not null;default:100;column:assignment_max_mark" json:"assignment_max_mark"`

	AssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assignment_updated_at" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }

// AssignmentSubmissionModel is keyed by (assignment, student); re-seeding a
// class must not duplicate a student's submission.
type AssignmentSubmissionModel struct {
	// PK & tenant
	AssignmentSubmissionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_submission_id" json:"assignment_submission_id"`
	AssignmentSubmissionSchoolID uuid.UUID `gorm:"type:uuid;not null;column:assignment_submission_school_id" json:"assignment_submission_school_id"`

	AssignmentSubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_submissions_pair;column:assignment_submission_assignment_id" json:"assignment_submission_assignment_id"`
	AssignmentSubmissionStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_submissions_pair;column:assignment_submission_student_id" json:"assignment_submission_student_id"`

	AssignmentSubmissionStatus      string     `gorm:"type:varchar(16);not null;column:assignment_submission_status" json:"assignment_submission_status"`
	AssignmentSubmissionSubmittedAt *time.Time `gorm:"type:timestamptz;column:assignment_submission_submitted_at" json:"assignment_submission_submitted_at,omitempty"`
	AssignmentSubmissionMark        *int       `gorm:"column:assignment_submission_mark" json:"assignment_submission_mark,omitempty"`

	AssignmentSubmissionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assignment_submission_created_at" json:"assignment_submission_created_at"`
	AssignmentSubmissionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assignment_submission_updated_at" json:"assignment_submission_updated_at"`
	AssignmentSubmissionDeletedAt gorm.DeletedAt `gorm:"column:assignment_submission_deleted_at;index" json:"assignment_submission_deleted_at,omitempty"`
}

func (AssignmentSubmissionModel) TableName() string { return "assignment_submissions" }
