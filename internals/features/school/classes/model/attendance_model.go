// file: internals/features/school/classes/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
)

// AttendanceModel holds one status per (student, class, date).
// attendance_date is stored at midnight UTC so the unique index works.
type AttendanceModel struct {
	// PK & tenant
	AttendanceID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceSchoolID uuid.UUID `gorm:"type:uuid;not null;column:attendance_school_id" json:"attendance_school_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_student_class_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_student_class_date;column:attendance_class_id" json:"attendance_class_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendances_student_class_date;column:attendance_date" json:"attendance_date"`

	AttendanceStatus string  `gorm:"type:varchar(8);not null;column:attendance_status" json:"attendance_status"`
	AttendanceNote   *string `gorm:"type:text;column:attendance_note" json:"attendance_note,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_updated_at" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
