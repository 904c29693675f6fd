// file: internals/features/school/lms/model/stream_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreamCourseModel is the root of the LMS content tree:
// course → ordered chapters → ordered lessons.
type StreamCourseModel struct {
	// PK & tenant
	StreamCourseID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:stream_course_id" json:"stream_course_id"`
	StreamCourseSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_stream_courses_school_slug;column:stream_course_school_id" json:"stream_course_school_id"`

	StreamCourseSubjectID *uuid.UUID `gorm:"type:uuid;column:stream_course_subject_id" json:"stream_course_subject_id,omitempty"`
	StreamCourseTeacherID *uuid.UUID `gorm:"type:uuid;column:stream_course_teacher_id" json:"stream_course_teacher_id,omitempty"`

	StreamCourseTitle string  `gorm:"type:varchar(200);not null;column:stream_course_title" json:"stream_course_title"`
	StreamCourseSlug  string  `gorm:"type:varchar(160);not null;uniqueIndex:uq_stream_courses_school_slug;column:stream_course_slug" json:"stream_course_slug"`
	StreamCourseDesc  *string `gorm:"type:text;column:stream_course_desc" json:"stream_course_desc,omitempty"`

	StreamCourseIsPublished bool           `gorm:"not null;default:false;column:stream_course_is_published" json:"stream_course_is_published"`
	StreamCourseCreatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:stream_course_created_at" json:"stream_course_created_at"`
	StreamCourseUpdatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:stream_course_updated_at" json:"stream_course_updated_at"`
	StreamCourseDeletedAt   gorm.DeletedAt `gorm:"column:stream_course_deleted_at;index" json:"stream_course_deleted_at,omitempty"`
}

func (StreamCourseModel) TableName() string { return "stream_courses" }

type StreamChapterModel struct {
	// PK & tenant
	StreamChapterID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:stream_chapter_id" json:"stream_chapter_id"`
	StreamChapterSchoolID uuid.UUID `gorm:"type:uuid;not null;column:stream_chapter_school_id" json:"stream_chapter_school_id"`

	StreamChapterCourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_stream_chapters_course_order;column:stream_chapter_course_id" json:"stream_chapter_course_id"`

	StreamChapterTitle      string `gorm:"type:varchar(200);not null;column:stream_chapter_title" json:"stream_chapter_title"`
	StreamChapterOrderIndex int    `gorm:"not null;uniqueIndex:uq_stream_chapters_course_order;column:stream_chapter_order_index" json:"stream_chapter_order_index"`

	StreamChapterCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:stream_chapter_created_at" json:"stream_chapter_created_at"`
	StreamChapterUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:stream_chapter_updated_at" json:"stream_chapter_updated_at"`
	StreamChapterDeletedAt gorm.DeletedAt `gorm:"column:stream_chapter_deleted_at;index" json:"stream_chapter_deleted_at,omitempty"`
}

func (StreamChapterModel) TableName() string { return "stream_chapters" }

type StreamLessonModel struct {
	// PK & tenant
	StreamLessonID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:stream_lesson_id" json:"stream_lesson_id"`
	StreamLessonSchoolID uuid.UUID `gorm:"type:uuid;not null;column:stream_lesson_school_id" json:"stream_lesson_school_id"`

	StreamLessonChapterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_stream_lessons_chapter_order;column:stream_lesson_chapter_id" json:"stream_lesson_chapter_id"`

	StreamLessonTitle           string `gorm:"type:varchar(200);not null;column:stream_lesson_title" json:"stream_lesson_title"`
	StreamLessonOrderIndex      int    `gorm:"not null;uniqueIndex:uq_stream_lessons_chapter_order;column:stream_lesson_order_index" json:"stream_lesson_order_index"`
	StreamLessonIsFree          bool   `gorm:"not null;default:false;column:stream_lesson_is_free" json:"stream_lesson_is_free"`
	StreamLessonDurationSeconds int    `gorm:"not null;default:0;column:stream_lesson_duration_seconds" json:"stream_lesson_duration_seconds"`

	StreamLessonCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:stream_lesson_created_at" json:"stream_lesson_created_at"`
	StreamLessonUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:stream_lesson_updated_at" json:"stream_lesson_updated_at"`
	StreamLessonDeletedAt gorm.DeletedAt `gorm:"column:stream_lesson_deleted_at;index" json:"stream_lesson_deleted_at,omitempty"`
}

func (StreamLessonModel) TableName() string { return "stream_lessons" }
