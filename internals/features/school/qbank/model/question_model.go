// file: internals/features/school/qbank/model/question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ         = "mcq"
	QuestionTypeShortAnswer = "short_answer"
	QuestionTypeEssay       = "essay"
	QuestionTypeTrueFalse   = "true_false"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Bloom taxonomy levels, low to high.
var BloomLevels = []string{"remember", "understand", "apply", "analyze", "evaluate", "create"}

// QuestionModel is a subject-scoped question-bank entry. Options carry the
// MCQ choices as a JSON map; tags is a Postgres text[] column.
type QuestionModel struct {
	// PK & tenant
	QuestionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`
	QuestionSchoolID uuid.UUID `gorm:"type:uuid;not null;column:question_school_id" json:"question_school_id"`

	QuestionSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_questions_subject_text;column:question_subject_id" json:"question_subject_id"`

	QuestionText       string            `gorm:"type:text;not null;uniqueIndex:uq_questions_subject_text;column:question_text" json:"question_text"`
	QuestionType       string            `gorm:"type:varchar(16);not null;column:question_type" json:"question_type"`
	QuestionDifficulty string            `gorm:"type:varchar(8);not null;column:question_difficulty" json:"question_difficulty"`
	QuestionBloomLevel string            `gorm:"type:varchar(16);not null;column:question_bloom_level" json:"question_bloom_level"`
	QuestionOptions    datatypes.JSONMap `gorm:"type:jsonb;column:question_options" json:"question_options,omitempty"`
	QuestionAnswer     string            `gorm:"type:text;not null;column:question_answer" json:"question_answer"`
	QuestionTags       pq.StringArray    `gorm:"type:text[];column:question_tags" json:"question_tags,omitempty"`

	QuestionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:question_created_at" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:question_updated_at" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }
