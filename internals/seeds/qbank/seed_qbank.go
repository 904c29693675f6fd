// file: internals/seeds/qbank/seed_qbank.go
package qbank

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	curriculumModel "schoolku_backend/internals/features/school/curriculum/model"
	qbankModel "schoolku_backend/internals/features/school/qbank/model"
)

// builtin holds a starter question per core subject, enough for the exam
// builder UI to have something to list on a fresh tenant.
type builtin struct {
	Subject    string
	Text       string
	Type       string
	Difficulty string
	Bloom      string
	Options    datatypes.JSONMap
	Answer     string
	Tags       []string
}

var builtins = []builtin{
	{
		Subject: "Mathematics", Text: "What is 7 × 8?",
		Type: qbankModel.QuestionTypeMCQ, Difficulty: qbankModel.DifficultyEasy, Bloom: "remember",
		Options: datatypes.JSONMap{"a": "54", "b": "56", "c": "58", "d": "64"},
		Answer:  "b", Tags: []string{"arithmetic", "multiplication"},
	},
	{
		Subject: "Mathematics", Text: "Solve for x: 2x + 6 = 14.",
		Type: qbankModel.QuestionTypeShortAnswer, Difficulty: qbankModel.DifficultyMedium, Bloom: "apply",
		Answer: "4", Tags: []string{"algebra"},
	},
	{
		Subject: "English", Text: "Identify the verb in: \"The river flows north.\"",
		Type: qbankModel.QuestionTypeShortAnswer, Difficulty: qbankModel.DifficultyEasy, Bloom: "understand",
		Answer: "flows", Tags: []string{"grammar"},
	},
	{
		Subject: "Science", Text: "Water boils at 100°C at sea level.",
		Type: qbankModel.QuestionTypeTrueFalse, Difficulty: qbankModel.DifficultyEasy, Bloom: "remember",
		Answer: "true", Tags: []string{"physics", "states-of-matter"},
	},
	{
		Subject: "Science", Text: "Explain why plants need sunlight to grow.",
		Type: qbankModel.QuestionTypeEssay, Difficulty: qbankModel.DifficultyMedium, Bloom: "analyze",
		Answer: "Photosynthesis converts light energy into chemical energy.", Tags: []string{"biology", "photosynthesis"},
	},
	{
		Subject: "Social Studies", Text: "Which river runs through Khartoum?",
		Type: qbankModel.QuestionTypeMCQ, Difficulty: qbankModel.DifficultyEasy, Bloom: "remember",
		Options: datatypes.JSONMap{"a": "Congo", "b": "Niger", "c": "Nile", "d": "Zambezi"},
		Answer:  "c", Tags: []string{"geography", "sudan"},
	},
}

// SeedBuiltinQuestions loads the built-in starter bank for every subject
// the tenant has. Questions are keyed by (subject, text).
func SeedBuiltinQuestions(db *gorm.DB, schoolID uuid.UUID, subjects []curriculumModel.SubjectModel) error {
	log.Println("📥 Seeding built-in question bank...")

	subjectByName := make(map[string]uuid.UUID, len(subjects))
	for _, s := range subjects {
		subjectByName[s.SubjectName] = s.SubjectID
	}

	created := 0
	for _, q := range builtins {
		subjectID, ok := subjectByName[q.Subject]
		if !ok {
			continue // tenant doesn't teach this subject
		}
		if err := upsertQuestion(db, qbankModel.QuestionModel{
			QuestionSchoolID:   schoolID,
			QuestionSubjectID:  subjectID,
			QuestionText:       q.Text,
			QuestionType:       q.Type,
			QuestionDifficulty: q.Difficulty,
			QuestionBloomLevel: q.Bloom,
			QuestionOptions:    q.Options,
			QuestionAnswer:     q.Answer,
			QuestionTags:       pq.StringArray(q.Tags),
		}); err != nil {
			return err
		}
		created++
	}

	log.Printf("✅ Built-in question bank ready: %d questions", created)
	return nil
}

// questionFile mirrors the JSON shape of data_community_questions.json.
type questionFile struct {
	Questions []struct {
		Subject    string            `json:"subject"`
		Text       string            `json:"text"`
		Type       string            `json:"type"`
		Difficulty string            `json:"difficulty"`
		Bloom      string            `json:"bloom"`
		Options    map[string]string `json:"options,omitempty"`
		Answer     string            `json:"answer"`
		Tags       []string          `json:"tags,omitempty"`
	} `json:"questions"`
}

// SeedQuestionsFromJSON imports a community-contributed question pack.
// Rows whose subject the tenant doesn't teach are skipped with a warning.
func SeedQuestionsFromJSON(db *gorm.DB, schoolID uuid.UUID, subjects []curriculumModel.SubjectModel, path string) error {
	log.Printf("📥 Seeding question bank from %s ...", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read question pack %s: %w", path, err)
	}
	var file questionFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode question pack %s: %w", path, err)
	}

	subjectByName := make(map[string]uuid.UUID, len(subjects))
	for _, s := range subjects {
		subjectByName[s.SubjectName] = s.SubjectID
	}

	created := 0
	skipped := 0
	for _, q := range file.Questions {
		subjectID, ok := subjectByName[q.Subject]
		if !ok {
			log.Printf("⚠️ Skipping question for unknown subject %q", q.Subject)
			skipped++
			continue
		}
		options := datatypes.JSONMap{}
		for k, v := range q.Options {
			options[k] = v
		}
		if err := upsertQuestion(db, qbankModel.QuestionModel{
			QuestionSchoolID:   schoolID,
			QuestionSubjectID:  subjectID,
			QuestionText:       q.Text,
			QuestionType:       q.Type,
			QuestionDifficulty: q.Difficulty,
			QuestionBloomLevel: q.Bloom,
			QuestionOptions:    options,
			QuestionAnswer:     q.Answer,
			QuestionTags:       pq.StringArray(q.Tags),
		}); err != nil {
			return err
		}
		created++
	}

	log.Printf("✅ Question pack imported: %d questions, %d skipped", created, skipped)
	return nil
}

func upsertQuestion(db *gorm.DB, q qbankModel.QuestionModel) error {
	if err := db.
		Where("question_subject_id = ? AND question_text = ?", q.QuestionSubjectID, q.QuestionText).
		FirstOrCreate(&q).Error; err != nil {
		return fmt.Errorf("upsert question %q: %w", q.QuestionText, err)
	}
	return nil
}
