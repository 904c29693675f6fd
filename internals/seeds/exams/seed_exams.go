// file: internals/seeds/exams/seed_exams.go
package exams

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
	examsModel "schoolku_backend/internals/features/school/exams/model"
	"schoolku_backend/internals/features/school/exams/service"
	"schoolku_backend/internals/seeds/classes"
	"schoolku_backend/internals/seeds/namegen"
)

// SeedExams creates a midterm exam for every class section and a result
// row per enrolled student. Marks are drawn once at creation; the grade
// letter is always recomputed from the marks.
func SeedExams(db *gorm.DB, schoolID uuid.UUID, term *academicsModel.TermModel, sections []classes.Section, gen *namegen.Generator) error {
	log.Println("📥 Seeding midterm exams & results...")

	// Halfway through the term, so results sit inside the term window.
	examDate := term.TermStartDate.Add(term.TermEndDate.Sub(term.TermStartDate) / 2)

	examCount := 0
	resultCount := 0
	for _, section := range sections {
		exam := examsModel.ExamModel{
			ExamSchoolID:  schoolID,
			ExamClassID:   section.Class.ClassID,
			ExamSubjectID: section.Subject.SubjectID,
			ExamName:      "Midterm",
			ExamDate:      examDate,
			ExamMaxMarks:  100,
		}
		if err := db.
			Where("exam_class_id = ? AND exam_name = ?", section.Class.ClassID, "Midterm").
			FirstOrCreate(&exam).Error; err != nil {
			return fmt.Errorf("upsert exam for class %s: %w", section.Class.ClassName, err)
		}
		examCount++

		for _, student := range section.Students {
			marks := 35 + gen.Intn(66)
			result := examsModel.ExamResultModel{
				ExamResultSchoolID:  schoolID,
				ExamResultExamID:    exam.ExamID,
				ExamResultStudentID: student.StudentID,
				ExamResultMarks:     marks,
				ExamResultGrade:     service.GradeFor(marks),
			}
			if err := db.
				Where("exam_result_exam_id = ? AND exam_result_student_id = ?", exam.ExamID, student.StudentID).
				FirstOrCreate(&result).Error; err != nil {
				return fmt.Errorf("upsert exam result %s/%s: %w", section.Class.ClassName, student.StudentAdmissionNo, err)
			}
			resultCount++
		}
	}

	log.Printf("✅ Exams ready: %d exams, %d results", examCount, resultCount)
	return nil
}
