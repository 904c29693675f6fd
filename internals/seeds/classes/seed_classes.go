// file: internals/seeds/classes/seed_classes.go
package classes

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
	classesModel "schoolku_backend/internals/features/school/classes/model"
	curriculumModel "schoolku_backend/internals/features/school/curriculum/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	"schoolku_backend/internals/seeds/namegen"
	"schoolku_backend/internals/seeds/people"
	"schoolku_backend/internals/seeds/profile"
)

// Section pairs a class row with its enrolled students, in enrollment
// order. The exams seeder reuses this instead of re-querying.
type Section struct {
	Class    classesModel.ClassModel
	Subject  curriculumModel.SubjectModel
	Students []peopleModel.StudentModel
}

// SeedClasses builds one section per (core subject × grade × section
// letter), assigns teachers/rooms/periods by round-robin index arithmetic,
// enrolls contiguous slices of the grade's students, and generates one
// homework assignment (with per-student submissions) plus an attendance
// history per section. Test-data distribution, not a placement algorithm.
func SeedClasses(
	db *gorm.DB,
	schoolID uuid.UUID,
	term *academicsModel.TermModel,
	periods []academicsModel.PeriodModel,
	coreSubjects []curriculumModel.SubjectModel,
	classrooms []curriculumModel.ClassroomModel,
	graph *people.Graph,
	p *profile.TenantProfile,
	gen *namegen.Generator,
) ([]Section, error) {
	log.Println("📥 Seeding class sections & enrollment...")

	if len(graph.Teachers) == 0 {
		return nil, fmt.Errorf("no teachers seeded, cannot build class sections")
	}

	teachingPeriods := make([]academicsModel.PeriodModel, 0, len(periods))
	for _, period := range periods {
		if strings.HasPrefix(period.PeriodName, "Period") {
			teachingPeriods = append(teachingPeriods, period)
		}
	}
	if len(teachingPeriods) == 0 {
		return nil, fmt.Errorf("no teaching periods seeded")
	}

	studentsByGrade := make(map[int][]peopleModel.StudentModel)
	for _, s := range graph.Students {
		studentsByGrade[s.StudentGrade] = append(studentsByGrade[s.StudentGrade], s)
	}

	var sections []Section
	classIdx := 0
	for _, subject := range coreSubjects {
		for _, grade := range p.Grades {
			gradeStudents := studentsByGrade[grade]
			for si, letter := range p.Sections {
				className := fmt.Sprintf("%s %d%s", subject.SubjectName, grade, letter)
				teacher := graph.Teachers[classIdx%len(graph.Teachers)]
				room := classrooms[classIdx%len(classrooms)]
				period := teachingPeriods[classIdx%len(teachingPeriods)]
				classIdx++

				class := classesModel.ClassModel{
					ClassSchoolID:      schoolID,
					ClassSubjectID:     subject.SubjectID,
					ClassTeacherID:     teacher.TeacherID,
					ClassTermID:        term.TermID,
					ClassClassroomID:   room.ClassroomID,
					ClassPeriodID:      period.PeriodID,
					ClassName:          className,
					ClassGrade:         grade,
					ClassSectionLetter: letter,
				}
				if err := db.
					Where("class_school_id = ? AND class_term_id = ? AND class_name = ?",
						schoolID, term.TermID, className).
					FirstOrCreate(&class).Error; err != nil {
					return nil, fmt.Errorf("upsert class %s: %w", className, err)
				}

				enrolled := sliceFor(gradeStudents, si, len(p.Sections))
				for _, student := range enrolled {
					sc := classesModel.StudentClassModel{
						StudentClassSchoolID:   schoolID,
						StudentClassStudentID:  student.StudentID,
						StudentClassClassID:    class.ClassID,
						StudentClassEnrolledAt: term.TermStartDate,
					}
					if err := db.
						Where("student_class_student_id = ? AND student_class_class_id = ?",
							student.StudentID, class.ClassID).
						FirstOrCreate(&sc).Error; err != nil {
						return nil, fmt.Errorf("enroll %s into %s: %w", student.StudentAdmissionNo, className, err)
					}
				}

				if err := seedHomework(db, schoolID, &class, term, enrolled, gen); err != nil {
					return nil, err
				}
				if err := seedAttendance(db, schoolID, &class, term, enrolled, p.AttendanceDays, gen); err != nil {
					return nil, err
				}

				sections = append(sections, Section{Class: class, Subject: subject, Students: enrolled})
			}
		}
	}

	log.Printf("✅ Classes ready: %d sections", len(sections))
	return sections, nil
}

// sliceFor splits students into n contiguous slices and returns the i-th.
func sliceFor(students []peopleModel.StudentModel, i, n int) []peopleModel.StudentModel {
	if n <= 0 || len(students) == 0 {
		return nil
	}
	per := (len(students) + n - 1) / n
	lo := i * per
	if lo >= len(students) {
		return nil
	}
	hi := lo + per
	if hi > len(students) {
		hi = len(students)
	}
	return students[lo:hi]
}

func seedHomework(db *gorm.DB, schoolID uuid.UUID, class *classesModel.ClassModel, term *academicsModel.TermModel, enrolled []peopleModel.StudentModel, gen *namegen.Generator) error {
	title := "Homework 1"
	due := term.TermStartDate.AddDate(0, 0, 14)
	assignment := classesModel.AssignmentModel{
		AssignmentSchoolID: schoolID,
		AssignmentClassID:  class.ClassID,
		AssignmentTitle:    title,
		AssignmentDueDate:  due,
	}
	if err := db.
		Where("assignment_class_id = ? AND assignment_title = ?", class.ClassID, title).
		FirstOrCreate(&assignment).Error; err != nil {
		return fmt.Errorf("upsert assignment for %s: %w", class.ClassName, err)
	}

	for _, student := range enrolled {
		submission := classesModel.AssignmentSubmissionModel{
			AssignmentSubmissionSchoolID:     schoolID,
			AssignmentSubmissionAssignmentID: assignment.AssignmentID,
			AssignmentSubmissionStudentID:    student.StudentID,
			AssignmentSubmissionStatus:       classesModel.SubmissionStatusNotSubmitted,
		}
		if gen.Float64() < 0.8 {
			submittedAt := due.AddDate(0, 0, -1-gen.Intn(5))
			mark := 50 + gen.Intn(51)
			submission.AssignmentSubmissionStatus = classesModel.SubmissionStatusSubmitted
			submission.AssignmentSubmissionSubmittedAt = &submittedAt
			submission.AssignmentSubmissionMark = &mark
		}
		if err := db.
			Where("assignment_submission_assignment_id = ? AND assignment_submission_student_id = ?",
				assignment.AssignmentID, student.StudentID).
			FirstOrCreate(&submission).Error; err != nil {
			return fmt.Errorf("upsert submission for %s: %w", student.StudentAdmissionNo, err)
		}
	}
	return nil
}

// seedAttendance writes one status per (student, class, school day) over a
// fixed window starting at the term start. Fixed probabilities:
// 85% present, 10% absent, 5% late.
func seedAttendance(db *gorm.DB, schoolID uuid.UUID, class *classesModel.ClassModel, term *academicsModel.TermModel, enrolled []peopleModel.StudentModel, days int, gen *namegen.Generator) error {
	date := term.TermStartDate
	seeded := 0
	for seeded < days {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			date = date.AddDate(0, 0, 1)
			continue
		}
		for _, student := range enrolled {
			status := classesModel.AttendanceStatusPresent
			switch roll := gen.Float64(); {
			case roll < 0.10:
				status = classesModel.AttendanceStatusAbsent
			case roll < 0.15:
				status = classesModel.AttendanceStatusLate
			}
			att := classesModel.AttendanceModel{
				AttendanceSchoolID:  schoolID,
				AttendanceStudentID: student.StudentID,
				AttendanceClassID:   class.ClassID,
				AttendanceDate:      date,
				AttendanceStatus:    status,
			}
			if err := db.
				Where("attendance_student_id = ? AND attendance_class_id = ? AND attendance_date = ?",
					student.StudentID, class.ClassID, date).
				FirstOrCreate(&att).Error; err != nil {
				return fmt.Errorf("upsert attendance %s/%s: %w", class.ClassName, student.StudentAdmissionNo, err)
			}
		}
		seeded++
		date = date.AddDate(0, 0, 1)
	}
	return nil
}
