// file: internals/seeds/people/seed_people.go
package people

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	"schoolku_backend/internals/seeds/identity"
	"schoolku_backend/internals/seeds/namegen"
	"schoolku_backend/internals/seeds/profile"
)

// Graph is the personnel snapshot downstream seeders consume. Both lists
// are refetched in natural-key order, so reruns see the same ordering.
type Graph struct {
	Teachers []peopleModel.TeacherModel
	Students []peopleModel.StudentModel
}

// SeedPeople generates teacher and student identities from the injected
// name generator, creates their User + profile rows, and links two fresh
// guardians (father/mother) to every student. Guardians are generated per
// student, not shared across siblings; accepted unrealism for demo data.
func SeedPeople(db *gorm.DB, schoolID uuid.UUID, p *profile.TenantProfile, gen *namegen.Generator, passwordHash string) (*Graph, error) {
	log.Printf("📥 Seeding people: %d teachers, %d students...", p.Teachers, p.Students)

	for i := 1; i <= p.Teachers; i++ {
		gender := gen.Gender()
		name := gen.FullName(gender)
		email := fmt.Sprintf("teacher%02d@%s.schoolku.io", i, p.SchoolDomain)

		if err := identity.EnsureUser(db, &schoolID, name, email, passwordHash, constants.RoleTeacher); err != nil {
			return nil, err
		}
		user, err := identity.FindUser(db, schoolID, email)
		if err != nil {
			return nil, err
		}

		joined := time.Now().UTC()
		teacher := peopleModel.TeacherModel{
			TeacherSchoolID:   schoolID,
			TeacherUserID:     user.UserID,
			TeacherFullName:   user.UserName,
			TeacherGender:     gender,
			TeacherEmployeeNo: fmt.Sprintf("T-%03d", i),
			TeacherJoinedAt:   &joined,
		}
		if err := db.
			Where("teacher_user_id = ?", user.UserID).
			FirstOrCreate(&teacher).Error; err != nil {
			return nil, fmt.Errorf("upsert teacher %s: %w", email, err)
		}
	}

	for i := 1; i <= p.Students; i++ {
		gender := gen.Gender()
		name := gen.FullName(gender)
		grade := p.Grades[(i-1)%len(p.Grades)]
		email := fmt.Sprintf("student%03d@%s.schoolku.io", i, p.SchoolDomain)

		if err := identity.EnsureUser(db, &schoolID, name, email, passwordHash, constants.RoleStudent); err != nil {
			return nil, err
		}
		user, err := identity.FindUser(db, schoolID, email)
		if err != nil {
			return nil, err
		}

		student := peopleModel.StudentModel{
			StudentSchoolID:    schoolID,
			StudentUserID:      user.UserID,
			StudentFullName:    user.UserName,
			StudentGender:      gender,
			StudentDateOfBirth: birthDate(grade, gen),
			StudentAdmissionNo: fmt.Sprintf("S-%04d", i),
			StudentGrade:       grade,
		}
		if err := db.
			Where("student_user_id = ?", user.UserID).
			FirstOrCreate(&student).Error; err != nil {
			return nil, fmt.Errorf("upsert student %s: %w", email, err)
		}

		if err := ensureGuardians(db, schoolID, &student, p, gen); err != nil {
			return nil, err
		}
	}

	graph := &Graph{}
	if err := db.
		Where("teacher_school_id = ?", schoolID).
		Order("teacher_employee_no").
		Find(&graph.Teachers).Error; err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	if err := db.
		Where("student_school_id = ?", schoolID).
		Order("student_admission_no").
		Find(&graph.Students).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	log.Printf("✅ People ready: %d teachers, %d students", len(graph.Teachers), len(graph.Students))
	return graph, nil
}

// ensureGuardians links a father and mother to the student, exactly one
// of them primary per the profile's rule. Reruns repair the flag so the
// invariant holds even when the rule changed between runs.
func ensureGuardians(db *gorm.DB, schoolID uuid.UUID, student *peopleModel.StudentModel, p *profile.TenantProfile, gen *namegen.Generator) error {
	surname := surnameOf(student.StudentFullName)

	for _, gtype := range []string{constants.GuardianTypeFather, constants.GuardianTypeMother} {
		var count int64
		if err := db.Model(&peopleModel.StudentGuardianModel{}).
			Where("student_guardian_student_id = ? AND student_guardian_type = ?", student.StudentID, gtype).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check guardian link: %w", err)
		}
		if count > 0 {
			continue
		}

		gender := peopleModel.GenderMale
		if gtype == constants.GuardianTypeMother {
			gender = peopleModel.GenderFemale
		}
		occupation := gen.Occupation()
		guardian := peopleModel.GuardianModel{
			GuardianSchoolID:   schoolID,
			GuardianFullName:   gen.FirstName(gender) + " " + surname,
			GuardianGender:     gender,
			GuardianPhone:      gen.Phone(),
			GuardianOccupation: &occupation,
		}
		if err := db.Create(&guardian).Error; err != nil {
			return fmt.Errorf("create guardian for %s: %w", student.StudentAdmissionNo, err)
		}

		link := peopleModel.StudentGuardianModel{
			StudentGuardianSchoolID:   schoolID,
			StudentGuardianStudentID:  student.StudentID,
			StudentGuardianGuardianID: guardian.GuardianID,
			StudentGuardianType:       gtype,
			StudentGuardianIsPrimary:  gtype == p.PrimaryGuardian,
		}
		if err := db.Create(&link).Error; err != nil {
			return fmt.Errorf("link guardian for %s: %w", student.StudentAdmissionNo, err)
		}
	}

	// Invariant repair: exactly one primary guardian per student.
	if err := db.Model(&peopleModel.StudentGuardianModel{}).
		Where("student_guardian_student_id = ?", student.StudentID).
		Update("student_guardian_is_primary", gorm.Expr("student_guardian_type = ?", p.PrimaryGuardian)).Error; err != nil {
		return fmt.Errorf("repair primary guardian for %s: %w", student.StudentAdmissionNo, err)
	}
	return nil
}

// birthDate picks a plausible date of birth for the grade, with a little
// jitter from the shared RNG stream.
func birthDate(grade int, gen *namegen.Generator) time.Time {
	age := 6 + grade // grade 7 → 13 years old
	year := time.Now().UTC().Year() - age
	month := time.Month(1 + gen.Intn(12))
	day := 1 + gen.Intn(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func surnameOf(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return fullName
	}
	return parts[len(parts)-1]
}
