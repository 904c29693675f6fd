// file: internals/seeds/curriculum/seed_curriculum.go
package curriculum

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumModel "schoolku_backend/internals/features/school/curriculum/model"
	helper "schoolku_backend/internals/helpers"
)

type subjectSpec struct {
	name       string
	code       string
	department string
	isCore     bool
}

var departmentNames = []string{"Mathematics", "Sciences", "Languages", "Humanities", "Arts & Sports"}

// Core subjects get class sections; the rest exist for the curriculum
// catalog, LMS courses and the question bank.
var subjectSpecs = []subjectSpec{
	{"Mathematics", "MATH", "Mathematics", true},
	{"English", "ENG", "Languages", true},
	{"Science", "SCI", "Sciences", true},
	{"Social Studies", "SOC", "Humanities", true},
	{"Arabic", "ARB", "Languages", false},
	{"Computer Science", "CS", "Sciences", false},
	{"Art", "ART", "Arts & Sports", false},
	{"Physical Education", "PE", "Arts & Sports", false},
}

// Curriculum is the facility/catalog snapshot consumed downstream.
type Curriculum struct {
	Departments  []curriculumModel.DepartmentModel
	Subjects     []curriculumModel.SubjectModel
	CoreSubjects []curriculumModel.SubjectModel
	Classrooms   []curriculumModel.ClassroomModel
}

// SeedCurriculum upserts departments, subjects (assigned to departments by
// name lookup) and the classroom catalog. Everything keys on (school, name)
// so reruns no-op.
func SeedCurriculum(db *gorm.DB, schoolID uuid.UUID) (*Curriculum, error) {
	log.Println("📥 Seeding curriculum & facilities...")

	cur := &Curriculum{}
	deptByName := make(map[string]uuid.UUID, len(departmentNames))

	for _, name := range departmentNames {
		dept := curriculumModel.DepartmentModel{
			DepartmentSchoolID: schoolID,
			DepartmentName:     name,
		}
		if err := db.
			Where("department_school_id = ? AND department_name = ?", schoolID, name).
			FirstOrCreate(&dept).Error; err != nil {
			return nil, fmt.Errorf("upsert department %s: %w", name, err)
		}
		cur.Departments = append(cur.Departments, dept)
		deptByName[name] = dept.DepartmentID
	}

	for _, spec := range subjectSpecs {
		deptID, ok := deptByName[spec.department]
		if !ok {
			return nil, fmt.Errorf("subject %s references unknown department %s", spec.name, spec.department)
		}
		subject := curriculumModel.SubjectModel{
			SubjectSchoolID:     schoolID,
			SubjectDepartmentID: deptID,
			SubjectName:         spec.name,
			SubjectCode:         spec.code,
			SubjectSlug:         helper.GenerateSlug(spec.name),
			SubjectIsCore:       spec.isCore,
		}
		if err := db.
			Where("subject_school_id = ? AND subject_department_id = ? AND subject_name = ?",
				schoolID, deptID, spec.name).
			FirstOrCreate(&subject).Error; err != nil {
			return nil, fmt.Errorf("upsert subject %s: %w", spec.name, err)
		}
		cur.Subjects = append(cur.Subjects, subject)
		if spec.isCore {
			cur.CoreSubjects = append(cur.CoreSubjects, subject)
		}
	}

	typeSpecs := []struct {
		name string
		desc string
	}{
		{"Standard", "Regular classroom"},
		{"Laboratory", "Science/computer lab"},
		{"Hall", "Assembly and exam hall"},
	}
	typeByName := make(map[string]uuid.UUID, len(typeSpecs))
	for _, spec := range typeSpecs {
		desc := spec.desc
		roomType := curriculumModel.ClassroomTypeModel{
			ClassroomTypeSchoolID: schoolID,
			ClassroomTypeName:     spec.name,
			ClassroomTypeDesc:     &desc,
		}
		if err := db.
			Where("classroom_type_school_id = ? AND classroom_type_name = ?", schoolID, spec.name).
			FirstOrCreate(&roomType).Error; err != nil {
			return nil, fmt.Errorf("upsert classroom type %s: %w", spec.name, err)
		}
		typeByName[spec.name] = roomType.ClassroomTypeID
	}

	roomSpecs := []struct {
		name     string
		roomType string
		capacity int
	}{
		{"Room 101", "Standard", 30},
		{"Room 102", "Standard", 30},
		{"Room 103", "Standard", 30},
		{"Room 104", "Standard", 30},
		{"Room 201", "Standard", 35},
		{"Room 202", "Standard", 35},
		{"Science Lab", "Laboratory", 24},
		{"Computer Lab", "Laboratory", 24},
		{"Main Hall", "Hall", 200},
	}
	for _, spec := range roomSpecs {
		room := curriculumModel.ClassroomModel{
			ClassroomSchoolID: schoolID,
			ClassroomTypeID:   typeByName[spec.roomType],
			ClassroomName:     spec.name,
			ClassroomCapacity: spec.capacity,
		}
		if err := db.
			Where("classroom_school_id = ? AND classroom_name = ?", schoolID, spec.name).
			FirstOrCreate(&room).Error; err != nil {
			return nil, fmt.Errorf("upsert classroom %s: %w", spec.name, err)
		}
		cur.Classrooms = append(cur.Classrooms, room)
	}

	log.Printf("✅ Curriculum ready: %d departments, %d subjects (%d core), %d rooms",
		len(cur.Departments), len(cur.Subjects), len(cur.CoreSubjects), len(cur.Classrooms))
	return cur, nil
}
