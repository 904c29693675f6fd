// file: internals/seeds/runner_db_test.go
package seeds

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/databases"
	classesModel "schoolku_backend/internals/features/school/classes/model"
	feesModel "schoolku_backend/internals/features/school/fees/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	"schoolku_backend/internals/seeds/profile"
	"schoolku_backend/internals/seeds/tenant"
	"schoolku_backend/internals/seeds/wipe"
)

// testProfile is a deliberately tiny tenant so the pipeline runs fast.
func testProfile() *profile.TenantProfile {
	p := profile.Demo()
	p.SchoolName = "Test School"
	p.SchoolDomain = "testschool"
	p.SchoolEmail = "info@testschool.schoolku.io"
	p.Students = 10
	p.Teachers = 2
	p.Grades = []int{7}
	p.Sections = []string{"A"}
	p.Books = 10
	p.Applications = 6
	p.AttendanceDays = 3
	p.RandomSeed = 42
	return p
}

// openTestDB connects to TEST_DATABASE_URL, or skips. These tests write
// real rows; point the variable at a throwaway database only.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping DB-backed test")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect test DB: %v", err)
	}
	if err := databases.MigrateAll(db); err != nil {
		t.Fatalf("migrate test DB: %v", err)
	}
	return db
}

func resetTestTenant(t *testing.T, db *gorm.DB, domain string) {
	t.Helper()
	school, err := tenant.FindSchool(db, domain)
	if err != nil {
		return // not seeded yet
	}
	if err := wipe.WipeTenant(db, school.SchoolID); err != nil {
		t.Fatalf("wipe test tenant: %v", err)
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	p := testProfile()
	resetTestTenant(t, db, p.SchoolDomain)

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("first run: %v", err)
	}
	school, err := tenant.FindSchool(db, p.SchoolDomain)
	if err != nil {
		t.Fatalf("find school: %v", err)
	}

	firstStudents := countRows(t, db, &peopleModel.StudentModel{}, "student_school_id = ?", school.SchoolID)
	firstTeachers := countRows(t, db, &peopleModel.TeacherModel{}, "teacher_school_id = ?", school.SchoolID)
	if firstStudents != int64(p.Students) {
		t.Fatalf("first run seeded %d students, want %d", firstStudents, p.Students)
	}
	if firstTeachers != int64(p.Teachers) {
		t.Fatalf("first run seeded %d teachers, want %d", firstTeachers, p.Teachers)
	}

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if n := countRows(t, db, &peopleModel.StudentModel{}, "student_school_id = ?", school.SchoolID); n != firstStudents {
		t.Errorf("rerun changed student count: %d -> %d", firstStudents, n)
	}
	if n := countRows(t, db, &peopleModel.TeacherModel{}, "teacher_school_id = ?", school.SchoolID); n != firstTeachers {
		t.Errorf("rerun changed teacher count: %d -> %d", firstTeachers, n)
	}
	if n := countRows(t, db, &peopleModel.GuardianModel{}, "guardian_school_id = ?", school.SchoolID); n != firstStudents*2 {
		t.Errorf("guardian count %d, want %d (two per student)", n, firstStudents*2)
	}
}

func TestEveryStudentHasExactlyOnePrimaryGuardian(t *testing.T) {
	db := openTestDB(t)
	p := testProfile()

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("seed: %v", err)
	}
	school, err := tenant.FindSchool(db, p.SchoolDomain)
	if err != nil {
		t.Fatalf("find school: %v", err)
	}

	var students []peopleModel.StudentModel
	if err := db.Where("student_school_id = ?", school.SchoolID).Find(&students).Error; err != nil {
		t.Fatalf("load students: %v", err)
	}
	for _, s := range students {
		n := countRows(t, db, &peopleModel.StudentGuardianModel{},
			"student_guardian_student_id = ? AND student_guardian_is_primary", s.StudentID)
		if n != 1 {
			t.Errorf("student %s has %d primary guardians, want 1", s.StudentAdmissionNo, n)
		}
	}
}

func TestSubmissionsStayUniqueAcrossReruns(t *testing.T) {
	db := openTestDB(t)
	p := testProfile()

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("first run: %v", err)
	}
	school, err := tenant.FindSchool(db, p.SchoolDomain)
	if err != nil {
		t.Fatalf("find school: %v", err)
	}
	before := countRows(t, db, &classesModel.AssignmentSubmissionModel{},
		"assignment_submission_school_id = ?", school.SchoolID)

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("second run: %v", err)
	}
	after := countRows(t, db, &classesModel.AssignmentSubmissionModel{},
		"assignment_submission_school_id = ?", school.SchoolID)
	if after != before {
		t.Errorf("rerun changed submission count: %d -> %d", before, after)
	}

	var dupes int64
	err = db.Raw(`SELECT COUNT(*) FROM (
			SELECT assignment_submission_assignment_id, assignment_submission_student_id
			FROM assignment_submissions
			WHERE assignment_submission_school_id = ?
			GROUP BY 1, 2 HAVING COUNT(*) > 1
		) d`, school.SchoolID).Scan(&dupes).Error
	if err != nil {
		t.Fatalf("check duplicate submissions: %v", err)
	}
	if dupes != 0 {
		t.Errorf("%d (assignment, student) pairs have duplicate submissions", dupes)
	}
}

func TestFeeAssignmentsAndPaymentsStayConsistent(t *testing.T) {
	db := openTestDB(t)
	p := testProfile()

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("first run: %v", err)
	}
	school, err := tenant.FindSchool(db, p.SchoolDomain)
	if err != nil {
		t.Fatalf("find school: %v", err)
	}
	assignments := countRows(t, db, &feesModel.FeeAssignmentModel{},
		"fee_assignment_school_id = ?", school.SchoolID)
	if assignments != int64(p.Students) {
		t.Errorf("fee assignments = %d, want one per student (%d)", assignments, p.Students)
	}

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if n := countRows(t, db, &feesModel.FeeAssignmentModel{},
		"fee_assignment_school_id = ?", school.SchoolID); n != assignments {
		t.Errorf("rerun changed fee assignment count: %d -> %d", assignments, n)
	}

	// Every payment must reference an assignment of the same school.
	var orphans int64
	err = db.Raw(`SELECT COUNT(*) FROM payments p
			LEFT JOIN fee_assignments a ON a.fee_assignment_id = p.payment_fee_assignment_id
			WHERE p.payment_school_id = ?
			  AND (a.fee_assignment_id IS NULL OR a.fee_assignment_school_id <> p.payment_school_id)`,
		school.SchoolID).Scan(&orphans).Error
	if err != nil {
		t.Fatalf("check payment tenancy: %v", err)
	}
	if orphans != 0 {
		t.Errorf("%d payments reference a missing or cross-school assignment", orphans)
	}
}

func TestWipeThenReseedRestoresCounts(t *testing.T) {
	db := openTestDB(t)
	p := testProfile()

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("seed: %v", err)
	}
	school, err := tenant.FindSchool(db, p.SchoolDomain)
	if err != nil {
		t.Fatalf("find school: %v", err)
	}
	if err := wipe.WipeTenant(db, school.SchoolID); err != nil {
		t.Fatalf("wipe: %v", err)
	}
	if n := countRows(t, db, &peopleModel.StudentModel{}, "student_school_id = ?", school.SchoolID); n != 0 {
		t.Fatalf("wipe left %d students behind", n)
	}

	if err := RunAllSeeds(db, p); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	reseeded, err := tenant.FindSchool(db, p.SchoolDomain)
	if err != nil {
		t.Fatalf("find reseeded school: %v", err)
	}
	if n := countRows(t, db, &peopleModel.StudentModel{}, "student_school_id = ?", reseeded.SchoolID); n != int64(p.Students) {
		t.Fatalf("reseed produced %d students, want %d", n, p.Students)
	}
}
