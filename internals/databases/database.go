package databases

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	admissionsModel "schoolku_backend/internals/features/school/admissions/model"
	academicsModel "schoolku_backend/internals/features/school/academics/model"
	classesModel "schoolku_backend/internals/features/school/classes/model"
	curriculumModel "schoolku_backend/internals/features/school/curriculum/model"
	examsModel "schoolku_backend/internals/features/school/exams/model"
	feesModel "schoolku_backend/internals/features/school/fees/model"
	libraryModel "schoolku_backend/internals/features/school/library/model"
	lmsModel "schoolku_backend/internals/features/school/lms/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	qbankModel "schoolku_backend/internals/features/school/qbank/model"
	schoolModel "schoolku_backend/internals/features/schools/model"
	userModel "schoolku_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolku&options=-c statement_timeout=30000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 safe behind PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// keep within Supabase/PgBouncer limits
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AllModels lists every persisted entity in FK dependency order
// (parents before children). MigrateAll and the wipe routine both
// consume this list so schema and deletion order cannot drift apart.
func AllModels() []interface{} {
	return []interface{}{
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&academicsModel.SchoolYearModel{},
		&academicsModel.TermModel{},
		&academicsModel.PeriodModel{},
		&curriculumModel.DepartmentModel{},
		&curriculumModel.SubjectModel{},
		&curriculumModel.ClassroomTypeModel{},
		&curriculumModel.ClassroomModel{},
		&peopleModel.TeacherModel{},
		&peopleModel.StudentModel{},
		&peopleModel.GuardianModel{},
		&peopleModel.StudentGuardianModel{},
		&classesModel.ClassModel{},
		&classesModel.StudentClassModel{},
		&classesModel.AssignmentModel{},
		&classesModel.AssignmentSubmissionModel{},
		&classesModel.AttendanceModel{},
		&examsModel.ExamModel{},
		&examsModel.ExamResultModel{},
		&feesModel.FeeStructureModel{},
		&feesModel.FeeAssignmentModel{},
		&feesModel.PaymentModel{},
		&libraryModel.BookModel{},
		&libraryModel.BorrowRecordModel{},
		&admissionsModel.AdmissionCampaignModel{},
		&admissionsModel.AdmissionApplicationModel{},
		&lmsModel.StreamCourseModel{},
		&lmsModel.StreamChapterModel{},
		&lmsModel.StreamLessonModel{},
		&qbankModel.QuestionModel{},
	}
}

// MigrateAll creates/updates the demo schema. Demo tenants only;
// production schema is owned by SQL migrations in the serving app.
func MigrateAll(db *gorm.DB) error {
	log.Println("🛠  Running AutoMigrate...")
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	log.Println("✅ Schema ready.")
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
