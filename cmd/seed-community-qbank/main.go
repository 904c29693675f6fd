// file: cmd/seed-community-qbank/main.go
//
// Imports a community question pack into an already-seeded tenant:
//
//	go run ./cmd/seed-community-qbank <school-domain> [pack.json]
//
// Fails fast if the tenant does not exist; seed the school first.
package main

import (
	"log"
	"os"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/databases"
	curriculumModel "schoolku_backend/internals/features/school/curriculum/model"
	"schoolku_backend/internals/seeds/qbank"
	"schoolku_backend/internals/seeds/tenant"
)

const defaultPack = "internals/seeds/qbank/data_community_questions.json"

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <school-domain> [pack.json]", os.Args[0])
	}
	domain := os.Args[1]
	pack := defaultPack
	if len(os.Args) > 2 {
		pack = os.Args[2]
	}

	configs.LoadEnv()
	databases.ConnectDB()
	databases.TunePool()

	school, err := tenant.FindSchool(databases.DB, domain)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	var subjects []curriculumModel.SubjectModel
	if err := databases.DB.
		Where("subject_school_id = ?", school.SchoolID).
		Order("subject_name asc").
		Find(&subjects).Error; err != nil {
		log.Fatalf("❌ Load subjects: %v", err)
	}
	if len(subjects) == 0 {
		log.Fatalf("❌ Tenant %q has no subjects, run the school seeder first", domain)
	}

	if err := qbank.SeedQuestionsFromJSON(databases.DB, school.SchoolID, subjects, pack); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
