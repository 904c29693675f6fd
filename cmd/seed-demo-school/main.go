// file: cmd/seed-demo-school/main.go
//
// Seeds the default demo tenant. Safe to rerun; every step is idempotent.
//
// The connection comes from DB_USER, DB_PASSWORD, DB_HOST, DB_PORT and
// DB_NAME (plus optional DB_SSLMODE), read from the environment or .env:
//
//	DB_HOST=localhost DB_PORT=5432 DB_NAME=schoolku \
//	DB_USER=postgres DB_PASSWORD=postgres go run ./cmd/seed-demo-school
//
// Pass a JSON profile path to seed a custom tenant instead:
//
//	go run ./cmd/seed-demo-school ./profiles/my-school.json
package main

import (
	"log"
	"os"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/databases"
	"schoolku_backend/internals/seeds"
	"schoolku_backend/internals/seeds/profile"
)

func main() {
	configs.LoadEnv()
	databases.ConnectDB()
	databases.TunePool()
	if err := databases.MigrateAll(databases.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	p := profile.Demo()
	if len(os.Args) > 1 {
		loaded, err := profile.LoadProfile(os.Args[1])
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		p = loaded
	}

	if err := seeds.RunAllSeeds(databases.DB, p); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
