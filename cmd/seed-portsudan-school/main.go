// file: cmd/seed-portsudan-school/main.go
//
// Seeds the Port Sudan demo tenant. The profile is the only thing that
// differs from the default demo school; the pipeline is shared.
package main

import (
	"log"

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

	if err := seeds.RunAllSeeds(databases.DB, profile.PortSudan()); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
