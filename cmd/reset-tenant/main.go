// file: cmd/reset-tenant/main.go
//
// Wipes one tenant's rows (children first, FK-safe order) and reseeds it:
//
//	go run ./cmd/reset-tenant <school-domain> [profile.json]
//
// Without a profile argument only the built-in demo domains can be
// reseeded; any other domain is wiped and left empty.
package main

import (
	"log"
	"os"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/databases"
	"schoolku_backend/internals/seeds"
	"schoolku_backend/internals/seeds/profile"
	"schoolku_backend/internals/seeds/tenant"
	"schoolku_backend/internals/seeds/wipe"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <school-domain> [profile.json]", os.Args[0])
	}
	domain := os.Args[1]

	configs.LoadEnv()
	databases.ConnectDB()
	databases.TunePool()
	if err := databases.MigrateAll(databases.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	school, err := tenant.FindSchool(databases.DB, domain)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := wipe.WipeTenant(databases.DB, school.SchoolID); err != nil {
		log.Fatalf("❌ Wipe failed: %v", err)
	}

	p := profileFor(domain)
	if len(os.Args) > 2 {
		loaded, err := profile.LoadProfile(os.Args[2])
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		p = loaded
	}
	if p == nil {
		log.Printf("ℹ️ No profile for domain %q, tenant wiped but not reseeded", domain)
		return
	}

	if err := seeds.RunAllSeeds(databases.DB, p); err != nil {
		log.Fatalf("❌ Reseeding failed: %v", err)
	}
}

func profileFor(domain string) *profile.TenantProfile {
	switch domain {
	case "demo":
		return profile.Demo()
	case "portsudan":
		return profile.PortSudan()
	default:
		return nil
	}
}
