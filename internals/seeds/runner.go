// file: internals/seeds/runner.go
package seeds

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"schoolku_backend/internals/seeds/admissions"
	"schoolku_backend/internals/seeds/calendar"
	"schoolku_backend/internals/seeds/classes"
	"schoolku_backend/internals/seeds/curriculum"
	"schoolku_backend/internals/seeds/exams"
	"schoolku_backend/internals/seeds/fees"
	"schoolku_backend/internals/seeds/identity"
	"schoolku_backend/internals/seeds/library"
	"schoolku_backend/internals/seeds/lms"
	"schoolku_backend/internals/seeds/namegen"
	"schoolku_backend/internals/seeds/people"
	"schoolku_backend/internals/seeds/profile"
	"schoolku_backend/internals/seeds/qbank"
	"schoolku_backend/internals/seeds/tenant"
)

// RunAllSeeds runs the full tenant seed pipeline in dependency order.
// Every step is idempotent, so rerunning against a seeded database is a
// no-op. The first error aborts the run; partial state is fine because
// a rerun resumes from existing rows.
func RunAllSeeds(db *gorm.DB, p *profile.TenantProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	log.Printf("🚀 Seeding tenant %q (%s)...", p.SchoolName, p.SchoolDomain)

	gen := namegen.New(p.RandomSeed)

	school, err := tenant.EnsureSchool(db, p)
	if err != nil {
		return fmt.Errorf("tenant: %w", err)
	}

	accounts, err := identity.SeedCoreAccounts(db, school.SchoolID, p)
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	cal, err := calendar.SeedCalendar(db, school.SchoolID, p)
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}

	cur, err := curriculum.SeedCurriculum(db, school.SchoolID)
	if err != nil {
		return fmt.Errorf("curriculum: %w", err)
	}

	graph, err := people.SeedPeople(db, school.SchoolID, p, gen, accounts.PasswordHash)
	if err != nil {
		return fmt.Errorf("people: %w", err)
	}

	term := &cal.Terms[0]
	sections, err := classes.SeedClasses(db, school.SchoolID, term, cal.Periods, cur.CoreSubjects, cur.Classrooms, graph, p, gen)
	if err != nil {
		return fmt.Errorf("classes: %w", err)
	}

	if err := exams.SeedExams(db, school.SchoolID, term, sections, gen); err != nil {
		return fmt.Errorf("exams: %w", err)
	}

	if err := fees.SeedFees(db, school.SchoolID, graph.Students, p, gen); err != nil {
		return fmt.Errorf("fees: %w", err)
	}

	if err := library.SeedLibrary(db, school.SchoolID, graph.Students, p.Books, gen); err != nil {
		return fmt.Errorf("library: %w", err)
	}

	if err := admissions.SeedAdmissions(db, school.SchoolID, p, gen); err != nil {
		return fmt.Errorf("admissions: %w", err)
	}

	if err := lms.SeedLMS(db, school.SchoolID, cur.CoreSubjects, graph.Teachers, p); err != nil {
		return fmt.Errorf("lms: %w", err)
	}

	if err := qbank.SeedBuiltinQuestions(db, school.SchoolID, cur.Subjects); err != nil {
		return fmt.Errorf("qbank: %w", err)
	}

	log.Println("✅ =========================================")
	log.Printf("✅ Tenant %q is ready", p.SchoolName)
	log.Printf("✅   teachers : %d", len(graph.Teachers))
	log.Printf("✅   students : %d", len(graph.Students))
	log.Printf("✅   sections : %d", len(sections))
	log.Printf("✅   login    : %s / %s", accounts.AdminEmail, p.DemoPassword)
	log.Println("✅ =========================================")
	return nil
}
