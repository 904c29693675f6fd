// file: internals/seeds/wipe/wipe.go
package wipe

import (
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// parents maps each table to the tables its foreign keys reference.
// New tables must be registered here or the wipe order cannot include them.
var parents = map[string][]string{
	"schools": nil,

	"users": {"schools"},

	"school_years": {"schools"},
	"terms":        {"schools", "school_years"},
	"periods":      {"schools", "school_years"},

	"departments":     {"schools"},
	"subjects":        {"schools", "departments"},
	"classroom_types": {"schools"},
	"classrooms":      {"schools", "classroom_types"},

	"teachers":          {"schools", "users"},
	"students":          {"schools", "users"},
	"guardians":         {"schools", "users"},
	"student_guardians": {"students", "guardians"},

	"classes":                {"schools", "terms", "subjects", "teachers", "classrooms", "periods"},
	"student_classes":        {"classes", "students"},
	"assignments":            {"classes"},
	"assignment_submissions": {"assignments", "students"},
	"attendances":            {"classes", "students"},

	"exams":        {"classes", "subjects"},
	"exam_results": {"exams", "students"},

	"fee_structures":  {"schools"},
	"fee_assignments": {"students", "fee_structures"},
	"payments":        {"fee_assignments"},

	"books":          {"schools"},
	"borrow_records": {"books", "users"},

	"admission_campaigns":    {"schools"},
	"admission_applications": {"admission_campaigns"},

	"stream_courses":  {"schools", "subjects", "teachers"},
	"stream_chapters": {"stream_courses"},
	"stream_lessons":  {"stream_chapters"},

	"questions": {"schools", "subjects"},
}

// Order returns every registered table sorted children-first, so deleting
// in order never breaks a foreign key. Kahn's algorithm over the parents
// graph; ties resolve alphabetically to keep the output stable.
func Order() ([]string, error) {
	// out-degree = number of (unprocessed) children referencing the table
	children := make(map[string][]string, len(parents))
	pending := make(map[string]int, len(parents))
	for table := range parents {
		pending[table] = 0
	}
	for table, refs := range parents {
		for _, parent := range refs {
			if _, ok := parents[parent]; !ok {
				return nil, fmt.Errorf("wipe graph references unregistered table %q", parent)
			}
			children[parent] = append(children[parent], table)
			pending[parent]++
		}
	}

	ready := make([]string, 0, len(parents))
	for table, n := range pending {
		if n == 0 {
			ready = append(ready, table)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(parents))
	for len(ready) > 0 {
		table := ready[0]
		ready = ready[1:]
		order = append(order, table)

		freed := make([]string, 0, 4)
		for _, parent := range parents[table] {
			pending[parent]--
			if pending[parent] == 0 {
				freed = append(freed, parent)
			}
		}
		sort.Strings(freed)
		ready = append(ready, freed...)
	}
	if len(order) != len(parents) {
		return nil, fmt.Errorf("wipe graph has a cycle: ordered %d of %d tables", len(order), len(parents))
	}
	return order, nil
}

// WipeTenant hard-deletes every row belonging to one school, children
// first. Tables that don't exist yet (fresh database, partial migration)
// are skipped. The schools row itself goes last.
func WipeTenant(db *gorm.DB, schoolID uuid.UUID) error {
	log.Printf("🧹 Wiping tenant %s...", schoolID)

	order, err := Order()
	if err != nil {
		return err
	}

	for _, table := range order {
		if !db.Migrator().HasTable(table) {
			log.Printf("ℹ️ Table %s does not exist, skipping", table)
			continue
		}
		column, err := tenantColumn(table)
		if err != nil {
			return err
		}
		res := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, column), schoolID)
		if res.Error != nil {
			return fmt.Errorf("wipe %s: %w", table, res.Error)
		}
		if res.RowsAffected > 0 {
			log.Printf("🧹 %s: %d rows", table, res.RowsAffected)
		}
	}

	log.Println("✅ Tenant wiped")
	return nil
}

// columnPrefix maps each table to the singular prefix its columns carry.
// English pluralization is too irregular to derive ("stream_courses" must
// not become "stream_cours"), so the mapping is spelled out alongside the
// FK graph and checked against it by test.
var columnPrefix = map[string]string{
	"schools": "school",

	"users": "user",

	"school_years": "school_year",
	"terms":        "term",
	"periods":      "period",

	"departments":     "department",
	"subjects":        "subject",
	"classroom_types": "classroom_type",
	"classrooms":      "classroom",

	"teachers":          "teacher",
	"students":          "student",
	"guardians":         "guardian",
	"student_guardians": "student_guardian",

	"classes":                "class",
	"student_classes":        "student_class",
	"assignments":            "assignment",
	"assignment_submissions": "assignment_submission",
	"attendances":            "attendance",

	"exams":        "exam",
	"exam_results": "exam_result",

	"fee_structures":  "fee_structure",
	"fee_assignments": "fee_assignment",
	"payments":        "payment",

	"books":          "book",
	"borrow_records": "borrow_record",

	"admission_campaigns":    "admission_campaign",
	"admission_applications": "admission_application",

	"stream_courses":  "stream_course",
	"stream_chapters": "stream_chapter",
	"stream_lessons":  "stream_lesson",

	"questions": "question",
}

// tenantColumn returns the column scoping a table's rows to one school.
// Every table carries its own <prefix>_school_id; the schools table is
// scoped by primary key.
func tenantColumn(table string) (string, error) {
	prefix, ok := columnPrefix[table]
	if !ok {
		return "", fmt.Errorf("no column prefix registered for table %q", table)
	}
	if table == "schools" {
		return "school_id", nil
	}
	return prefix + "_school_id", nil
}
