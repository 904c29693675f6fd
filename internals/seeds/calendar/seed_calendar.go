// file: internals/seeds/calendar/seed_calendar.go
package calendar

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
	"schoolku_backend/internals/helpers/dbtime"
	"schoolku_backend/internals/seeds/profile"
)

// PeriodSpec is the fixed daily timetable. Order matters; the overlap
// check below guards the list against careless edits.
type PeriodSpec struct {
	Name  string
	Start dbtime.Tod
	End   dbtime.Tod
}

func DefaultPeriods() []PeriodSpec {
	return []PeriodSpec{
		{"Period 1", dbtime.MustParse("08:00"), dbtime.MustParse("08:45")},
		{"Period 2", dbtime.MustParse("08:50"), dbtime.MustParse("09:35")},
		{"Period 3", dbtime.MustParse("09:40"), dbtime.MustParse("10:25")},
		{"Break", dbtime.MustParse("10:25"), dbtime.MustParse("10:50")},
		{"Period 4", dbtime.MustParse("10:50"), dbtime.MustParse("11:35")},
		{"Period 5", dbtime.MustParse("11:40"), dbtime.MustParse("12:25")},
		{"Period 6", dbtime.MustParse("12:30"), dbtime.MustParse("13:15")},
	}
}

// Calendar is what downstream seeders need from this step.
type Calendar struct {
	Year    *academicsModel.SchoolYearModel
	Terms   []academicsModel.TermModel
	Periods []academicsModel.PeriodModel
}

// SeedCalendar upserts the school year, the named periods and two terms.
// Before touching the DB it validates that periods do not overlap and
// the terms stay inside the year window.
func SeedCalendar(db *gorm.DB, schoolID uuid.UUID, p *profile.TenantProfile) (*Calendar, error) {
	log.Printf("📥 Seeding calendar %s...", p.AcademicYear)

	startYear, err := startYearOf(p.AcademicYear)
	if err != nil {
		return nil, err
	}
	yearStart := time.Date(startYear, time.August, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(startYear+1, time.May, 31, 0, 0, 0, 0, time.UTC)

	periods := DefaultPeriods()
	if err := ValidatePeriods(periods); err != nil {
		return nil, err
	}

	terms := []struct {
		name       string
		start, end time.Time
	}{
		{"Term 1", yearStart, time.Date(startYear, time.December, 20, 0, 0, 0, 0, time.UTC)},
		{"Term 2", time.Date(startYear+1, time.January, 10, 0, 0, 0, 0, time.UTC), yearEnd},
	}
	for i := 1; i < len(terms); i++ {
		if terms[i].start.Before(terms[i-1].end) {
			return nil, fmt.Errorf("term %q overlaps %q", terms[i].name, terms[i-1].name)
		}
	}

	year := academicsModel.SchoolYearModel{
		SchoolYearSchoolID:  schoolID,
		SchoolYearName:      p.AcademicYear,
		SchoolYearStartDate: yearStart,
		SchoolYearEndDate:   yearEnd,
	}
	if err := db.
		Where("school_year_school_id = ? AND school_year_name = ?", schoolID, p.AcademicYear).
		FirstOrCreate(&year).Error; err != nil {
		return nil, fmt.Errorf("upsert school year: %w", err)
	}

	cal := &Calendar{Year: &year}

	for i, spec := range periods {
		period := academicsModel.PeriodModel{
			PeriodSchoolID:     schoolID,
			PeriodSchoolYearID: year.SchoolYearID,
			PeriodName:         spec.Name,
			PeriodStartTime:    spec.Start,
			PeriodEndTime:      spec.End,
			PeriodOrderIndex:   i,
		}
		if err := db.
			Where("period_school_id = ? AND period_school_year_id = ? AND period_name = ?",
				schoolID, year.SchoolYearID, spec.Name).
			FirstOrCreate(&period).Error; err != nil {
			return nil, fmt.Errorf("upsert period %s: %w", spec.Name, err)
		}
		cal.Periods = append(cal.Periods, period)
	}

	for _, t := range terms {
		term := academicsModel.TermModel{
			TermSchoolID:     schoolID,
			TermSchoolYearID: year.SchoolYearID,
			TermName:         t.name,
			TermStartDate:    t.start,
			TermEndDate:      t.end,
		}
		if err := db.
			Where("term_school_id = ? AND term_school_year_id = ? AND term_name = ?",
				schoolID, year.SchoolYearID, t.name).
			FirstOrCreate(&term).Error; err != nil {
			return nil, fmt.Errorf("upsert term %s: %w", t.name, err)
		}
		cal.Terms = append(cal.Terms, term)
	}

	log.Printf("✅ Calendar ready: 1 year, %d terms, %d periods", len(cal.Terms), len(cal.Periods))
	return cal, nil
}

// ValidatePeriods rejects slots that overlap a predecessor or end before
// they start. The list must already be in chronological order.
func ValidatePeriods(periods []PeriodSpec) error {
	for i, p := range periods {
		if !p.Start.Before(p.End) {
			return fmt.Errorf("period %q ends before it starts", p.Name)
		}
		if i > 0 && p.Start.Before(periods[i-1].End) {
			return fmt.Errorf("period %q overlaps %q", p.Name, periods[i-1].Name)
		}
	}
	return nil
}

// startYearOf parses "2025/2026" → 2025.
func startYearOf(academicYear string) (int, error) {
	parts := strings.SplitN(academicYear, "/", 2)
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("academic year %q: want \"YYYY/YYYY\"", academicYear)
	}
	return y, nil
}
