package calendar

import (
	"testing"

	"schoolku_backend/internals/helpers/dbtime"
)

func TestValidatePeriods(t *testing.T) {
	tod := dbtime.MustParse

	tests := []struct {
		name    string
		periods []PeriodSpec
		wantErr bool
	}{
		{
			name:    "default timetable is valid",
			periods: DefaultPeriods(),
		},
		{
			name: "back to back slots are allowed",
			periods: []PeriodSpec{
				{"P1", tod("08:00"), tod("08:45")},
				{"P2", tod("08:45"), tod("09:30")},
			},
		},
		{
			name: "overlapping slots rejected",
			periods: []PeriodSpec{
				{"P1", tod("08:00"), tod("08:45")},
				{"P2", tod("08:30"), tod("09:15")},
			},
			wantErr: true,
		},
		{
			name: "end before start rejected",
			periods: []PeriodSpec{
				{"P1", tod("09:00"), tod("08:00")},
			},
			wantErr: true,
		},
		{
			name: "zero length rejected",
			periods: []PeriodSpec{
				{"P1", tod("08:00"), tod("08:00")},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeriods(tt.periods)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePeriods() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartYearOf(t *testing.T) {
	if y, err := startYearOf("2025/2026"); err != nil || y != 2025 {
		t.Errorf("startYearOf(2025/2026) = %d, %v", y, err)
	}
	if _, err := startYearOf("next year"); err == nil {
		t.Error("startYearOf(next year) expected error")
	}
}
