// file: internals/features/school/academics/model/period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/dbtime"
)

// PeriodModel is a named time-of-day slot ("Period 1", 08:00–08:45) used
// to timetable class sections. Start/end are wall-clock times mapped to
// Postgres TIME columns via dbtime.Tod.
type PeriodModel struct {
	// PK & tenant
	PeriodID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:period_id" json:"period_id"`
	PeriodSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_periods_school_year_name;column:period_school_id" json:"period_school_id"`

	PeriodSchoolYearID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_periods_school_year_name;column:period_school_year_id" json:"period_school_year_id"`

	PeriodName      string     `gorm:"type:varchar(40);not null;uniqueIndex:uq_periods_school_year_name;column:period_name" json:"period_name"`
	PeriodStartTime dbtime.Tod `gorm:"type:time;not null;column:period_start_time" json:"period_start_time"`
	PeriodEndTime   dbtime.Tod `gorm:"type:time;not null;column:period_end_time" json:"period_end_time"`

	PeriodOrderIndex int `gorm:"not null;default:0;column:period_order_index" json:"period_order_index"`

	PeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:period_created_at" json:"period_created_at"`
	PeriodUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:period_updated_at" json:"period_updated_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }
