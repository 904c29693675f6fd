// file: internals/features/school/curriculum/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomTypeModel struct {
	// PK & tenant
	ClassroomTypeID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_type_id" json:"classroom_type_id"`
	ClassroomTypeSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classroom_types_school_name;column:classroom_type_school_id" json:"classroom_type_school_id"`

	// Example name: "Standard" | "Laboratory" | "Hall"
	ClassroomTypeName string  `gorm:"type:varchar(80);not null;uniqueIndex:uq_classroom_types_school_name;column:classroom_type_name" json:"classroom_type_name"`
	ClassroomTypeDesc *string `gorm:"type:text;column:classroom_type_desc" json:"classroom_type_desc,omitempty"`

	ClassroomTypeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:classroom_type_created_at" json:"classroom_type_created_at"`
	ClassroomTypeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:classroom_type_updated_at" json:"classroom_type_updated_at"`
	ClassroomTypeDeletedAt gorm.DeletedAt `gorm:"column:classroom_type_deleted_at;index" json:"classroom_type_deleted_at,omitempty"`
}

func (ClassroomTypeModel) TableName() string { return "classroom_types" }

type ClassroomModel struct {
	// PK & tenant
	ClassroomID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_id" json:"classroom_id"`
	ClassroomSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classrooms_school_name;column:classroom_school_id" json:"classroom_school_id"`

	ClassroomTypeID uuid.UUID `gorm:"type:uuid;not null;column:classroom_type_id" json:"classroom_type_id"`

	ClassroomName     string `gorm:"type:varchar(80);not null;uniqueIndex:uq_classrooms_school_name;column:classroom_name" json:"classroom_name"`
	ClassroomCapacity int    `gorm:"not null;default:30;column:classroom_capacity" json:"classroom_capacity"`

	ClassroomIsActive  bool           `gorm:"not null;default:true;column:classroom_is_active" json:"classroom_is_active"`
	ClassroomCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:classroom_updated_at" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
