// file: internals/features/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel is the tenant root. Every other row carries school_id;
// school_domain is the natural key used by the provisioner.
type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	// Identity
	SchoolName   string `gorm:"type:varchar(160);not null;column:school_name" json:"school_name"`
	SchoolDomain string `gorm:"type:varchar(120);not null;uniqueIndex:uq_schools_domain;column:school_domain" json:"school_domain"`

	// Contact
	SchoolEmail   *string `gorm:"type:varchar(120);column:school_email" json:"school_email,omitempty"`
	SchoolPhone   *string `gorm:"type:varchar(32);column:school_phone" json:"school_phone,omitempty"`
	SchoolAddress *string `gorm:"type:text;column:school_address" json:"school_address,omitempty"`

	// Plan limits
	SchoolMaxStudents int `gorm:"not null;default:500;column:school_max_students" json:"school_max_students"`
	SchoolMaxTeachers int `gorm:"not null;default:50;column:school_max_teachers" json:"school_max_teachers"`

	// Status & audit
	SchoolIsActive  bool           `gorm:"not null;default:true;column:school_is_active" json:"school_is_active"`
	SchoolCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_updated_at" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
