// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is an account row. user_school_id is NULL for platform-level
// accounts (developer/ops); tenant accounts are unique per (school, email).
type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Tenant (nullable → platform account)
	UserSchoolID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_users_school_email;column:user_school_id" json:"user_school_id,omitempty"`

	// Identity
	UserName  string `gorm:"type:varchar(120);not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"type:varchar(120);not null;uniqueIndex:uq_users_school_email;column:user_email" json:"user_email"`

	// Credentials (always hashed, never plaintext)
	UserPassword string `gorm:"type:text;not null;column:user_password" json:"-"`

	// Role (see constants.AllRoles)
	UserRole string `gorm:"type:varchar(24);not null;column:user_role" json:"user_role"`

	UserPhone *string `gorm:"type:varchar(32);column:user_phone" json:"user_phone,omitempty"`

	// Status & audit
	UserIsActive  bool           `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`
	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
