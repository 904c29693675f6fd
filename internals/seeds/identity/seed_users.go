// file: internals/seeds/identity/seed_users.go
package identity

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authHelper "schoolku_backend/internals/features/users/helper"
	userModel "schoolku_backend/internals/features/users/model"
	"schoolku_backend/internals/seeds/profile"
)

// Accounts carries what downstream seeders need: the hashed shared demo
// password (hashed once, reused for every generated account) and the
// staff account emails for the final summary.
type Accounts struct {
	PasswordHash string
	AdminEmail   string
}

// SeedCoreAccounts upserts the platform developer account and the
// tenant's staff accounts (admin, accountant, staff). Role profiles for
// teachers/students are created by the people seeder after their User
// rows exist; dependency order is the call sequence, not a transaction.
func SeedCoreAccounts(db *gorm.DB, schoolID uuid.UUID, p *profile.TenantProfile) (*Accounts, error) {
	log.Println("📥 Seeding core accounts...")

	hash, err := authHelper.HashPassword(p.DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	// Platform-level account: no school id.
	if err := EnsureUser(db, nil, "Platform Developer", "dev@schoolku.io", hash, constants.RoleDeveloper); err != nil {
		return nil, err
	}

	adminEmail := "admin@" + p.SchoolDomain + ".schoolku.io"
	staff := []struct {
		name  string
		email string
		role  string
	}{
		{"School Admin", adminEmail, constants.RoleAdmin},
		{"School Accountant", "accountant@" + p.SchoolDomain + ".schoolku.io", constants.RoleAccountant},
		{"Front Office", "staff@" + p.SchoolDomain + ".schoolku.io", constants.RoleStaff},
	}
	for _, s := range staff {
		if err := EnsureUser(db, &schoolID, s.name, s.email, hash, s.role); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Core accounts ready (%d tenant staff + 1 platform)", len(staff))
	return &Accounts{PasswordHash: hash, AdminEmail: adminEmail}, nil
}

// EnsureUser upserts a User by (school, email). Existing rows are left
// untouched so reruns never rotate passwords or roles.
func EnsureUser(db *gorm.DB, schoolID *uuid.UUID, name, email, passwordHash, role string) error {
	q := db.Where("user_email = ?", email)
	if schoolID == nil {
		q = q.Where("user_school_id IS NULL")
	} else {
		q = q.Where("user_school_id = ?", *schoolID)
	}

	var existing userModel.UserModel
	err := q.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup user %s: %w", email, err)
	}

	user := userModel.UserModel{
		UserSchoolID: schoolID,
		UserName:     name,
		UserEmail:    email,
		UserPassword: passwordHash,
		UserRole:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("create user %s: %w", email, err)
	}
	return nil
}

// FindUser fetches an upserted account; used by seeders that need the
// user id to link a role profile.
func FindUser(db *gorm.DB, schoolID uuid.UUID, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.Where("user_school_id = ? AND user_email = ?", schoolID, email).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", email, err)
	}
	return &user, nil
}
