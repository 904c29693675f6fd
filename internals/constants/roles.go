package constants

// ==========================
// ✅ Account Roles
// ==========================
const (
	RoleAdmin      = "admin"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
	RoleGuardian   = "guardian"
	RoleAccountant = "accountant"
	RoleStaff      = "staff"
	RoleDeveloper  = "developer"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleGuardian,
		RoleAccountant,
		RoleStaff,
		RoleDeveloper,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleAccountant,
		RoleStaff,
	}
)

// ==========================
// ✅ Guardian Types
// ==========================
const (
	GuardianTypeFather      = "father"
	GuardianTypeMother      = "mother"
	GuardianTypeGrandfather = "grandfather"
	GuardianTypeGrandmother = "grandmother"
	GuardianTypeUncle       = "uncle"
	GuardianTypeAunt        = "aunt"
	GuardianTypeOther       = "other"
)
