package constants

// Role values stored on users.role
const (
	RoleSuperAdmin  = "super_admin"
	RoleSchoolAdmin = "school_admin"
	RoleAdmin       = "admin"
	RoleTeacher     = "teacher"
	RoleStudent     = "student"
	RoleParent      = "parent"
)

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleSchoolAdmin,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	AdminRoles = []string{
		RoleSuperAdmin,
		RoleSchoolAdmin,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleSuperAdmin,
		RoleSchoolAdmin,
		RoleAdmin,
		RoleTeacher,
	}

	StudentTeacherAndAbove = []string{
		RoleSuperAdmin,
		RoleSchoolAdmin,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
