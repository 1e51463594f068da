package constants

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

// WriterRoles may create, update and delete catalog/scheduling data.
var WriterRoles = []string{RoleAdmin, RoleManager}

func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
