package constants

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

var AllowedRoles = []string{RoleStudent, RoleAdmin}
