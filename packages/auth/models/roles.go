package models

// Available roles
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// GetDefaultRoles returns the roles of a new account
func GetDefaultRoles() Roles {
	return Roles{RolePlayer}
}

// GetAllRoles returns every known role
func GetAllRoles() []string {
	return []string{
		RolePlayer,
		RoleAdmin,
	}
}
