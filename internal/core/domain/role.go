package domain

// Role is the closed set of user privilege levels.
type Role string

const (
	RoleJunior Role = "Junior"
	RoleSenior Role = "Senior"
	RoleAdmin  Role = "Admin"
)

// Roles lists every role value, in seeding order.
var Roles = []Role{RoleJunior, RoleSenior, RoleAdmin}

// ParseRole validates a raw role value. An empty input defaults to Junior.
func ParseRole(raw string) (Role, error) {
	if raw == "" {
		return RoleJunior, nil
	}
	for _, r := range Roles {
		if raw == string(r) {
			return r, nil
		}
	}
	return "", NewValidationError("Role must be one of Junior, Senior or Admin")
}
