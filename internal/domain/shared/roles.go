package shared

// Role is the caller's role as asserted by the auth collaborator. The core
// trusts the role to be validated upstream; it only applies visibility and
// gating rules keyed on it.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleWarehouse Role = "WAREHOUSE"
	RoleOutlet    Role = "OUTLET"
	RoleCourier   Role = "COURIER"
)

// IsValid checks if the role is one of the defined values
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleWarehouse, RoleOutlet, RoleCourier:
		return true
	}
	return false
}
