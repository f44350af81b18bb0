package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is a closed set of capabilities.
type Role byte

const (
	RoleDefaultAdmin Role = 0x01
	RoleMinter       Role = 0x02
	RoleBurner       Role = 0x03
	RolePauser       Role = 0x04
	RoleBridge       Role = 0x05
	RoleRescuer      Role = 0x06
)

// AllRoles lists every role in declaration order.
var AllRoles = []Role{RoleDefaultAdmin, RoleMinter, RoleBurner, RolePauser, RoleBridge, RoleRescuer}

var roleNames = map[Role]string{
	RoleDefaultAdmin: "default_admin",
	RoleMinter:       "minter",
	RoleBurner:       "burner",
	RolePauser:       "pauser",
	RoleBridge:       "bridge",
	RoleRescuer:      "rescuer",
}

// RoleFromString parses the lower-case name of a role.
func RoleFromString(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", byte(r))
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("unknown role %d", byte(r))
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	role, err := RoleFromString(s)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

func (r Role) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// RoleAdmin is one row of the admin-of table.
type RoleAdmin struct {
	Role  Role `json:"role"`
	Admin Role `json:"admin"`
}

// DefaultRoleAdmins makes the default admin role administer every role,
// itself included.
func DefaultRoleAdmins() []RoleAdmin {
	admins := make([]RoleAdmin, 0, len(AllRoles))
	for _, r := range AllRoles {
		admins = append(admins, RoleAdmin{Role: r, Admin: RoleDefaultAdmin})
	}
	return admins
}

// ValidateRoleAdmins checks that the table names every role exactly once and
// only refers to known roles.
func ValidateRoleAdmins(admins []RoleAdmin) error {
	seen := make(map[Role]bool, len(admins))
	for _, ra := range admins {
		if !ra.Role.IsValid() {
			return fmt.Errorf("unknown role %d in admin table", byte(ra.Role))
		}
		if !ra.Admin.IsValid() {
			return fmt.Errorf("role %s has unknown admin role %d", ra.Role, byte(ra.Admin))
		}
		if seen[ra.Role] {
			return fmt.Errorf("role %s appears twice in admin table", ra.Role)
		}
		seen[ra.Role] = true
	}
	for _, r := range AllRoles {
		if !seen[r] {
			return fmt.Errorf("role %s has no admin", r)
		}
	}
	return nil
}
