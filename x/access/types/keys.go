package types

const (
	// module name
	ModuleName = "access"

	// StoreKey to be used when creating the KVStore
	StoreKey = ModuleName

	// RouterKey is the message route for access
	RouterKey = ModuleName

	// QuerierRoute is the querier route for access
	QuerierRoute = ModuleName

	QueryRole    = "role"
	QueryHasRole = "has_role"
	QueryPaused  = "paused"
	QueryAdmins  = "admins"
)

var (
	RoleMemberKeyPrefix = []byte{0x01}
	RoleAdminKeyPrefix  = []byte{0x02}
	PausedKey           = []byte{0x03}
)

// RoleMembersPrefix covers every member of role.
func RoleMembersPrefix(role Role) []byte {
	return append(append([]byte{}, RoleMemberKeyPrefix...), byte(role))
}

// RoleMemberKey : 0x01 | role | address
func RoleMemberKey(role Role, addr []byte) []byte {
	return append(RoleMembersPrefix(role), addr...)
}

// RoleAdminKey : 0x02 | role
func RoleAdminKey(role Role) []byte {
	return append(append([]byte{}, RoleAdminKeyPrefix...), byte(role))
}
