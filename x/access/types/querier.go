package types

import (
	"fmt"
	"strings"

	sdk "github.com/hbtc-chain/govledger/types"
)

// QueryRoleParams selects a role.
type QueryRoleParams struct {
	Role Role `json:"role"`
}

// QueryHasRoleParams selects a membership.
type QueryHasRoleParams struct {
	Role    Role           `json:"role"`
	Account sdk.AccAddress `json:"account"`
}

// QueryResRole describes a role.
type QueryResRole struct {
	Role    Role             `json:"role"`
	Admin   Role             `json:"admin"`
	Members []sdk.AccAddress `json:"members"`
}

func (r QueryResRole) String() string {
	members := make([]string, len(r.Members))
	for i, m := range r.Members {
		members[i] = m.String()
	}
	return fmt.Sprintf("Role: %s\nAdmin: %s\nMembers: %s", r.Role, r.Admin, strings.Join(members, ","))
}
