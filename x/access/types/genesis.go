package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

// RoleMember is one (role, account) membership.
type RoleMember struct {
	Role    Role           `json:"role"`
	Account sdk.AccAddress `json:"account"`
}

// GenesisState - access module state at genesis
type GenesisState struct {
	RoleAdmins []RoleAdmin  `json:"role_admins"`
	Members    []RoleMember `json:"members"`
	Paused     bool         `json:"paused"`
}

func NewGenesisState(admins []RoleAdmin, members []RoleMember, paused bool) GenesisState {
	return GenesisState{RoleAdmins: admins, Members: members, Paused: paused}
}

// DefaultGenesisState has the default admin table and no members.
func DefaultGenesisState() GenesisState {
	return NewGenesisState(DefaultRoleAdmins(), nil, false)
}

// ValidateGenesis validates the admin table and every membership.
func ValidateGenesis(data GenesisState) error {
	if err := ValidateRoleAdmins(data.RoleAdmins); err != nil {
		return err
	}
	for _, m := range data.Members {
		if !m.Role.IsValid() {
			return fmt.Errorf("membership of unknown role %d", byte(m.Role))
		}
		if m.Account.Empty() {
			return fmt.Errorf("null account cannot hold role %s", m.Role)
		}
		if err := m.Account.Validate(); err != nil {
			return fmt.Errorf("member of %s: %v", m.Role, err)
		}
	}
	return nil
}
