package access

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

// InitGenesis writes the admin table, memberships and pause flag.
func InitGenesis(ctx sdk.Context, k Keeper, data GenesisState) {
	for _, ra := range data.RoleAdmins {
		k.setRoleAdmin(ctx, ra.Role, ra.Admin)
	}
	for _, m := range data.Members {
		k.setMember(ctx, m.Role, m.Account, true)
	}
	k.setPaused(ctx, data.Paused)
}

// ExportGenesis returns the current role tables.
func ExportGenesis(ctx sdk.Context, k Keeper) GenesisState {
	var (
		admins  []RoleAdmin
		members []RoleMember
	)
	for _, role := range AllRoles {
		admins = append(admins, RoleAdmin{Role: role, Admin: k.GetRoleAdmin(ctx, role)})
		for _, acc := range k.GetRoleMembers(ctx, role) {
			members = append(members, RoleMember{Role: role, Account: acc})
		}
	}
	return NewGenesisState(admins, members, k.IsPaused(ctx))
}
