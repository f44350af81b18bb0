package access

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/govledger/codec"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access/types"
)

// Keeper owns role membership, the admin-of table and the pause flag.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) Codespace() sdk.CodespaceType {
	return k.codespace
}

func (k Keeper) HasRole(ctx sdk.Context, role Role, account sdk.AccAddress) bool {
	if account.Empty() {
		return false
	}
	return ctx.KVStore(k.storeKey).Has(types.RoleMemberKey(role, account.Key()))
}

// AssertRole fails with Unauthorized unless account holds role.
func (k Keeper) AssertRole(ctx sdk.Context, role Role, account sdk.AccAddress) sdk.Error {
	if !role.IsValid() {
		return types.ErrInvalidRole(k.codespace, role)
	}
	if !k.HasRole(ctx, role, account) {
		return types.ErrMissingRole(account, role)
	}
	return nil
}

// GetRoleAdmin returns the role allowed to grant and revoke role.
func (k Keeper) GetRoleAdmin(ctx sdk.Context, role Role) Role {
	bz := ctx.KVStore(k.storeKey).Get(types.RoleAdminKey(role))
	if len(bz) != 1 {
		return RoleDefaultAdmin
	}
	return Role(bz[0])
}

func (k Keeper) setRoleAdmin(ctx sdk.Context, role, admin Role) {
	ctx.KVStore(k.storeKey).Set(types.RoleAdminKey(role), []byte{byte(admin)})
}

// GetRoleMembers returns the members of role in address order.
func (k Keeper) GetRoleMembers(ctx sdk.Context, role Role) []sdk.AccAddress {
	prefix := types.RoleMembersPrefix(role)
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), prefix)
	defer iter.Close()

	var members []sdk.AccAddress
	for ; iter.Valid(); iter.Next() {
		members = append(members, sdk.AccAddress(append([]byte{}, iter.Key()[len(prefix):]...)))
	}
	return members
}

// setMember returns false when nothing changed.
func (k Keeper) setMember(ctx sdk.Context, role Role, account sdk.AccAddress, member bool) bool {
	store := ctx.KVStore(k.storeKey)
	key := types.RoleMemberKey(role, account.Key())
	if store.Has(key) == member {
		return false
	}
	if member {
		store.Set(key, []byte{0x01})
	} else {
		store.Delete(key)
	}
	return true
}

func (k Keeper) assertAdminOf(ctx sdk.Context, role Role, caller sdk.AccAddress) sdk.Error {
	if !role.IsValid() {
		return types.ErrInvalidRole(k.codespace, role)
	}
	admin := k.GetRoleAdmin(ctx, role)
	if !k.HasRole(ctx, admin, caller) {
		return types.ErrMissingRole(caller, admin)
	}
	return nil
}

// GrantRole adds account to role. Granting a held role is a no-op.
func (k Keeper) GrantRole(ctx sdk.Context, caller sdk.AccAddress, role Role, account sdk.AccAddress) sdk.Error {
	if err := k.assertAdminOf(ctx, role, caller); err != nil {
		return err
	}
	if account.Empty() {
		return sdk.ErrInvalidAddress("cannot grant a role to the null account")
	}
	if !k.setMember(ctx, role, account, true) {
		return nil
	}

	k.Logger(ctx).Info("role granted", "role", role, "account", account, "actor", caller)
	ctx.EventManager().EmitEvent(newRoleEvent(types.EventTypeRoleGranted, role, account, caller))
	return nil
}

// RevokeRole removes account from role. Revoking an absent role is a no-op.
func (k Keeper) RevokeRole(ctx sdk.Context, caller sdk.AccAddress, role Role, account sdk.AccAddress) sdk.Error {
	if err := k.assertAdminOf(ctx, role, caller); err != nil {
		return err
	}
	if !k.setMember(ctx, role, account, false) {
		return nil
	}

	k.Logger(ctx).Info("role revoked", "role", role, "account", account, "actor", caller)
	ctx.EventManager().EmitEvent(newRoleEvent(types.EventTypeRoleRevoked, role, account, caller))
	return nil
}

// RenounceRole lets an account drop its own role.
func (k Keeper) RenounceRole(ctx sdk.Context, caller sdk.AccAddress, role Role, account sdk.AccAddress) sdk.Error {
	if !role.IsValid() {
		return types.ErrInvalidRole(k.codespace, role)
	}
	if !caller.Equals(account) {
		return sdk.ErrUnauthorized("can only renounce roles for self")
	}
	if !k.setMember(ctx, role, account, false) {
		return nil
	}

	k.Logger(ctx).Info("role renounced", "role", role, "account", account)
	ctx.EventManager().EmitEvent(newRoleEvent(types.EventTypeRoleRenounced, role, account, caller))
	return nil
}

func newRoleEvent(ty string, role Role, account, actor sdk.AccAddress) sdk.Event {
	return sdk.NewEvent(
		ty,
		sdk.NewAttribute(types.AttributeKeyRole, role.String()),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyActor, actor.String()),
	)
}

func (k Keeper) IsPaused(ctx sdk.Context) bool {
	bz := ctx.KVStore(k.storeKey).Get(types.PausedKey)
	return len(bz) == 1 && bz[0] == 0x01
}

func (k Keeper) setPaused(ctx sdk.Context, paused bool) {
	v := byte(0x00)
	if paused {
		v = 0x01
	}
	ctx.KVStore(k.storeKey).Set(types.PausedKey, []byte{v})
}

// AssertNotPaused fails with Halted while the ledger is paused.
func (k Keeper) AssertNotPaused(ctx sdk.Context) sdk.Error {
	if k.IsPaused(ctx) {
		return types.ErrHalted(k.codespace)
	}
	return nil
}

// Pause halts transfers. Pausing a paused ledger fails with Halted.
func (k Keeper) Pause(ctx sdk.Context, caller sdk.AccAddress) sdk.Error {
	if err := k.AssertRole(ctx, RolePauser, caller); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrHalted(k.codespace)
	}
	return k.togglePause(ctx, caller, true)
}

// Unpause resumes transfers. Unpausing a running ledger fails with NotHalted.
func (k Keeper) Unpause(ctx sdk.Context, caller sdk.AccAddress) sdk.Error {
	if err := k.AssertRole(ctx, RolePauser, caller); err != nil {
		return err
	}
	if !k.IsPaused(ctx) {
		return types.ErrNotHalted(k.codespace)
	}
	return k.togglePause(ctx, caller, false)
}

func (k Keeper) togglePause(ctx sdk.Context, caller sdk.AccAddress, paused bool) sdk.Error {
	k.setPaused(ctx, paused)
	k.Logger(ctx).Info("pause toggled", "actor", caller, "paused", paused)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePauseToggled,
			sdk.NewAttribute(types.AttributeKeyActor, caller.String()),
			sdk.NewAttribute(types.AttributeKeyPaused, fmt.Sprintf("%t", paused)),
		),
	)
	return nil
}
