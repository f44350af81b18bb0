package access

import (
	"testing"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/access/types"
)

func TestHandlerRoutesMessages(t *testing.T) {
	input := setupTestInput(t)
	h := NewHandler(input.k)

	res := h(input.ctx, NewMsgGrantRole(AdminAddr, RoleMinter, MinterAddr))
	require.True(t, res.IsOK(), res.Log)
	require.Len(t, res.Events.OfType(types.EventTypeRoleGranted), 1)
	require.Len(t, res.Events.OfType(sdk.EventTypeMessage), 1)

	res = h(input.ctx, NewMsgPause(OutsiderAddr))
	require.Equal(t, sdk.CodeUnauthorized, res.Code)

	res = h(input.ctx, NewMsgPause(PauserAddr))
	require.True(t, res.IsOK(), res.Log)
	res = h(input.ctx, NewMsgUnpause(PauserAddr))
	require.True(t, res.IsOK(), res.Log)

	res = h(input.ctx, NewMsgRenounceRole(MinterAddr, RoleMinter))
	require.True(t, res.IsOK(), res.Log)
	require.False(t, input.k.HasRole(input.ctx, RoleMinter, MinterAddr))
}

func TestQuerier(t *testing.T) {
	input := setupTestInput(t)
	q := NewQuerier(input.k)

	bz, err := q(input.ctx, []string{types.QueryRole}, abci.RequestQuery{
		Data: input.cdc.MustMarshalJSON(types.QueryRoleParams{Role: RolePauser}),
	})
	require.Nil(t, err)
	var res types.QueryResRole
	input.cdc.MustUnmarshalJSON(bz, &res)
	require.Equal(t, RoleDefaultAdmin, res.Admin)
	require.Len(t, res.Members, 1)
	require.True(t, PauserAddr.Equals(res.Members[0]))

	bz, err = q(input.ctx, []string{types.QueryHasRole}, abci.RequestQuery{
		Data: input.cdc.MustMarshalJSON(types.QueryHasRoleParams{Role: RoleDefaultAdmin, Account: AdminAddr}),
	})
	require.Nil(t, err)
	var has bool
	input.cdc.MustUnmarshalJSON(bz, &has)
	require.True(t, has)

	bz, err = q(input.ctx, []string{types.QueryPaused}, abci.RequestQuery{})
	require.Nil(t, err)
	var paused bool
	input.cdc.MustUnmarshalJSON(bz, &paused)
	require.False(t, paused)

	_, err = q(input.ctx, []string{"nope"}, abci.RequestQuery{})
	require.NotNil(t, err)
}
