package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/ledger/types"
)

func TestHandlerRoutesMessages(t *testing.T) {
	input := setupTestInput(t)
	h := NewHandler(input.k)

	res := h(input.ctx, NewMsgMint(MinterAddr, AliceAddr, sdk.NewInt(100)))
	require.True(t, res.IsOK(), res.Log)
	require.Len(t, res.Events.OfType(types.EventTypeValueMoved), 1)
	require.Len(t, res.Events.OfType(sdk.EventTypeMessage), 1)

	res = h(input.ctx, NewMsgTransfer(AliceAddr, BobAddr, sdk.NewInt(10)))
	require.True(t, res.IsOK(), res.Log)

	res = h(input.ctx, NewMsgApprove(AliceAddr, BobAddr, sdk.NewInt(5)))
	require.True(t, res.IsOK(), res.Log)
	require.Len(t, res.Events.OfType(types.EventTypeApproval), 1)

	res = h(input.ctx, NewMsgTransferFrom(BobAddr, AliceAddr, BobAddr, sdk.NewInt(6)))
	require.Equal(t, CodeInsufficientAllowance, res.Code)
	require.Equal(t, DefaultCodespace, res.Codespace)

	res = h(input.ctx, NewMsgTransferFrom(BobAddr, AliceAddr, BobAddr, sdk.NewInt(5)))
	require.True(t, res.IsOK(), res.Log)

	res = h(input.ctx, NewMsgBurn(AliceAddr, sdk.NewInt(1)))
	require.Equal(t, sdk.CodeUnauthorized, res.Code)

	require.Equal(t, "85", input.k.GetBalance(input.ctx, AliceAddr).String())
	require.Equal(t, "15", input.k.GetBalance(input.ctx, BobAddr).String())
}

func TestQuerier(t *testing.T) {
	input := setupTestInput(t)
	require.Nil(t, input.k.Mint(input.ctx, MinterAddr, AliceAddr, sdk.NewInt(42)))
	require.Nil(t, input.k.Approve(input.ctx, AliceAddr, BobAddr, sdk.NewInt(3)))
	q := NewQuerier(input.k)

	var out sdk.Int
	bz, err := q(input.ctx, []string{types.QueryBalance}, abci.RequestQuery{
		Data: input.cdc.MustMarshalJSON(types.NewQueryBalanceParams(AliceAddr)),
	})
	require.Nil(t, err)
	input.cdc.MustUnmarshalJSON(bz, &out)
	require.Equal(t, "42", out.String())

	bz, err = q(input.ctx, []string{types.QuerySupply}, abci.RequestQuery{})
	require.Nil(t, err)
	input.cdc.MustUnmarshalJSON(bz, &out)
	require.Equal(t, "42", out.String())

	bz, err = q(input.ctx, []string{types.QueryAllowance}, abci.RequestQuery{
		Data: input.cdc.MustMarshalJSON(types.NewQueryAllowanceParams(AliceAddr, BobAddr)),
	})
	require.Nil(t, err)
	input.cdc.MustUnmarshalJSON(bz, &out)
	require.Equal(t, "3", out.String())

	bz, err = q(input.ctx, []string{types.QueryParams}, abci.RequestQuery{})
	require.Nil(t, err)
	var params Params
	input.cdc.MustUnmarshalJSON(bz, &params)
	require.Equal(t, DefaultParams(), params)

	_, err = q(input.ctx, []string{"nope"}, abci.RequestQuery{})
	require.NotNil(t, err)
}
