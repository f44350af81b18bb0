package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

// QueryBalanceParams selects an account.
type QueryBalanceParams struct {
	Address sdk.AccAddress `json:"address"`
}

func NewQueryBalanceParams(addr sdk.AccAddress) QueryBalanceParams {
	return QueryBalanceParams{Address: addr}
}

// QueryAllowanceParams selects an (owner, spender) pair.
type QueryAllowanceParams struct {
	Owner   sdk.AccAddress `json:"owner"`
	Spender sdk.AccAddress `json:"spender"`
}

func NewQueryAllowanceParams(owner, spender sdk.AccAddress) QueryAllowanceParams {
	return QueryAllowanceParams{Owner: owner, Spender: spender}
}
