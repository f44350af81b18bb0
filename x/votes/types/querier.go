package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

// QueryPriorVotesParams selects the power of Account at a past block.
type QueryPriorVotesParams struct {
	Account sdk.AccAddress `json:"account"`
	Block   uint64         `json:"block"`
}

func NewQueryPriorVotesParams(account sdk.AccAddress, block uint64) QueryPriorVotesParams {
	return QueryPriorVotesParams{Account: account, Block: block}
}

// QueryAccountParams selects an account.
type QueryAccountParams struct {
	Account sdk.AccAddress `json:"account"`
}

func NewQueryAccountParams(account sdk.AccAddress) QueryAccountParams {
	return QueryAccountParams{Account: account}
}
