package types

import (
	sdk "github.com/hbtc-chain/govledger/types"
)

// QueryCustodyParams selects one custody record.
type QueryCustodyParams struct {
	Asset  string         `json:"asset"`
	Holder sdk.AccAddress `json:"holder"`
}

func NewQueryCustodyParams(asset string, holder sdk.AccAddress) QueryCustodyParams {
	return QueryCustodyParams{Asset: asset, Holder: holder}
}
