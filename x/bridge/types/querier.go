package types

import (
	"fmt"
	"strings"

	sdk "github.com/hbtc-chain/govledger/types"
)

// QueryResRegistry lists the approved destinations and the amount limit.
type QueryResRegistry struct {
	ApprovedBridges   []sdk.AccAddress `json:"approved_bridges" yaml:"approved_bridges"`
	MaxTransferAmount sdk.Int          `json:"max_transfer_amount" yaml:"max_transfer_amount"`
}

func (r QueryResRegistry) String() string {
	addrs := make([]string, len(r.ApprovedBridges))
	for i, a := range r.ApprovedBridges {
		addrs[i] = a.String()
	}
	return fmt.Sprintf("Approved: [%s]\nMax transfer amount: %s", strings.Join(addrs, ", "), r.MaxTransferAmount)
}

// QueryIntentParams selects an intent by ID.
type QueryIntentParams struct {
	ID string `json:"id"`
}

// QueryIntentsParams pages through intents by sequence.
type QueryIntentsParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func NewQueryIntentsParams(page, limit int) QueryIntentsParams {
	return QueryIntentsParams{Page: page, Limit: limit}
}
