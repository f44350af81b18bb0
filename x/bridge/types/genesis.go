package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

// GenesisState - bridge registry and recorded intents at genesis
type GenesisState struct {
	ApprovedBridges   []sdk.AccAddress `json:"approved_bridges"`
	MaxTransferAmount sdk.Int          `json:"max_transfer_amount"`
	Intents           []Intent         `json:"intents"`
}

func NewGenesisState(approved []sdk.AccAddress, max sdk.Int, intents []Intent) GenesisState {
	return GenesisState{ApprovedBridges: approved, MaxTransferAmount: max, Intents: intents}
}

// DefaultGenesisState approves nothing and allows no amount.
func DefaultGenesisState() GenesisState {
	return NewGenesisState(nil, sdk.ZeroInt(), nil)
}

func ValidateGenesis(data GenesisState) error {
	for _, addr := range data.ApprovedBridges {
		if addr.Empty() {
			return fmt.Errorf("null account cannot be an approved bridge")
		}
		if err := addr.Validate(); err != nil {
			return err
		}
	}
	if data.MaxTransferAmount.IsNegative() {
		return fmt.Errorf("negative max transfer amount %s", data.MaxTransferAmount)
	}
	seen := make(map[uint64]bool)
	for _, in := range data.Intents {
		if seen[in.Sequence] {
			return fmt.Errorf("duplicate intent sequence %d", in.Sequence)
		}
		seen[in.Sequence] = true
		if in.ComputeHash().String() != in.Hash {
			return fmt.Errorf("intent %s hash mismatch", in.ID)
		}
	}
	return nil
}
