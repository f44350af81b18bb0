package types

import (
	"fmt"
)

type GenesisState struct {
	Receipts []Receipt `json:"receipts"`
}

func NewGenesisState(receipts []Receipt) GenesisState {
	return GenesisState{Receipts: receipts}
}

func DefaultGenesisState() GenesisState {
	return NewGenesisState(nil)
}

// ValidateGenesis requires receipts in (height, index) order without gaps
// inside a height.
func ValidateGenesis(data GenesisState) error {
	var lastHeight int64 = -1
	var next uint32
	for _, r := range data.Receipts {
		switch {
		case r.Height > lastHeight:
			lastHeight, next = r.Height, 0
		case r.Height < lastHeight:
			return fmt.Errorf("receipt at height %d follows height %d", r.Height, lastHeight)
		}
		if r.Index != next {
			return fmt.Errorf("receipt %d/%d out of order, expected index %d", r.Height, r.Index, next)
		}
		next++
	}
	return nil
}
