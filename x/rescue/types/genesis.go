package types

import (
	"fmt"
)

// GenesisState - custody records at genesis
type GenesisState struct {
	Holdings []Holding `json:"holdings"`
}

func NewGenesisState(holdings []Holding) GenesisState {
	return GenesisState{Holdings: holdings}
}

func DefaultGenesisState() GenesisState {
	return NewGenesisState(nil)
}

func ValidateGenesis(data GenesisState) error {
	seen := make(map[string]bool)
	for _, h := range data.Holdings {
		if err := ValidateAssetID(h.Asset); err != nil {
			return err
		}
		if h.Holder.Empty() {
			return fmt.Errorf("holding of %s has a null holder", h.Asset)
		}
		if err := h.Holder.Validate(); err != nil {
			return err
		}
		if h.Amount.IsNegative() {
			return fmt.Errorf("negative holding %s", h)
		}
		k := h.Asset + "/" + h.Holder.String()
		if seen[k] {
			return fmt.Errorf("duplicate holding of %s for %s", h.Asset, h.Holder)
		}
		seen[k] = true
	}
	return nil
}
