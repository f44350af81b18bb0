package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

// Balance is the genesis form of one account balance.
type Balance struct {
	Address sdk.AccAddress `json:"address"`
	Amount  sdk.Int        `json:"amount"`
}

// Allowance is the genesis form of one spend allowance.
type Allowance struct {
	Owner   sdk.AccAddress `json:"owner"`
	Spender sdk.AccAddress `json:"spender"`
	Amount  sdk.Int        `json:"amount"`
}

// GenesisState - ledger state at genesis. Supply is derived from balances.
type GenesisState struct {
	Params     Params      `json:"params"`
	Balances   []Balance   `json:"balances"`
	Allowances []Allowance `json:"allowances"`
}

func NewGenesisState(params Params, balances []Balance, allowances []Allowance) GenesisState {
	return GenesisState{Params: params, Balances: balances, Allowances: allowances}
}

func DefaultGenesisState() GenesisState {
	return NewGenesisState(DefaultParams(), nil, nil)
}

// ValidateGenesis rejects null holders, duplicates and a supply beyond 256 bits.
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(data.Balances))
	supply := sdk.ZeroInt()
	for _, b := range data.Balances {
		if b.Address.Empty() {
			return fmt.Errorf("null account cannot hold a balance")
		}
		if err := b.Address.Validate(); err != nil {
			return fmt.Errorf("balance of %s: %v", b.Address, err)
		}
		if seen[b.Address.String()] {
			return fmt.Errorf("duplicate balance for %s", b.Address)
		}
		seen[b.Address.String()] = true
		if b.Amount.IsNegative() {
			return fmt.Errorf("negative balance for %s", b.Address)
		}
		var ok bool
		if supply, ok = supply.SafeAdd(b.Amount); !ok {
			return fmt.Errorf("total supply exceeds 256 bits")
		}
	}

	for _, a := range data.Allowances {
		if a.Owner.Empty() || a.Spender.Empty() {
			return fmt.Errorf("allowance with null owner or spender")
		}
		if a.Amount.IsNegative() {
			return fmt.Errorf("negative allowance %s -> %s", a.Owner, a.Spender)
		}
	}
	return nil
}
