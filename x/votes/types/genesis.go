package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

// Delegation is the genesis form of one delegate pointer.
type Delegation struct {
	Delegator sdk.AccAddress `json:"delegator"`
	Delegatee sdk.AccAddress `json:"delegatee"`
}

// AccountCheckpoints is the genesis form of one account history.
type AccountCheckpoints struct {
	Account     sdk.AccAddress `json:"account"`
	Checkpoints Checkpoints    `json:"checkpoints"`
}

// Nonce is the genesis form of one signature counter.
type Nonce struct {
	Account sdk.AccAddress `json:"account"`
	Nonce   uint64         `json:"nonce"`
}

// GenesisState - votes state at genesis. BaseHeight is the last block marker
// of the exported chain; imported markers must not exceed it.
type GenesisState struct {
	Params      Params               `json:"params"`
	BaseHeight  uint64               `json:"base_height"`
	Delegations []Delegation         `json:"delegations"`
	Checkpoints []AccountCheckpoints `json:"checkpoints"`
	Nonces      []Nonce              `json:"nonces"`
}

func NewGenesisState(params Params, delegations []Delegation, checkpoints []AccountCheckpoints, nonces []Nonce) GenesisState {
	return GenesisState{
		Params:      params,
		Delegations: delegations,
		Checkpoints: checkpoints,
		Nonces:      nonces,
	}
}

func DefaultGenesisState() GenesisState {
	return NewGenesisState(DefaultParams(), nil, nil, nil)
}

// ValidateGenesis rejects null delegates, duplicate entries, unordered
// histories and markers past the base height.
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, d := range data.Delegations {
		if d.Delegator.Empty() || d.Delegatee.Empty() {
			return fmt.Errorf("delegation with null delegator or delegatee")
		}
		if seen[d.Delegator.String()] {
			return fmt.Errorf("duplicate delegation for %s", d.Delegator)
		}
		seen[d.Delegator.String()] = true
	}

	seen = make(map[string]bool)
	for _, c := range data.Checkpoints {
		if c.Account.Empty() {
			return fmt.Errorf("checkpoints for the null account")
		}
		if seen[c.Account.String()] {
			return fmt.Errorf("duplicate checkpoints for %s", c.Account)
		}
		seen[c.Account.String()] = true
		if err := c.Checkpoints.Validate(); err != nil {
			return fmt.Errorf("checkpoints of %s: %v", c.Account, err)
		}
		if n := len(c.Checkpoints); n > 0 && c.Checkpoints[n-1].FromBlock > data.BaseHeight {
			return fmt.Errorf("checkpoints of %s: block %d is past the base height %d",
				c.Account, c.Checkpoints[n-1].FromBlock, data.BaseHeight)
		}
	}

	seen = make(map[string]bool)
	for _, n := range data.Nonces {
		if seen[n.Account.String()] {
			return fmt.Errorf("duplicate nonce for %s", n.Account)
		}
		seen[n.Account.String()] = true
	}
	return nil
}
