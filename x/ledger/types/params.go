package types

import (
	"fmt"
	"strings"
)

// Params is the descriptive metadata of the ledger unit.
type Params struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

func NewParams(name, symbol string, decimals uint8) Params {
	return Params{Name: name, Symbol: symbol, Decimals: decimals}
}

func DefaultParams() Params {
	return NewParams("Governance Ledger", "GOV", 18)
}

func (p Params) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("ledger name cannot be blank")
	}
	if strings.TrimSpace(p.Symbol) == "" {
		return fmt.Errorf("ledger symbol cannot be blank")
	}
	if p.Decimals > 77 {
		return fmt.Errorf("decimals %d does not fit a 256 bit amount", p.Decimals)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf(`Ledger Params:
  Name:     %s
  Symbol:   %s
  Decimals: %d`, p.Name, p.Symbol, p.Decimals)
}
