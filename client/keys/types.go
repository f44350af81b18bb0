package keys

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

// KeyOutput is the printable form of a stored key.
type KeyOutput struct {
	Name     string         `json:"name" yaml:"name"`
	Address  sdk.AccAddress `json:"address" yaml:"address"`
	Mnemonic string         `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`
}

// NewKeyOutput builds a KeyOutput from stored key info.
func NewKeyOutput(info Info) KeyOutput {
	return KeyOutput{Name: info.Name, Address: info.Address}
}

func (ko KeyOutput) String() string {
	return fmt.Sprintf("%s\t%s", ko.Name, ko.Address)
}

// KeyOutputs renders several keys.
type KeyOutputs []KeyOutput

func NewKeyOutputs(infos []Info) KeyOutputs {
	out := make(KeyOutputs, len(infos))
	for i, info := range infos {
		out[i] = NewKeyOutput(info)
	}
	return out
}
