package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/govledger/types"
)

// Receipt is the audit record of one delivered message: who sent which route
// and the events it emitted, in emission order.
type Receipt struct {
	Height int64            `json:"height" yaml:"height"`
	Index  uint32           `json:"index" yaml:"index"`
	Route  string           `json:"route" yaml:"route"`
	Type   string           `json:"type" yaml:"type"`
	Sender sdk.AccAddress   `json:"sender" yaml:"sender"`
	Events sdk.StringEvents `json:"events" yaml:"events"`
}

func (r Receipt) String() string {
	return fmt.Sprintf(`Receipt %d/%d:
  Route:  %s/%s
  Sender: %s
  Events:
%s`, r.Height, r.Index, r.Route, r.Type, r.Sender, r.Events)
}
