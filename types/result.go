package types

import (
	"encoding/json"
)

// Result is the union of ResponseFormat and ResponseCheckTx.
type Result struct {
	// Code is the response code, is stored back on the chain.
	Code CodeType

	// Codespace is the string referring to the domain of an error
	Codespace CodespaceType

	// Data is any data returned from the app.
	Data []byte

	// Log contains the txs log information. NOTE: nondeterministic.
	Log string

	// Events contains a slice of Event objects that were emitted during some
	// execution.
	Events Events
}

// IsOK reports whether the result carries CodeOK.
func (res Result) IsOK() bool {
	return res.Code.IsOK()
}

// TxResponse is the JSON form of a delivered transaction returned to clients.
type TxResponse struct {
	Height    int64         `json:"height"`
	Index     uint32        `json:"index"`
	Code      CodeType      `json:"code"`
	Codespace CodespaceType `json:"codespace,omitempty"`
	Data      []byte        `json:"data,omitempty"`
	Log       string        `json:"log,omitempty"`
	Events    StringEvents  `json:"events,omitempty"`
}

// NewTxResponse wraps a Result delivered at the given height.
func NewTxResponse(height int64, index uint32, res Result) TxResponse {
	return TxResponse{
		Height:    height,
		Index:     index,
		Code:      res.Code,
		Codespace: res.Codespace,
		Data:      res.Data,
		Log:       res.Log,
		Events:    StringifyEvents(res.Events),
	}
}

func (r TxResponse) String() string {
	bz, _ := json.MarshalIndent(r, "", "  ")
	return string(bz)
}
