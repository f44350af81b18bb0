package types

import (
	abci "github.com/tendermint/tendermint/abci/types"
)

// Msg is a single state transition request. The signer is always the
// first address returned by GetSigners.
type Msg interface {

	// Return the message type.
	// Must be alphanumeric or empty.
	Route() string

	// Returns a human-readable string for the message, intended for utilization
	// within tags
	Type() string

	// ValidateBasic does a simple validation check that
	// doesn't require access to any other information.
	ValidateBasic() Error

	// Get the canonical byte representation of the Msg.
	GetSignBytes() []byte

	// Signers returns the addrs of signers that must sign.
	// CONTRACT: All signatures must be present to be valid.
	// CONTRACT: Returns addrs in some deterministic order.
	GetSigners() []AccAddress
}

// Handler defines the core of the state transition function of an application.
type Handler func(ctx Context, msg Msg) Result

// Querier answers read-only requests against committed state. path excludes
// the "custom/<route>" prefix.
type Querier func(ctx Context, path []string, req abci.RequestQuery) ([]byte, Error)
