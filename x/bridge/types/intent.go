package types

import (
	"encoding/json"
	"fmt"
	"strings"

	uuid "github.com/satori/go.uuid"

	sdk "github.com/hbtc-chain/govledger/types"
)

// IntentNamespace scopes the name-based intent IDs.
var IntentNamespace = uuid.NewV5(uuid.NamespaceOID, "govledger/bridge/intent")

// Intent announces a ledger-side transfer that should be credited to
// ExternalAddress on the other side of the bridge.
type Intent struct {
	ID              string         `json:"id" yaml:"id"`
	Sequence        uint64         `json:"sequence" yaml:"sequence"`
	Sender          sdk.AccAddress `json:"sender" yaml:"sender"`
	Operator        sdk.AccAddress `json:"operator" yaml:"operator"`
	Destination     sdk.AccAddress `json:"destination" yaml:"destination"`
	Amount          sdk.Int        `json:"amount" yaml:"amount"`
	ExternalAddress string         `json:"external_address" yaml:"external_address"`
	ChainID         string         `json:"chain_id" yaml:"chain_id"`
	Height          int64          `json:"height" yaml:"height"`
	Hash            string         `json:"hash" yaml:"hash"`
}

// NewIntent builds an intent and derives its ID and hash.
func NewIntent(sequence uint64, sender, operator, destination sdk.AccAddress, amount sdk.Int,
	external, chainID string, height int64) Intent {
	in := Intent{
		Sequence:        sequence,
		Sender:          sender,
		Operator:        operator,
		Destination:     destination,
		Amount:          amount,
		ExternalAddress: external,
		ChainID:         chainID,
		Height:          height,
	}
	in.ID = uuid.NewV5(IntentNamespace, in.idName()).String()
	in.Hash = in.ComputeHash().String()
	return in
}

// idName joins the fields the intent ID is derived from.
func (in Intent) idName() string {
	return strings.Join([]string{
		in.ChainID,
		in.Sender.String(),
		in.Destination.String(),
		in.Amount.String(),
		in.ExternalAddress,
		fmt.Sprintf("%d", in.Height),
		fmt.Sprintf("%d", in.Sequence),
	}, "/")
}

// SignBytes is the canonical JSON of every field but the hash.
func (in Intent) SignBytes() []byte {
	in.Hash = ""
	bz, err := json.Marshal(in)
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(bz)
}

// ComputeHash returns the sha3-256 digest of SignBytes.
func (in Intent) ComputeHash() sdk.Hash {
	return sdk.BytesToHash(in.SignBytes())
}

func (in Intent) String() string {
	return fmt.Sprintf(`Intent %s:
  Sequence:    %d
  Sender:      %s
  Operator:    %s
  Destination: %s
  Amount:      %s
  External:    %s
  Height:      %d
  Hash:        %s`, in.ID, in.Sequence, in.Sender, in.Operator, in.Destination, in.Amount,
		in.ExternalAddress, in.Height, in.Hash)
}

// ValidateExternalAddress checks the foreign address carried by an intent.
func ValidateExternalAddress(external string) sdk.Error {
	if strings.TrimSpace(external) == "" {
		return ErrInvalidExternal(DefaultCodespace, "empty")
	}
	if len(external) > MaxExternalAddressLength {
		return ErrInvalidExternal(DefaultCodespace, fmt.Sprintf("longer than %d bytes", MaxExternalAddressLength))
	}
	return nil
}
