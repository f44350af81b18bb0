package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tendermint/tendermint/crypto"
	"gopkg.in/yaml.v2"
)

// AddrLen defines a valid address length
const AddrLen = common.AddressLength

var _ yaml.Marshaler = AccAddress{}

// AccAddress is a 20 byte account identifier, rendered as a checksummed
// 0x-prefixed hex string. The empty and the all-zero address are both the
// null account.
type AccAddress []byte

// AccAddressFromHex parses a 0x-prefixed hex string. A blank input yields the
// null account without error.
func AccAddressFromHex(address string) (AccAddress, error) {
	address = strings.TrimSpace(address)
	if len(address) == 0 {
		return AccAddress{}, nil
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address: %s", address)
	}
	return AccAddress(common.HexToAddress(address).Bytes()), nil
}

// MustAccAddressFromHex panics on malformed input.
func MustAccAddressFromHex(address string) AccAddress {
	addr, err := AccAddressFromHex(address)
	if err != nil {
		panic(err)
	}
	return addr
}

// ModuleAddress derives the account owned by a module. Nobody holds a key for it.
func ModuleAddress(name string) AccAddress {
	return AccAddress(crypto.AddressHash([]byte(name)))
}

func (a AccAddress) Equals(a2 AccAddress) bool {
	if a.Empty() && a2.Empty() {
		return true
	}
	return bytes.Equal(a.Bytes(), a2.Bytes())
}

// Empty reports whether a is the null account.
func (a AccAddress) Empty() bool {
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}

// Bytes returns the raw address bytes.
func (a AccAddress) Bytes() []byte {
	return a
}

// Common converts to the go-ethereum representation used for signing.
func (a AccAddress) Common() common.Address {
	return common.BytesToAddress(a)
}

// Key returns the fixed-width form used inside store keys.
func (a AccAddress) Key() []byte {
	return a.Common().Bytes()
}

// Validate checks the length of a non-null address.
func (a AccAddress) Validate() error {
	if len(a) != 0 && len(a) != AddrLen {
		return errors.New("incorrect address length")
	}
	return nil
}

func (a AccAddress) String() string {
	if a.Empty() {
		return common.Address{}.Hex()
	}
	return a.Common().Hex()
}

// Format implements the fmt.Formatter interface.
// nolint: errcheck
func (a AccAddress) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		s.Write([]byte(a.String()))
	case 'p':
		s.Write([]byte(fmt.Sprintf("%p", a)))
	default:
		s.Write([]byte(fmt.Sprintf("%X", []byte(a))))
	}
}

// Marshal returns the raw address bytes.
func (a AccAddress) Marshal() ([]byte, error) {
	return a, nil
}

// Unmarshal sets the address to the given data.
func (a *AccAddress) Unmarshal(data []byte) error {
	*a = data
	return nil
}

// MarshalJSON marshals to JSON using hex.
func (a AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// MarshalYAML marshals to YAML using hex.
func (a AccAddress) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalJSON unmarshals from JSON assuming hex encoding.
func (a *AccAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	a2, err := AccAddressFromHex(s)
	if err != nil {
		return err
	}
	if a2.Empty() {
		*a = AccAddress{}
		return nil
	}
	*a = a2
	return nil
}

// AccAddressList is sortable by raw bytes.
type AccAddressList []AccAddress

func (l AccAddressList) Len() int           { return len(l) }
func (l AccAddressList) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
func (l AccAddressList) Less(i, j int) bool { return bytes.Compare(l[i], l[j]) == -1 }

func (l AccAddressList) Contains(target AccAddress) bool {
	for _, a := range l {
		if a.Equals(target) {
			return true
		}
	}
	return false
}

func (l AccAddressList) Join() string {
	l2 := make([]string, len(l))
	for i, a := range l {
		l2[i] = a.String()
	}
	return strings.Join(l2, ",")
}
