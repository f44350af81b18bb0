package types

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// MaxBitLen is the widest value an Int may hold. Balances and supply are
// unsigned 256-bit quantities.
const MaxBitLen = 256

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), MaxBitLen), big.NewInt(1))

// Int wraps big.Int with value semantics. A nil inner value reads as zero.
type Int struct {
	i *big.Int
}

func NewInt(n int64) Int {
	return Int{big.NewInt(n)}
}

func ZeroInt() Int {
	return Int{big.NewInt(0)}
}

// MaxUint256 returns 2^256 - 1.
func MaxUint256() Int {
	return Int{new(big.Int).Set(maxUint256)}
}

// NewIntFromBigInt copies i.
func NewIntFromBigInt(i *big.Int) Int {
	if i == nil {
		return ZeroInt()
	}
	return Int{new(big.Int).Set(i)}
}

// NewIntFromString parses a base-10 string.
func NewIntFromString(s string) (res Int, ok bool) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	if i.BitLen() > MaxBitLen {
		return Int{}, false
	}
	return Int{i}, true
}

// NewUintFromUint64 builds an Int from an unsigned integer.
func NewUintFromUint64(n uint64) Int {
	return Int{new(big.Int).SetUint64(n)}
}

func (i Int) get() *big.Int {
	if i.i == nil {
		return big.NewInt(0)
	}
	return i.i
}

// BigInt returns a copy of the underlying value.
func (i Int) BigInt() *big.Int {
	return new(big.Int).Set(i.get())
}

func (i Int) IsZero() bool {
	return i.get().Sign() == 0
}

func (i Int) IsNegative() bool {
	return i.get().Sign() == -1
}

func (i Int) IsPositive() bool {
	return i.get().Sign() == 1
}

func (i Int) Equal(i2 Int) bool {
	return i.get().Cmp(i2.get()) == 0
}

func (i Int) GT(i2 Int) bool {
	return i.get().Cmp(i2.get()) == 1
}

func (i Int) GTE(i2 Int) bool {
	return i.get().Cmp(i2.get()) >= 0
}

func (i Int) LT(i2 Int) bool {
	return i.get().Cmp(i2.get()) == -1
}

func (i Int) LTE(i2 Int) bool {
	return i.get().Cmp(i2.get()) <= 0
}

// Add panics when the result does not fit in 256 bits.
func (i Int) Add(i2 Int) Int {
	res, ok := i.SafeAdd(i2)
	if !ok {
		panic("Int overflow")
	}
	return res
}

// SafeAdd reports false instead of panicking on overflow.
func (i Int) SafeAdd(i2 Int) (Int, bool) {
	res := new(big.Int).Add(i.get(), i2.get())
	if res.BitLen() > MaxBitLen {
		return Int{}, false
	}
	return Int{res}, true
}

// Sub may go negative; callers check balances before subtracting.
func (i Int) Sub(i2 Int) Int {
	return Int{new(big.Int).Sub(i.get(), i2.get())}
}

func (i Int) Neg() Int {
	return Int{new(big.Int).Neg(i.get())}
}

// Uint64 panics when the value is out of range.
func (i Int) Uint64() uint64 {
	if !i.get().IsUint64() {
		panic("Uint64() out of bounds")
	}
	return i.get().Uint64()
}

func (i Int) String() string {
	return i.get().String()
}

// Format keeps %v and %s readable in log lines.
func (i Int) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, i.String())
}

// MarshalAmino encodes the value as a decimal string.
func (i Int) MarshalAmino() (string, error) {
	return i.String(), nil
}

// UnmarshalAmino decodes a decimal string.
func (i *Int) UnmarshalAmino(text string) error {
	v, ok := NewIntFromString(text)
	if !ok {
		return fmt.Errorf("invalid Int: %q", text)
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *Int) UnmarshalJSON(bz []byte) error {
	var text string
	if err := json.Unmarshal(bz, &text); err != nil {
		return err
	}
	return i.UnmarshalAmino(text)
}

// MarshalYAML renders the value as a plain decimal string.
func (i Int) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// MinInt returns the smaller of two values.
func MinInt(a, b Int) Int {
	if a.LT(b) {
		return a
	}
	return b
}
