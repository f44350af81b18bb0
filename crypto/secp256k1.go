// Package crypto holds the secp256k1 signing rules shared by transaction
// authentication and signed delegations.
package crypto

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	sdk "github.com/hbtc-chain/govledger/types"
)

// SignatureLength is the [R || S || V] layout.
const SignatureLength = 65

var (
	ErrSignatureLength = errors.New("signature must be 65 bytes")
	ErrRecoveryID      = errors.New("invalid signature recovery id")
	ErrMalleable       = errors.New("signature s value is in the upper half of the curve order")

	secp256k1N     = ethcrypto.S256().Params().N
	secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)
)

// Keccak256 hashes the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	return ethcrypto.Keccak256(data...)
}

// GenerateKey creates a fresh secp256k1 key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

// PubkeyToAddress derives the account controlled by a key.
func PubkeyToAddress(pub ecdsa.PublicKey) sdk.AccAddress {
	return sdk.AccAddress(ethcrypto.PubkeyToAddress(pub).Bytes())
}

// Sign produces a [R || S || V] signature with V in {27, 28}.
func Sign(hash []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := ethcrypto.Sign(hash, key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// RecoverAddress returns the account that signed hash. V may be 0/1 or 27/28;
// signatures with a high S value are rejected.
func RecoverAddress(hash, sig []byte) (sdk.AccAddress, error) {
	if len(sig) != SignatureLength {
		return nil, ErrSignatureLength
	}
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	if normalized[64] > 1 {
		return nil, ErrRecoveryID
	}

	r := new(big.Int).SetBytes(normalized[:32])
	s := new(big.Int).SetBytes(normalized[32:64])
	if s.Cmp(secp256k1HalfN) > 0 {
		return nil, ErrMalleable
	}
	if !ethcrypto.ValidateSignatureValues(normalized[64], r, s, true) {
		return nil, ErrRecoveryID
	}

	pub, err := ethcrypto.SigToPub(hash, normalized)
	if err != nil {
		return nil, err
	}
	return PubkeyToAddress(*pub), nil
}
