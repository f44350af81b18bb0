package crypto

import (
	"crypto/ecdsa"

	bip39 "github.com/cosmos/go-bip39"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// MnemonicEntropySize is the entropy of a 24 word phrase.
const MnemonicEntropySize = 256

// NewMnemonic returns a fresh 24 word recovery phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropySize)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// KeyFromMnemonic derives the account key of a recovery phrase. The key is
// the keccak digest of the bip39 seed.
func KeyFromMnemonic(mnemonic, bip39Passphrase string) (*ecdsa.PrivateKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, bip39Passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return ethcrypto.ToECDSA(Keccak256(seed))
}
