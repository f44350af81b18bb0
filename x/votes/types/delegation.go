package types

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hbtc-chain/govledger/crypto"
	sdk "github.com/hbtc-chain/govledger/types"
)

var (
	// DomainTypeHash binds a delegation to one ledger instance on one chain.
	DomainTypeHash = crypto.Keccak256([]byte("EIP712Domain(string name,string version,string chainId,address verifyingContract)"))

	// DelegationTypeHash is the type of the signed delegation struct.
	DelegationTypeHash = crypto.Keccak256([]byte("Delegation(address delegatee,uint256 nonce,uint256 expiry)"))
)

// VerifyingAddress identifies the ledger instance inside the signing domain.
var VerifyingAddress = sdk.ModuleAddress(ModuleName)

// Domain is the signing domain of delegation authorizations.
type Domain struct {
	Name              string         `json:"name" yaml:"name"`
	Version           string         `json:"version" yaml:"version"`
	ChainID           string         `json:"chain_id" yaml:"chain_id"`
	VerifyingContract sdk.AccAddress `json:"verifying_contract" yaml:"verifying_contract"`
}

func NewDomain(params Params, chainID string) Domain {
	return Domain{
		Name:              params.DomainName,
		Version:           params.DomainVersion,
		ChainID:           chainID,
		VerifyingContract: VerifyingAddress,
	}
}

// Separator returns the domain separator hash.
func (d Domain) Separator() []byte {
	return crypto.Keccak256(
		DomainTypeHash,
		crypto.Keccak256([]byte(d.Name)),
		crypto.Keccak256([]byte(d.Version)),
		crypto.Keccak256([]byte(d.ChainID)),
		common.LeftPadBytes(d.VerifyingContract.Key(), 32),
	)
}

// DelegationStructHash hashes the signed fields of a delegation.
func DelegationStructHash(delegatee sdk.AccAddress, nonce, expiry uint64) []byte {
	return crypto.Keccak256(
		DelegationTypeHash,
		common.LeftPadBytes(delegatee.Key(), 32),
		common.LeftPadBytes(new(big.Int).SetUint64(nonce).Bytes(), 32),
		common.LeftPadBytes(new(big.Int).SetUint64(expiry).Bytes(), 32),
	)
}

// DelegationDigest is the hash a delegator signs: keccak(0x19 0x01 | separator | struct hash).
func (d Domain) DelegationDigest(delegatee sdk.AccAddress, nonce, expiry uint64) []byte {
	return crypto.Keccak256(
		[]byte{0x19, 0x01},
		d.Separator(),
		DelegationStructHash(delegatee, nonce, expiry),
	)
}

// SignDelegation signs a delegation to delegatee with key.
func SignDelegation(key *ecdsa.PrivateKey, d Domain, delegatee sdk.AccAddress, nonce, expiry uint64) ([]byte, error) {
	return crypto.Sign(d.DelegationDigest(delegatee, nonce, expiry), key)
}
