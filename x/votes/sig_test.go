package votes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hbtc-chain/govledger/crypto"
	sdk "github.com/hbtc-chain/govledger/types"
	"github.com/hbtc-chain/govledger/x/votes/types"
)

func TestDelegateBySig(t *testing.T) {
	input := setupTestInput(t)
	ctx, k, lk := input.ctx, input.k, input.lk

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	require.Nil(t, lk.Mint(ctx, MinterAddr, signer, sdk.NewInt(100)))

	expiry := uint64(testBlockTime.Unix() + 3600)
	sig, err := SignDelegation(key, k.Domain(ctx), BobAddr, 0, expiry)
	require.NoError(t, err)

	got, serr := k.DelegateBySig(ctx, BobAddr, 0, expiry, sig)
	require.Nil(t, serr)
	require.True(t, signer.Equals(got))
	require.True(t, k.GetDelegate(ctx, signer).Equals(BobAddr))
	require.Equal(t, uint64(1), k.GetNonce(ctx, signer))
	requireVotes(t, 100, k.GetCurrentVotes(ctx, BobAddr))

	// a consumed nonce never works again, even with a valid signature
	_, serr = k.DelegateBySig(ctx, BobAddr, 0, expiry, sig)
	require.True(t, sdk.IsErrorCode(serr, DefaultCodespace, CodeNonceMismatch))

	// skipping ahead is rejected as well
	sig, err = SignDelegation(key, k.Domain(ctx), CarolAddr, 5, expiry)
	require.NoError(t, err)
	_, serr = k.DelegateBySig(ctx, CarolAddr, 5, expiry, sig)
	require.True(t, sdk.IsErrorCode(serr, DefaultCodespace, CodeNonceMismatch))

	sig, err = SignDelegation(key, k.Domain(ctx), CarolAddr, 1, expiry)
	require.NoError(t, err)
	_, serr = k.DelegateBySig(ctx, CarolAddr, 1, expiry, sig)
	require.Nil(t, serr)
	requireVotes(t, 0, k.GetCurrentVotes(ctx, BobAddr))
	requireVotes(t, 100, k.GetCurrentVotes(ctx, CarolAddr))
	requireInvariants(t, input, ctx)
}

func TestDelegateBySigExpired(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	expiry := uint64(testBlockTime.Unix() - 1)
	sig, err := SignDelegation(key, k.Domain(ctx), BobAddr, 0, expiry)
	require.NoError(t, err)
	_, serr := k.DelegateBySig(ctx, BobAddr, 0, expiry, sig)
	require.True(t, sdk.IsErrorCode(serr, DefaultCodespace, CodeExpired))
	signer := crypto.PubkeyToAddress(key.PublicKey)
	require.Equal(t, uint64(0), k.GetNonce(ctx, signer))
	require.True(t, k.GetDelegate(ctx, signer).Empty())

	// the expiry second itself is still valid
	expiry = uint64(testBlockTime.Unix())
	sig, err = SignDelegation(key, k.Domain(ctx), BobAddr, 0, expiry)
	require.NoError(t, err)
	_, serr = k.DelegateBySig(ctx, BobAddr, 0, expiry, sig)
	require.Nil(t, serr)
}

func TestDelegateBySigInvalidSignature(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	_, serr := k.DelegateBySig(ctx, BobAddr, 0, 0, []byte{1, 2, 3})
	require.True(t, sdk.IsErrorCode(serr, DefaultCodespace, CodeInvalidSignature))

	bad := make([]byte, crypto.SignatureLength)
	bad[64] = 9
	_, serr = k.DelegateBySig(ctx, BobAddr, 0, 0, bad)
	require.True(t, sdk.IsErrorCode(serr, DefaultCodespace, CodeInvalidSignature))
}

func TestDelegationDomainSeparation(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	expiry := uint64(testBlockTime.Unix() + 60)

	// signed for another chain, the signature recovers some other account
	foreign := types.NewDomain(k.GetParams(ctx), "other-chain")
	sig, err := SignDelegation(key, foreign, BobAddr, 0, expiry)
	require.NoError(t, err)
	recovered, serr := k.DelegateBySig(ctx, BobAddr, 0, expiry, sig)
	require.Nil(t, serr)
	require.False(t, signer.Equals(recovered))
	require.True(t, k.GetDelegate(ctx, signer).Empty())

	require.NotEqual(t, foreign.Separator(), k.Domain(ctx).Separator())
	renamed := types.NewDomain(types.NewParams("Other Ledger", "1"), testChainID)
	require.NotEqual(t, renamed.Separator(), k.Domain(ctx).Separator())
}

func TestDelegationDigestIsStable(t *testing.T) {
	d := types.NewDomain(types.DefaultParams(), testChainID)
	a := d.DelegationDigest(BobAddr, 1, 2)
	require.Len(t, a, 32)
	require.Equal(t, a, d.DelegationDigest(BobAddr, 1, 2))
	require.NotEqual(t, a, d.DelegationDigest(BobAddr, 2, 2))
	require.NotEqual(t, a, d.DelegationDigest(BobAddr, 1, 3))
	require.NotEqual(t, a, d.DelegationDigest(CarolAddr, 1, 2))
}

func TestDelegateBySigBeforeEpoch(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k
	ctx = ctx.WithBlockTime(time.Unix(-100, 0).UTC())

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := SignDelegation(key, k.Domain(ctx), BobAddr, 0, 0)
	require.NoError(t, err)
	_, serr := k.DelegateBySig(ctx, BobAddr, 0, 0, sig)
	require.Nil(t, serr)
	require.Equal(t, uint64(1), k.GetNonce(ctx, signer))
	require.True(t, k.GetDelegate(ctx, signer).Equals(BobAddr))
}

func TestDelegateBySigNullDelegateeKeepsNonce(t *testing.T) {
	input := setupTestInput(t)
	ctx, k := input.ctx, input.k

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	expiry := uint64(testBlockTime.Unix() + 60)

	sig, err := SignDelegation(key, k.Domain(ctx), sdk.AccAddress{}, 0, expiry)
	require.NoError(t, err)
	_, serr := k.DelegateBySig(ctx, sdk.AccAddress{}, 0, expiry, sig)
	require.True(t, sdk.IsErrorCode(serr, sdk.CodespaceRoot, sdk.CodeInvalidAddress))
	require.Equal(t, uint64(0), k.GetNonce(ctx, signer))
}
