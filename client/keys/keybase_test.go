package keys

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/stretchr/testify/require"

	"github.com/hbtc-chain/govledger/crypto"
)

func TestKeybaseLifecycle(t *testing.T) {
	dir, err := ioutil.TempDir("", "keybase")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	kb := NewKeybaseWithScrypt(dir, keystore.LightScryptN, keystore.LightScryptP)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	info, err := kb.Import("alice", "12345678", key)
	require.NoError(t, err)
	require.True(t, crypto.PubkeyToAddress(key.PublicKey).Equals(info.Address))

	_, err = kb.Import("alice", "12345678", key)
	require.Error(t, err)

	byName, err := kb.Get("alice")
	require.NoError(t, err)
	require.True(t, info.Address.Equals(byName.Address))

	byAddr, err := kb.Get(info.Address.String())
	require.NoError(t, err)
	require.Equal(t, "alice", byAddr.Name)

	infos, err := kb.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)

	hash := crypto.Keccak256([]byte("payload"))
	sig, err := kb.Sign("alice", "12345678", hash)
	require.NoError(t, err)
	signer, err := crypto.RecoverAddress(hash, sig)
	require.NoError(t, err)
	require.True(t, info.Address.Equals(signer))

	_, err = kb.Sign("alice", "wrong-pass", hash)
	require.Error(t, err)

	require.Error(t, kb.Delete("alice", "wrong-pass"))
	require.NoError(t, kb.Delete("alice", "12345678"))
	_, err = kb.Get("alice")
	require.Error(t, err)
}
