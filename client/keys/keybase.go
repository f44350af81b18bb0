package keys

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/pkg/errors"

	sdk "github.com/hbtc-chain/govledger/types"
)

// namesFile maps key names to addresses. The keystore skips dot files.
const namesFile = ".names.json"

// Info is a named key.
type Info struct {
	Name    string
	Address sdk.AccAddress
}

// Keybase stores passphrase-encrypted secp256k1 keys in the go-ethereum
// keystore format and keeps a name index beside them.
type Keybase struct {
	mtx sync.Mutex
	dir string
	ks  *keystore.KeyStore
}

// NewKeybase opens the keystore in dir with production scrypt parameters.
func NewKeybase(dir string) *Keybase {
	return NewKeybaseWithScrypt(dir, keystore.StandardScryptN, keystore.StandardScryptP)
}

// NewKeybaseWithScrypt opens the keystore in dir with custom scrypt costs.
func NewKeybaseWithScrypt(dir string, scryptN, scryptP int) *Keybase {
	return &Keybase{
		dir: dir,
		ks:  keystore.NewKeyStore(dir, scryptN, scryptP),
	}
}

func (kb *Keybase) loadNames() (map[string]string, error) {
	names := make(map[string]string)
	bz, err := ioutil.ReadFile(filepath.Join(kb.dir, namesFile))
	if os.IsNotExist(err) {
		return names, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bz, &names); err != nil {
		return nil, errors.Wrap(err, "corrupt key name index")
	}
	return names, nil
}

func (kb *Keybase) saveNames(names map[string]string) error {
	bz, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(kb.dir, 0700); err != nil {
		return err
	}
	return ioutil.WriteFile(filepath.Join(kb.dir, namesFile), bz, 0600)
}

// Import encrypts key under passphrase and registers it as name.
func (kb *Keybase) Import(name, passphrase string, key *ecdsa.PrivateKey) (Info, error) {
	kb.mtx.Lock()
	defer kb.mtx.Unlock()

	names, err := kb.loadNames()
	if err != nil {
		return Info{}, err
	}
	if _, ok := names[name]; ok {
		return Info{}, fmt.Errorf("key %q already exists", name)
	}

	acc, err := kb.ks.ImportECDSA(key, passphrase)
	if err != nil {
		return Info{}, err
	}
	names[name] = acc.Address.Hex()
	if err := kb.saveNames(names); err != nil {
		return Info{}, err
	}
	return Info{Name: name, Address: sdk.AccAddress(acc.Address.Bytes())}, nil
}

// Get resolves a key by name or by hex address.
func (kb *Keybase) Get(nameOrAddress string) (Info, error) {
	kb.mtx.Lock()
	defer kb.mtx.Unlock()

	names, err := kb.loadNames()
	if err != nil {
		return Info{}, err
	}
	if hex, ok := names[nameOrAddress]; ok {
		return Info{Name: nameOrAddress, Address: sdk.MustAccAddressFromHex(hex)}, nil
	}

	addr, err := sdk.AccAddressFromHex(nameOrAddress)
	if err != nil || addr.Empty() {
		return Info{}, fmt.Errorf("key %q not found", nameOrAddress)
	}
	for name, hex := range names {
		if strings.EqualFold(hex, addr.String()) {
			return Info{Name: name, Address: addr}, nil
		}
	}
	if kb.ks.HasAddress(addr.Common()) {
		return Info{Address: addr}, nil
	}
	return Info{}, fmt.Errorf("key %q not found", nameOrAddress)
}

// List returns every named key sorted by name.
func (kb *Keybase) List() ([]Info, error) {
	kb.mtx.Lock()
	defer kb.mtx.Unlock()

	names, err := kb.loadNames()
	if err != nil {
		return nil, err
	}
	infos := make([]Info, 0, len(names))
	for name, hex := range names {
		infos = append(infos, Info{Name: name, Address: sdk.MustAccAddressFromHex(hex)})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Delete removes a key after checking its passphrase.
func (kb *Keybase) Delete(name, passphrase string) error {
	info, err := kb.Get(name)
	if err != nil {
		return err
	}

	kb.mtx.Lock()
	defer kb.mtx.Unlock()

	if err := kb.ks.Delete(accounts.Account{Address: info.Address.Common()}, passphrase); err != nil {
		return err
	}
	names, err := kb.loadNames()
	if err != nil {
		return err
	}
	delete(names, info.Name)
	return kb.saveNames(names)
}

// Sign signs a 32 byte digest with the named key. V is returned as 27/28.
func (kb *Keybase) Sign(name, passphrase string, hash []byte) ([]byte, error) {
	info, err := kb.Get(name)
	if err != nil {
		return nil, err
	}
	sig, err := kb.ks.SignHashWithPassphrase(accounts.Account{Address: info.Address.Common()}, passphrase, hash)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}
