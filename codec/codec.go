package codec

import (
	"bytes"
	"encoding/json"

	amino "github.com/tendermint/go-amino"
	cryptoamino "github.com/tendermint/tendermint/crypto/encoding/amino"
)

// Codec is the amino codec shared by every module.
type Codec = amino.Codec

func New() *Codec {
	return amino.NewCodec()
}

// RegisterCrypto registers the tendermint key types, needed to encode
// genesis documents.
func RegisterCrypto(cdc *Codec) {
	cryptoamino.RegisterAmino(cdc)
}

// MarshalJSONIndent provides a utility for indented JSON encoding of an object
// via an Amino codec. It returns an error if it cannot serialize or indent as
// JSON.
func MarshalJSONIndent(cdc *Codec, obj interface{}) ([]byte, error) {
	bz, err := cdc.MarshalJSON(obj)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = json.Indent(&out, bz, "", "  ")
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MustMarshalJSONIndent executes MarshalJSONIndent except it panics upon failure.
func MustMarshalJSONIndent(cdc *Codec, obj interface{}) []byte {
	bz, err := MarshalJSONIndent(cdc, obj)
	if err != nil {
		panic(err)
	}

	return bz
}

// Cdc is a generic sealed codec to be used throughout sdk
var Cdc *Codec

func init() {
	cdc := New()
	Cdc = cdc.Seal()
}
