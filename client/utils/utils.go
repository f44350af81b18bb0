package utils

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hbtc-chain/govledger/client"
	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/flags"
	"github.com/hbtc-chain/govledger/client/keys"
	"github.com/hbtc-chain/govledger/crypto"
	sdk "github.com/hbtc-chain/govledger/types"
)

// GenerateOrBroadcastMsg signs msg with the --from key and either prints the
// signed transaction (--dry-run) or broadcasts it and prints the response.
func GenerateOrBroadcastMsg(cliCtx context.CLIContext, msg sdk.Msg) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	tx, err := SignMsg(cliCtx, msg)
	if err != nil {
		return err
	}

	txBytes, err := cliCtx.Codec.MarshalJSON(tx)
	if err != nil {
		return err
	}
	if cliCtx.DryRun {
		fmt.Fprintln(cliCtx.Output, string(txBytes))
		return nil
	}

	res, err := cliCtx.Node.BroadcastTx(txBytes)
	if err != nil {
		return err
	}
	return cliCtx.PrintOutput(res)
}

// SignMsg builds the signed envelope for msg, filling the chain ID and the
// sequence from the node when they were not given on the command line.
func SignMsg(cliCtx context.CLIContext, msg sdk.Msg) (sdk.StdTx, error) {
	kb := keys.NewKeybase(cliCtx.KeystoreDir)
	info, err := kb.Get(cliCtx.From)
	if err != nil {
		return sdk.StdTx{}, err
	}
	if signer := msg.GetSigners()[0]; !signer.Equals(info.Address) {
		return sdk.StdTx{}, fmt.Errorf("key %s does not match message signer %s", info.Address, signer)
	}

	chainID, err := ChainID(cliCtx)
	if err != nil {
		return sdk.StdTx{}, err
	}

	sequence := cliCtx.Sequence
	if !viper.IsSet(flags.FlagSequence) {
		sequence, err = QuerySequence(cliCtx, info.Address)
		if err != nil {
			return sdk.StdTx{}, err
		}
	}

	pass, err := client.GetPassword(fmt.Sprintf("Password to sign with '%s':", cliCtx.From), client.BufferStdin())
	if err != nil {
		return sdk.StdTx{}, err
	}

	hash := crypto.Keccak256(sdk.StdSignBytes(chainID, sequence, msg))
	sig, err := kb.Sign(cliCtx.From, pass, hash)
	if err != nil {
		return sdk.StdTx{}, errors.Wrap(err, "failed to sign")
	}
	return sdk.NewStdTx(msg, sequence, sig), nil
}

// ChainID returns the --chain-id flag or asks the node.
func ChainID(cliCtx context.CLIContext) (string, error) {
	if cliCtx.ChainID != "" {
		return cliCtx.ChainID, nil
	}
	status, err := cliCtx.Node.Status()
	if err != nil {
		return "", err
	}
	return status.ChainID, nil
}

// QuerySequence fetches the next sequence the node expects from addr.
func QuerySequence(cliCtx context.CLIContext, addr sdk.AccAddress) (uint64, error) {
	bz, err := cliCtx.Codec.MarshalJSON(sdk.QuerySequenceParams{Address: addr})
	if err != nil {
		return 0, err
	}
	res, _, err := cliCtx.QueryWithData(sdk.QuerySequencePath, bz)
	if err != nil {
		return 0, err
	}
	var out sdk.QueryResSequence
	if err := cliCtx.Codec.UnmarshalJSON(res, &out); err != nil {
		return 0, err
	}
	return out.Sequence, nil
}

// AddressOrKey parses a hex address or resolves a local key name.
func AddressOrKey(cliCtx context.CLIContext, s string) (sdk.AccAddress, error) {
	if addr, err := sdk.AccAddressFromHex(s); err == nil && !addr.Empty() {
		return addr, nil
	}
	info, err := keys.NewKeybase(cliCtx.KeystoreDir).Get(s)
	if err != nil {
		return nil, fmt.Errorf("%q is neither an address nor a local key", s)
	}
	return info.Address, nil
}

// FromAddress resolves the --from key.
func FromAddress(cliCtx context.CLIContext) (sdk.AccAddress, error) {
	if cliCtx.From == "" {
		return nil, errors.New("--from is required")
	}
	return AddressOrKey(cliCtx, cliCtx.From)
}
