package context

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	yaml "gopkg.in/yaml.v2"

	"github.com/hbtc-chain/govledger/client/flags"
	"github.com/hbtc-chain/govledger/codec"
)

// CLIContext implements a typical CLI context created in SDK modules for
// transaction handling and queries.
type CLIContext struct {
	Codec        *codec.Codec
	Node         Node
	NodeURI      string
	ChainID      string
	Height       int64
	Output       io.Writer
	OutputFormat string
	Indent       bool
	HomeDir      string
	KeystoreDir  string
	From         string
	Sequence     uint64
	DryRun       bool
}

// NewCLIContext returns a new initialized CLIContext with parameters from the
// command line using Viper.
func NewCLIContext() CLIContext {
	nodeURI := viper.GetString(flags.FlagNode)
	if nodeURI == "" {
		nodeURI = flags.DefaultNodeURI
	}

	home := viper.GetString(flags.FlagHome)
	keystore := viper.GetString(flags.FlagKeystore)
	if keystore == "" && home != "" {
		keystore = filepath.Join(home, "keys")
	}

	return CLIContext{
		Node:         NewHTTPNode(nodeURI),
		NodeURI:      nodeURI,
		ChainID:      viper.GetString(flags.FlagChainID),
		Height:       viper.GetInt64(flags.FlagHeight),
		Output:       os.Stdout,
		OutputFormat: outputFormat(),
		Indent:       viper.GetBool(flags.FlagIndent),
		HomeDir:      home,
		KeystoreDir:  keystore,
		From:         viper.GetString(flags.FlagFrom),
		Sequence:     viper.GetUint64(flags.FlagSequence),
		DryRun:       viper.GetBool(flags.FlagDryRun),
	}
}

// outputFormat prefers the --output flag and otherwise picks YAML for a
// terminal and JSON for pipes.
func outputFormat() string {
	if f := viper.GetString(cli.OutputFlag); f != "" {
		return f
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return "text"
	}
	return "json"
}

// WithCodec returns a copy of the context with an updated codec.
func (ctx CLIContext) WithCodec(cdc *codec.Codec) CLIContext {
	ctx.Codec = cdc
	return ctx
}

// WithNode returns a copy of the context with an updated node backend.
func (ctx CLIContext) WithNode(node Node) CLIContext {
	ctx.Node = node
	return ctx
}

// WithOutput returns a copy of the context with an updated output writer (e.g. stdout).
func (ctx CLIContext) WithOutput(w io.Writer) CLIContext {
	ctx.Output = w
	return ctx
}

// WithHeight returns a copy of the context with an updated height.
func (ctx CLIContext) WithHeight(height int64) CLIContext {
	ctx.Height = height
	return ctx
}

// WithChainID returns a copy of the context with an updated chain ID.
func (ctx CLIContext) WithChainID(chainID string) CLIContext {
	ctx.ChainID = chainID
	return ctx
}

// WithFrom returns a copy of the context with an updated signer name or address.
func (ctx CLIContext) WithFrom(from string) CLIContext {
	ctx.From = from
	return ctx
}

// QueryWithData performs a query to the node with the provided path and data
// and returns the raw result and the height it was answered at.
func (ctx CLIContext) QueryWithData(path string, data []byte) ([]byte, int64, error) {
	if ctx.Node == nil {
		return nil, 0, fmt.Errorf("no node configured")
	}
	return ctx.Node.Query(path, data, ctx.Height)
}

// PrintOutput prints output while respecting output and indent flags
// NOTE: pass in marshalled structs that have been unmarshaled
// because this function will panic on marshaling errors
func (ctx CLIContext) PrintOutput(toPrint interface{}) error {
	var (
		out []byte
		err error
	)

	switch ctx.OutputFormat {
	case "text":
		out, err = yaml.Marshal(&toPrint)

	case "json":
		if ctx.Indent {
			out, err = ctx.Codec.MarshalJSONIndent(toPrint, "", "  ")
		} else {
			out, err = ctx.Codec.MarshalJSON(toPrint)
		}
	default:
		return fmt.Errorf("unknown output format %q", ctx.OutputFormat)
	}

	if err != nil {
		return err
	}

	w := ctx.Output
	if w == nil {
		w = os.Stdout
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
