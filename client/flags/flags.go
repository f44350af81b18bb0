package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
)

// nolint
const (
	FlagHome     = cli.HomeFlag
	FlagNode     = "node"
	FlagChainID  = "chain-id"
	FlagFrom     = "from"
	FlagKeystore = "keystore"
	FlagSequence = "sequence"
	FlagHeight   = "height"
	FlagIndent   = "indent"
	FlagDryRun   = "dry-run"
	FlagPassword = "password"

	DefaultNodeURI = "http://127.0.0.1:1317"
)

// GetCommands adds common flags to query commands
func GetCommands(cmds ...*cobra.Command) []*cobra.Command {
	for _, c := range cmds {
		c.Flags().Bool(FlagIndent, false, "Add indent to JSON response")
		c.Flags().String(FlagNode, DefaultNodeURI, "<host>:<port> of the node REST endpoint")
		c.Flags().Int64(FlagHeight, 0, "Use a specific height to query state at (this can error if the node is pruning state)")

		BindFlags(c.Flags(), FlagNode, FlagHeight, FlagIndent)
	}
	return cmds
}

// PostCommands adds common flags for commands to post tx
func PostCommands(cmds ...*cobra.Command) []*cobra.Command {
	for _, c := range cmds {
		c.Flags().Bool(FlagIndent, false, "Add indent to JSON response")
		c.Flags().String(FlagFrom, "", "Name or address of private key with which to sign")
		c.Flags().String(FlagKeystore, "", "Directory holding the encrypted key files (defaults to <home>/keys)")
		c.Flags().Uint64(FlagSequence, 0, "The sequence number of the signing account (queried when omitted)")
		c.Flags().String(FlagNode, DefaultNodeURI, "<host>:<port> of the node REST endpoint")
		c.Flags().String(FlagChainID, "", "Chain ID of the ledger (queried when omitted)")
		c.Flags().Bool(FlagDryRun, false, "Print the signed transaction instead of broadcasting it")

		BindFlags(c.Flags(), FlagNode, FlagKeystore, FlagChainID, FlagSequence, FlagFrom, FlagDryRun, FlagIndent)

		c.MarkFlagRequired(FlagFrom)
	}
	return cmds
}

// BindFlags binds the named flags of fs to viper keys of the same name.
// Names missing from fs are skipped.
func BindFlags(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if f := fs.Lookup(name); f != nil {
			viper.BindPFlag(name, f)
		}
	}
}
