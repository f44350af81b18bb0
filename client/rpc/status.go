package rpc

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hbtc-chain/govledger/client/context"
	"github.com/hbtc-chain/govledger/client/flags"
	"github.com/hbtc-chain/govledger/codec"
	"github.com/hbtc-chain/govledger/types/rest"
)

// StatusCommand prints the latest committed block of the node.
func StatusCommand(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Query remote node for status",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)
			status, err := cliCtx.Node.Status()
			if err != nil {
				return err
			}
			return cliCtx.PrintOutput(status)
		},
	}

	cmd.Flags().StringP(flags.FlagNode, "n", flags.DefaultNodeURI, "Node to connect to")
	viper.BindPFlag(flags.FlagNode, cmd.Flags().Lookup(flags.FlagNode))
	cmd.Flags().Bool(flags.FlagIndent, false, "Add indent to JSON response")
	viper.BindPFlag(flags.FlagIndent, cmd.Flags().Lookup(flags.FlagIndent))
	return cmd
}

// NodeInfoRequestHandlerFn serves the status of the node the context points at.
func NodeInfoRequestHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := cliCtx.Node.Status()
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		rest.WriteJSON(w, status)
	}
}
