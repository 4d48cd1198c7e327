package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/accountaddr/config"
)

func AddCommonFlagsToDerivationCmds(c *cobra.Command) {
	c.PersistentFlags().
		Uint64VarP(&config.ChainID, "chain", "c", 1, "Chain id to derive the address for. ZKSync family ids (324, 300, 280) are computed offline, everything else asks the factory contract on that chain.")
	c.PersistentFlags().
		StringVarP(&config.RPC, "rpc", "r", "", "RPC endpoint to use instead of the registered nodes of the chain. Only meaningful for non-zksync chains.")
	c.PersistentFlags().
		BoolVarP(&config.JSONOutput, "json", "j", false, "Print the report as JSON instead of the human-readable layout.")
}
