package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/accountaddr/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "accountaddr",
	Short: "Compute deterministic smart account deployment addresses",
	Long: `Accountaddr is a command line tool to predict the address a smart account
factory will deploy an account proxy to, before the account exists.

It knows two families of chains:

	1. Standard EVM chains: the factory contract computes the address
	itself, accountaddr does a single read-only call to its
	getAddressWithNonce view function.

	2. ZKSync family chains (era mainnet, sepolia and goerli testnets):
	zksync uses its own create2 formula, so the address is computed fully
	offline with no network access at all.

Both paths hash the salt string with keccak256 first, so the same salt always
maps to the same account, whichever family the chain belongs to.

The chains accountaddr knows about are listed with 'accountaddr network list'.
You can add your own chains with 'accountaddr network add' or point any
built-in chain at your own RPC node by setting its node env var (shown in the
network list) or passing --rpc.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.NewTerminalUI().Error("%s", err)
		os.Exit(1)
	}
}
