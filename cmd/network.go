package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/accountaddr/networks"
	"github.com/tranvictor/accountaddr/ui"
)

var (
	NetworkConfig string
	NetworkForce  bool
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config flag is supported to pass a new network config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1", "alternative_name_2"],
		"chain_id": 1,
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"block_time": 12,
		"node_variable_name": "MY_NETWORK_NODE",
		"default_nodes": {
			"node_name_1": "node_url_1",
			"node_name_2": "node_url_2"
		}
	}`,
	Run: func(cmd *cobra.Command, args []string) {
		runAddNetwork(ui.NewTerminalUI(), NetworkConfig, NetworkForce)
	},
}

// runAddNetwork parses the --config value (inline json or a filepath),
// validates the network and saves it to the registry. All output goes through
// u so the flow is testable with a RecordingUI.
func runAddNetwork(u ui.UI, config string, force bool) {
	config = strings.TrimSpace(config)

	var newNetwork networks.Network
	var err error
	switch {
	case config == "":
		u.Error("No network config provided. Pass one with --config.")
		return
	case strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}"):
		newNetwork, err = networks.NewNetworkFromJSON([]byte(config))
		if err != nil {
			u.Error("The provided json is not valid: %s", err)
			return
		}
	default:
		// in this case, config is supposed to be a path to a json file
		jsonBytes, err := os.ReadFile(config)
		if err != nil {
			u.Error("Couldn't read the provided json file: %s", err)
			return
		}
		newNetwork, err = networks.NewNetworkFromJSON(jsonBytes)
		if err != nil {
			u.Error("The provided json is not a valid network config: %s", err)
			return
		}
	}

	allNames := []string{newNetwork.GetName()}
	allNames = append(allNames, newNetwork.GetAlternativeNames()...)

	for _, name := range allNames {
		if _, lookupErr := networks.GetNetwork(name); lookupErr == nil {
			if !force {
				u.Error("Network with name %s already exists. Abort. If you want to update the network, use flag --force.", name)
				return
			}
			u.Warn("Network with name %s already exists. It will be replaced with the new network.", name)
		}
	}

	if err = networks.AddNetwork(newNetwork); err != nil {
		u.Error("Failed to add the new network: %s", err)
		return
	}
	u.Success("Network %s with chain ID %d added and saved to ~/.accountaddr/networks/.", newNetwork.GetName(), newNetwork.GetChainID())
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		rows := [][]string{}
		for _, n := range networks.GetSupportedNetworks() {
			names := n.GetName()
			if alts := n.GetAlternativeNames(); len(alts) > 0 {
				names = fmt.Sprintf("%s (%s)", names, strings.Join(alts, ", "))
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", n.GetChainID()),
				names,
				n.GetNativeTokenSymbol(),
				n.GetNodeVariableName(),
			})
		}
		u.Table([]string{"Chain id", "Name", "Token", "Node env var"}, rows)
		u.Info("Point a network at your own node by setting its node env var or passing --rpc.")
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage the supported networks",
	Long:  ``,
}

func init() {
	addNetworkCmd.PersistentFlags().
		StringVarP(&NetworkConfig, "config", "C", "", "New network config json filepath or json string")
	addNetworkCmd.PersistentFlags().
		BoolVarP(&NetworkForce, "force", "f", false, "Replace the network if it already exists")

	networkCmd.AddCommand(addNetworkCmd)
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
