package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/accountaddr/config"
	"github.com/tranvictor/accountaddr/deriver"
	"github.com/tranvictor/accountaddr/ui"
	"github.com/tranvictor/accountaddr/util"
)

var computeCmd = &cobra.Command{
	Use:   "compute <factory> <implementation> <owner> <salt> [more salts]",
	Short: "Predict the deployment address of a smart account",
	Long: `Predict the address the factory will deploy an account proxy to for the
given owner and salt, before the account exists.

On zksync family chains (--chain 324, 300 or 280) the address is computed
fully offline. On every other chain the factory contract is asked via its
getAddressWithNonce view function, which costs one read-only RPC call.

Passing more than one salt derives an address for each of them. All addresses
are derived before anything is printed: either you get the complete report or
only the error.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 4 {
			return fmt.Errorf(
				"requires factory, implementation, owner and at least one salt, got %d argument(s)",
				len(args),
			)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deriver.NewDeriver(util.ChainCallerProvider{RPCOverride: config.RPC})
		return runCompute(ui.NewTerminalUI(), d, args)
	},
}

func runCompute(u ui.UI, d *deriver.Deriver, args []string) error {
	factory, implementation, owner := args[0], args[1], args[2]
	salts := args[3:]

	class := deriver.ClassifyChain(config.ChainID)

	reports := make([]*deriver.Report, 0, len(salts))
	for _, salt := range salts {
		stop := func() {}
		if class == deriver.EVMChain && !config.JSONOutput {
			stop = u.Spinner(fmt.Sprintf("Asking the factory for the address of salt %q...", salt))
		}
		report, err := d.Derive(deriver.Request{
			Factory:        factory,
			Implementation: implementation,
			Owner:          owner,
			Salt:           salt,
			ChainID:        config.ChainID,
		})
		stop()
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if config.JSONOutput {
		return printJSONReports(reports)
	}
	printReports(u, reports)
	return nil
}

func printReports(u ui.UI, reports []*deriver.Report) {
	first := reports[0]
	u.Section("Derived account address")
	detail := u.Indent()
	detail.KeyValue([][2]string{
		{"Chain id", fmt.Sprintf("%d", first.ChainID)},
		{"Path", first.Class.String()},
		{"Factory", first.Factory.Hex()},
		{"Implementation", first.Implementation.Hex()},
		{"Owner", first.Owner.Hex()},
	})

	if len(reports) == 1 {
		detail.KeyValue([][2]string{
			{"Salt", first.Salt},
			{"Salt digest", first.SaltDigest.Hex()},
		})
		u.Success("Account address: %s", first.Address.Hex())
		return
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Salt,
			r.SaltDigest.Hex(),
			u.Style(ui.StyledText{Text: r.Address.Hex(), Severity: ui.SeveritySuccess}),
		})
	}
	u.Table([]string{"Salt", "Salt digest", "Account address"}, rows)
}

func printJSONReports(reports []*deriver.Report) error {
	var v interface{} = reports
	if len(reports) == 1 {
		v = reports[0]
	}
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(content))
	return nil
}

func init() {
	rootCmd.AddCommand(computeCmd)
	AddCommonFlagsToDerivationCmds(computeCmd)
}
