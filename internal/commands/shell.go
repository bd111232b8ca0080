package commands

import (
	"github.com/spf13/cobra"

	"github.com/gicledger/ledger/internal/shell"
)

func newShellCommand(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, gf)
		},
	}
}

func runShell(cmd *cobra.Command, gf *globalFlags) error {
	cfg, logger, l, err := gf.setup(cmd)
	if err != nil {
		return err
	}
	return shell.New(l, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Bank.Name, logger).Run()
}
