package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gicledger/ledger/internal/buildinfo"
	"github.com/gicledger/ledger/internal/config"
	"github.com/gicledger/ledger/internal/ledger"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Without a subcommand it starts the interactive shell.
func NewRootCommand() *cobra.Command {
	gf := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "Account ledger with monthly statements and interest",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, gf)
		},
	}

	rootCmd.PersistentFlags().StringVar(&gf.configPath, "config", config.DefaultPath, "path to ledger.yaml")
	rootCmd.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(newShellCommand(gf))
	rootCmd.AddCommand(newBatchCommand(gf))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// setup loads configuration and builds the logger and ledger it describes.
func (gf *globalFlags) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, *ledger.Ledger, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(gf.configPath)
	} else {
		cfg, err = config.LoadOrDefault(gf.configPath)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, nil, err
	}
	if gf.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return cfg, logger, ledger.New(cfg.LedgerOptions(logger)), nil
}
