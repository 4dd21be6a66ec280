// Package cmd implements the nft-world command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kpaschalidis/nft-world/internal/config"
)

var (
	// configFile overrides the nftworld.yaml search.
	configFile string

	// jsonOut switches every command to JSON output and JSON logs.
	jsonOut bool

	// debug enables debug logging.
	debug bool

	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "nft-world",
	Short: "Inspect the contract build configuration",
	Long: `nft-world resolves the build configuration of the contract project:
compiler settings plus the networks contracts are deployed to.

Secrets come from the environment and are never required to load:

  INFURA_PROJECT_ID    RPC project id used in remote network urls
  WALLET_PRIVATE_KEY   deployer key for mainnet and rinkeby
  MNEMONIC             HD wallet for rinkeby (preferred over the key)

Any setting can be overridden with NFTWORLD_<KEY>, for example
NFTWORLD_SOLIDITY_OPTIMIZER_RUNS=200.

Common workflow:

  nft-world validate                 # check the configuration loads
  nft-world networks                 # list networks and whether they are usable
  nft-world accounts rinkeby         # addresses that will sign on rinkeby
  nft-world show --format yaml       # exported configuration, secrets redacted`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: search for nftworld.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("nft-world: %w", err)
	}
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("run_id", uuid.NewString()))
}

func loadConfig() (*config.Config, error) {
	opts := []config.Option{config.WithLogger(logger)}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	return config.Load(opts...)
}
