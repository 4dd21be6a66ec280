package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the configuration loads",
	Long: `Load defaults, the config file and environment overrides, and report
any validation error. Networks without credentials do not fail validation;
use "nft-world networks" to see which ones are ready.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"valid":           true,
			"config_file":     cfg.ConfigFile(),
			"default_network": cfg.DefaultNetwork(),
			"networks":        cfg.NetworkNames(),
		})
	}

	source := dimText("(defaults and environment)")
	if cfg.ConfigFile() != "" {
		source = dimText(fmt.Sprintf("(%s)", cfg.ConfigFile()))
	}
	success(cmd.OutOrStdout(), fmt.Sprintf("configuration is valid %s", source))
	return nil
}
