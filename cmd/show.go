package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the exported build configuration",
	Long: `Print the configuration in the shape the build toolchain consumes.

Private keys, mnemonics and url secrets are redacted unless --reveal is set.

Examples:
  nft-world show
  nft-world show --format yaml
  nft-world show --reveal`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	showCmd.Flags().Bool("reveal", false, "print secrets instead of redacting them")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	reveal, _ := cmd.Flags().GetBool("reveal")
	if jsonOut {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	export := cfg.Export(reveal)
	if reveal {
		logger.Warn("Printing configuration with secrets revealed")
	}

	var out []byte
	if format == "yaml" {
		out, err = export.YAML()
	} else {
		out, err = export.JSON()
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
