package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts [network]",
	Short: "List the accounts that sign on a network",
	Long: `List the addresses of the accounts configured for a network. Mnemonic
credentials are derived along the configured HD path.

Without a network argument the default network is used. Fails when the
network has no credentials, naming the variables that would provide them.

Examples:
  nft-world accounts
  nft-world accounts rinkeby --limit 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAccounts,
}

func init() {
	accountsCmd.Flags().IntP("limit", "n", 0, "show at most this many accounts (0 for all)")

	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	n, err := cfg.Select(name)
	if err != nil {
		return err
	}

	addrs, err := n.Accounts.Addresses()
	if err != nil {
		return fmt.Errorf("network %q: %w", n.Name, err)
	}
	if limit > 0 && limit < len(addrs) {
		addrs = addrs[:limit]
	}
	logger.Debug("Resolved accounts",
		slog.String("network", n.Name),
		slog.String("source", n.Accounts.Kind().String()),
		slog.Int("count", len(addrs)),
	)

	if jsonOut {
		out := make([]string, len(addrs))
		for i, a := range addrs {
			out[i] = a.Hex()
		}
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"network":   n.Name,
			"source":    n.Accounts.Kind().String(),
			"addresses": out,
			"count":     len(out),
		})
	}

	w := newTable(cmd.OutOrStdout())
	printTableHeader(w, "INDEX", "ADDRESS")
	for i, a := range addrs {
		fmt.Fprintf(w, "%d\t%s\n", i, a.Hex())
	}
	return w.Flush()
}
