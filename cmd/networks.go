package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kpaschalidis/nft-world/internal/config"
	"github.com/kpaschalidis/nft-world/internal/ethereum"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List configured networks",
	Long: `List the configured networks and whether each one can be used right now.

A remote network is ready when it has credentials and its url does not
reference unset variables. The in-memory network is always ready.`,
	Args: cobra.NoArgs,
	RunE: runNetworks,
}

func init() {
	rootCmd.AddCommand(networksCmd)
}

type networkRow struct {
	Name     string `json:"name"`
	ChainID  uint64 `json:"chain_id"`
	URL      string `json:"url,omitempty"`
	InMemory bool   `json:"in_memory"`
	Default  bool   `json:"default"`
	Accounts string `json:"accounts"`
	BaseFee  string `json:"initial_base_fee_per_gas,omitempty"`
	Ready    bool   `json:"ready"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

func runNetworks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows := make([]networkRow, 0, len(cfg.NetworkNames()))
	for _, name := range cfg.NetworkNames() {
		n, err := cfg.Network(name)
		if err != nil {
			return err
		}
		row := networkRow{
			Name:     n.Name,
			ChainID:  n.ChainID,
			URL:      n.URLTemplate,
			InMemory: n.InMemory,
			Default:  n.Name == cfg.DefaultNetwork(),
			Accounts: n.Accounts.Kind().String(),
			Ready:    true,
			Status:   "ready",
		}
		if n.InitialBaseFeePerGas != nil {
			row.BaseFee = ethereum.EncodeBig(n.InitialBaseFeePerGas)
		}
		if _, err := cfg.Select(name); err != nil {
			row.Ready = false
			row.Status = selectError(err)
			row.Error = err.Error()
		}
		rows = append(rows, row)
	}

	if jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"networks": rows,
			"count":    len(rows),
		})
	}

	w := newTable(cmd.OutOrStdout())
	printTableHeader(w, "NAME", "CHAIN ID", "URL", "ACCOUNTS", "STATUS")
	for _, r := range rows {
		name := r.Name
		if r.Default {
			name += " *"
		}
		url := r.URL
		if r.InMemory {
			url = "(in-memory)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			name,
			strconv.FormatUint(r.ChainID, 10),
			orDash(url),
			r.Accounts,
			r.Status,
		)
	}
	return w.Flush()
}

// selectError shortens a Select failure for table output.
func selectError(err error) string {
	var credErr *config.MissingCredentialsError
	switch {
	case errors.As(err, &credErr):
		return "missing credentials"
	case errors.Is(err, config.ErrUnresolvedURL):
		return "unresolved url"
	default:
		return "invalid credentials"
	}
}
