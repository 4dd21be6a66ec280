package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpaschalidis/nft-world/internal/config"
)

const (
	testProjectID = "0123456789abcdef0123456789abcdef"
	testKey       = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
)

// resetFlags restores every flag to its default so commands can be executed
// repeatedly within one test binary.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// clearSecrets hides any secrets present in the developer's environment.
func clearSecrets(t *testing.T) {
	t.Helper()
	for _, key := range []string{"INFURA_PROJECT_ID", "WALLET_PRIVATE_KEY", "MNEMONIC"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nftworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShow(t *testing.T) {
	clearSecrets(t)
	t.Setenv("INFURA_PROJECT_ID", testProjectID)

	t.Run("json redacted by default", func(t *testing.T) {
		out, err := execute(t, "show")
		require.NoError(t, err)
		assert.Contains(t, out, `"version": "0.8.6"`)
		assert.Contains(t, out, "${INFURA_PROJECT_ID}")
		assert.NotContains(t, out, testProjectID)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &parsed))
		assert.Equal(t, "hardhat", parsed["defaultNetwork"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, "show", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "runs: 10000")
		assert.Contains(t, out, "initialBaseFeePerGas: 0")
	})

	t.Run("reveal", func(t *testing.T) {
		out, err := execute(t, "show", "--reveal")
		require.NoError(t, err)
		assert.Contains(t, out, "https://mainnet.infura.io/v3/"+testProjectID)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := execute(t, "show", "--format", "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestNetworks(t *testing.T) {
	clearSecrets(t)
	t.Setenv("INFURA_PROJECT_ID", testProjectID)
	t.Setenv("WALLET_PRIVATE_KEY", testKey)

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "networks")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "CHAIN ID")
		assert.Contains(t, lines[1], "hardhat *")
		assert.Contains(t, lines[1], "(in-memory)")
		assert.Contains(t, lines[2], "mainnet")
		assert.Contains(t, lines[2], "ready")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "networks", "--json")
		require.NoError(t, err)

		var parsed struct {
			Networks []networkRow `json:"networks"`
			Count    int          `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &parsed))
		require.Equal(t, 3, parsed.Count)

		byName := make(map[string]networkRow)
		for _, r := range parsed.Networks {
			byName[r.Name] = r
		}
		assert.True(t, byName["hardhat"].Default)
		assert.Equal(t, "mnemonic", byName["hardhat"].Accounts)
		assert.Equal(t, "0x0", byName["hardhat"].BaseFee)
		assert.Empty(t, byName["mainnet"].BaseFee)
		assert.True(t, byName["mainnet"].Ready)
		assert.Equal(t, "private-keys", byName["rinkeby"].Accounts)
	})
}

func TestNetworksReportsMissingCredentials(t *testing.T) {
	clearSecrets(t)

	out, err := execute(t, "networks", "--json")
	require.NoError(t, err)

	var parsed struct {
		Networks []networkRow `json:"networks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	for _, r := range parsed.Networks {
		if r.InMemory {
			assert.True(t, r.Ready)
			continue
		}
		assert.False(t, r.Ready, r.Name)
		assert.Equal(t, "missing credentials", r.Status, r.Name)
		assert.Contains(t, r.Error, "WALLET_PRIVATE_KEY")
	}
}

func TestAccounts(t *testing.T) {
	clearSecrets(t)

	t.Run("default network uses dev accounts", func(t *testing.T) {
		out, err := execute(t, "accounts")
		require.NoError(t, err)
		assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 21)
	})

	t.Run("limit", func(t *testing.T) {
		out, err := execute(t, "accounts", "hardhat", "--limit", "2", "--json")
		require.NoError(t, err)

		var parsed struct {
			Network   string   `json:"network"`
			Source    string   `json:"source"`
			Addresses []string `json:"addresses"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &parsed))
		assert.Equal(t, "hardhat", parsed.Network)
		assert.Equal(t, "mnemonic", parsed.Source)
		assert.Equal(t, []string{
			"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
			"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		}, parsed.Addresses)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := execute(t, "accounts", "--limit", "-1")
		assert.Error(t, err)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := execute(t, "accounts", "mainnet")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrMissingCredentials)
		assert.Contains(t, err.Error(), "WALLET_PRIVATE_KEY")
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := execute(t, "accounts", "ropsten")
		assert.ErrorIs(t, err, config.ErrUnknownNetwork)
	})
}

func TestValidate(t *testing.T) {
	clearSecrets(t)

	t.Run("defaults", func(t *testing.T) {
		out, err := execute(t, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "configuration is valid")
	})

	t.Run("config file", func(t *testing.T) {
		path := writeConfig(t, "solidity:\n  optimizer:\n    runs: 200\n")
		out, err := execute(t, "validate", "--json", "--config", path)
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &parsed))
		assert.Equal(t, true, parsed["valid"])
		assert.Equal(t, path, parsed["config_file"])
	})

	t.Run("invalid config", func(t *testing.T) {
		path := writeConfig(t, "solidity:\n  optimizer:\n    runs: 0\n")
		_, err := execute(t, "validate", "--config", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
