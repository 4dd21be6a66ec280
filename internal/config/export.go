package config

import (
	"encoding/json"
	"math/big"

	"gopkg.in/yaml.v3"
)

// Export is the configuration in the shape the build toolchain consumes.
type Export struct {
	Solidity       SolidityExport           `json:"solidity" yaml:"solidity"`
	DefaultNetwork string                   `json:"defaultNetwork" yaml:"defaultNetwork"`
	Networks       map[string]NetworkExport `json:"networks" yaml:"networks"`
}

// SolidityExport is the exported compiler section.
type SolidityExport struct {
	Version  string         `json:"version" yaml:"version"`
	Settings SettingsExport `json:"settings" yaml:"settings"`
}

// SettingsExport is the exported compiler settings section.
type SettingsExport struct {
	Optimizer  OptimizerExport `json:"optimizer" yaml:"optimizer"`
	EVMVersion string          `json:"evmVersion,omitempty" yaml:"evmVersion,omitempty"`
}

// OptimizerExport is the exported optimizer section.
type OptimizerExport struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// NetworkExport is one exported network. Accounts holds either a list of
// private keys or an accounts.HDExport.
type NetworkExport struct {
	URL                  string `json:"url,omitempty" yaml:"url,omitempty"`
	ChainID              uint64 `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Accounts             any    `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	InitialBaseFeePerGas *Wei   `json:"initialBaseFeePerGas,omitempty" yaml:"initialBaseFeePerGas,omitempty"`
}

// Wei is an amount rendered as a plain integer.
type Wei struct {
	*big.Int
}

// MarshalJSON implements json.Marshaler for Wei.
func (w Wei) MarshalJSON() ([]byte, error) {
	if w.Int == nil {
		return []byte("0"), nil
	}
	return []byte(w.Int.String()), nil
}

// MarshalYAML implements yaml.Marshaler for Wei.
func (w Wei) MarshalYAML() (any, error) {
	value := "0"
	if w.Int != nil {
		value = w.Int.String()
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: value}, nil
}

// Export returns the toolchain view of the configuration. Private keys,
// mnemonics and substituted url secrets are redacted unless reveal is set;
// redacted urls show their template instead.
func (c *Config) Export(reveal bool) Export {
	out := Export{
		Solidity: SolidityExport{
			Version: c.compiler.Version,
			Settings: SettingsExport{
				Optimizer: OptimizerExport{
					Enabled: c.compiler.Optimizer.Enabled,
					Runs:    c.compiler.Optimizer.Runs,
				},
				EVMVersion: c.compiler.EVMVersion,
			},
		},
		DefaultNetwork: c.defaultNetwork,
		Networks:       make(map[string]NetworkExport, len(c.networks)),
	}

	for name, n := range c.networks {
		ne := NetworkExport{ChainID: n.ChainID}
		if reveal {
			ne.URL = n.URL
		} else {
			ne.URL = n.URLTemplate
		}
		if !n.devAccounts {
			ne.Accounts = n.Accounts.Export(reveal)
		}
		if n.InitialBaseFeePerGas != nil {
			ne.InitialBaseFeePerGas = &Wei{new(big.Int).Set(n.InitialBaseFeePerGas)}
		}
		out.Networks[name] = ne
	}
	return out
}

// JSON renders the export as indented JSON.
func (e Export) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML renders the export as YAML.
func (e Export) YAML() ([]byte, error) {
	return yaml.Marshal(e)
}
