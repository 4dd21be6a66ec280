// Package config resolves the build configuration of the contract project:
// compiler settings and the registry of networks contracts deploy to.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/kpaschalidis/nft-world/internal/accounts"
)

// EnvPrefix prefixes environment variables that override configuration keys.
const EnvPrefix = "NFTWORLD"

// Config is the resolved, immutable build configuration.
type Config struct {
	compiler       CompilerSettings
	defaultNetwork string
	networks       map[string]Network
	file           string
}

// fileConfig mirrors the layered viper settings before resolution.
type fileConfig struct {
	Solidity       CompilerSettings       `mapstructure:"solidity"`
	DefaultNetwork string                 `mapstructure:"default_network"`
	Networks       map[string]networkFile `mapstructure:"networks"`
}

type networkFile struct {
	URL                  string       `mapstructure:"url"`
	ChainID              uint64       `mapstructure:"chain_id"`
	InMemory             bool         `mapstructure:"in_memory"`
	InitialBaseFeePerGas string       `mapstructure:"initial_base_fee_per_gas"`
	Accounts             accountsFile `mapstructure:"accounts"`
}

type accountsFile struct {
	Mnemonic     string   `mapstructure:"mnemonic"`
	Path         string   `mapstructure:"path"`
	InitialIndex uint32   `mapstructure:"initial_index"`
	Count        uint32   `mapstructure:"count"`
	Passphrase   string   `mapstructure:"passphrase"`
	PrivateKeys  []string `mapstructure:"private_keys"`
}

// Option configures Load.
type Option func(*options)

type options struct {
	configFile string
	lookup     LookupFunc
	logger     *slog.Logger
}

// WithConfigFile reads settings from path instead of searching for
// nftworld.yaml. The file must exist.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithLookupEnv sets the source of ${VAR} references. Defaults to os.LookupEnv.
func WithLookupEnv(lookup LookupFunc) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Load reads defaults, an optional config file and environment overrides,
// then resolves and validates the configuration. Unset secrets never fail the
// load; they leave the affected networks without credentials.
//
// An accounts section set for a built-in network, in the file or through
// NFTWORLD_NETWORKS_<NAME>_ACCOUNTS_* variables, replaces that network's
// default accounts as a whole.
func Load(opts ...Option) (*Config, error) {
	o := options{
		lookup: os.LookupEnv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
	} else {
		v.SetConfigName("nftworld")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// NFTWORLD_SOLIDITY_OPTIMIZER_RUNS overrides solidity.optimizer.runs
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Keys without a default are only visible to Unmarshal when bound
	_ = v.BindEnv("networks.hardhat.initial_base_fee_per_gas")
	for name := range defaultAccounts {
		for _, key := range accountKeys {
			_ = v.BindEnv(fmt.Sprintf("networks.%s.accounts.%s", name, key))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
		}
		// Config file not found is OK, we use defaults and env vars
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaultAccounts(v, &fc)

	cfg, err := resolve(fc, o.lookup)
	if err != nil {
		return nil, err
	}
	cfg.file = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.logDiagnostics(o.logger)
	return cfg, nil
}

// setDefaults installs the project's compiler settings and network registry.
func setDefaults(v *viper.Viper) {
	// Compiler defaults
	v.SetDefault("solidity.version", DefaultSolidityVersion)
	v.SetDefault("solidity.optimizer.enabled", true)
	v.SetDefault("solidity.optimizer.runs", DefaultOptimizerRuns)
	v.SetDefault("solidity.evm_version", "")

	v.SetDefault("default_network", InMemoryNetwork)

	// Production network
	v.SetDefault("networks.mainnet.url", "https://mainnet.infura.io/v3/${INFURA_PROJECT_ID}")
	v.SetDefault("networks.mainnet.chain_id", 1)

	// Test network
	v.SetDefault("networks.rinkeby.url", "https://rinkeby.infura.io/v3/${INFURA_PROJECT_ID}")
	v.SetDefault("networks.rinkeby.chain_id", 4)

	// Local in-memory network
	v.SetDefault("networks.hardhat.in_memory", true)
	v.SetDefault("networks.hardhat.chain_id", accounts.InMemoryChainID)
}

// defaultAccounts are the account settings of the built-in remote networks.
// They are kept out of viper's defaults so that they never merge key by key
// with an accounts section from the file.
var defaultAccounts = map[string]accountsFile{
	"mainnet": {PrivateKeys: []string{"${WALLET_PRIVATE_KEY}"}},
	// mnemonic wins over the single private key
	"rinkeby": {Mnemonic: "${MNEMONIC}", PrivateKeys: []string{"${WALLET_PRIVATE_KEY}"}},
}

var accountKeys = []string{"mnemonic", "path", "initial_index", "count", "passphrase", "private_keys"}

// applyDefaultAccounts fills in default accounts for built-in networks whose
// accounts were set neither in the file nor in the environment.
func applyDefaultAccounts(v *viper.Viper, fc *fileConfig) {
	for name, def := range defaultAccounts {
		nf, ok := fc.Networks[name]
		if !ok || v.InConfig("networks."+name+".accounts") || !nf.Accounts.isZero() {
			continue
		}
		nf.Accounts = def
		nf.Accounts.PrivateKeys = cloneStrings(def.PrivateKeys)
		fc.Networks[name] = nf
	}
}

func (a accountsFile) isZero() bool {
	return a.Mnemonic == "" && a.Path == "" && a.InitialIndex == 0 && a.Count == 0 &&
		a.Passphrase == "" && len(a.PrivateKeys) == 0
}

// Compiler returns the compiler settings.
func (c *Config) Compiler() CompilerSettings {
	return c.compiler
}

// DefaultNetwork returns the network used when none is selected.
func (c *Config) DefaultNetwork() string {
	return c.defaultNetwork
}

// ConfigFile returns the config file that was read, or "" when only defaults
// and environment variables were used.
func (c *Config) ConfigFile() string {
	return c.file
}

// NetworkNames returns the registered network names in sorted order.
func (c *Config) NetworkNames() []string {
	names := make([]string, 0, len(c.networks))
	for name := range c.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Network returns the named network without checking it is usable.
func (c *Config) Network(name string) (Network, error) {
	n, ok := c.networks[normalizeName(name)]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return n.clone(), nil
}

// Select returns the named network for use by an operation, or the default
// network when name is empty. Unlike Network it fails when the network cannot
// be used: no credentials, malformed credentials, or a url built from unset
// variables.
func (c *Config) Select(name string) (Network, error) {
	if name == "" {
		name = c.defaultNetwork
	}
	n, err := c.Network(name)
	if err != nil {
		return Network{}, err
	}

	if n.Accounts.IsEmpty() {
		return Network{}, &MissingCredentialsError{Network: n.Name, Vars: n.CredentialVars()}
	}
	if err := n.Accounts.Validate(); err != nil {
		return Network{}, WrapNetworkError("select", n.Name, err)
	}
	if len(n.unresolvedURLVars) > 0 {
		return Network{}, WrapNetworkError("select", n.Name,
			fmt.Errorf("%w: %s", ErrUnresolvedURL, strings.Join(n.unresolvedURLVars, ", ")))
	}
	return n, nil
}

func (c *Config) logDiagnostics(logger *slog.Logger) {
	if c.file != "" {
		logger.Debug("Loaded config file", slog.String("path", c.file))
	}
	for _, name := range c.NetworkNames() {
		n := c.networks[name]
		if n.InMemory {
			continue
		}
		if !n.HasCredentials() {
			logger.Warn("Network has no credentials and will fail when selected",
				slog.String("network", name),
				slog.Any("variables", n.credentialVars),
			)
		}
		if len(n.unresolvedURLVars) > 0 {
			logger.Warn("Network url references unset variables",
				slog.String("network", name),
				slog.Any("variables", n.unresolvedURLVars),
			)
		}
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
