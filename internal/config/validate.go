package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kpaschalidis/nft-world/internal/accounts"
)

// validate checks the shape of the resolved configuration. Missing secrets
// are not shape errors and are left for Select to report.
func (c *Config) validate() error {
	if err := c.compiler.Validate(); err != nil {
		return err
	}

	var inMemory []string
	for _, name := range c.NetworkNames() {
		n := c.networks[name]
		if err := validateNetwork(n); err != nil {
			return err
		}
		if n.InMemory {
			inMemory = append(inMemory, name)
		}
	}

	switch len(inMemory) {
	case 0:
		return NewValidationError("networks", "an in-memory network is required")
	case 1:
	default:
		return NewValidationError("networks",
			fmt.Sprintf("only one in-memory network is allowed, got %s", strings.Join(inMemory, ", ")))
	}

	if c.defaultNetwork == "" {
		return NewValidationError("default_network", "is required")
	}
	if _, ok := c.networks[c.defaultNetwork]; !ok {
		return NewValidationError("default_network", fmt.Sprintf("unknown network %q", c.defaultNetwork))
	}
	return nil
}

func validateNetwork(n Network) error {
	field := func(key string) string {
		return fmt.Sprintf("networks.%s.%s", n.Name, key)
	}

	if n.InMemory {
		if n.URLTemplate != "" {
			return NewValidationError(field("url"), "not allowed on the in-memory network")
		}
	} else if err := validateURL(n, field("url")); err != nil {
		return err
	}

	if chain, ok := accounts.IsProductionChain(n.ChainID); ok && n.Accounts.UsesDevKeys() {
		return NewValidationError(field("accounts"),
			fmt.Sprintf("publicly known development keys cannot be used on %s (chain_id=%d)", chain, n.ChainID))
	}
	return nil
}

// validateURL checks a remote network url. A url that references unset
// variables is left for Select to report.
func validateURL(n Network, field string) error {
	if n.URLTemplate == "" {
		return NewValidationError(field, "is required")
	}
	if len(n.unresolvedURLVars) > 0 {
		return nil
	}

	u, err := url.Parse(n.URL)
	if err != nil {
		return NewValidationError(field, err.Error())
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return NewValidationError(field, fmt.Sprintf("unsupported scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return NewValidationError(field, "missing host")
	}
	return nil
}
