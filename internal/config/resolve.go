package config

import (
	"fmt"
	"math/big"

	"github.com/kpaschalidis/nft-world/internal/accounts"
	"github.com/kpaschalidis/nft-world/internal/ethereum"
)

// resolve substitutes environment references and builds the immutable Config.
func resolve(fc fileConfig, lookup LookupFunc) (*Config, error) {
	cfg := &Config{
		compiler:       fc.Solidity,
		defaultNetwork: normalizeName(fc.DefaultNetwork),
		networks:       make(map[string]Network, len(fc.Networks)),
	}

	for name, nf := range fc.Networks {
		n, err := resolveNetwork(normalizeName(name), nf, lookup)
		if err != nil {
			return nil, err
		}
		cfg.networks[n.Name] = n
	}
	return cfg, nil
}

func resolveNetwork(name string, nf networkFile, lookup LookupFunc) (Network, error) {
	n := Network{
		Name:        name,
		URLTemplate: nf.URL,
		ChainID:     nf.ChainID,
		InMemory:    nf.InMemory,
	}
	n.URL, n.unresolvedURLVars = template(nf.URL).expand(lookup)

	creds, vars := resolveCredentials(nf.Accounts, lookup)
	n.credentialVars = vars
	if nf.InMemory && creds.IsEmpty() {
		creds = accounts.DevCredentials()
		n.devAccounts = true
	}
	n.Accounts = creds

	if nf.InitialBaseFeePerGas != "" {
		if !nf.InMemory {
			return Network{}, NewValidationError(
				fmt.Sprintf("networks.%s.initial_base_fee_per_gas", name),
				"only supported on the in-memory network")
		}
		fee, err := ethereum.ParseBig(nf.InitialBaseFeePerGas)
		if err != nil {
			return Network{}, NewValidationError(
				fmt.Sprintf("networks.%s.initial_base_fee_per_gas", name), err.Error())
		}
		n.InitialBaseFeePerGas = fee
	} else if nf.InMemory {
		n.InitialBaseFeePerGas = big.NewInt(0)
	}

	if nf.Accounts.Path != "" {
		if err := accounts.ValidatePath(nf.Accounts.Path); err != nil {
			return Network{}, NewValidationError(fmt.Sprintf("networks.%s.accounts.path", name), err.Error())
		}
	}

	return n, nil
}

// resolveCredentials prefers a non-empty mnemonic and falls back to the
// private key list with unset entries dropped. It also returns every variable
// the account settings reference so a missing credential can be named.
func resolveCredentials(af accountsFile, lookup LookupFunc) (accounts.Credentials, []string) {
	var vars []string
	seen := make(map[string]struct{})
	collect := func(t template) {
		for _, name := range t.vars() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				vars = append(vars, name)
			}
		}
	}

	collect(template(af.Mnemonic))
	for _, k := range af.PrivateKeys {
		collect(template(k))
	}

	mnemonic, _ := template(af.Mnemonic).expand(lookup)
	if mnemonic != "" {
		passphrase, _ := template(af.Passphrase).expand(lookup)
		return accounts.FromMnemonic(accounts.HDAccounts{
			Mnemonic:     mnemonic,
			Path:         af.Path,
			InitialIndex: af.InitialIndex,
			Count:        af.Count,
			Passphrase:   passphrase,
		}), vars
	}

	keys := make([]string, 0, len(af.PrivateKeys))
	for _, k := range af.PrivateKeys {
		v, _ := template(k).expand(lookup)
		keys = append(keys, v)
	}
	return accounts.FromPrivateKeys(keys...), vars
}
