package config

import (
	"math/big"

	"github.com/kpaschalidis/nft-world/internal/accounts"
)

// InMemoryNetwork is the name of the default local in-memory network.
const InMemoryNetwork = "hardhat"

// Network is a resolved network endpoint.
type Network struct {
	Name string
	// URL is the endpoint with environment variables substituted. Empty for
	// the in-memory network.
	URL string
	// URLTemplate is the url as configured, before substitution.
	URLTemplate string
	ChainID     uint64
	InMemory    bool
	// InitialBaseFeePerGas is set for the in-memory network only.
	InitialBaseFeePerGas *big.Int
	Accounts             accounts.Credentials

	unresolvedURLVars []string
	credentialVars    []string
	devAccounts       bool
}

// UnresolvedURLVars returns the variables the url referenced that were unset.
func (n Network) UnresolvedURLVars() []string {
	return cloneStrings(n.unresolvedURLVars)
}

// CredentialVars returns the variables the account settings reference.
func (n Network) CredentialVars() []string {
	return cloneStrings(n.credentialVars)
}

// HasCredentials reports whether the network has at least one account.
func (n Network) HasCredentials() bool {
	return !n.Accounts.IsEmpty()
}

func (n Network) clone() Network {
	out := n
	if n.InitialBaseFeePerGas != nil {
		out.InitialBaseFeePerGas = new(big.Int).Set(n.InitialBaseFeePerGas)
	}
	out.unresolvedURLVars = cloneStrings(n.unresolvedURLVars)
	out.credentialVars = cloneStrings(n.credentialVars)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
