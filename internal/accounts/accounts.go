// Package accounts models the credentials attached to a network endpoint:
// either an explicit list of private keys or a key set derived from a mnemonic.
package accounts

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/kpaschalidis/nft-world/internal/ethereum"
)

// HD derivation defaults.
const (
	DefaultHDPath  = "m/44'/60'/0'/0"
	DefaultHDCount = 20
)

// Redacted replaces secret material in exported output.
const Redacted = "<redacted>"

// Kind identifies the credential source of a network.
type Kind int

const (
	KindNone Kind = iota
	KindPrivateKeys
	KindMnemonic
)

// String returns the kind name used in listings.
func (k Kind) String() string {
	switch k {
	case KindPrivateKeys:
		return "private-keys"
	case KindMnemonic:
		return "mnemonic"
	default:
		return "none"
	}
}

// HDAccounts describes a key set derived from a BIP-39 mnemonic.
type HDAccounts struct {
	Mnemonic     string
	Path         string
	InitialIndex uint32
	Count        uint32
	Passphrase   string
}

// WithDefaults returns HDAccounts with default values applied.
func (h HDAccounts) WithDefaults() HDAccounts {
	h.Mnemonic = normalizeMnemonic(h.Mnemonic)
	if h.Path == "" {
		h.Path = DefaultHDPath
	}
	if h.Count == 0 {
		h.Count = DefaultHDCount
	}
	return h
}

// Credentials is the resolved credential set of a network. The zero value
// holds no credentials.
type Credentials struct {
	kind Kind
	keys []string
	hd   HDAccounts
}

// None returns an empty credential set.
func None() Credentials {
	return Credentials{}
}

// FromPrivateKeys builds a credential set from private keys. Empty entries are
// dropped, so a list built from unset variables degrades to no credentials.
func FromPrivateKeys(keys ...string) Credentials {
	filtered := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k != "" {
			filtered = append(filtered, k)
		}
	}
	if len(filtered) == 0 {
		return None()
	}
	return Credentials{kind: KindPrivateKeys, keys: filtered}
}

// FromMnemonic builds a credential set derived from a mnemonic. An empty
// mnemonic yields no credentials.
func FromMnemonic(hd HDAccounts) Credentials {
	hd = hd.WithDefaults()
	if hd.Mnemonic == "" {
		return None()
	}
	return Credentials{kind: KindMnemonic, hd: hd}
}

// Kind returns the credential source.
func (c Credentials) Kind() Kind {
	return c.kind
}

// IsEmpty reports whether no credentials are configured.
func (c Credentials) IsEmpty() bool {
	return c.kind == KindNone
}

// PrivateKeys returns a copy of the configured private keys.
func (c Credentials) PrivateKeys() []string {
	if c.kind != KindPrivateKeys {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// HD returns the mnemonic settings when the credentials are mnemonic-derived.
func (c Credentials) HD() (HDAccounts, bool) {
	if c.kind != KindMnemonic {
		return HDAccounts{}, false
	}
	return c.hd, true
}

// Len returns the number of accounts the credentials provide.
func (c Credentials) Len() int {
	switch c.kind {
	case KindPrivateKeys:
		return len(c.keys)
	case KindMnemonic:
		return int(c.hd.Count)
	default:
		return 0
	}
}

// Validate checks the credentials without deriving any keys.
func (c Credentials) Validate() error {
	switch c.kind {
	case KindNone:
		return ErrNoCredentials
	case KindPrivateKeys:
		for i, k := range c.keys {
			if _, err := parsePrivateKey(k); err != nil {
				return &KeyError{Index: i, Err: err}
			}
		}
		return nil
	case KindMnemonic:
		return validateHD(c.hd)
	default:
		return fmt.Errorf("accounts: unknown credential kind %d", c.kind)
	}
}

// Keys returns the private keys of all accounts.
func (c Credentials) Keys() ([]*ecdsa.PrivateKey, error) {
	switch c.kind {
	case KindPrivateKeys:
		keys := make([]*ecdsa.PrivateKey, 0, len(c.keys))
		for i, k := range c.keys {
			key, err := parsePrivateKey(k)
			if err != nil {
				return nil, &KeyError{Index: i, Err: err}
			}
			keys = append(keys, key)
		}
		return keys, nil
	case KindMnemonic:
		return DeriveKeys(c.hd)
	default:
		return nil, ErrNoCredentials
	}
}

// Addresses returns the account addresses in order.
func (c Credentials) Addresses() ([]common.Address, error) {
	keys, err := c.Keys()
	if err != nil {
		return nil, err
	}
	addrs := make([]common.Address, len(keys))
	for i, key := range keys {
		addrs[i] = crypto.PubkeyToAddress(key.PublicKey)
	}
	return addrs, nil
}

// HDExport is the exported form of mnemonic credentials.
type HDExport struct {
	Mnemonic     string `json:"mnemonic" yaml:"mnemonic"`
	Path         string `json:"path" yaml:"path"`
	InitialIndex uint32 `json:"initialIndex" yaml:"initialIndex"`
	Count        uint32 `json:"count" yaml:"count"`
	Passphrase   string `json:"passphrase" yaml:"passphrase"`
}

// Export returns the credentials in the shape the build toolchain expects:
// a list of private keys or an HDExport. Secrets are redacted unless reveal
// is set.
func (c Credentials) Export(reveal bool) any {
	switch c.kind {
	case KindMnemonic:
		out := HDExport{
			Mnemonic:     c.hd.Mnemonic,
			Path:         c.hd.Path,
			InitialIndex: c.hd.InitialIndex,
			Count:        c.hd.Count,
			Passphrase:   c.hd.Passphrase,
		}
		if !reveal {
			out.Mnemonic = Redacted
			if out.Passphrase != "" {
				out.Passphrase = Redacted
			}
		}
		return out
	case KindPrivateKeys:
		out := make([]string, len(c.keys))
		for i, k := range c.keys {
			if reveal {
				out[i] = k
			} else {
				out[i] = Redacted
			}
		}
		return out
	default:
		return []string{}
	}
}

func parsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	raw, err := ethereum.DecodePrivateKey(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

func normalizeMnemonic(m string) string {
	return strings.Join(strings.Fields(m), " ")
}
