// Package ethereum provides hex and number codecs for Ethereum configuration values.
package ethereum

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// PrivateKeyLength is the size of a secp256k1 private key in bytes.
const PrivateKeyLength = 32

// DecodePrivateKey decodes a hex private key, with or without 0x prefix.
func DecodePrivateKey(s string) ([]byte, error) {
	s = trim0x(strings.TrimSpace(s))
	if len(s) != PrivateKeyLength*2 {
		return nil, fmt.Errorf("invalid private key length: %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// DecodeBig decodes a non-negative hex string to *big.Int.
func DecodeBig(s string) (*big.Int, error) {
	s = trim0x(s)
	if s == "" {
		return big.NewInt(0), nil
	}
	val := new(big.Int)
	if _, ok := val.SetString(s, 16); !ok {
		return nil, fmt.Errorf("invalid hex number: %s", s)
	}
	if val.Sign() < 0 {
		return nil, fmt.Errorf("negative number: %s", s)
	}
	return val, nil
}

// ParseBig parses a non-negative integer given either in decimal or as 0x hex.
// An empty string parses as zero.
func ParseBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if Has0xPrefix(s) {
		return DecodeBig(s)
	}
	if s == "" {
		return big.NewInt(0), nil
	}
	val := new(big.Int)
	if _, ok := val.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid number: %s", s)
	}
	if val.Sign() < 0 {
		return nil, fmt.Errorf("negative number: %s", s)
	}
	return val, nil
}

// EncodeBig encodes a *big.Int to hex string with 0x prefix.
func EncodeBig(v *big.Int) string {
	if v == nil {
		return "0x0"
	}
	return fmt.Sprintf("0x%x", v)
}

// Has0xPrefix returns true if the string has a 0x prefix.
func Has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func trim0x(s string) string {
	if Has0xPrefix(s) {
		return s[2:]
	}
	return s
}
