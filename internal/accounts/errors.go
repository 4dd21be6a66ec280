package accounts

import (
	"errors"
	"fmt"
)

// Sentinel errors - Credentials
var (
	ErrInvalidPrivateKey = errors.New("accounts: invalid private key")
	ErrInvalidMnemonic   = errors.New("accounts: invalid mnemonic")
	ErrInvalidPath       = errors.New("accounts: invalid derivation path")
	ErrNoCredentials     = errors.New("accounts: no credentials configured")
)

// KeyError wraps an error with the position of the offending account.
type KeyError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("account #%d: %v", e.Index, e.Err)
}

// Unwrap implements the errors.Unwrap interface for error chaining.
func (e *KeyError) Unwrap() error {
	return e.Err
}
