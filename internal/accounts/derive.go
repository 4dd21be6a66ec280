package accounts

import (
	"crypto/ecdsa"
	"fmt"

	cosmoshd "github.com/cosmos/cosmos-sdk/crypto/hd"
	bip39 "github.com/cosmos/go-bip39"
	gethaccounts "github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

// hardenedOffset is the first hardened BIP-32 child index.
const hardenedOffset = 0x80000000

// DeriveKeys derives hd.Count secp256k1 keys at path/initialIndex+i.
func DeriveKeys(hd HDAccounts) ([]*ecdsa.PrivateKey, error) {
	hd = hd.WithDefaults()
	if err := validateHD(hd); err != nil {
		return nil, err
	}

	paths, err := derivationPaths(hd)
	if err != nil {
		return nil, err
	}

	derive := cosmoshd.Secp256k1.Derive()
	keys := make([]*ecdsa.PrivateKey, 0, len(paths))
	for i, path := range paths {
		raw, err := derive(hd.Mnemonic, hd.Passphrase, path)
		if err != nil {
			return nil, &KeyError{Index: i, Err: fmt.Errorf("derive %s: %w", path, err)}
		}
		key, err := crypto.ToECDSA(raw)
		if err != nil {
			return nil, &KeyError{Index: i, Err: fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)}
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// derivationPaths expands the base path into one full path per account.
func derivationPaths(hd HDAccounts) ([]string, error) {
	base, err := gethaccounts.ParseDerivationPath(hd.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	paths := make([]string, 0, hd.Count)
	for i := uint32(0); i < hd.Count; i++ {
		path := make(gethaccounts.DerivationPath, len(base), len(base)+1)
		copy(path, base)
		path = append(path, hd.InitialIndex+i)
		paths = append(paths, path.String())
	}
	return paths, nil
}

func validateHD(hd HDAccounts) error {
	if !bip39.IsMnemonicValid(hd.Mnemonic) {
		return ErrInvalidMnemonic
	}
	if err := ValidatePath(hd.Path); err != nil {
		return err
	}
	if hd.Count == 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidPath)
	}
	if uint64(hd.InitialIndex)+uint64(hd.Count) > hardenedOffset {
		return fmt.Errorf("%w: account indices overflow into hardened range", ErrInvalidPath)
	}
	return nil
}

// ValidatePath checks that path is a valid BIP-32 derivation path.
func ValidatePath(path string) error {
	if _, err := gethaccounts.ParseDerivationPath(path); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return nil
}
