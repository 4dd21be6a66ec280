package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpaschalidis/nft-world/internal/accounts"
)

func TestSelectMissingCredentials(t *testing.T) {
	cfg := load(t, map[string]string{"INFURA_PROJECT_ID": testProjectID})

	t.Run("production network names the private key", func(t *testing.T) {
		_, err := cfg.Select("mainnet")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingCredentials)

		var credErr *MissingCredentialsError
		require.True(t, errors.As(err, &credErr))
		assert.Equal(t, "mainnet", credErr.Network)
		assert.Equal(t, []string{"WALLET_PRIVATE_KEY"}, credErr.Vars)
	})

	t.Run("test network names both sources", func(t *testing.T) {
		_, err := cfg.Select("rinkeby")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingCredentials)
		assert.Contains(t, err.Error(), "MNEMONIC or WALLET_PRIVATE_KEY")
	})

	t.Run("in-memory network still usable", func(t *testing.T) {
		n, err := cfg.Select(InMemoryNetwork)
		require.NoError(t, err)
		assert.True(t, n.InMemory)
	})
}

func TestSelectDefaultNetwork(t *testing.T) {
	cfg := load(t, nil)

	n, err := cfg.Select("")
	require.NoError(t, err)
	assert.Equal(t, InMemoryNetwork, n.Name)
	assert.Equal(t, accounts.DefaultHDCount, n.Accounts.Len())
}

func TestSelectUnresolvedURL(t *testing.T) {
	cfg := load(t, map[string]string{"WALLET_PRIVATE_KEY": testKey})

	_, err := cfg.Select("mainnet")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedURL)
	assert.Contains(t, err.Error(), "INFURA_PROJECT_ID")

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "select", netErr.Op)
}

func TestSelectMalformedCredentials(t *testing.T) {
	t.Run("short private key", func(t *testing.T) {
		cfg := load(t, map[string]string{"WALLET_PRIVATE_KEY": "0xabc", "INFURA_PROJECT_ID": testProjectID})

		_, err := cfg.Select("mainnet")
		require.Error(t, err)
		assert.ErrorIs(t, err, accounts.ErrInvalidPrivateKey)
		assert.NotErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("invalid mnemonic", func(t *testing.T) {
		cfg := load(t, map[string]string{"MNEMONIC": "not twelve words", "INFURA_PROJECT_ID": testProjectID})

		_, err := cfg.Select("rinkeby")
		assert.ErrorIs(t, err, accounts.ErrInvalidMnemonic)
	})
}

func TestSelectReady(t *testing.T) {
	cfg := load(t, map[string]string{
		"INFURA_PROJECT_ID":  testProjectID,
		"WALLET_PRIVATE_KEY": testKey,
		"MNEMONIC":           testMnemonic,
	})

	mainnet, err := cfg.Select("mainnet")
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.infura.io/v3/"+testProjectID, mainnet.URL)
	assert.Equal(t, accounts.KindPrivateKeys, mainnet.Accounts.Kind())

	rinkeby, err := cfg.Select("rinkeby")
	require.NoError(t, err)
	assert.Equal(t, accounts.KindMnemonic, rinkeby.Accounts.Kind())

	addrs, err := rinkeby.Accounts.Addresses()
	require.NoError(t, err)
	assert.Len(t, addrs, accounts.DefaultHDCount)
}
