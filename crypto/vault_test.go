package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

func TestVaultRoundTrip(t *testing.T) {
	vault, err := NewVault(testMnemonic, "correct horse battery staple")
	require.NoError(t, err)

	mnemonic, err := vault.Decrypt("correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestVaultWrongPassword(t *testing.T) {
	vault, err := NewVault(testMnemonic, "right-password")
	require.NoError(t, err)

	_, err = vault.Decrypt("wrong-password")
	require.Error(t, err)
}

func TestVaultValidatePassword(t *testing.T) {
	vault, err := NewVault(testMnemonic, "hunter2")
	require.NoError(t, err)

	assert.True(t, vault.ValidatePassword("hunter2"))
	assert.False(t, vault.ValidatePassword("hunter3"))
	assert.False(t, vault.ValidatePassword(""))
}

func TestVaultUniqueSaltAndNonce(t *testing.T) {
	a, err := NewVault(testMnemonic, "pw")
	require.NoError(t, err)
	b, err := NewVault(testMnemonic, "pw")
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.Data, b.Data)
}

func TestVaultTamperDetection(t *testing.T) {
	vault, err := NewVault(testMnemonic, "pw")
	require.NoError(t, err)

	vault.Data[0] ^= 0xff
	_, err = vault.Decrypt("pw")
	require.Error(t, err)
}
