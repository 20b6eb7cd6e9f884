package eerc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilfund/veilfund/keystore"
)

// stubSDK implements SDK with overridable key generation; the remaining
// operations are never reached by these tests.
type stubSDK struct {
	SDK
	generateKey func(mode Mode, address string) (string, error)
}

func (s *stubSDK) GenerateKey(mode Mode, address string) (string, error) {
	return s.generateKey(mode, address)
}

func TestEnsureDecryptionKeyGeneratesOnce(t *testing.T) {
	store := keystore.NewAt(t.TempDir())

	var calls int
	sdk := &stubSDK{generateKey: func(mode Mode, address string) (string, error) {
		calls++
		return fmt.Sprintf("dk-%s-%d", mode, calls), nil
	}}

	key, err := EnsureDecryptionKey(sdk, store, ModeConverter, "0xABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "dk-converter-1", key)

	// Second call must come from the cache
	key, err = EnsureDecryptionKey(sdk, store, ModeConverter, "0xABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "dk-converter-1", key)
	assert.Equal(t, 1, calls)
}

func TestEnsureDecryptionKeyPerMode(t *testing.T) {
	store := keystore.NewAt(t.TempDir())

	sdk := &stubSDK{generateKey: func(mode Mode, address string) (string, error) {
		return "dk-" + string(mode), nil
	}}

	converter, err := EnsureDecryptionKey(sdk, store, ModeConverter, "0xabc")
	require.NoError(t, err)
	standalone, err := EnsureDecryptionKey(sdk, store, ModeStandalone, "0xabc")
	require.NoError(t, err)

	assert.NotEqual(t, converter, standalone)
}

func TestEnsureDecryptionKeyPropagatesSDKError(t *testing.T) {
	store := keystore.NewAt(t.TempDir())

	sdk := &stubSDK{generateKey: func(mode Mode, address string) (string, error) {
		return "", fmt.Errorf("circuit not loaded")
	}}

	_, err := EnsureDecryptionKey(sdk, store, ModeConverter, "0xabc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit not loaded")

	// Nothing must be cached after a failure
	_, ok := store.Get(string(ModeConverter), "0xabc")
	assert.False(t, ok)
}
