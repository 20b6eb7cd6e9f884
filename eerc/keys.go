package eerc

import (
	"fmt"

	"github.com/veilfund/veilfund/keystore"
)

// EnsureDecryptionKey returns the cached decryption key for a wallet/mode
// pair, generating and caching it through the SDK on first use. Keys are
// never rotated once cached.
func EnsureDecryptionKey(sdk SDK, store *keystore.Store, mode Mode, address string) (string, error) {
	if key, ok := store.Get(string(mode), address); ok {
		return key, nil
	}

	key, err := sdk.GenerateKey(mode, address)
	if err != nil {
		return "", fmt.Errorf("failed to generate decryption key: %w", err)
	}

	if err := store.Put(string(mode), address, key); err != nil {
		return "", fmt.Errorf("failed to cache decryption key: %w", err)
	}

	return key, nil
}
