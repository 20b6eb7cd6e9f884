package keystore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryName(t *testing.T) {
	name := EntryName("converter", "0xAbCd1234")
	assert.Equal(t, "eerc-key-converter-0xabcd1234", name)

	name = EntryName("standalone", "0xffff")
	assert.Equal(t, "eerc-key-standalone-0xffff", name)
}

func TestPutGetRoundTrip(t *testing.T) {
	store := NewAt(t.TempDir())

	require.NoError(t, store.Put("converter", "0xAbc", "secret-key"))

	key, ok := store.Get("converter", "0xAbc")
	require.True(t, ok)
	assert.Equal(t, "secret-key", key)

	// Lookups are case-insensitive on the address
	key, ok = store.Get("converter", "0xABC")
	require.True(t, ok)
	assert.Equal(t, "secret-key", key)
}

func TestGetMissing(t *testing.T) {
	store := NewAt(t.TempDir())

	_, ok := store.Get("converter", "0xabc")
	assert.False(t, ok)
}

func TestGetIgnoresOtherMode(t *testing.T) {
	store := NewAt(t.TempDir())

	require.NoError(t, store.Put("converter", "0xabc", "converter-key"))

	_, ok := store.Get("standalone", "0xabc")
	assert.False(t, ok)
}

func TestPutRejectsEmptyKey(t *testing.T) {
	store := NewAt(t.TempDir())
	require.Error(t, store.Put("converter", "0xabc", ""))
}

func TestKeyFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewAt(dir)

	require.NoError(t, store.Put("converter", "0xabc", "secret-key"))

	info, err := os.Stat(filepath.Join(dir, EntryName("converter", "0xabc")))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDelete(t *testing.T) {
	store := NewAt(t.TempDir())

	require.NoError(t, store.Put("converter", "0xabc", "secret-key"))
	require.NoError(t, store.Delete("converter", "0xabc"))

	_, ok := store.Get("converter", "0xabc")
	assert.False(t, ok)

	// Deleting a missing entry is not an error
	require.NoError(t, store.Delete("converter", "0xabc"))
}
