package eerc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient()
	require.NoError(t, err)
	client.SetBaseURL(server.URL)
	return client
}

func TestWaitReady(t *testing.T) {
	var calls int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/health", r.URL.Path)
		initialized := atomic.AddInt32(&calls, 1) >= 3
		json.NewEncoder(w).Encode(map[string]bool{"initialized": initialized})
	}))

	err := client.WaitReady(5, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWaitReadyGivesUp(t *testing.T) {
	var calls int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(map[string]bool{"initialized": false})
	}))

	err := client.WaitReady(4, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready after 4 attempts")
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestGenerateKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/keys/generate", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "converter", req["mode"])
		assert.Equal(t, "0xabc", req["address"])

		json.NewEncoder(w).Encode(map[string]string{"decryptionKey": "dk-123"})
	}))

	key, err := client.GenerateKey(ModeConverter, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "dk-123", key)
}

func TestGenerateKeyRejectsEmptyKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))

	_, err := client.GenerateKey(ModeConverter, "0xabc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty decryption key")
}

func TestPrivateTransfer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfer", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "25.5", req["amount"])
		assert.Equal(t, "standalone", req["mode"])

		json.NewEncoder(w).Encode(TransferResult{
			TransferHash: "0x" + "11" + "22",
			TxHash:       "0xdeadbeef",
		})
	}))

	result, err := client.PrivateTransfer(ModeStandalone, "0xfrom", "0xto", "25.5", "")
	require.NoError(t, err)
	assert.Equal(t, "0x1122", result.TransferHash)
	assert.Equal(t, "0xdeadbeef", result.TxHash)
}

func TestPrivateTransferRequiresTransferHash(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TransferResult{TxHash: "0xdeadbeef"})
	}))

	_, err := client.PrivateTransfer(ModeConverter, "0xfrom", "0xto", "1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transfer hash")
}

func TestSDKErrorPropagation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "receiver not registered"})
	}))

	_, err := client.PrivateTransfer(ModeConverter, "0xfrom", "0xto", "1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receiver not registered")
}

func TestDecryptBalance(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/balance/decrypt", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"balance": "137.25"})
	}))

	balance, err := client.DecryptBalance(ModeConverter, "0xabc", "dk-123")
	require.NoError(t, err)
	assert.Equal(t, "137.25", balance)
}

func TestDecryptMessageTrimsPadding(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/message/decrypt", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": PadNull("thank you", MessageWidth)})
	}))

	msg, err := client.DecryptMessage("dk-123", "ciphertext")
	require.NoError(t, err)
	assert.Equal(t, "thank you", msg)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("converter")
	require.NoError(t, err)
	assert.Equal(t, ModeConverter, mode)

	mode, err = ParseMode("standalone")
	require.NoError(t, err)
	assert.Equal(t, ModeStandalone, mode)

	_, err = ParseMode("hybrid")
	require.Error(t, err)
}
