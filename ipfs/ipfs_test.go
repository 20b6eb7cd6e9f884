package ipfs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockHashDeterministic(t *testing.T) {
	a := MockHash("banner.png", 1024)
	b := MockHash("banner.png", 1024)
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, MockHash("banner.png", 1025))
	assert.NotEqual(t, a, MockHash("other.png", 1024))

	assert.True(t, strings.HasPrefix(a, "Qm"))
	assert.Len(t, a, 46)
}

func TestMockPinnerUpload(t *testing.T) {
	pinner := NewMockPinner("https://gateway.pinata.cloud/ipfs")

	result, err := pinner.Upload("banner.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.Equal(t, int64(16), result.Size)
	assert.Equal(t, MockHash("banner.png", 16), result.Hash)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/"+result.Hash, result.URL)
}

func TestClientUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "banner.png", header.Filename)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"IpfsHash": "QmTestHash",
			"PinSize":  int64(16),
		})
	}))
	defer server.Close()

	client := NewClient(Config{
		JWT:     "test-jwt",
		PinURL:  server.URL,
		Gateway: "https://gateway.pinata.cloud/ipfs",
	})

	result, err := client.Upload("banner.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "QmTestHash", result.Hash)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmTestHash", result.URL)
	assert.Equal(t, int64(16), result.Size)
}

func TestClientUploadServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(Config{JWT: "bad", PinURL: server.URL, Gateway: "https://gw"})

	_, err := client.Upload("banner.png", strings.NewReader("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestClientUploadRejectsMissingHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{JWT: "jwt", PinURL: server.URL, Gateway: "https://gw"})

	_, err := client.Upload("banner.png", strings.NewReader("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hash")
}

func TestGatewayURLTrailingSlash(t *testing.T) {
	assert.Equal(t, "https://gw/ipfs/QmX", gatewayURL("https://gw/ipfs", "QmX"))
	assert.Equal(t, "https://gw/ipfs/QmX", gatewayURL("https://gw/ipfs/", "QmX"))
}
