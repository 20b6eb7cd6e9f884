package ipfs

import (
	"crypto/sha256"
	"fmt"
	"io"
)

// MockPinner is the fallback used when no pinning credentials are
// configured. It never touches the network: the pseudo-CID is derived
// from the file name and size, so identical file metadata always maps
// to the same hash.
type MockPinner struct {
	gateway string
}

var _ Pinner = (*MockPinner)(nil)

// NewMockPinner creates a mock pinner using the given gateway for URLs
func NewMockPinner(gateway string) *MockPinner {
	return &MockPinner{gateway: gateway}
}

// Upload consumes the reader to measure size and returns a deterministic
// pseudo-CID for the file metadata
func (m *MockPinner) Upload(filename string, data io.Reader) (*UploadResult, error) {
	size, err := io.Copy(io.Discard, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	hash := MockHash(filename, size)
	return &UploadResult{
		Hash: hash,
		URL:  m.GatewayURL(hash),
		Size: size,
	}, nil
}

// GatewayURL builds the public gateway URL for a CID
func (m *MockPinner) GatewayURL(cid string) string {
	return gatewayURL(m.gateway, cid)
}

// MockHash derives a deterministic pseudo-CID from file metadata.
// The Qm prefix mimics a CIDv0 so downstream formatting stays realistic.
func MockHash(filename string, size int64) string {
	digest := sha256.Sum256([]byte(fmt.Sprintf("%s:%d", filename, size)))
	return fmt.Sprintf("Qm%x", digest[:22])
}
