// Package ipfs pins campaign media to IPFS through a Pinata-style
// pinning service, with a deterministic local mock when no credentials
// are configured.
package ipfs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds pinning service credentials and the gateway base URL
type Config struct {
	JWT     string `envconfig:"PINATA_JWT"`
	PinURL  string `envconfig:"PINATA_PIN_URL" default:"https://api.pinata.cloud/pinning/pinFileToIPFS"`
	Gateway string `envconfig:"IPFS_GATEWAY" default:"https://gateway.pinata.cloud/ipfs"`
}

// UploadResult describes a pinned file
type UploadResult struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Pinner uploads files to content-addressed storage
type Pinner interface {
	Upload(filename string, data io.Reader) (*UploadResult, error)
	GatewayURL(cid string) string
}

// Client is a Pinata pinning client
type Client struct {
	httpClient *http.Client
	cfg        Config
}

var _ Pinner = (*Client)(nil)

// NewPinner returns a real pinning client when credentials are configured,
// and the deterministic mock otherwise
func NewPinner() (Pinner, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.JWT == "" {
		return NewMockPinner(cfg.Gateway), nil
	}
	return NewClient(cfg), nil
}

// NewClient creates a pinning client with explicit configuration
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg: cfg,
	}
}

// Upload pins a file and returns its content hash, gateway URL and size
func (c *Client) Upload(filename string, data io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	size, err := io.Copy(part, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.PinURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.cfg.JWT)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	var pinResp struct {
		IpfsHash string `json:"IpfsHash"`
		PinSize  int64  `json:"PinSize"`
	}
	if err := json.Unmarshal(body, &pinResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if pinResp.IpfsHash == "" {
		return nil, fmt.Errorf("pinning service returned no hash")
	}

	if pinResp.PinSize > 0 {
		size = pinResp.PinSize
	}

	return &UploadResult{
		Hash: pinResp.IpfsHash,
		URL:  c.GatewayURL(pinResp.IpfsHash),
		Size: size,
	}, nil
}

// GatewayURL builds the public gateway URL for a CID
func (c *Client) GatewayURL(cid string) string {
	return gatewayURL(c.cfg.Gateway, cid)
}

func gatewayURL(gateway, cid string) string {
	return strings.TrimRight(gateway, "/") + "/" + cid
}
