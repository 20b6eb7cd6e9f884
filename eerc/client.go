package eerc

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the SDK service connection settings
type Config struct {
	URL string `envconfig:"EERC_SDK_URL" default:"http://127.0.0.1:3690"`
}

// Client talks to the eERC SDK service over HTTP
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ SDK = (*Client)(nil)

// NewClient creates an SDK client from environment configuration
func NewClient() (*Client, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // proof generation is slow
		},
		baseURL: strings.TrimRight(cfg.URL, "/"),
	}, nil
}

// WaitReady polls the SDK health endpoint until it reports initialized.
// The SDK loads proving keys at startup, which can take a while; retry a
// bounded number of times and give up with the last error.
func (c *Client) WaitReady(attempts int, delay time.Duration) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(delay)
		}

		var health struct {
			Initialized bool `json:"initialized"`
		}
		if err := c.getJSON("/v1/health", &health); err != nil {
			lastErr = err
			continue
		}
		if health.Initialized {
			return nil
		}
		lastErr = fmt.Errorf("SDK is still initializing")
	}
	return fmt.Errorf("SDK not ready after %d attempts: %w", attempts, lastErr)
}

// GenerateKey derives the per-wallet, per-mode decryption key
func (c *Client) GenerateKey(mode Mode, address string) (string, error) {
	req := map[string]string{"mode": string(mode), "address": address}
	var resp struct {
		DecryptionKey string `json:"decryptionKey"`
	}
	if err := c.postJSON("/v1/keys/generate", req, &resp); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	if resp.DecryptionKey == "" {
		return "", fmt.Errorf("SDK returned empty decryption key")
	}
	return resp.DecryptionKey, nil
}

// Register registers the wallet's public key with the eERC registrar
func (c *Client) Register(mode Mode, address, decryptionKey string) (string, error) {
	req := map[string]string{
		"mode":          string(mode),
		"address":       address,
		"decryptionKey": decryptionKey,
	}
	var resp OperationResult
	if err := c.postJSON("/v1/register", req, &resp); err != nil {
		return "", fmt.Errorf("failed to register: %w", err)
	}
	return resp.TxHash, nil
}

// PrivateMint mints encrypted tokens
func (c *Client) PrivateMint(mode Mode, to, amount string) (*OperationResult, error) {
	req := map[string]string{"mode": string(mode), "to": to, "amount": amount}
	var resp OperationResult
	if err := c.postJSON("/v1/mint", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to mint: %w", err)
	}
	return &resp, nil
}

// PrivateBurn burns encrypted tokens
func (c *Client) PrivateBurn(mode Mode, from, amount string) (*OperationResult, error) {
	req := map[string]string{"mode": string(mode), "from": from, "amount": amount}
	var resp OperationResult
	if err := c.postJSON("/v1/burn", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to burn: %w", err)
	}
	return &resp, nil
}

// PrivateTransfer moves encrypted tokens with an optional attached message
func (c *Client) PrivateTransfer(mode Mode, from, to, amount, message string) (*TransferResult, error) {
	req := map[string]string{
		"mode":    string(mode),
		"from":    from,
		"to":      to,
		"amount":  amount,
		"message": message,
	}
	var resp TransferResult
	if err := c.postJSON("/v1/transfer", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to transfer: %w", err)
	}
	if resp.TransferHash == "" {
		return nil, fmt.Errorf("SDK returned no transfer hash")
	}
	return &resp, nil
}

// Deposit wraps public ERC-20 tokens into the encrypted pool
func (c *Client) Deposit(address, amount string) (*OperationResult, error) {
	req := map[string]string{"address": address, "amount": amount}
	var resp OperationResult
	if err := c.postJSON("/v1/deposit", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to deposit: %w", err)
	}
	return &resp, nil
}

// Withdraw unwraps encrypted tokens back to public ERC-20
func (c *Client) Withdraw(address, amount string) (*OperationResult, error) {
	req := map[string]string{"address": address, "amount": amount}
	var resp OperationResult
	if err := c.postJSON("/v1/withdraw", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to withdraw: %w", err)
	}
	return &resp, nil
}

// DecryptBalance decrypts the wallet's encrypted balance
func (c *Client) DecryptBalance(mode Mode, address, decryptionKey string) (string, error) {
	req := map[string]string{
		"mode":          string(mode),
		"address":       address,
		"decryptionKey": decryptionKey,
	}
	var resp struct {
		Balance string `json:"balance"`
	}
	if err := c.postJSON("/v1/balance/decrypt", req, &resp); err != nil {
		return "", fmt.Errorf("failed to decrypt balance: %w", err)
	}
	return resp.Balance, nil
}

// DecryptMessage decrypts a message attached to an incoming transfer
func (c *Client) DecryptMessage(decryptionKey, ciphertext string) (string, error) {
	req := map[string]string{
		"decryptionKey": decryptionKey,
		"ciphertext":    ciphertext,
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.postJSON("/v1/message/decrypt", req, &resp); err != nil {
		return "", fmt.Errorf("failed to decrypt message: %w", err)
	}
	return TrimNull(resp.Message), nil
}

// SetBaseURL overrides the SDK endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

func (c *Client) postJSON(path string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", strings.NewReader(string(jsonData)))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		// The SDK reports failures as {"error": "..."}
		var sdkErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &sdkErr) == nil && sdkErr.Error != "" {
			return fmt.Errorf("SDK error: %s", sdkErr.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
