package api

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Client handles JSON-RPC calls to the chain node
type Client struct {
	httpClient *http.Client
	rpcURL     string
	network    string
}

// NewClient creates a new API client for the currently selected network
func NewClient() *Client {
	// Determine the current network
	network := NetworkMainnet // Default to mainnet

	homeDir, err := os.UserHomeDir()
	if err == nil {
		networkPath := filepath.Join(homeDir, ".veilfund", "network.txt")

		// Read network file if it exists
		if _, err := os.Stat(networkPath); err == nil {
			data, err := os.ReadFile(networkPath)
			if err == nil {
				network = strings.TrimSpace(string(data))
				// Validate network
				if network != NetworkMainnet && network != NetworkTestnet {
					network = NetworkMainnet // Default to mainnet if invalid
				}
			}
		}
	}

	rpcURL := MainnetRPC
	if network == NetworkTestnet {
		rpcURL = TestnetRPC
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rpcURL:  rpcURL,
		network: network,
	}
}

// IsTestnet returns true if the client is using the Fuji testnet
func (c *Client) IsTestnet() bool {
	return c.network == NetworkTestnet
}

// SetRPCURL overrides the RPC endpoint. Used by tests and custom nodes.
func (c *Client) SetRPCURL(url string) {
	c.rpcURL = url
}

// ChainID returns the chain ID for the current network
func (c *Client) ChainID() *big.Int {
	if c.IsTestnet() {
		return big.NewInt(TestnetChainID)
	}
	return big.NewInt(MainnetChainID)
}

// FactoryAddress returns the campaign factory address for the current network
func (c *Client) FactoryAddress() common.Address {
	if c.IsTestnet() {
		return common.HexToAddress(TestnetFactoryAddress)
	}
	return common.HexToAddress(MainnetFactoryAddress)
}

// ExplorerTxURL builds the block explorer link for a transaction hash
func (c *Client) ExplorerTxURL(txHash string) string {
	if c.IsTestnet() {
		return fmt.Sprintf("%s/tx/%s", TestnetExplorerURL, txHash)
	}
	return fmt.Sprintf("%s/tx/%s", MainnetExplorerURL, txHash)
}

// GetBalance fetches the native token balance of an address
func (c *Client) GetBalance(address string) (*big.Int, error) {
	result, err := c.callString("eth_getBalance", address, "latest")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return parseHexBigInt(result)
}

// GetNonce fetches the transaction count of an address
func (c *Client) GetNonce(address string) (uint64, error) {
	result, err := c.callString("eth_getTransactionCount", address, "latest")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch nonce: %w", err)
	}
	return parseHexUint(result)
}

// GetGasPrice fetches the current gas price
func (c *Client) GetGasPrice() (*big.Int, error) {
	result, err := c.callString("eth_gasPrice")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}
	return parseHexBigInt(result)
}

// EstimateGas estimates the gas needed for a transaction, with a 20% buffer.
// Falls back to a conservative default when estimation fails.
func (c *Client) EstimateGas(from, to string, value *big.Int, data []byte) (uint64, error) {
	txObject := map[string]interface{}{
		"from": from,
		"to":   to,
	}
	if value != nil && value.Sign() > 0 {
		txObject["value"] = "0x" + value.Text(16)
	}
	if len(data) > 0 {
		txObject["data"] = "0x" + common.Bytes2Hex(data)
	}

	const defaultGas = 150000

	result, err := c.callString("eth_estimateGas", txObject)
	if err != nil {
		return defaultGas, nil
	}

	gas, err := parseHexUint(result)
	if err != nil {
		return defaultGas, nil
	}

	// Buffer against estimation drift between call and inclusion
	return gas + (gas / 5), nil
}

// SendRawTransaction broadcasts a signed transaction and returns its hash
func (c *Client) SendRawTransaction(signedTx string) (string, error) {
	result, err := c.callString("eth_sendRawTransaction", signedTx)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	return result, nil
}

// GetTransactionReceipt fetches a receipt, or nil if the tx is still pending
func (c *Client) GetTransactionReceipt(txHash string) (*TxReceipt, error) {
	payload := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "eth_getTransactionReceipt",
		"params":  []interface{}{txHash},
		"id":      1,
	}

	response, err := c.postJSON(c.rpcURL, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}

	var receiptResp struct {
		Result *TxReceipt `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(response, &receiptResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if receiptResp.Error != nil {
		return nil, fmt.Errorf("RPC error: %s", receiptResp.Error.Message)
	}

	return receiptResp.Result, nil
}

// ethCall performs a read-only contract call and returns the raw return data
func (c *Client) ethCall(to common.Address, data []byte) ([]byte, error) {
	callObject := map[string]interface{}{
		"to":   to.Hex(),
		"data": "0x" + common.Bytes2Hex(data),
	}

	result, err := c.callString("eth_call", callObject, "latest")
	if err != nil {
		return nil, err
	}

	return common.FromHex(result), nil
}

// callString issues a JSON-RPC call whose result is a hex-encoded string
func (c *Client) callString(method string, params ...interface{}) (string, error) {
	if params == nil {
		params = []interface{}{}
	}

	payload := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      1,
	}

	response, err := c.postJSON(c.rpcURL, payload)
	if err != nil {
		return "", err
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(response, &rpcResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if rpcResp.Error != nil {
		return "", fmt.Errorf("RPC error: %s", rpcResp.Error.Message)
	}

	if rpcResp.Result == nil {
		return "", fmt.Errorf("no result in response")
	}

	result, ok := rpcResp.Result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected result format for %s", method)
	}

	return result, nil
}

// postJSON sends a POST request with JSON payload
func (c *Client) postJSON(url string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := c.httpClient.Post(url, "application/json", strings.NewReader(string(jsonData)))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Helper to convert hex string to uint64
func parseHexUint(hexStr string) (uint64, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	return strconv.ParseUint(hexStr, 16, 64)
}

// Helper to convert hex string to big.Int
func parseHexBigInt(hexStr string) (*big.Int, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")

	value := new(big.Int)
	_, success := value.SetString(hexStr, 16)
	if !success {
		return nil, fmt.Errorf("invalid hex value: %s", hexStr)
	}

	return value, nil
}
