package api

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CampaignInfo is a read-through snapshot of a campaign contract.
// All fields are sourced on-chain; nothing here is mutated locally.
type CampaignInfo struct {
	Address         common.Address `json:"address"`
	Creator         common.Address `json:"creator"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Deadline        time.Time      `json:"deadline"`
	Active          bool           `json:"active"`
	DonationCount   uint64         `json:"donation_count"`
	WithdrawalCount uint64         `json:"withdrawal_count"`
}

// rpcResponse represents a JSON-RPC response envelope
type rpcResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Result  interface{} `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// TxReceipt holds the subset of a transaction receipt the CLI reports
type TxReceipt struct {
	TxHash      string `json:"transactionHash"`
	BlockNumber string `json:"blockNumber"`
	Status      string `json:"status"`
}

// Succeeded reports whether the receipt status is 0x1.
func (r *TxReceipt) Succeeded() bool {
	return r.Status == "0x1"
}
