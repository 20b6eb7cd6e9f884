// Package eerc wraps the external encrypted-balance SDK service.
//
// Every cryptographic operation (key generation, encryption, zero-knowledge
// proof generation, balance decryption) is delegated to the SDK; nothing in
// this package touches the underlying circuits.
package eerc

import "fmt"

// Mode selects which eERC deployment a key or operation targets
type Mode string

const (
	// ModeConverter wraps an existing public ERC-20
	ModeConverter Mode = "converter"
	// ModeStandalone is a native encrypted token
	ModeStandalone Mode = "standalone"
)

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeConverter, ModeStandalone:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode: %s. Use 'converter' or 'standalone'", s)
	}
}

// TransferResult is returned by the SDK after a private transfer.
// TransferHash is the bytes32 identifier registered on the campaign contract.
type TransferResult struct {
	TransferHash string `json:"transferHash"`
	TxHash       string `json:"txHash"`
}

// OperationResult is returned by mint/burn/deposit/withdraw operations
type OperationResult struct {
	TxHash string `json:"txHash"`
}

// SDK is the contract of the encrypted-balance SDK service.
// Amounts cross this boundary as decimal strings in token units.
type SDK interface {
	// GenerateKey derives the per-wallet, per-mode decryption key
	GenerateKey(mode Mode, address string) (string, error)

	// Register registers the wallet's public key with the eERC registrar
	Register(mode Mode, address, decryptionKey string) (string, error)

	// PrivateMint mints encrypted tokens (standalone mode, owner only)
	PrivateMint(mode Mode, to, amount string) (*OperationResult, error)

	// PrivateBurn burns encrypted tokens
	PrivateBurn(mode Mode, from, amount string) (*OperationResult, error)

	// PrivateTransfer moves encrypted tokens with an optional attached message
	PrivateTransfer(mode Mode, from, to, amount, message string) (*TransferResult, error)

	// Deposit wraps public ERC-20 tokens into the encrypted pool (converter mode)
	Deposit(address, amount string) (*OperationResult, error)

	// Withdraw unwraps encrypted tokens back to public ERC-20 (converter mode)
	Withdraw(address, amount string) (*OperationResult, error)

	// DecryptBalance decrypts the wallet's encrypted balance
	DecryptBalance(mode Mode, address, decryptionKey string) (string, error)

	// DecryptMessage decrypts a message attached to an incoming transfer
	DecryptMessage(decryptionKey, ciphertext string) (string, error)
}
