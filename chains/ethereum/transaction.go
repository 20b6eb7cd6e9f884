package ethereum

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// DefaultGasLimit is the fallback when the node cannot estimate gas.
// Contract calls with proofs in calldata can be heavy, so stay conservative.
const DefaultGasLimit = 150000

// ParseAddress validates and parses a hex address
func ParseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid address: %s", address)
	}
	return common.HexToAddress(address), nil
}

// NewTransaction creates an unsigned legacy transaction
func NewTransaction(nonce uint64, to common.Address, value *big.Int, gasLimit uint64, gasPrice *big.Int, data []byte) *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
}

// ValidateTransaction performs basic sanity checks before signing
func ValidateTransaction(tx *types.Transaction) error {
	if tx.To() == nil {
		return fmt.Errorf("missing recipient")
	}
	if tx.Value() != nil && tx.Value().Sign() < 0 {
		return fmt.Errorf("negative value")
	}
	if tx.Gas() == 0 {
		return fmt.Errorf("zero gas limit")
	}
	if tx.GasPrice() == nil || tx.GasPrice().Sign() <= 0 {
		return fmt.Errorf("invalid gas price")
	}
	return nil
}

// SignTransaction signs a transaction with EIP-155 replay protection and
// returns the hex-encoded raw transaction ready for broadcast
func SignTransaction(tx *types.Transaction, privateKey *ecdsa.PrivateKey, chainID *big.Int) (string, error) {
	signer := types.LatestSignerForChainID(chainID)

	signedTx, err := types.SignTx(tx, signer, privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	raw, err := signedTx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction: %w", err)
	}

	return hexutil.Encode(raw), nil
}

// EtherToWei converts an ether amount to wei
func EtherToWei(ether *big.Float) *big.Int {
	wei := new(big.Float).Mul(ether, big.NewFloat(1e18))
	result, _ := wei.Int(nil)
	return result
}

// WeiToEther converts a wei amount to ether for display
func WeiToEther(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	ether := new(big.Float).SetInt(wei)
	ether.Quo(ether, big.NewFloat(1e18))
	result, _ := ether.Float64()
	return result
}
