package cmd

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/chains/ethereum"
	"github.com/veilfund/veilfund/wallet"
)

// sendContractTx signs and broadcasts a contract call from the wallet.
// Returns the transaction hash.
func sendContractTx(manager *wallet.Manager, client *api.Client, to common.Address, calldata []byte) (string, error) {
	sender, err := manager.GetEthereumAddress()
	if err != nil {
		return "", fmt.Errorf("failed to get sender address: %w", err)
	}

	nonce, err := client.GetNonce(sender.Hex())
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := client.GetGasPrice()
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	// Add 20% to gas price to ensure faster inclusion
	gasPrice.Mul(gasPrice, big.NewInt(120))
	gasPrice.Div(gasPrice, big.NewInt(100))

	gasLimit, err := client.EstimateGas(sender.Hex(), to.Hex(), nil, calldata)
	if err != nil {
		gasLimit = ethereum.DefaultGasLimit
	}

	tx := ethereum.NewTransaction(nonce, to, big.NewInt(0), gasLimit, gasPrice, calldata)
	if err := ethereum.ValidateTransaction(tx); err != nil {
		return "", fmt.Errorf("invalid transaction: %w", err)
	}

	privateKey, err := manager.GetEthereumKey()
	if err != nil {
		return "", fmt.Errorf("failed to get private key: %w", err)
	}

	signedTx, err := ethereum.SignTransaction(tx, privateKey, client.ChainID())
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	txHash, err := client.SendRawTransaction(signedTx)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return txHash, nil
}
