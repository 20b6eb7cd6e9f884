package ethereum

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecipient = common.HexToAddress("0x4444444444444444444444444444444444444444")

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x4444444444444444444444444444444444444444")
	require.NoError(t, err)
	assert.Equal(t, testRecipient, addr)

	for _, raw := range []string{"", "0x123", "not-an-address", "4444"} {
		_, err := ParseAddress(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestValidateTransaction(t *testing.T) {
	tx := NewTransaction(0, testRecipient, big.NewInt(0), DefaultGasLimit, big.NewInt(25000000000), nil)
	require.NoError(t, ValidateTransaction(tx))

	zeroGas := NewTransaction(0, testRecipient, big.NewInt(0), 0, big.NewInt(1), nil)
	assert.Error(t, ValidateTransaction(zeroGas))

	zeroPrice := NewTransaction(0, testRecipient, big.NewInt(0), DefaultGasLimit, big.NewInt(0), nil)
	assert.Error(t, ValidateTransaction(zeroPrice))
}

func TestSignTransaction(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	chainID := big.NewInt(43113)
	tx := NewTransaction(7, testRecipient, big.NewInt(0), DefaultGasLimit, big.NewInt(25000000000), []byte{0xde, 0xad})

	raw, err := SignTransaction(tx, key, chainID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "0x"))

	// The broadcast payload must decode back to the same transaction,
	// recoverable to the signing address under EIP-155
	var decoded types.Transaction
	require.NoError(t, decoded.UnmarshalBinary(common.FromHex(raw)))

	assert.Equal(t, uint64(7), decoded.Nonce())
	assert.Equal(t, testRecipient, *decoded.To())
	assert.Equal(t, chainID, decoded.ChainId())

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), &decoded)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), sender)
}

func TestEtherWeiConversion(t *testing.T) {
	wei := EtherToWei(big.NewFloat(1.5))
	assert.Equal(t, "1500000000000000000", wei.String())

	assert.InDelta(t, 1.5, WeiToEther(wei), 1e-12)
	assert.Equal(t, float64(0), WeiToEther(nil))
	assert.Equal(t, float64(0), WeiToEther(big.NewInt(0)))
}
