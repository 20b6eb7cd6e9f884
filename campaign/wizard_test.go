package campaign

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCampaign = common.HexToAddress("0x1111111111111111111111111111111111111111")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWizardHappyPath(t *testing.T) {
	transferHash := common.HexToHash("0xaa")
	var transferred decimal.Decimal

	wizard := NewWizard(Donation,
		func(campaign common.Address, amount decimal.Decimal) (common.Hash, error) {
			assert.Equal(t, testCampaign, campaign)
			transferred = amount
			return transferHash, nil
		},
		func(campaign common.Address, hash common.Hash) (string, error) {
			assert.Equal(t, transferHash, hash)
			return "0xregistration", nil
		},
	)

	assert.Equal(t, StepSelect, wizard.Step())
	require.NoError(t, wizard.SelectCampaign(testCampaign))
	assert.Equal(t, StepAmount, wizard.Step())

	require.NoError(t, wizard.EnterAmount("25", dec("100")))
	assert.Equal(t, StepConfirm, wizard.Step())

	result, err := wizard.Confirm()
	require.NoError(t, err)
	assert.Equal(t, StepComplete, wizard.Step())
	assert.Equal(t, transferHash, result.TransferHash)
	assert.Equal(t, "0xregistration", result.RegistrationTx)
	assert.True(t, dec("25").Equal(transferred))
}

func TestWizardRegisterNotCalledWhenTransferFails(t *testing.T) {
	registerCalled := false

	wizard := NewWizard(Donation,
		func(campaign common.Address, amount decimal.Decimal) (common.Hash, error) {
			return common.Hash{}, fmt.Errorf("proof generation failed")
		},
		func(campaign common.Address, hash common.Hash) (string, error) {
			registerCalled = true
			return "", nil
		},
	)

	require.NoError(t, wizard.SelectCampaign(testCampaign))
	require.NoError(t, wizard.EnterAmount("10", dec("50")))

	_, err := wizard.Confirm()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proof generation failed")
	assert.Equal(t, StepFailed, wizard.Step())
	assert.False(t, registerCalled)
}

func TestWizardRegistrationFailureIsSwallowed(t *testing.T) {
	transferHash := common.HexToHash("0xbb")
	var logged string

	wizard := NewWizard(Withdrawal,
		func(campaign common.Address, amount decimal.Decimal) (common.Hash, error) {
			return transferHash, nil
		},
		func(campaign common.Address, hash common.Hash) (string, error) {
			return "", fmt.Errorf("out of gas")
		},
	)
	wizard.SetLogf(func(format string, args ...interface{}) {
		logged = fmt.Sprintf(format, args...)
	})

	require.NoError(t, wizard.SelectCampaign(testCampaign))
	require.NoError(t, wizard.EnterAmount("5", dec("10")))

	result, err := wizard.Confirm()
	require.NoError(t, err)
	assert.Equal(t, StepComplete, wizard.Step())
	assert.Equal(t, transferHash, result.TransferHash)
	assert.Empty(t, result.RegistrationTx)
	assert.Contains(t, logged, "withdrawal")
	assert.Contains(t, logged, "out of gas")
}

func TestWizardValidationKeepsAmountStep(t *testing.T) {
	wizard := NewWizard(Donation, nil, nil)
	require.NoError(t, wizard.SelectCampaign(testCampaign))

	require.Error(t, wizard.EnterAmount("not-a-number", dec("100")))
	assert.Equal(t, StepAmount, wizard.Step())

	require.Error(t, wizard.EnterAmount("-5", dec("100")))
	assert.Equal(t, StepAmount, wizard.Step())

	require.Error(t, wizard.EnterAmount("200", dec("100")))
	assert.Equal(t, StepAmount, wizard.Step())

	// A valid retry still works
	require.NoError(t, wizard.EnterAmount("50", dec("100")))
	assert.Equal(t, StepConfirm, wizard.Step())
}

func TestWizardRejectsOutOfOrderCalls(t *testing.T) {
	wizard := NewWizard(Donation, nil, nil)

	require.Error(t, wizard.EnterAmount("10", dec("100")))

	_, err := wizard.Confirm()
	require.Error(t, err)

	require.NoError(t, wizard.SelectCampaign(testCampaign))
	require.Error(t, wizard.SelectCampaign(testCampaign))
}

func TestWizardRejectsZeroCampaignAddress(t *testing.T) {
	wizard := NewWizard(Donation, nil, nil)
	require.Error(t, wizard.SelectCampaign(common.Address{}))
	assert.Equal(t, StepSelect, wizard.Step())
}

func TestWizardReset(t *testing.T) {
	wizard := NewWizard(Donation,
		func(campaign common.Address, amount decimal.Decimal) (common.Hash, error) {
			return common.Hash{}, fmt.Errorf("boom")
		},
		nil,
	)

	require.NoError(t, wizard.SelectCampaign(testCampaign))
	require.NoError(t, wizard.EnterAmount("1", dec("10")))
	_, err := wizard.Confirm()
	require.Error(t, err)

	wizard.Reset()
	assert.Equal(t, StepSelect, wizard.Step())
	require.NoError(t, wizard.SelectCampaign(testCampaign))
}
