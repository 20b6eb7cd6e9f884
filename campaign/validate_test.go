package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("25.5")
	require.NoError(t, err)
	assert.Equal(t, "25.5", amount.String())

	amount, err = ParseAmount("0.000001")
	require.NoError(t, err)
	assert.True(t, amount.IsPositive())
}

func TestParseAmountRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.2.3", "1,5"} {
		_, err := ParseAmount(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestParseAmountRejectsNonPositive(t *testing.T) {
	for _, raw := range []string{"0", "-1", "-0.5"} {
		_, err := ParseAmount(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestCheckBalance(t *testing.T) {
	require.NoError(t, CheckBalance(dec("10"), dec("10")))
	require.NoError(t, CheckBalance(dec("5"), dec("10")))

	err := CheckBalance(dec("10.01"), dec("10"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
}
