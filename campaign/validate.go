package campaign

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered token amount.
// Malformed and non-positive values are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

// CheckBalance verifies the decrypted balance covers the requested amount
func CheckBalance(amount, balance decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return fmt.Errorf("insufficient balance: have %s, need %s", balance.String(), amount.String())
	}
	return nil
}
