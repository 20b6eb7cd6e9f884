package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/campaign"
	"github.com/veilfund/veilfund/wallet"
)

var depositCmd = &cobra.Command{
	Use:   "deposit [amount]",
	Short: "Wrap public tokens into the encrypted pool",
	Long: `Deposit public ERC-20 tokens into the encrypted pool (converter mode).

After the deposit your balance is confidential: nobody can read how
much you hold or donate.

Example:
  veilfund deposit 100`,
	Args: cobra.ExactArgs(1),
	RunE: runDeposit,
}

var redeemCmd = &cobra.Command{
	Use:   "redeem [amount]",
	Short: "Unwrap encrypted tokens back to public ERC-20",
	Long: `Withdraw encrypted tokens from the pool back to the public
ERC-20 token (converter mode).

Example:
  veilfund redeem 50`,
	Args: cobra.ExactArgs(1),
	RunE: runRedeem,
}

func runDeposit(cmd *cobra.Command, args []string) error {
	return runConversion(args[0], true)
}

func runRedeem(cmd *cobra.Command, args []string) error {
	return runConversion(args[0], false)
}

func runConversion(rawAmount string, isDeposit bool) error {
	manager := wallet.NewManager()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}

	amount, err := campaign.ParseAmount(rawAmount)
	if err != nil {
		return err
	}

	address, err := manager.GetEthereumAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	if isDeposit {
		fmt.Println("📥 Depositing into the encrypted pool")
	} else {
		fmt.Println("📤 Redeeming from the encrypted pool")
	}
	fmt.Printf("   Address: %s\n", address.Hex())
	fmt.Printf("   Amount:  %s tokens\n", amount.String())
	fmt.Printf("   Network: %s\n", manager.GetCurrentNetwork())
	fmt.Println()

	if !getTransactionConfirmation(manager) {
		fmt.Println("❌ Cancelled by user")
		return nil
	}

	fmt.Println("⏳ Waiting for the eERC SDK service...")
	sdk, err := newSDK()
	if err != nil {
		return err
	}

	fmt.Println("⏳ Generating proof and sending...")
	var txHash string
	if isDeposit {
		result, err := sdk.Deposit(address.Hex(), amount.String())
		if err != nil {
			return err
		}
		txHash = result.TxHash
	} else {
		result, err := sdk.Withdraw(address.Hex(), amount.String())
		if err != nil {
			return err
		}
		txHash = result.TxHash
	}

	fmt.Println("✅ Transaction sent successfully!")
	if txHash != "" {
		fmt.Printf("📝 Transaction Hash: %s\n", txHash)
	}
	fmt.Println("💡 Run 'veilfund balance' to see your updated encrypted balance")

	return nil
}
