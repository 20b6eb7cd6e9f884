package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/campaign"
	"github.com/veilfund/veilfund/chains/ethereum"
	"github.com/veilfund/veilfund/eerc"
	"github.com/veilfund/veilfund/wallet"
)

var mintCmd = &cobra.Command{
	Use:   "mint [address] [amount]",
	Short: "Mint encrypted tokens (standalone mode)",
	Long: `Mint encrypted tokens to an address. Standalone mode only, and the
token owner key must be behind the SDK service. Mostly useful on Fuji
for seeding test balances.

Example:
  veilfund mint 0x1234... 1000`,
	Args: cobra.ExactArgs(2),
	RunE: runMint,
}

var burnCmd = &cobra.Command{
	Use:   "burn [amount]",
	Short: "Burn encrypted tokens (standalone mode)",
	Long: `Burn encrypted tokens from your own balance. Standalone mode only.

Example:
  veilfund burn 1000`,
	Args: cobra.ExactArgs(1),
	RunE: runBurn,
}

func runMint(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}

	to, err := ethereum.ParseAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	amount, err := campaign.ParseAmount(args[1])
	if err != nil {
		return err
	}

	fmt.Println("⏳ Waiting for the eERC SDK service...")
	sdk, err := newSDK()
	if err != nil {
		return err
	}

	fmt.Println("⏳ Generating mint proof and sending...")
	result, err := sdk.PrivateMint(eerc.ModeStandalone, to.Hex(), amount.String())
	if err != nil {
		return err
	}

	fmt.Println("✅ Mint sent successfully!")
	if result.TxHash != "" {
		fmt.Printf("📝 Transaction Hash: %s\n", result.TxHash)
	}

	return nil
}

func runBurn(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}

	amount, err := campaign.ParseAmount(args[0])
	if err != nil {
		return err
	}

	address, err := manager.GetEthereumAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	if !getTransactionConfirmation(manager) {
		fmt.Println("❌ Burn cancelled by user")
		return nil
	}

	fmt.Println("⏳ Waiting for the eERC SDK service...")
	sdk, err := newSDK()
	if err != nil {
		return err
	}

	fmt.Println("⏳ Generating burn proof and sending...")
	result, err := sdk.PrivateBurn(eerc.ModeStandalone, address.Hex(), amount.String())
	if err != nil {
		return err
	}

	fmt.Println("✅ Burn sent successfully!")
	if result.TxHash != "" {
		fmt.Printf("📝 Transaction Hash: %s\n", result.TxHash)
	}

	return nil
}
