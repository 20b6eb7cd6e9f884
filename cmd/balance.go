package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/chains/ethereum"
	"github.com/veilfund/veilfund/keystore"
	"github.com/veilfund/veilfund/wallet"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Check your encrypted balance",
	Long: `Decrypt and display your encrypted token balance.

The balance ciphertext is read on-chain and decrypted locally with your
cached decryption key through the eERC SDK. The native AVAX balance is
shown as well since registrations and campaign calls need gas.

Examples:
  veilfund balance                      # Converter mode balance
  veilfund balance --mode standalone    # Standalone mode balance`,
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()
	client := api.NewClient()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}

	mode, err := getMode(cmd)
	if err != nil {
		return err
	}

	address, err := manager.GetEthereumAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	fmt.Println("💰 Wallet Balances")

	networkType := "Mainnet"
	if manager.IsTestnet() {
		networkType = "Testnet (Fuji)"
	}
	fmt.Printf("🌐 Network: %s\n", networkType)
	fmt.Println()

	// Native balance for gas
	native, err := client.GetBalance(address.Hex())
	if err != nil {
		fmt.Printf("❌ AVAX: Error - %v\n", err)
	} else {
		fmt.Printf("🔺 AVAX: %.6f\n", ethereum.WeiToEther(native))
	}

	// Encrypted balance through the SDK
	sdk, err := newSDK()
	if err != nil {
		fmt.Printf("❌ Encrypted balance: %v\n", err)
		fmt.Printf("   📍 Address: %s\n", address.Hex())
		return nil
	}

	store, err := keystore.New()
	if err != nil {
		return fmt.Errorf("failed to open key store: %w", err)
	}

	key, ok := store.Get(string(mode), address.Hex())
	if !ok {
		fmt.Printf("🔒 Encrypted (%s): no decryption key cached\n", mode)
		fmt.Println("   💡 Run 'veilfund register' first")
		fmt.Printf("   📍 Address: %s\n", address.Hex())
		return nil
	}

	balance, err := decryptedBalance(sdk, mode, address.Hex(), key)
	if err != nil {
		fmt.Printf("❌ Encrypted (%s): %v\n", mode, err)
	} else {
		fmt.Printf("🔐 Encrypted (%s): %s tokens\n", mode, balance.String())
	}

	fmt.Printf("   📍 Address: %s\n", address.Hex())

	return nil
}

func init() {
	addModeFlag(balanceCmd)
}
