package cmd

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/wallet"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Show your wallet address",
	Long: `Show your wallet's address on the current network.

Donors need this address registered with the eERC system before they
can receive private transfers.

Examples:
  veilfund address        # Print the address
  veilfund address --qr   # Print the address with a scannable QR code`,
	RunE: runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}

	address, err := manager.GetEthereumAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	networkType := "Mainnet"
	if manager.IsTestnet() {
		networkType = "Testnet (Fuji)"
	}

	fmt.Println("📍 Wallet Address")
	fmt.Printf("🌐 Network: %s\n", networkType)
	fmt.Println()
	fmt.Printf("   %s\n", address.Hex())

	qrFlag, _ := cmd.Flags().GetBool("qr")
	if qrFlag {
		qr, err := qrcode.New(address.Hex(), qrcode.Medium)
		if err != nil {
			return fmt.Errorf("failed to generate QR code: %w", err)
		}
		fmt.Println()
		fmt.Println(qr.ToSmallString(false))
	}

	return nil
}

func init() {
	addressCmd.Flags().Bool("qr", false, "Display address as a QR code")
}
