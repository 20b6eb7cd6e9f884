package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/eerc"
	"github.com/veilfund/veilfund/keystore"
	"github.com/veilfund/veilfund/wallet"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register with the eERC system",
	Long: `Register your wallet with the encrypted-ERC20 system.

This command will:
  - Generate your decryption key through the eERC SDK (cached locally,
    never rotated)
  - Register your public key with the on-chain registrar

Registration is required once per wallet and mode before you can hold
or move encrypted tokens.

Examples:
  veilfund register                      # Register in converter mode
  veilfund register --mode standalone    # Register in standalone mode`,
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
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

	fmt.Println("🔑 Registering with the eERC system")
	fmt.Printf("   Address: %s\n", address.Hex())
	fmt.Printf("   Mode:    %s\n", mode)
	fmt.Println()

	fmt.Println("⏳ Waiting for the eERC SDK service...")
	sdk, err := newSDK()
	if err != nil {
		return err
	}

	store, err := keystore.New()
	if err != nil {
		return fmt.Errorf("failed to open key store: %w", err)
	}

	fmt.Println("⏳ Generating decryption key...")
	key, err := eerc.EnsureDecryptionKey(sdk, store, mode, address.Hex())
	if err != nil {
		return err
	}

	fmt.Println("⏳ Submitting registration proof...")
	txHash, err := sdk.Register(mode, address.Hex(), key)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Println("✅ Registered successfully!")
	if txHash != "" {
		fmt.Printf("📝 Transaction Hash: %s\n", txHash)
		fmt.Printf("🔗 Explorer: %s\n", client.ExplorerTxURL(txHash))
	}
	fmt.Println()
	fmt.Println("🔐 Your decryption key is cached at ~/.veilfund/keys")
	fmt.Println("💡 Run 'veilfund balance' to see your encrypted balance")

	return nil
}

func init() {
	addModeFlag(registerCmd)
}
