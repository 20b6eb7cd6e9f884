package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/keystore"
	"github.com/veilfund/veilfund/wallet"
)

var messageCmd = &cobra.Command{
	Use:   "message [ciphertext]",
	Short: "Decrypt a donation message",
	Long: `Decrypt a message attached to an incoming private transfer using
your cached decryption key. Campaign creators use this to read supporter
messages exported by the SDK service.

Example:
  veilfund message 0x8f3a...`,
	Args: cobra.ExactArgs(1),
	RunE: runMessage,
}

func runMessage(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()

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

	store, err := keystore.New()
	if err != nil {
		return fmt.Errorf("failed to open key store: %w", err)
	}

	key, ok := store.Get(string(mode), address.Hex())
	if !ok {
		return fmt.Errorf("no decryption key cached for %s. Run 'veilfund register' first", mode)
	}

	sdk, err := newSDK()
	if err != nil {
		return err
	}

	message, err := sdk.DecryptMessage(key, args[0])
	if err != nil {
		return err
	}

	if message == "" {
		fmt.Println("📭 No message attached to this transfer")
		return nil
	}

	fmt.Printf("💬 Message: %s\n", message)
	return nil
}

func init() {
	addModeFlag(messageCmd)
}
