package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veilfund/veilfund/wallet"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock wallet for session",
	Long: `Unlock your Veilfund wallet for the current session.
This command will decrypt your vault and load your keys into memory.
The session stays valid for 30 minutes.

Example:
  veilfund unlock`,
	RunE: runUnlock,
}

func runUnlock(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()

	// Check if wallet exists
	if !manager.VaultExists() {
		return fmt.Errorf("no wallet found. Run 'veilfund init' to create a new wallet")
	}

	// Check if already unlocked
	if manager.IsUnlocked() {
		fmt.Println("✅ Wallet is already unlocked")
		return nil
	}

	// Get password from user
	fmt.Print("Enter your wallet password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println() // New line after password input

	// Unlock wallet
	fmt.Println("Unlocking wallet...")
	err = manager.Unlock(string(password))
	if err != nil {
		return fmt.Errorf("failed to unlock wallet: %w", err)
	}

	fmt.Println("✅ Wallet unlocked successfully!")
	fmt.Println("💡 Use 'veilfund address' to see your address")
	fmt.Println("💡 Use 'veilfund balance' to check your encrypted balance")

	return nil
}
