package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "0.3.1"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "veilfund",
	Aliases: []string{"vf"},
	Short:   "A privacy-preserving crowdfunding client",
	Long: `Veilfund is a command-line client for privacy-preserving crowdfunding
on the encrypted-ERC20 (eERC) token standard. Donations and withdrawals
move as confidential transfers; only opaque transfer hashes are
registered on campaign contracts.

Features:
  • BIP-39/BIP-44 wallet with AES-256-GCM encrypted vault storage
  • eERC registration and per-wallet decryption key caching
  • Campaign creation, browsing and trust dashboards
  • Private donations and withdrawals with on-chain registration
  • Deposit/redeem between public ERC-20 and the encrypted pool
  • IPFS pinning for campaign media (mock fallback without credentials)
  • Avalanche C-Chain mainnet and Fuji testnet support

Privacy:
  • Balances and transfer amounts stay encrypted on-chain
  • All proofs are generated by the local eERC SDK service
  • Decryption keys never leave this machine

Examples:
  veilfund init                      # Create new wallet
  veilfund unlock                    # Unlock wallet
  veilfund register                  # Register with the eERC system
  veilfund campaigns                 # Browse campaigns
  veilfund donate 0x1234... 25       # Donate 25 tokens privately
  veilfund trust 0x1234...           # Show a campaign trust dashboard
  veilfund network testnet           # Switch to Fuji testnet`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress output")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(campaignsCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(donateCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(redeemCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(burnCmd)
	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(trustCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(recoveryPhraseCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Veilfund v%s\n", version)
	},
}
