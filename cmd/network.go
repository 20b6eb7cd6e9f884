package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
)

var networkCmd = &cobra.Command{
	Use:   "network [mainnet|testnet]",
	Short: "Show or change network",
	Long: `Show the current network or switch between mainnet and testnet.

Mainnet is the Avalanche C-Chain; testnet is Fuji. The campaign factory
and eERC contracts are deployed separately per network.

Examples:
  veilfund network            # Show current network
  veilfund network mainnet    # Switch to mainnet
  veilfund network testnet    # Switch to Fuji testnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current network
	if len(args) == 0 {
		return showCurrentNetwork()
	}

	network := strings.ToLower(args[0])

	// Validate network argument
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet' or 'testnet'", network)
	}

	return setNetwork(network)
}

func showCurrentNetwork() error {
	network := getCurrentNetwork()

	if network == api.NetworkMainnet {
		fmt.Printf("🌐 Current network: %s\n", color.GreenString("Mainnet (Avalanche C-Chain)"))
		fmt.Println()
		fmt.Println("Network details:")
		fmt.Printf("   - RPC: %s\n", api.MainnetRPC)
		fmt.Printf("   - Chain ID: %d\n", api.MainnetChainID)
		fmt.Printf("   - Campaign factory: %s\n", api.MainnetFactoryAddress)
	} else {
		fmt.Printf("🌐 Current network: %s\n", color.YellowString("Testnet (Fuji)"))
		fmt.Println()
		fmt.Println("Network details:")
		fmt.Printf("   - RPC: %s\n", api.TestnetRPC)
		fmt.Printf("   - Chain ID: %d\n", api.TestnetChainID)
		fmt.Printf("   - Campaign factory: %s\n", api.TestnetFactoryAddress)
		fmt.Println()
		fmt.Println("⚠️  Warning: testnet campaigns hold no real funds")
	}

	fmt.Println("💡 Veilfund uses different wallets per network for your safety")
	fmt.Println("🔐 Your mainnet and testnet addresses are separate")

	return nil
}

func setNetwork(network string) error {
	// Get home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Create .veilfund directory if it doesn't exist
	configDir := filepath.Join(homeDir, ".veilfund")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write network to network.txt file
	networkPath := filepath.Join(configDir, "network.txt")
	if err := os.WriteFile(networkPath, []byte(network), 0600); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}

	fmt.Printf("🌐 Switched to %s network\n", strings.ToUpper(network))

	if network == api.NetworkTestnet {
		fmt.Println()
		fmt.Println("⚠️  You are now on TESTNET mode (Fuji)")
		fmt.Println("   Campaigns and donations use test tokens only")
	} else {
		fmt.Println()
		fmt.Println("✅ You are now on MAINNET mode (Avalanche C-Chain)")
		fmt.Println("   Donations and withdrawals move real funds")
	}
	fmt.Println("💡 Veilfund uses different wallets per network for your safety")
	fmt.Println("🔐 Your eERC registration and decryption keys are per-network")

	return nil
}

// getCurrentNetwork returns the current network (mainnet or testnet)
func getCurrentNetwork() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return api.NetworkMainnet // Default to mainnet on error
	}

	networkPath := filepath.Join(homeDir, ".veilfund", "network.txt")

	data, err := os.ReadFile(networkPath)
	if err != nil {
		return api.NetworkMainnet
	}

	network := strings.TrimSpace(string(data))
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		return api.NetworkMainnet
	}

	return network
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
