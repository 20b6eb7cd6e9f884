package cmd

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/ipfs"
	"github.com/veilfund/veilfund/wallet"
)

var createCmd = &cobra.Command{
	Use:   "create [title] [description] [deadline]",
	Short: "Create a new campaign",
	Long: `Create a new crowdfunding campaign through the factory contract.

The deadline is a date in YYYY-MM-DD format. An optional banner image
can be pinned to IPFS; its gateway URL is appended to the description.

Examples:
  veilfund create "Clean Water" "Wells for the village" 2026-12-31
  veilfund create "Clean Water" "Wells" 2026-12-31 --banner ./banner.png`,
	Args: cobra.ExactArgs(3),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()
	client := api.NewClient()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}

	title := args[0]
	description := args[1]

	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	deadline, err := time.Parse("2006-01-02", args[2])
	if err != nil {
		return fmt.Errorf("invalid deadline: %s. Use YYYY-MM-DD", args[2])
	}
	if !deadline.After(time.Now()) {
		return fmt.Errorf("deadline must be in the future")
	}

	fmt.Println("📦 Creating Campaign")
	fmt.Println()

	// Pin the banner first so the campaign description can reference it
	bannerPath, _ := cmd.Flags().GetString("banner")
	if bannerPath != "" {
		result, err := pinBanner(bannerPath)
		if err != nil {
			return fmt.Errorf("failed to pin banner: %w", err)
		}
		fmt.Printf("🖼️  Banner pinned: %s (%d bytes)\n", result.Hash, result.Size)
		description = description + "\n\nbanner: " + result.URL
	}

	calldata, err := api.CreateCampaignData(title, description, big.NewInt(deadline.Unix()))
	if err != nil {
		return err
	}

	fmt.Printf("   Title:    %s\n", title)
	fmt.Printf("   Deadline: %s\n", deadline.Format("2006-01-02"))
	fmt.Printf("   Network:  %s\n", manager.GetCurrentNetwork())
	fmt.Println()

	txHash, err := sendContractTx(manager, client, client.FactoryAddress(), calldata)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	fmt.Println("✅ Campaign creation submitted!")
	fmt.Printf("📝 Transaction Hash: %s\n", txHash)
	fmt.Printf("🔗 Explorer: %s\n", client.ExplorerTxURL(txHash))
	fmt.Println()
	fmt.Println("💡 Run 'veilfund campaigns --creator <your address>' once mined")

	return nil
}

func pinBanner(path string) (*ipfs.UploadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	pinner, err := ipfs.NewPinner()
	if err != nil {
		return nil, err
	}

	return pinner.Upload(filepath.Base(path), file)
}

func init() {
	createCmd.Flags().String("banner", "", "Path to a banner image to pin to IPFS")
}
