package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/chains/ethereum"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns [address]",
	Short: "Browse crowdfunding campaigns",
	Long: `Browse campaigns deployed by the campaign factory.

Without arguments, lists every campaign. With a campaign address, shows
the full campaign record including registered donation and withdrawal
hashes.

Examples:
  veilfund campaigns                      # List all campaigns
  veilfund campaigns --count              # Show only the campaign count
  veilfund campaigns --creator 0xabc...   # List campaigns by one creator
  veilfund campaigns 0x1234...            # Show one campaign in detail`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCampaigns,
}

func runCampaigns(cmd *cobra.Command, args []string) error {
	client := api.NewClient()

	if len(args) == 1 {
		return showCampaign(client, args[0])
	}

	countFlag, _ := cmd.Flags().GetBool("count")
	if countFlag {
		count, err := client.GetCampaignCount()
		if err != nil {
			return fmt.Errorf("failed to fetch campaign count: %w", err)
		}
		fmt.Printf("📊 Campaigns deployed: %d\n", count)
		return nil
	}

	creatorFlag, _ := cmd.Flags().GetString("creator")
	return listCampaigns(client, creatorFlag)
}

func listCampaigns(client *api.Client, creator string) error {
	var addrs []string

	if creator != "" {
		creatorAddr, parseErr := ethereum.ParseAddress(creator)
		if parseErr != nil {
			return fmt.Errorf("invalid creator address: %w", parseErr)
		}
		list, listErr := client.GetCampaignsByCreator(creatorAddr)
		if listErr != nil {
			return fmt.Errorf("failed to fetch campaigns: %w", listErr)
		}
		for _, a := range list {
			addrs = append(addrs, a.Hex())
		}
		fmt.Printf("📋 Campaigns by %s\n", creatorAddr.Hex())
	} else {
		list, listErr := client.GetCampaigns()
		if listErr != nil {
			return fmt.Errorf("failed to fetch campaigns: %w", listErr)
		}
		for _, a := range list {
			addrs = append(addrs, a.Hex())
		}
		fmt.Println("📋 All Campaigns")
	}

	networkType := "Mainnet"
	if client.IsTestnet() {
		networkType = "Testnet (Fuji)"
	}
	fmt.Printf("🌐 Network: %s\n", networkType)
	fmt.Println()

	if len(addrs) == 0 {
		fmt.Println("   No campaigns found")
		return nil
	}

	for _, addr := range addrs {
		campaignAddr, _ := ethereum.ParseAddress(addr)
		info, err := client.GetCampaignInfo(campaignAddr)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", addr, err)
			continue
		}

		status := color.GreenString("active")
		if !info.Active {
			status = color.RedString("closed")
		} else if time.Now().After(info.Deadline) {
			status = color.YellowString("past deadline")
		}

		fmt.Printf("   %s  %s [%s]\n", addr, info.Title, status)
		fmt.Printf("      💝 %d donations · 💸 %d withdrawals · ⏰ %s\n",
			info.DonationCount, info.WithdrawalCount, info.Deadline.Format("2006-01-02"))
	}

	fmt.Println()
	fmt.Println("💡 Run 'veilfund campaigns <address>' for details")
	fmt.Println("💡 Run 'veilfund trust <address>' for a trust dashboard")

	return nil
}

func showCampaign(client *api.Client, address string) error {
	campaignAddr, err := ethereum.ParseAddress(address)
	if err != nil {
		return fmt.Errorf("invalid campaign address: %w", err)
	}

	info, err := client.GetCampaignInfo(campaignAddr)
	if err != nil {
		return fmt.Errorf("failed to fetch campaign: %w", err)
	}

	fmt.Printf("📦 %s\n", info.Title)
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("   Address:     %s\n", info.Address.Hex())
	fmt.Printf("   Creator:     %s\n", info.Creator.Hex())
	fmt.Printf("   Deadline:    %s\n", info.Deadline.Format("2006-01-02 15:04:05"))
	if info.Active {
		fmt.Printf("   Status:      %s\n", color.GreenString("active"))
	} else {
		fmt.Printf("   Status:      %s\n", color.RedString("closed"))
	}
	fmt.Printf("   Donations:   %d\n", info.DonationCount)
	fmt.Printf("   Withdrawals: %d\n", info.WithdrawalCount)
	fmt.Println()
	fmt.Printf("   %s\n", info.Description)
	fmt.Println()

	donations, err := client.GetDonationHashes(campaignAddr)
	if err != nil {
		fmt.Printf("❌ Donation hashes: %v\n", err)
	} else if len(donations) > 0 {
		fmt.Println("💝 Donation hashes:")
		for _, h := range donations {
			fmt.Printf("   %s\n", h.Hex())
		}
	}

	withdrawals, err := client.GetWithdrawalHashes(campaignAddr)
	if err != nil {
		fmt.Printf("❌ Withdrawal hashes: %v\n", err)
	} else if len(withdrawals) > 0 {
		fmt.Println("💸 Withdrawal hashes:")
		for _, h := range withdrawals {
			fmt.Printf("   %s\n", h.Hex())
		}
	}

	return nil
}

func init() {
	campaignsCmd.Flags().Bool("count", false, "Show only the campaign count")
	campaignsCmd.Flags().String("creator", "", "List campaigns by creator address")
}
