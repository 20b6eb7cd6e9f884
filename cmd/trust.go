package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/chains/ethereum"
	"github.com/veilfund/veilfund/trust"
)

var trustCmd = &cobra.Command{
	Use:   "trust [campaign]",
	Short: "Show a campaign trust dashboard",
	Long: `Build a trust dashboard for a campaign from its registered on-chain
activity: donation volume, withdrawal discipline and deadline status.

When a trust analysis service is configured (TRUST_ANALYSIS_URL) the
narrative summary is AI-generated; otherwise a local summary is used.

Example:
  veilfund trust 0x1234...`,
	Args: cobra.ExactArgs(1),
	RunE: runTrust,
}

func runTrust(cmd *cobra.Command, args []string) error {
	client := api.NewClient()

	campaignAddr, err := ethereum.ParseAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid campaign address: %w", err)
	}

	info, err := client.GetCampaignInfo(campaignAddr)
	if err != nil {
		return fmt.Errorf("failed to fetch campaign: %w", err)
	}

	stats := trust.CampaignStats{
		Title:       info.Title,
		Deadline:    info.Deadline,
		Active:      info.Active,
		Donations:   int(info.DonationCount),
		Withdrawals: int(info.WithdrawalCount),
	}

	report := trust.BuildReport(stats, time.Now())

	narrator, err := trust.NewNarrator()
	if err != nil {
		return err
	}
	narrative, err := narrator.Narrate(stats, report)
	if err != nil {
		// The dashboard is still useful without the narrative
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: narrative unavailable: %v\n", err)
	}

	fmt.Printf("🛡️  Trust Dashboard — %s\n", info.Title)
	fmt.Println(strings.Repeat("─", 44))
	fmt.Printf("   Campaign:     %s\n", campaignAddr.Hex())
	fmt.Printf("   Score:        %s\n", colorScore(report.Score, report.Grade))
	fmt.Printf("   Activity:     %d/50 (%d donations)\n", report.ActivityScore, stats.Donations)
	fmt.Printf("   Discipline:   %d/30 (withdrawal ratio %.2f)\n", report.DisciplineScore, report.WithdrawalRatio)
	fmt.Printf("   Status:       %d/20\n", report.StatusScore)
	if report.DeadlinePassed {
		fmt.Printf("   Deadline:     %s (%s)\n", info.Deadline.Format("2006-01-02"), color.YellowString("passed"))
	} else {
		fmt.Printf("   Deadline:     %s\n", info.Deadline.Format("2006-01-02"))
	}

	if narrative != "" {
		fmt.Println()
		fmt.Printf("   %s\n", narrative)
	}

	return nil
}

func colorScore(score int, grade string) string {
	label := fmt.Sprintf("%d/100 (grade %s)", score, grade)
	switch {
	case score >= 70:
		return color.GreenString(label)
	case score >= 40:
		return color.YellowString(label)
	default:
		return color.RedString(label)
	}
}
