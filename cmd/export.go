package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/trust"
	"github.com/veilfund/veilfund/wallet"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your campaign data",
	Long: `Export data for every campaign you created on the current network.

File formats:
  --csv        Export to CSV format (default)
  --json       Export to JSON format

Data exported:
  • Campaign metadata (title, description, deadline, status)
  • Donation and withdrawal registration hashes
  • Trust score and grade per campaign

Amounts are never exported because they never leave the encrypted
balances in the first place.

Examples:
  veilfund export                  # Export to CSV (default)
  veilfund export --json           # Export to JSON
  veilfund export --csv --json     # Export to both formats`,
	RunE: runExport,
}

var (
	csvFlag  bool
	jsonFlag bool
)

func init() {
	exportCmd.Flags().BoolVar(&csvFlag, "csv", false, "Export to CSV format")
	exportCmd.Flags().BoolVar(&jsonFlag, "json", false, "Export to JSON format")
}

type exportData struct {
	ExportDate string           `json:"export_date"`
	Network    string           `json:"network"`
	Creator    string           `json:"creator"`
	Campaigns  []exportCampaign `json:"campaigns"`
}

type exportCampaign struct {
	Address          string   `json:"address"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Deadline         string   `json:"deadline"`
	Active           bool     `json:"active"`
	TrustScore       int      `json:"trust_score"`
	TrustGrade       string   `json:"trust_grade"`
	DonationHashes   []string `json:"donation_hashes"`
	WithdrawalHashes []string `json:"withdrawal_hashes"`
}

func runExport(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()
	client := api.NewClient()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}
	if !csvFlag && !jsonFlag {
		csvFlag = true
	}

	creator, err := manager.GetEthereumAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	currentNetwork := manager.GetCurrentNetwork()
	fmt.Printf("🌐 Current Network: %s\n", strings.ToUpper(currentNetwork))
	fmt.Printf("📊 Exporting campaigns created by %s...\n", creator.Hex())
	fmt.Println()

	data := &exportData{
		ExportDate: time.Now().Format("2006-01-02 15:04:05"),
		Network:    currentNetwork,
		Creator:    creator.Hex(),
	}

	addrs, err := client.GetCampaignsByCreator(creator)
	if err != nil {
		return fmt.Errorf("failed to list campaigns: %w", err)
	}
	if len(addrs) == 0 {
		fmt.Println("📭 No campaigns found for this wallet")
		return nil
	}

	bar := progressbar.NewOptions(len(addrs)+1,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Collecting campaigns..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)

	for _, addr := range addrs {
		info, err := client.GetCampaignInfo(addr)
		if err != nil {
			return fmt.Errorf("failed to fetch campaign %s: %w", addr.Hex(), err)
		}

		donations, err := client.GetDonationHashes(addr)
		if err != nil {
			return fmt.Errorf("failed to fetch donation hashes: %w", err)
		}
		withdrawals, err := client.GetWithdrawalHashes(addr)
		if err != nil {
			return fmt.Errorf("failed to fetch withdrawal hashes: %w", err)
		}

		report := trust.BuildReport(trust.CampaignStats{
			Title:       info.Title,
			Deadline:    info.Deadline,
			Active:      info.Active,
			Donations:   len(donations),
			Withdrawals: len(withdrawals),
		}, time.Now())

		entry := exportCampaign{
			Address:     addr.Hex(),
			Title:       info.Title,
			Description: info.Description,
			Deadline:    info.Deadline.Format("2006-01-02"),
			Active:      info.Active,
			TrustScore:  report.Score,
			TrustGrade:  report.Grade,
		}
		for _, h := range donations {
			entry.DonationHashes = append(entry.DonationHashes, h.Hex())
		}
		for _, h := range withdrawals {
			entry.WithdrawalHashes = append(entry.WithdrawalHashes, h.Hex())
		}
		data.Campaigns = append(data.Campaigns, entry)
		bar.Add(1)
	}

	bar.Describe("[cyan][2/2][reset] Writing export files...")
	exportDir, err := prepareExportDirectory()
	if err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}
	if err := writeExportFiles(data, exportDir); err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}
	bar.Add(1)
	bar.Describe("[green][✓][reset] Export completed!")
	fmt.Println()

	fmt.Println("📁 Export completed successfully!")
	fmt.Printf("📍 Files saved to: %s\n", exportDir)
	fmt.Println()
	fmt.Println("📊 Export Summary:")
	fmt.Printf("   Network:   %s\n", strings.ToUpper(currentNetwork))
	fmt.Printf("   Campaigns: %d\n", len(data.Campaigns))

	return nil
}

func prepareExportDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	exportDir := filepath.Join(homeDir, ".veilfund", "exports",
		time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(exportDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	return exportDir, nil
}

func writeExportFiles(data *exportData, exportDir string) error {
	if csvFlag {
		if err := writeCSVExport(data, exportDir); err != nil {
			return err
		}
	}
	if jsonFlag {
		if err := writeJSONExport(data, exportDir); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVExport(data *exportData, exportDir string) error {
	f, err := os.Create(filepath.Join(exportDir, "campaigns.csv"))
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"address", "title", "deadline", "active",
		"trust_score", "trust_grade", "donations", "withdrawals"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, c := range data.Campaigns {
		record := []string{
			c.Address,
			c.Title,
			c.Deadline,
			fmt.Sprintf("%t", c.Active),
			fmt.Sprintf("%d", c.TrustScore),
			c.TrustGrade,
			fmt.Sprintf("%d", len(c.DonationHashes)),
			fmt.Sprintf("%d", len(c.WithdrawalHashes)),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeJSONExport(data *exportData, exportDir string) error {
	f, err := os.Create(filepath.Join(exportDir, "campaigns.json"))
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
