package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/api"
	"github.com/veilfund/veilfund/campaign"
	"github.com/veilfund/veilfund/chains/ethereum"
	"github.com/veilfund/veilfund/eerc"
	"github.com/veilfund/veilfund/keystore"
	"github.com/veilfund/veilfund/wallet"
)

var donateCmd = &cobra.Command{
	Use:   "donate [campaign] [amount]",
	Short: "Donate to a campaign privately",
	Long: `Donate encrypted tokens to a campaign.

The donation is a confidential transfer: the amount never appears
on-chain. Only an opaque transfer hash is registered on the campaign
contract so its donation counter stays honest.

Examples:
  veilfund donate 0x1234... 25
  veilfund donate 0x1234... 25 --message "keep going!"`,
	Args: cobra.ExactArgs(2),
	RunE: runDonate,
}

func runDonate(cmd *cobra.Command, args []string) error {
	manager := wallet.NewManager()
	client := api.NewClient()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'veilfund unlock' first")
	}

	campaignAddr, err := ethereum.ParseAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid campaign address: %w", err)
	}

	mode, err := getMode(cmd)
	if err != nil {
		return err
	}
	message, _ := cmd.Flags().GetString("message")

	fmt.Println("💝 Private Donation")
	fmt.Println()

	info, err := client.GetCampaignInfo(campaignAddr)
	if err != nil {
		return fmt.Errorf("failed to fetch campaign: %w", err)
	}
	if !info.Active {
		return fmt.Errorf("campaign %q is closed", info.Title)
	}

	sender, err := manager.GetEthereumAddress()
	if err != nil {
		return fmt.Errorf("failed to get sender address: %w", err)
	}

	fmt.Println("⏳ Waiting for the eERC SDK service...")
	sdk, err := newSDK()
	if err != nil {
		return err
	}

	store, err := keystore.New()
	if err != nil {
		return fmt.Errorf("failed to open key store: %w", err)
	}

	key, err := eerc.EnsureDecryptionKey(sdk, store, mode, sender.Hex())
	if err != nil {
		return err
	}

	balance, err := decryptedBalance(sdk, mode, sender.Hex(), key)
	if err != nil {
		return err
	}

	wizard := campaign.NewWizard(campaign.Donation,
		func(to common.Address, amount decimal.Decimal) (common.Hash, error) {
			result, err := sdk.PrivateTransfer(mode, sender.Hex(), to.Hex(),
				amount.String(), eerc.PadNull(message, eerc.MessageWidth))
			if err != nil {
				return common.Hash{}, err
			}
			return common.HexToHash(result.TransferHash), nil
		},
		func(to common.Address, transferHash common.Hash) (string, error) {
			calldata, err := api.RegisterDonationData(transferHash)
			if err != nil {
				return "", err
			}
			return sendContractTx(manager, client, to, calldata)
		},
	)

	if err := wizard.SelectCampaign(campaignAddr); err != nil {
		return err
	}
	if err := wizard.EnterAmount(args[1], balance); err != nil {
		return err
	}

	fmt.Printf("📊 Donation Details:\n")
	fmt.Printf("   Campaign: %s (%s)\n", info.Title, campaignAddr.Hex())
	fmt.Printf("   From:     %s\n", sender.Hex())
	fmt.Printf("   Amount:   %s tokens (encrypted on-chain)\n", wizard.Amount().String())
	fmt.Printf("   Balance:  %s tokens\n", balance.String())
	fmt.Printf("   Network:  %s\n", manager.GetCurrentNetwork())
	fmt.Println()

	if !getTransactionConfirmation(manager) {
		fmt.Println("❌ Donation cancelled by user")
		return nil
	}

	fmt.Println("⏳ Generating transfer proof and sending...")
	result, err := wizard.Confirm()
	if err != nil {
		return err
	}

	fmt.Println("✅ Donation sent successfully!")
	fmt.Printf("📝 Transfer Hash: %s\n", result.TransferHash.Hex())
	if result.RegistrationTx != "" {
		fmt.Printf("📝 Registration Tx: %s\n", result.RegistrationTx)
		fmt.Printf("🔗 Explorer: %s\n", client.ExplorerTxURL(result.RegistrationTx))
	}

	return nil
}

// decryptedBalance decrypts the wallet's encrypted balance into a decimal
func decryptedBalance(sdk eerc.SDK, mode eerc.Mode, address, key string) (decimal.Decimal, error) {
	raw, err := sdk.DecryptBalance(mode, address, key)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decrypt balance: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("SDK returned malformed balance: %s", raw)
	}
	return balance, nil
}

func getTransactionConfirmation(manager *wallet.Manager) bool {
	fmt.Println()
	if manager.IsTestnet() {
		fmt.Printf("⚠️ You are on testnet (Fuji). By confirming this transaction no real funds will be moved.\n")
	} else {
		fmt.Printf("🚨 You are on main network. By confirming this transaction real funds will be moved.\n")
	}

	fmt.Printf("Press y to confirm or n to stop (y/n): ")

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func init() {
	addModeFlag(donateCmd)
	donateCmd.Flags().String("message", "", "Encrypted message to attach to the donation")
}
