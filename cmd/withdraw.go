package cmd

import (
	"fmt"

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

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [campaign] [amount]",
	Short: "Withdraw campaign funds privately",
	Long: `Withdraw encrypted tokens from a campaign you created.

The withdrawal is a confidential transfer from the campaign to your
wallet. An opaque transfer hash is registered on the campaign contract
so its withdrawal counter stays honest; supporters can judge spending
discipline from the trust dashboard without seeing amounts.

Example:
  veilfund withdraw 0x1234... 100`,
	Args: cobra.ExactArgs(2),
	RunE: runWithdraw,
}

func runWithdraw(cmd *cobra.Command, args []string) error {
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

	fmt.Println("💸 Private Withdrawal")
	fmt.Println()

	info, err := client.GetCampaignInfo(campaignAddr)
	if err != nil {
		return fmt.Errorf("failed to fetch campaign: %w", err)
	}

	creator, err := manager.GetEthereumAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}
	if info.Creator != creator {
		return fmt.Errorf("only the campaign creator (%s) can withdraw", info.Creator.Hex())
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

	key, err := eerc.EnsureDecryptionKey(sdk, store, mode, creator.Hex())
	if err != nil {
		return err
	}

	// The campaign's encrypted balance is decryptable by its creator
	balance, err := decryptedBalance(sdk, mode, campaignAddr.Hex(), key)
	if err != nil {
		return err
	}

	wizard := campaign.NewWizard(campaign.Withdrawal,
		func(from common.Address, amount decimal.Decimal) (common.Hash, error) {
			result, err := sdk.PrivateTransfer(mode, from.Hex(), creator.Hex(), amount.String(), "")
			if err != nil {
				return common.Hash{}, err
			}
			return common.HexToHash(result.TransferHash), nil
		},
		func(target common.Address, transferHash common.Hash) (string, error) {
			calldata, err := api.RegisterWithdrawalData(transferHash)
			if err != nil {
				return "", err
			}
			return sendContractTx(manager, client, target, calldata)
		},
	)

	if err := wizard.SelectCampaign(campaignAddr); err != nil {
		return err
	}
	if err := wizard.EnterAmount(args[1], balance); err != nil {
		return err
	}

	fmt.Printf("📊 Withdrawal Details:\n")
	fmt.Printf("   Campaign: %s (%s)\n", info.Title, campaignAddr.Hex())
	fmt.Printf("   To:       %s\n", creator.Hex())
	fmt.Printf("   Amount:   %s tokens (encrypted on-chain)\n", wizard.Amount().String())
	fmt.Printf("   Balance:  %s tokens\n", balance.String())
	fmt.Printf("   Network:  %s\n", manager.GetCurrentNetwork())
	fmt.Println()

	if !getTransactionConfirmation(manager) {
		fmt.Println("❌ Withdrawal cancelled by user")
		return nil
	}

	fmt.Println("⏳ Generating transfer proof and sending...")
	result, err := wizard.Confirm()
	if err != nil {
		return err
	}

	fmt.Println("✅ Withdrawal sent successfully!")
	fmt.Printf("📝 Transfer Hash: %s\n", result.TransferHash.Hex())
	if result.RegistrationTx != "" {
		fmt.Printf("📝 Registration Tx: %s\n", result.RegistrationTx)
		fmt.Printf("🔗 Explorer: %s\n", client.ExplorerTxURL(result.RegistrationTx))
	}

	return nil
}

func init() {
	addModeFlag(withdrawCmd)
}
