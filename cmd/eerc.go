package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/eerc"
)

// SDK readiness polling bounds. The SDK loads proving keys at startup.
const (
	sdkReadyAttempts = 15
	sdkReadyDelay    = 2 * time.Second
)

// newSDK connects to the eERC SDK service and waits for it to initialize
func newSDK() (*eerc.Client, error) {
	sdk, err := eerc.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create SDK client: %w", err)
	}

	if err := sdk.WaitReady(sdkReadyAttempts, sdkReadyDelay); err != nil {
		return nil, fmt.Errorf("eERC SDK service is not available: %w", err)
	}

	return sdk, nil
}

// getMode reads and validates the --mode flag
func getMode(cmd *cobra.Command) (eerc.Mode, error) {
	raw, _ := cmd.Flags().GetString("mode")
	return eerc.ParseMode(raw)
}

// addModeFlag registers the shared --mode flag on a command
func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().String("mode", string(eerc.ModeConverter), "eERC mode: converter or standalone")
}
