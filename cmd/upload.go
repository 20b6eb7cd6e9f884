package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veilfund/veilfund/ipfs"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Pin a file to IPFS",
	Long: `Pin a file to IPFS and print its content hash and gateway URL.

Uses the Pinata pinning service when PINATA_JWT is set. Without
credentials a deterministic mock hash is produced so campaign flows
can be exercised offline; the mock URL will not resolve.

Example:
  veilfund upload ./banner.png`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	pinner, err := ipfs.NewPinner()
	if err != nil {
		return err
	}

	if _, mock := pinner.(*ipfs.MockPinner); mock {
		fmt.Println("⚠️  PINATA_JWT not set, producing a mock hash")
	}

	fmt.Println("⏳ Uploading to IPFS...")
	result, err := pinner.Upload(filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Println("✅ File pinned successfully!")
	fmt.Printf("📦 Hash: %s\n", result.Hash)
	fmt.Printf("🔗 URL:  %s\n", result.URL)
	if result.Size > 0 {
		fmt.Printf("📏 Size: %d bytes\n", result.Size)
	}

	return nil
}
