package cmd

import (
	"fmt"
	"os"

	"asset-catalog/core/index"

	"github.com/spf13/cobra"
)

// validateCmd checks an index file against the index contract.
var validateCmd = &cobra.Command{
	Use:   "validate [index.json]",
	Short: "Validate an asset pack index file",
	Long:  `Parses the index file and checks its referential integrity against the index contract.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	idx, err := index.ParseIndex(data)
	if err != nil {
		return err
	}

	fmt.Println("\n--- Index Validation ---")
	fmt.Printf("File:         %s\n", path)
	fmt.Printf("Categories:   %d\n", len(idx.CategoryMetadata))
	fmt.Printf("Assets:       %d\n", len(idx.AssetMetadata))
	fmt.Printf("Asset data:   %d\n", len(idx.AssetData))
	fmt.Println("------------------------")
	fmt.Println("\033[32mOK\033[0m")
	return nil
}
