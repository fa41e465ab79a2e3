package commands

import (
	"fmt"

	"github.com/HWxFrank/metadata/internal/metadata"
	"github.com/HWxFrank/metadata/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var assetsDirName string

var metadataCmd = &cobra.Command{
	Use:   "metadata [path]",
	Short: "Cross-check metadata files against the asset files",
	Long: `Cross-check the metadata JSON files against the assets on disk: every
token address, validator id, and vault staking token address must have a
matching icon file. Missing assets are reported as warnings and never fail
the run.

Each subdirectory of the metadata root (except the assets folder) is a
category; its JSON files carry a top-level key named after the category.
Unknown categories are ignored.`,
	Example: `  check-assets metadata
  check-assets metadata src
  check-assets metadata src --assets-dir assets`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultRepoRoot
		if len(args) == 1 {
			path = args[0]
		}

		return runCheckCmd("metadata", runMetadata, path)
	},
}

func init() {
	rootCmd.AddCommand(metadataCmd)
	metadataCmd.Flags().StringVarP(&assetsDirName, "assets-dir", "a", defaultAssetsDir, "Name of the assets folder under the metadata root (optional)")
}

func runMetadata(path string) (*output.CheckResult, error) {
	log.Debugln("Cross-checking metadata under", path)

	cfg := metadata.DefaultConfig(path)
	cfg.AssetsDir = assetsDirName

	warnings, err := metadata.NewChecker(cfg).Run()
	if err != nil {
		return nil, err
	}

	message := "All metadata entries have a matching asset file"
	if len(warnings) > 0 {
		message = fmt.Sprintf("%d metadata entries reference missing asset files", len(warnings))
	}

	// Missing assets are warnings: the check passes either way.
	return &output.CheckResult{
		Check:   "metadata",
		Path:    path,
		Passed:  true,
		Message: message,
		Details: output.MetadataDetails{Warnings: warnings},
	}, nil
}
