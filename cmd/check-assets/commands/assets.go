package commands

import (
	"errors"
	"fmt"

	"github.com/HWxFrank/metadata/internal/assets"
	"github.com/HWxFrank/metadata/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	policyFile string
	minWidth   uint32
	minHeight  uint32

	assetsPolicy *assets.Policy
)

var assetsCmd = &cobra.Command{
	Use:   "assets [path]",
	Short: "Validate the image asset files",
	Long: `Validate every image file under the assets folder: token icons must be
named 0x followed by 40 hex digits, validator icons 0x followed by 96 hex
digits, and all icons must be square PNG or JPEG images of at least the
minimum dimensions. PNG icons are also checked for fully transparent corners.

A file with any other extension aborts the run immediately.`,
	Example: `  check-assets assets
  check-assets assets src/assets
  check-assets assets --min-width 512 --min-height 512
  check-assets assets --policy policy.yaml
  cat policy.json | check-assets assets --policy -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		assetsPolicy, err = resolveAssetsPolicy(cmd)
		if err != nil {
			return fmt.Errorf("invalid check assets arguments: %w", err)
		}

		path := defaultAssetsPath
		if len(args) == 1 {
			path = args[0]
		}

		return runCheckCmd("assets", runAssets, path)
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
	assetsCmd.Flags().StringVarP(&policyFile, "policy", "p", "", "Assets policy file in JSON or YAML format, or - for stdin (optional)")
	assetsCmd.Flags().Uint32Var(&minWidth, "min-width", 1024, "Minimum image width in pixels (optional)")
	assetsCmd.Flags().Uint32Var(&minHeight, "min-height", 1024, "Minimum image height in pixels (optional)")
}

// resolveAssetsPolicy builds the effective policy: the policy file when one
// is given, defaults otherwise, with explicit dimension flags taking
// precedence over both.
func resolveAssetsPolicy(cmd *cobra.Command) (*assets.Policy, error) {
	policy := assets.DefaultPolicy()

	if policyFile != "" {
		loaded, err := assets.LoadPolicy(policyFile)
		if err != nil {
			return nil, err
		}
		policy = loaded
	}

	if cmd.Flags().Changed("min-width") {
		policy.MinWidth = minWidth
	}
	if cmd.Flags().Changed("min-height") {
		policy.MinHeight = minHeight
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return policy, nil
}

func runAssets(path string) (*output.CheckResult, error) {
	log.Debugln("Validating assets under", path)

	if assetsPolicy == nil {
		assetsPolicy = assets.DefaultPolicy()
	}

	result, err := assets.NewValidator(assetsPolicy).Run(path)
	if err != nil {
		var unsupported *assets.UnsupportedFileError
		if errors.As(err, &unsupported) {
			return &output.CheckResult{
				Check:   "assets",
				Path:    path,
				Passed:  false,
				Message: fmt.Sprintf("Validation aborted: unsupported file type %s", unsupported.Path),
				Details: output.AssetsDetails{
					FilesScanned: result.FilesScanned,
					MinWidth:     assetsPolicy.MinWidth,
					MinHeight:    assetsPolicy.MinHeight,
					Findings:     result.Findings,
					Unsupported:  unsupported.Path,
				},
			}, nil
		}
		return nil, err
	}

	message := fmt.Sprintf("All %d asset files are valid", result.FilesScanned)
	if !result.Passed {
		message = fmt.Sprintf("%d asset files violate the validation rules", countPaths(result.Findings))
	}

	return &output.CheckResult{
		Check:   "assets",
		Path:    path,
		Passed:  result.Passed,
		Message: message,
		Details: output.AssetsDetails{
			FilesScanned: result.FilesScanned,
			MinWidth:     assetsPolicy.MinWidth,
			MinHeight:    assetsPolicy.MinHeight,
			Findings:     result.Findings,
		},
	}, nil
}

// countPaths counts the distinct file paths among the findings; a single
// file can violate several rules at once.
func countPaths(findings []assets.Finding) int {
	seen := make(map[string]bool)
	for _, f := range findings {
		seen[f.Path] = true
	}
	return len(seen)
}
