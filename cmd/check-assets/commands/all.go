package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/HWxFrank/metadata/internal/output"
	"github.com/spf13/cobra"
)

// checkRunner represents a single check to be executed.
type checkRunner struct {
	name string
	run  func(path string) (*output.CheckResult, error)
}

var failFast bool

var allCmd = &cobra.Command{
	Use:   "all [path]",
	Short: "Run both validation passes on a metadata repository",
	Long: `Run the assets validation and the metadata cross-check against a
repository root at once. The assets pass runs first against the assets
folder under the root; the metadata pass then cross-checks the JSON files
against the same assets.

Use --fail-fast to stop on the first failed check.`,
	Example: `  check-assets all
  check-assets all src
  check-assets all src --min-width 512 --fail-fast
  check-assets all --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		assetsPolicy, err = resolveAssetsPolicy(cmd)
		if err != nil {
			return fmt.Errorf("invalid check all arguments: %w", err)
		}

		root := defaultRepoRoot
		if len(args) == 1 {
			root = args[0]
		}

		if err := runAll(root); err != nil {
			return fmt.Errorf("check all operation failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
	allCmd.Flags().StringVarP(&policyFile, "policy", "p", "", "Assets policy file in JSON or YAML format, or - for stdin (optional)")
	allCmd.Flags().Uint32Var(&minWidth, "min-width", 1024, "Minimum image width in pixels (optional)")
	allCmd.Flags().Uint32Var(&minHeight, "min-height", 1024, "Minimum image height in pixels (optional)")
	allCmd.Flags().StringVarP(&assetsDirName, "assets-dir", "a", defaultAssetsDir, "Name of the assets folder under the repository root (optional)")
	allCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop on the first failed check (optional)")
}

func runAll(root string) error {
	checks := []checkRunner{
		{name: "assets", run: func(string) (*output.CheckResult, error) {
			return runAssets(filepath.Join(root, assetsDirName))
		}},
		{name: "metadata", run: runMetadata},
	}

	all := output.AllResult{Path: root, Passed: true}

	for _, check := range checks {
		result, err := check.run(root)
		if err != nil {
			result = &output.CheckResult{
				Check:  check.name,
				Path:   root,
				Passed: false,
				Error:  err.Error(),
			}
			UpdateResult(ExecutionError)
			all.Summary.Errored++
		} else if result.Passed {
			UpdateResult(ValidationSucceeded)
			all.Summary.Passed++
		} else {
			UpdateResult(ValidationFailed)
			all.Summary.Failed++
		}
		all.Summary.Total++

		if !result.Passed {
			all.Passed = false
		}
		all.Checks = append(all.Checks, *result)

		if OutputFmt != output.FormatJSON {
			fmt.Println(sectionHeader(check.name))
			if result.Error != "" {
				fmt.Println(FailStyle.Render("Error: " + result.Error))
			} else {
				_ = renderResult(result)
			}
			fmt.Println()
		}

		if failFast && !result.Passed {
			break
		}
	}

	if OutputFmt == output.FormatJSON {
		return output.RenderJSON(os.Stdout, all)
	}

	fmt.Println(sectionHeader("summary"))
	for _, check := range all.Checks {
		fmt.Printf("%s%s\n", statusPrefix(check.Passed), check.Check)
	}
	fmt.Printf("%d checks: %d passed, %d failed, %d errored\n",
		all.Summary.Total, all.Summary.Passed, all.Summary.Failed, all.Summary.Errored)

	return nil
}
