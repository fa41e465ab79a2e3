package commands

import (
	"fmt"
	"os"

	"github.com/HWxFrank/metadata/internal/output"
	ver "github.com/HWxFrank/metadata/internal/version"
	"github.com/spf13/cobra"
)

var buildInfo bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show the check-assets version",
	Long:    `Show the check-assets version.`,
	Example: `  check-assets version
  check-assets version --build-info`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runVersion(); err != nil {
			return fmt.Errorf("version operation failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&buildInfo, "build-info", false, "Show full build information (optional)")
}

func runVersion() error {
	if buildInfo {
		info := ver.GetBuildInfo()
		if OutputFmt == output.FormatJSON {
			return output.RenderJSON(os.Stdout, output.BuildInfoResult{
				Version:   info.Version,
				Commit:    info.Commit,
				BuiltAt:   info.BuildDate,
				GoVersion: info.GoVersion,
				Platform:  info.Platform,
			})
		}
		fmt.Printf("Version:    %s\n", info.Version)
		fmt.Printf("Commit:     %s\n", info.Commit)
		fmt.Printf("Built at:   %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		fmt.Printf("Platform:   %s\n", info.Platform)
		return nil
	}

	version := ver.GetBuildInfo().Version
	if OutputFmt == output.FormatJSON {
		return output.RenderJSON(os.Stdout, output.VersionResult{Version: version})
	}
	fmt.Printf("%s\n", version)
	return nil
}
