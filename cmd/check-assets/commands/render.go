package commands

import (
	"fmt"
	"os"

	"github.com/HWxFrank/metadata/internal/output"
)

// renderResult renders a CheckResult according to the current OutputFmt.
// In text mode, it calls the appropriate text renderer.
// In JSON mode, it writes JSON to stdout.
func renderResult(r *output.CheckResult) error {
	if OutputFmt == output.FormatJSON {
		return output.RenderJSON(os.Stdout, r)
	}

	switch r.Check {
	case "assets":
		renderAssetsText(r)
	case "metadata":
		renderMetadataText(r)
	}

	return nil
}

func renderAssetsText(r *output.CheckResult) {
	d := r.Details.(output.AssetsDetails)
	fmt.Printf("Checking assets under %s\n", r.Path)
	fmt.Printf("Files scanned: %d\n", d.FilesScanned)

	for _, f := range d.Findings {
		fmt.Println(FailStyle.Render(fmt.Sprintf("  %s: %s", f.Path, f.Message)))
	}

	if d.Unsupported != "" {
		fmt.Println(FailStyle.Render(fmt.Sprintf("  %s: unsupported file type", d.Unsupported)))
	}

	fmt.Println(r.Message)
}

func renderMetadataText(r *output.CheckResult) {
	d := r.Details.(output.MetadataDetails)
	fmt.Printf("Cross-checking metadata under %s\n", r.Path)

	for _, w := range d.Warnings {
		fmt.Println(WarnStyle.Render(fmt.Sprintf("  %s/%s: %s", w.Category, w.File, w.Message)))
	}

	fmt.Println(r.Message)
}
