package output

import (
	"github.com/HWxFrank/metadata/internal/assets"
	"github.com/HWxFrank/metadata/internal/metadata"
)

// CheckResult is the common envelope for every validation check.
type CheckResult struct {
	Check   string `json:"check"`
	Path    string `json:"path"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AssetsDetails holds details for the assets check.
type AssetsDetails struct {
	FilesScanned int              `json:"files-scanned"`
	MinWidth     uint32           `json:"min-width"`
	MinHeight    uint32           `json:"min-height"`
	Findings     []assets.Finding `json:"findings,omitempty"`
	Unsupported  string           `json:"unsupported-file,omitempty"`
}

// MetadataDetails holds details for the metadata check.
type MetadataDetails struct {
	Warnings []metadata.Warning `json:"warnings,omitempty"`
}

// AllResult is the aggregated result for the "all" command.
type AllResult struct {
	Path    string        `json:"path"`
	Passed  bool          `json:"passed"`
	Checks  []CheckResult `json:"checks"`
	Summary Summary       `json:"summary"`
}

// Summary holds counts for the "all" command.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// VersionResult holds the short version output for JSON mode.
type VersionResult struct {
	Version string `json:"version"`
}

// BuildInfoResult holds the full build information for JSON mode.
type BuildInfoResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuiltAt   string `json:"built-at"`
	GoVersion string `json:"go-version"`
	Platform  string `json:"platform"`
}
