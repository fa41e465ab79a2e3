package commands

// Default repository layout shared between the individual commands and the
// all command.
const (
	defaultRepoRoot   = "src"
	defaultAssetsPath = "src/assets"
	defaultAssetsDir  = "assets"
)
