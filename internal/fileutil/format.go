package fileutil

import "strings"

// HasYAMLExtension checks if a file path has a YAML extension (.yaml or .yml)
func HasYAMLExtension(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// IsYAML guesses whether data is YAML rather than JSON by looking at the
// first non-whitespace byte. JSON documents start with '{' or '['; anything
// else is treated as YAML. Used when no file extension is available (stdin).
func IsYAML(data []byte) bool {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return false
	}
	return trimmed[0] != '{' && trimmed[0] != '['
}
