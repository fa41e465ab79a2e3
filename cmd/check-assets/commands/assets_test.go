package commands

import (
	"testing"

	"github.com/HWxFrank/metadata/internal/assets"
	"github.com/HWxFrank/metadata/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsCommand(t *testing.T) {
	assert.NotNil(t, assetsCmd)
	assert.Equal(t, "assets [path]", assetsCmd.Use)

	require.NotNil(t, assetsCmd.Args)
	assert.NoError(t, assetsCmd.Args(assetsCmd, []string{}))
	assert.NoError(t, assetsCmd.Args(assetsCmd, []string{"src/assets"}))
	assert.Error(t, assetsCmd.Args(assetsCmd, []string{"a", "b"}))
}

func TestAssetsCommandFlags(t *testing.T) {
	flag := assetsCmd.Flags().Lookup("policy")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)

	flag = assetsCmd.Flags().Lookup("min-width")
	require.NotNil(t, flag)
	assert.Equal(t, "1024", flag.DefValue)

	flag = assetsCmd.Flags().Lookup("min-height")
	require.NotNil(t, flag)
	assert.Equal(t, "1024", flag.DefValue)
}

func TestRunAssets_ValidTree(t *testing.T) {
	assetsPolicy = assets.DefaultPolicy()
	root := writeRepo(t, map[string][]byte{
		"tokens/" + testTokenName + ".png":         testPNG(1024, 1024),
		"validators/" + testValidatorName + ".png": testPNG(1024, 1024),
	})

	result, err := runAssets(root)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, "assets", result.Check)

	details := result.Details.(output.AssetsDetails)
	assert.Equal(t, 2, details.FilesScanned)
	assert.Empty(t, details.Findings)
}

func TestRunAssets_Violations(t *testing.T) {
	assetsPolicy = assets.DefaultPolicy()
	root := writeRepo(t, map[string][]byte{
		"tokens/" + testTokenName + ".png": testPNG(1023, 1024),
		"tokens/0xtooshort.png":            testPNG(1024, 1024),
	})

	result, err := runAssets(root)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "2 asset files violate")

	details := result.Details.(output.AssetsDetails)
	assert.Len(t, details.Findings, 2)
}

func TestRunAssets_UnsupportedFileAborts(t *testing.T) {
	assetsPolicy = assets.DefaultPolicy()
	root := writeRepo(t, map[string][]byte{
		"tokens/leftover.txt": []byte("scratch"),
	})

	result, err := runAssets(root)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "unsupported file type")

	details := result.Details.(output.AssetsDetails)
	assert.Equal(t, "tokens/leftover.txt", details.Unsupported)
}

func TestRunAssets_MissingRoot(t *testing.T) {
	assetsPolicy = assets.DefaultPolicy()

	_, err := runAssets("does/not/exist")
	require.Error(t, err)
}

func TestResolveAssetsPolicy_FlagOverrides(t *testing.T) {
	oldPolicy, oldWidth := policyFile, minWidth
	t.Cleanup(func() {
		policyFile, minWidth = oldPolicy, oldWidth
		_ = assetsCmd.Flags().Set("min-width", "1024")
	})
	policyFile = ""

	require.NoError(t, assetsCmd.Flags().Set("min-width", "512"))

	policy, err := resolveAssetsPolicy(assetsCmd)
	require.NoError(t, err)
	assert.Equal(t, uint32(512), policy.MinWidth)
	assert.Equal(t, uint32(1024), policy.MinHeight)
}
