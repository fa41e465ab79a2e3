package commands

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testTokenName     = "0x1234567890abcdef1234567890abcdef12345678"
	testValidatorName = "0x" + "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56"
)

// testPNG builds a buffer with a PNG header encoding the given dimensions,
// padded with non-zero bytes so the corner transparency words read non-zero.
func testPNG(width, height uint32) []byte {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = 0x7F
	}
	copy(buf, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	binary.BigEndian.PutUint32(buf[8:], 13)
	copy(buf[12:], "IHDR")
	binary.BigEndian.PutUint32(buf[16:], width)
	binary.BigEndian.PutUint32(buf[20:], height)
	return buf
}

// writeRepo materializes a repository layout into a temp dir.
func writeRepo(t *testing.T, files map[string][]byte) string {
	t.Helper()

	root := t.TempDir()
	for rel, data := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return root
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

// resetResult restores the global validation state after a test.
func resetResult(t *testing.T) {
	t.Helper()

	old := Result
	t.Cleanup(func() { Result = old })
	Result = ValidationSkipped
}
