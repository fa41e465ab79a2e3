// Package assets validates a tree of token and validator icons against
// naming, dimension, and transparency rules.
package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/HWxFrank/metadata/internal/imgdim"
	log "github.com/sirupsen/logrus"
)

// Finding is a single rule violation, keyed by the path of the offending
// file relative to the assets root. Findings accumulate in discovery order
// and are never deduplicated.
type Finding struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// UnsupportedFileError aborts a validation run: a file with an extension
// outside the allowed set was found. The caller decides how to surface it;
// the validator itself never terminates the process.
type UnsupportedFileError struct {
	Path string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Path)
}

// Result holds the outcome of a full validation run.
type Result struct {
	Passed       bool
	FilesScanned int
	Findings     []Finding
}

// Validator applies a Policy to every file under an assets root.
type Validator struct {
	policy        *Policy
	tokenName     *regexp.Regexp
	validatorName *regexp.Regexp
}

// NewValidator builds a Validator for the given policy. A nil policy means
// DefaultPolicy.
func NewValidator(policy *Policy) *Validator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Validator{
		policy:        policy,
		tokenName:     hexNamePattern(policy.TokenHexLength),
		validatorName: hexNamePattern(policy.ValidatorHexLength),
	}
}

func hexNamePattern(digits uint) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^0x[0-9a-fA-F]{%d}$`, digits))
}

// Run walks root and validates every file. It returns an
// *UnsupportedFileError as soon as it encounters a file outside the allowed
// extensions, leaving the findings collected so far in the result.
func (v *Validator) Run(root string) (*Result, error) {
	result := &Result{Findings: make([]Finding, 0)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if v.policy.ignored(name) {
			log.Debugln("Skipping ignored file", name)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !v.policy.extensionAllowed(filepath.Ext(name)) {
			return &UnsupportedFileError{Path: rel}
		}

		result.FilesScanned++

		data, err := os.ReadFile(path) // #nosec G304 -- paths come from the walked tree
		if err != nil {
			return fmt.Errorf("error reading %s: %w", rel, err)
		}

		result.Findings = append(result.Findings, v.checkFile(rel, data)...)
		return nil
	})
	if err != nil {
		var unsupported *UnsupportedFileError
		if errors.As(err, &unsupported) {
			return result, unsupported
		}
		return result, err
	}

	result.Passed = len(result.Findings) == 0
	return result, nil
}

// checkFile applies the naming, dimension, and transparency rules to a
// single file and returns its findings in rule order.
func (v *Validator) checkFile(rel string, data []byte) []Finding {
	var findings []Finding

	if msg := v.checkName(rel); msg != "" {
		findings = append(findings, Finding{Path: rel, Message: msg})
	}

	dim, ok := imgdim.Read(data)
	if !ok {
		findings = append(findings, Finding{Path: rel, Message: "not a recognized PNG or JPEG image"})
		return findings
	}

	log.Debugf("%s: %dx%d", rel, dim.Width, dim.Height)

	if msg := v.checkDimensions(dim); msg != "" {
		findings = append(findings, Finding{Path: rel, Message: msg})
	}

	if imgdim.IsPNG(data) {
		if msg := checkCornerTransparency(data, dim); msg != "" {
			findings = append(findings, Finding{Path: rel, Message: msg})
		}
	}

	return findings
}

// checkName enforces the hex naming convention for files under the tokens
// and validators folders. Files anywhere else have no naming rule.
func (v *Validator) checkName(rel string) string {
	var pattern *regexp.Regexp
	var digits uint

	switch {
	case strings.Contains(rel, "tokens"):
		pattern, digits = v.tokenName, v.policy.TokenHexLength
	case strings.Contains(rel, "validators"):
		pattern, digits = v.validatorName, v.policy.ValidatorHexLength
	default:
		return ""
	}

	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	if !pattern.MatchString(base) {
		return fmt.Sprintf("file name %q must be 0x followed by exactly %d hex digits", base, digits)
	}
	return ""
}

func (v *Validator) checkDimensions(dim imgdim.Dimensions) string {
	if dim.Width < v.policy.MinWidth || dim.Height < v.policy.MinHeight {
		return fmt.Sprintf("image is %dx%d, minimum is %dx%d", dim.Width, dim.Height, v.policy.MinWidth, v.policy.MinHeight)
	}
	if dim.Width != dim.Height {
		return fmt.Sprintf("image is %dx%d, must be square", dim.Width, dim.Height)
	}
	return ""
}

// checkCornerTransparency reads four 32-bit big-endian words from the raw
// file buffer at offsets derived from the image dimensions and flags any
// zero word as a fully transparent corner. The offsets index the file bytes,
// not decoded pixels, so this is a heuristic. Offsets whose 4-byte read
// would run past the buffer end are skipped.
func checkCornerTransparency(data []byte, dim imgdim.Dimensions) string {
	if len(data) < 4 {
		return ""
	}

	size := uint64(len(data))
	w, h := uint64(dim.Width), uint64(dim.Height)

	corners := []struct {
		name   string
		offset uint64
	}{
		{"top-left", 0},
		{"top-right", w - 1},
		{"bottom-left", (w * (h - 1)) % size},
		{"bottom-right", min(w*h-1, size-4)},
	}

	for _, c := range corners {
		if c.offset+4 > size {
			continue
		}
		if binary.BigEndian.Uint32(data[c.offset:]) == 0 {
			return fmt.Sprintf("image has a fully transparent %s corner", c.name)
		}
	}
	return ""
}
