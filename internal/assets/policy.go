package assets

import (
	"fmt"
	"strings"

	"github.com/HWxFrank/metadata/internal/fileutil"
)

// Policy defines the rules applied to every file in the assets tree.
// All fields are optional in the policy file; zero values are replaced with
// the defaults from DefaultPolicy.
type Policy struct {
	// MinWidth and MinHeight are the minimum accepted pixel dimensions.
	MinWidth  uint32 `yaml:"min-width" json:"min-width"`
	MinHeight uint32 `yaml:"min-height" json:"min-height"`

	// TokenHexLength and ValidatorHexLength are the number of hex digits
	// (after the 0x prefix) a file name must carry under the tokens and
	// validators folders respectively.
	TokenHexLength     uint `yaml:"token-hex-length" json:"token-hex-length"`
	ValidatorHexLength uint `yaml:"validator-hex-length" json:"validator-hex-length"`

	// AllowedExtensions lists the accepted file extensions, leading dot
	// included. Any other extension aborts the validation run.
	AllowedExtensions []string `yaml:"allowed-extensions" json:"allowed-extensions"`

	// Ignore lists base file names skipped entirely during traversal.
	Ignore []string `yaml:"ignore" json:"ignore"`
}

// DefaultPolicy returns the policy applied when no policy file is given:
// square icons of at least 1024x1024, token names of 40 hex digits, validator
// names of 96 hex digits.
func DefaultPolicy() *Policy {
	return &Policy{
		MinWidth:           1024,
		MinHeight:          1024,
		TokenHexLength:     40,
		ValidatorHexLength: 96,
		AllowedExtensions:  []string{".png", ".jpg", ".jpeg"},
		Ignore:             []string{".DS_Store", "validator-default.png"},
	}
}

// LoadPolicy loads an assets policy from a file or stdin (if path is "-"),
// which can be in either YAML or JSON format. Fields absent from the file
// keep their default values.
func LoadPolicy(path string) (*Policy, error) {
	data, err := fileutil.ReadFileOrStdin(path)
	if err != nil {
		return nil, fmt.Errorf("error reading assets policy: %w", err)
	}

	policy := DefaultPolicy()

	if err := fileutil.UnmarshalConfigData(data, policy, path); err != nil {
		return nil, err
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return policy, nil
}

// Validate checks that the policy is well-formed.
func (p *Policy) Validate() error {
	if p.MinWidth == 0 || p.MinHeight == 0 {
		return fmt.Errorf("minimum dimensions must be at least 1x1")
	}

	if p.TokenHexLength == 0 {
		return fmt.Errorf("token-hex-length must be greater than zero")
	}

	if p.ValidatorHexLength == 0 {
		return fmt.Errorf("validator-hex-length must be greater than zero")
	}

	if len(p.AllowedExtensions) == 0 {
		return fmt.Errorf("policy must allow at least one file extension")
	}

	for _, ext := range p.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	return nil
}

// extensionAllowed reports whether ext (leading dot included) is accepted.
// Comparison is case-insensitive.
func (p *Policy) extensionAllowed(ext string) bool {
	for _, allowed := range p.AllowedExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// ignored reports whether the base file name is on the ignore list.
func (p *Policy) ignored(name string) bool {
	for _, ignore := range p.Ignore {
		if name == ignore {
			return true
		}
	}
	return false
}
