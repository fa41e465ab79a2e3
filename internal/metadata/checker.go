package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Config tells the Checker where the metadata categories and the assets live.
type Config struct {
	// Root is the directory whose immediate subdirectories are treated as
	// metadata categories.
	Root string

	// AssetsDir is the name of the assets folder under Root. It is excluded
	// from category scanning and is where referenced files are looked up.
	AssetsDir string

	// Extensions lists the accepted asset file extensions, leading dot
	// included.
	Extensions []string
}

// DefaultConfig returns the layout used by the metadata repository:
// categories under src/, assets under src/assets, PNG or JPEG icons.
func DefaultConfig(root string) Config {
	return Config{
		Root:       root,
		AssetsDir:  "assets",
		Extensions: []string{".png", ".jpg", ".jpeg"},
	}
}

// Warning reports a metadata entry whose asset file is missing. Warnings
// never fail a run.
type Warning struct {
	Category   string `json:"category"`
	File       string `json:"file"`
	Identifier string `json:"identifier"`
	Message    string `json:"message"`
}

// Checker cross-checks every metadata record against the assets tree.
type Checker struct {
	cfg Config
}

// NewChecker builds a Checker for the given configuration.
func NewChecker(cfg Config) *Checker {
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "assets"
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".png", ".jpg", ".jpeg"}
	}
	return &Checker{cfg: cfg}
}

// Run scans the category directories and returns one warning per referenced
// entity without a matching asset file, in discovery order.
func (c *Checker) Run() ([]Warning, error) {
	categories, err := c.categories()
	if err != nil {
		return nil, err
	}

	warnings := make([]Warning, 0)
	for _, category := range categories {
		ws, err := c.checkCategory(category)
		if err != nil {
			return warnings, err
		}
		warnings = append(warnings, ws...)
	}

	return warnings, nil
}

// categories lists the immediate subdirectories of the root, excluding the
// assets folder, in sorted order for deterministic output.
func (c *Checker) categories() ([]string, error) {
	entries, err := os.ReadDir(c.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("error reading metadata root: %w", err)
	}

	var categories []string
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == c.cfg.AssetsDir {
			continue
		}
		categories = append(categories, entry.Name())
	}
	sort.Strings(categories)
	return categories, nil
}

func (c *Checker) checkCategory(category string) ([]Warning, error) {
	dir := filepath.Join(c.cfg.Root, category)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading category %s: %w", category, err)
	}

	var warnings []Warning
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path) // #nosec G304 -- paths come from the scanned tree
		if err != nil {
			return warnings, fmt.Errorf("error reading %s: %w", path, err)
		}

		records, err := DecodeRecords(category, data, path)
		if err != nil {
			return warnings, err
		}

		warnings = append(warnings, c.checkRecords(records, entry.Name())...)
	}

	return warnings, nil
}

// checkRecords verifies that every entity in records has an asset file on
// disk. Tokens and vaults both resolve against the tokens assets; vaults
// have no icon of their own.
func (c *Checker) checkRecords(records Records, file string) []Warning {
	var warnings []Warning

	warn := func(identifier, subdir string) {
		warnings = append(warnings, Warning{
			Category:   string(records.Category),
			File:       file,
			Identifier: identifier,
			Message:    fmt.Sprintf("no asset file %s/%s.{png,jpg,jpeg} for %s entry %s", subdir, identifier, records.Category, identifier),
		})
	}

	switch records.Category {
	case CategoryTokens:
		for _, r := range records.Tokens {
			if !c.assetExists("tokens", r.Address) {
				warn(r.Address, "tokens")
			}
		}
	case CategoryValidators:
		for _, r := range records.Validators {
			if !c.assetExists("validators", r.ID) {
				warn(r.ID, "validators")
			}
		}
	case CategoryVaults:
		for _, r := range records.Vaults {
			if !c.assetExists("tokens", r.StakingTokenAddress) {
				warn(r.StakingTokenAddress, "tokens")
			}
		}
	default:
		log.Debugln("Ignoring unknown category", records.Category)
	}

	return warnings
}

func (c *Checker) assetExists(subdir, identifier string) bool {
	for _, ext := range c.cfg.Extensions {
		path := filepath.Join(c.cfg.Root, c.cfg.AssetsDir, subdir, identifier+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
