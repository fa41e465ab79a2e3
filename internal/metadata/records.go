// Package metadata cross-checks token, validator, and vault metadata files
// against the asset files they reference.
package metadata

import (
	"fmt"

	"github.com/HWxFrank/metadata/internal/fileutil"
)

// Category identifies a metadata grouping. Each category maps to a specific
// asset subfolder and identifier field.
type Category string

const (
	CategoryTokens     Category = "tokens"
	CategoryValidators Category = "validators"
	CategoryVaults     Category = "vaults"
)

// TokenRecord describes a token entry; its icon lives at
// tokens/<address> with one of the accepted extensions.
type TokenRecord struct {
	Address string `json:"address"`
}

// ValidatorRecord describes a validator entry; its icon lives at
// validators/<id>.
type ValidatorRecord struct {
	ID string `json:"id"`
}

// VaultRecord describes a vault entry; vaults reuse the icon of their
// staking token.
type VaultRecord struct {
	StakingTokenAddress string `json:"stakingTokenAddress"`
}

// Records holds the decoded contents of a single metadata file. Exactly one
// slice is populated, matching the file's category; files from unknown
// categories decode to an empty Records.
type Records struct {
	Category   Category
	Tokens     []TokenRecord
	Validators []ValidatorRecord
	Vaults     []VaultRecord
}

// DecodeRecords parses data as a metadata document for the given category.
// The document is expected to carry a top-level key equal to the category
// name, e.g. {"tokens": [...]}. Unknown categories yield empty Records with
// no error.
func DecodeRecords(category string, data []byte, path string) (Records, error) {
	records := Records{Category: Category(category)}

	var err error
	switch Category(category) {
	case CategoryTokens:
		var doc struct {
			Tokens []TokenRecord `json:"tokens"`
		}
		err = fileutil.UnmarshalConfigFile(data, &doc, path)
		records.Tokens = doc.Tokens
	case CategoryValidators:
		var doc struct {
			Validators []ValidatorRecord `json:"validators"`
		}
		err = fileutil.UnmarshalConfigFile(data, &doc, path)
		records.Validators = doc.Validators
	case CategoryVaults:
		var doc struct {
			Vaults []VaultRecord `json:"vaults"`
		}
		err = fileutil.UnmarshalConfigFile(data, &doc, path)
		records.Vaults = doc.Vaults
	}
	if err != nil {
		return Records{}, fmt.Errorf("error decoding %s: %w", path, err)
	}

	return records, nil
}
