package migration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/brandbot/internal/brand"
	"github.com/temirov/brandbot/internal/utils"
)

const (
	manifestInvalidTemplateConstant = "invalid migration manifest: %w"
)

// Manifest maps legacy brand values to their current replacements.
type Manifest struct {
	Version        int                 `mapstructure:"version" yaml:"version" validate:"min=1"`
	Replacements   []Replacement       `mapstructure:"replacements" yaml:"replacements" validate:"min=1,dive"`
	FalsePositives []FalsePositiveRule `mapstructure:"false_positives" yaml:"false_positives" validate:"dive"`
}

// Replacement ties one legacy value to the brand record field that supersedes it.
type Replacement struct {
	Category string `mapstructure:"category" yaml:"category"`
	Legacy   string `mapstructure:"legacy" yaml:"legacy" validate:"required"`
	Current  string `mapstructure:"current" yaml:"current,omitempty"`
}

// FalsePositiveRule marks a generic token as a false positive unless one of the
// disambiguating phrases appears on the same line.
type FalsePositiveRule struct {
	Token   string   `mapstructure:"token" yaml:"token" validate:"required"`
	Phrases []string `mapstructure:"phrases" yaml:"phrases" validate:"min=1,dive,required"`
}

// Validate checks the manifest structure.
func (manifest Manifest) Validate() error {
	if validationError := utils.NewStructValidator().Struct(manifest); validationError != nil {
		return fmt.Errorf(manifestInvalidTemplateConstant, validationError)
	}
	if len(manifest.Tokens()) == 0 {
		return fmt.Errorf(manifestInvalidTemplateConstant, errors.New("no legacy tokens defined"))
	}
	return nil
}

// Tokens returns the legacy tokens in manifest order without blanks or case-insensitive duplicates.
func (manifest Manifest) Tokens() []string {
	seen := make(map[string]struct{}, len(manifest.Replacements))
	tokens := make([]string, 0, len(manifest.Replacements))
	for _, replacement := range manifest.Replacements {
		token := strings.TrimSpace(replacement.Legacy)
		if len(token) == 0 {
			continue
		}
		normalizedToken := strings.ToLower(token)
		if _, exists := seen[normalizedToken]; exists {
			continue
		}
		seen[normalizedToken] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// Replacement returns the current value that should replace a legacy token.
// The second result is false when the token is unknown or maps to no brand field.
func (manifest Manifest) Replacement(token string, record brand.Record) (string, bool) {
	normalizedToken := strings.ToLower(strings.TrimSpace(token))
	for _, replacement := range manifest.Replacements {
		if strings.ToLower(strings.TrimSpace(replacement.Legacy)) != normalizedToken {
			continue
		}
		if len(strings.TrimSpace(replacement.Current)) == 0 {
			return "", false
		}
		value, found := record.Lookup(replacement.Current)
		if !found || len(value) == 0 {
			return "", false
		}
		return value, true
	}
	return "", false
}

// Conflicts lists legacy tokens contained in current brand values. A non-empty result
// means the auditor would flag the brand record itself.
func (manifest Manifest) Conflicts(record brand.Record) []string {
	currentValues := record.Values()
	var conflicts []string
	for _, token := range manifest.Tokens() {
		normalizedToken := strings.ToLower(token)
		for _, value := range currentValues {
			if strings.Contains(strings.ToLower(value), normalizedToken) {
				conflicts = append(conflicts, token)
				break
			}
		}
	}
	return conflicts
}

// UnresolvedFields lists replacement field paths that the brand record cannot resolve.
func (manifest Manifest) UnresolvedFields(record brand.Record) []string {
	var unresolved []string
	for _, replacement := range manifest.Replacements {
		fieldPath := strings.TrimSpace(replacement.Current)
		if len(fieldPath) == 0 {
			continue
		}
		if _, found := record.Lookup(fieldPath); !found {
			unresolved = append(unresolved, fieldPath)
		}
	}
	return unresolved
}
