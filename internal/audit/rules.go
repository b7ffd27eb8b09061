package audit

import (
	"strings"

	"github.com/temirov/brandbot/internal/migration"
)

// FalsePositiveRules decides whether a matched generic token is a legitimate word.
// Each generic token is kept only when one of its disambiguating phrases shares the line.
type FalsePositiveRules struct {
	phrasesByToken map[string][]string
}

// NewFalsePositiveRules builds a rule table keyed by lower-cased token. Rules naming the
// same token merge their phrases.
func NewFalsePositiveRules(rules []migration.FalsePositiveRule) FalsePositiveRules {
	phrasesByToken := make(map[string][]string, len(rules))
	for _, rule := range rules {
		token := strings.ToLower(strings.TrimSpace(rule.Token))
		if len(token) == 0 {
			continue
		}
		phrases := phrasesByToken[token]
		for _, phrase := range rule.Phrases {
			normalizedPhrase := strings.ToLower(strings.TrimSpace(phrase))
			if len(normalizedPhrase) == 0 {
				continue
			}
			phrases = append(phrases, normalizedPhrase)
		}
		phrasesByToken[token] = phrases
	}
	return FalsePositiveRules{phrasesByToken: phrasesByToken}
}

// IsFalsePositive reports whether a match of token on line should be discarded.
func (rules FalsePositiveRules) IsFalsePositive(line string, token string) bool {
	phrases, generic := rules.phrasesByToken[strings.ToLower(token)]
	if !generic {
		return false
	}

	lowerLine := strings.ToLower(line)
	for _, phrase := range phrases {
		if strings.Contains(lowerLine, phrase) {
			return false
		}
	}
	return true
}
