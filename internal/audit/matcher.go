package audit

import "strings"

const lineSeparatorConstant = "\n"

// Matcher compares text against an ordered legacy token list case-insensitively.
type Matcher struct {
	tokens           []string
	normalizedTokens []string
	rules            FalsePositiveRules
}

// NewMatcher constructs a Matcher. Token order is preserved in match results.
func NewMatcher(tokens []string, rules FalsePositiveRules) *Matcher {
	normalizedTokens := make([]string, len(tokens))
	for index, token := range tokens {
		normalizedTokens[index] = strings.ToLower(token)
	}
	return &Matcher{
		tokens:           append([]string{}, tokens...),
		normalizedTokens: normalizedTokens,
		rules:            rules,
	}
}

// TokenCount returns the number of tokens the matcher looks for.
func (matcher *Matcher) TokenCount() int {
	return len(matcher.tokens)
}

// MatchLine returns every token contained in line that survives false-positive suppression.
func (matcher *Matcher) MatchLine(line string) []string {
	lowerLine := strings.ToLower(line)
	var matches []string
	for index, normalizedToken := range matcher.normalizedTokens {
		if len(normalizedToken) == 0 || !strings.Contains(lowerLine, normalizedToken) {
			continue
		}
		if matcher.rules.IsFalsePositive(line, normalizedToken) {
			continue
		}
		matches = append(matches, matcher.tokens[index])
	}
	return matches
}

// ScanContent reports an Issue per matched token per line, numbering lines from one.
func (matcher *Matcher) ScanContent(filePath string, content string) []Issue {
	var issues []Issue
	for lineIndex, line := range strings.Split(content, lineSeparatorConstant) {
		for _, token := range matcher.MatchLine(line) {
			issues = append(issues, Issue{
				FilePath:   filePath,
				LineNumber: lineIndex + 1,
				Token:      token,
				Content:    strings.TrimSpace(line),
			})
		}
	}
	return issues
}
