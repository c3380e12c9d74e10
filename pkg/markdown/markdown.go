// Package markdown formats bot replies for Telegram MarkdownV2.
package markdown

import (
	"regexp"
	"strings"
)

const specialChars = "_*[]()~`>#+-=|{}.!"

// rulePattern matches rule citations: integers separated by single periods,
// e.g. 1.2, 1.10.2.
var rulePattern = regexp.MustCompile(`^\d+(\.\d+)+`)

// EscapeV2 prepends a backslash to every MarkdownV2 special character.
func EscapeV2(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if strings.ContainsRune(specialChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatRemarks turns rule citations in quiz remarks into MarkdownV2
// hyperlinks pointing at the rules page. The word "definition" links to
// the definitions anchor. Link text and URLs are escaped for MarkdownV2;
// all other words pass through untouched.
func FormatRemarks(remarks, rulesPageURL string) string {
	words := strings.Fields(remarks)
	for i, word := range words {
		switch {
		case strings.EqualFold(word, "definition"):
			url := EscapeV2(rulesPageURL + "#Definitions")
			words[i] = "[" + word + "](" + url + ")"
		case rulePattern.MatchString(word):
			// A citation at the end of a sentence carries the sentence's
			// period; it is not part of the rule number.
			word = strings.TrimSuffix(word, ".")
			url := EscapeV2(rulesPageURL + "#" + word)
			words[i] = "[" + EscapeV2(word) + "](" + url + ")"
		}
	}
	return strings.Join(words, " ")
}
