// Package textindex provides the lexical primitives shared by the job
// analyzers: tokenization, stop-word filtering, light stemming, and
// n-gram detection. All functions are deterministic.
package textindex

import (
	"regexp"
	"strings"
)

// punctuation matches everything except word characters, whitespace, and
// the + and # needed for terms like "C++" and "C#".
var punctuation = regexp.MustCompile(`[^\w\s+#]`)

var digits = regexp.MustCompile(`^\d+$`)

// Token is a single folded token with its position in the token stream.
type Token struct {
	Text string // lowercased, punctuation-stripped
	Pos  int    // index in the token stream
}

// Tokenize splits text into lowercased tokens, stripping punctuation and
// dropping tokens of length two or less and pure numbers. Stop words are
// kept in the stream so that n-gram contiguity can be checked against the
// original word order; callers filter them with IsStopWord.
func Tokenize(text string) []Token {
	cleaned := punctuation.ReplaceAllString(text, " ")
	fields := strings.Fields(cleaned)

	tokens := make([]Token, 0, len(fields))
	pos := 0
	for _, f := range fields {
		folded := strings.ToLower(f)
		if len(folded) <= 2 || digits.MatchString(folded) {
			continue
		}
		tokens = append(tokens, Token{Text: folded, Pos: pos})
		pos++
	}
	return tokens
}

// Stem applies the documented light stemming: a trailing plural "s" is
// stripped from tokens longer than three characters unless the token ends
// in "ss". The stemmed form is always a prefix of the original, so
// substring matching against raw text keeps working.
func Stem(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return token[:len(token)-1]
	}
	return token
}

// Normalize folds and stems a single token.
func Normalize(token string) string {
	return Stem(strings.ToLower(strings.TrimSpace(token)))
}

// NormalizePhrase normalizes each word of a multi-word term.
func NormalizePhrase(phrase string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(phrase)))
	for i, w := range words {
		words[i] = Stem(w)
	}
	return strings.Join(words, " ")
}
