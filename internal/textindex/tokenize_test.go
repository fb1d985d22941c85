package textindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_FoldsCaseAndStripsPunctuation(t *testing.T) {
	tokens := Tokenize("Python, Django! (PostgreSQL)")

	texts := tokenTexts(tokens)
	assert.Equal(t, []string{"python", "django", "postgresql"}, texts)
}

func TestTokenize_KeepsPlusAndHash(t *testing.T) {
	tokens := Tokenize("Experience with C++ and c# development")

	texts := tokenTexts(tokens)
	assert.Contains(t, texts, "c++")
	assert.Contains(t, texts, "c#")
}

func TestTokenize_DropsShortTokensAndNumbers(t *testing.T) {
	tokens := Tokenize("Go is a language released in 2009 by 3 engineers")

	texts := tokenTexts(tokens)
	assert.NotContains(t, texts, "go")
	assert.NotContains(t, texts, "2009")
	assert.NotContains(t, texts, "is")
	assert.Contains(t, texts, "language")
	assert.Contains(t, texts, "engineers")
}

func TestTokenize_AssignsConsecutivePositions(t *testing.T) {
	tokens := Tokenize("distributed systems with strong consistency")

	for i, tok := range tokens {
		assert.Equal(t, i, tok.Pos)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
}

func TestStem_StripsPluralS(t *testing.T) {
	assert.Equal(t, "database", Stem("databases"))
	assert.Equal(t, "year", Stem("years"))
}

func TestStem_KeepsShortAndDoubleS(t *testing.T) {
	assert.Equal(t, "aws", Stem("aws"))
	assert.Equal(t, "business", Stem("business"))
	assert.Equal(t, "gas", Stem("gas"))
}

func TestStem_ResultIsPrefixOfInput(t *testing.T) {
	for _, word := range []string{"systems", "skills", "communications", "process"} {
		stemmed := Stem(word)
		assert.True(t, len(stemmed) <= len(word))
		assert.Equal(t, word[:len(stemmed)], stemmed)
	}
}

func TestNormalizePhrase_StemsEachWord(t *testing.T) {
	assert.Equal(t, "distributed system", NormalizePhrase("Distributed Systems"))
}

func TestIsStopWord_CommonWords(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("with"))
	assert.True(t, IsStopWord("and"))
	assert.False(t, IsStopWord("python"))
}

func tokenTexts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	return texts
}
