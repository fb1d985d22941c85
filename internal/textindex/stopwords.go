package textindex

import "strings"

// stopWords is the fixed filter list. The set is part of the scoring
// contract: changing it changes extracted keywords, so additions need a
// corresponding fixture update.
var stopWords = map[string]struct{}{}

func init() {
	list := []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have",
		"i", "it", "for", "not", "on", "with", "he", "as", "you",
		"do", "at", "this", "but", "his", "by", "from", "they",
		"we", "say", "her", "she", "or", "an", "will", "my", "one",
		"all", "would", "there", "their", "what", "so", "up", "out",
		"if", "about", "who", "get", "which", "go", "me", "when",
		"make", "can", "like", "time", "no", "just", "him", "know",
		"take", "people", "into", "year", "your", "good", "some",
		"could", "them", "see", "other", "than", "then", "now",
		"look", "only", "come", "its", "over", "think", "also",
		"back", "after", "use", "two", "how", "our", "work", "first",
		"well", "way", "even", "new", "want", "because", "any",
		"these", "give", "day", "most", "us", "is", "are", "was",
		"were", "been", "has", "had", "may", "must", "shall", "should",
	}
	for _, w := range list {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the word is on the fixed stop-word list.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}
