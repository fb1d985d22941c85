package textindex

import "strings"

// NGram is a contiguous run of non-stop tokens with its occurrence count
// and the stream position of its first occurrence.
type NGram struct {
	Text     string // space-joined surface form, lowercased
	Count    int
	FirstPos int
}

// CollectNGrams finds every contiguous run of n non-stop tokens in the
// stream and returns those occurring at least minCount times, in order of
// first occurrence. Contiguity means adjacent in the kept token stream;
// a stop word between two words breaks the phrase.
func CollectNGrams(tokens []Token, n, minCount int) []NGram {
	if n < 2 || len(tokens) < n {
		return nil
	}

	counts := make(map[string]*NGram)
	order := make([]string, 0)

	for i := 0; i+n <= len(tokens); i++ {
		words := make([]string, 0, n)
		ok := true
		for j := i; j < i+n; j++ {
			if IsStopWord(tokens[j].Text) {
				ok = false
				break
			}
			words = append(words, tokens[j].Text)
		}
		if !ok {
			continue
		}

		phrase := strings.Join(words, " ")
		if g, seen := counts[phrase]; seen {
			g.Count++
		} else {
			counts[phrase] = &NGram{Text: phrase, Count: 1, FirstPos: tokens[i].Pos}
			order = append(order, phrase)
		}
	}

	out := make([]NGram, 0, len(order))
	for _, phrase := range order {
		if g := counts[phrase]; g.Count >= minCount {
			out = append(out, *g)
		}
	}
	return out
}
