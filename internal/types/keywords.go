package types

// Term is a normalized keyword extracted from text, together with its
// original surface form and occurrence statistics. Terms are immutable
// once extracted.
type Term struct {
	Normalized string `json:"normalized"`
	Surface    string `json:"surface"`
	Count      int    `json:"count"`
	FirstPos   int    `json:"first_pos"` // token index of first occurrence
}

// TieredKeywordSet maps each tier to an ordered sequence of terms.
// Insertion order within a tier is the ranking order and is significant
// for top-N truncation. A term appears in at most one tier.
type TieredKeywordSet struct {
	Critical  []Term `json:"critical,omitempty"`
	Important []Term `json:"important,omitempty"`
	Preferred []Term `json:"preferred,omitempty"`
	Context   []Term `json:"context,omitempty"`
}

// Terms returns the ordered terms for a tier.
func (s *TieredKeywordSet) Terms(tier Tier) []Term {
	switch tier {
	case TierCritical:
		return s.Critical
	case TierImportant:
		return s.Important
	case TierPreferred:
		return s.Preferred
	case TierContext:
		return s.Context
	default:
		return nil
	}
}

// Add inserts a term into the given tier, preserving tier exclusivity.
// If the term is already present in a higher- or equal-priority tier the
// set is unchanged; if it is present in a lower-priority tier it is
// promoted, keeping the new tier's insertion order.
func (s *TieredKeywordSet) Add(tier Tier, term Term) {
	current, exists := s.TierOf(term.Normalized)
	if exists {
		if current.Priority() >= tier.Priority() {
			return
		}
		s.remove(current, term.Normalized)
	}
	switch tier {
	case TierCritical:
		s.Critical = append(s.Critical, term)
	case TierImportant:
		s.Important = append(s.Important, term)
	case TierPreferred:
		s.Preferred = append(s.Preferred, term)
	case TierContext:
		s.Context = append(s.Context, term)
	}
}

// TierOf returns the tier containing the normalized term, if any.
func (s *TieredKeywordSet) TierOf(normalized string) (Tier, bool) {
	for _, tier := range AllTiers {
		for _, t := range s.Terms(tier) {
			if t.Normalized == normalized {
				return tier, true
			}
		}
	}
	return "", false
}

// All returns every term in the set, tiers in descending priority order,
// insertion order within each tier.
func (s *TieredKeywordSet) All() []Term {
	out := make([]Term, 0, s.Len())
	for _, tier := range AllTiers {
		out = append(out, s.Terms(tier)...)
	}
	return out
}

// Len returns the total number of terms across all tiers.
func (s *TieredKeywordSet) Len() int {
	return len(s.Critical) + len(s.Important) + len(s.Preferred) + len(s.Context)
}

func (s *TieredKeywordSet) remove(tier Tier, normalized string) {
	terms := s.Terms(tier)
	for i, t := range terms {
		if t.Normalized == normalized {
			terms = append(terms[:i], terms[i+1:]...)
			break
		}
	}
	switch tier {
	case TierCritical:
		s.Critical = terms
	case TierImportant:
		s.Important = terms
	case TierPreferred:
		s.Preferred = terms
	case TierContext:
		s.Context = terms
	}
}
