package keywords

import (
	"sort"

	"github.com/jonathan/ats-scorer/internal/types"
)

// mergedTerm tracks a term's union statistics while aggregating sections.
type mergedTerm struct {
	term  types.Term
	tier  types.Tier
	order int // first-seen position across sections, for tie breaking
}

// Aggregate unions the per-section keyword sets into one re-ranked set.
// A term's tier is the highest-priority tier among all sections it
// appeared in; counts are summed across sections. The result is truncated
// to the top single keywords and top phrases, like a single extraction.
func Aggregate(sections []types.RequirementSection) types.TieredKeywordSet {
	merged := make(map[string]*mergedTerm)
	order := make([]string, 0)

	for _, section := range sections {
		tier := section.Label.KeywordTier()
		for _, term := range section.Keywords.All() {
			m, seen := merged[term.Normalized]
			if !seen {
				merged[term.Normalized] = &mergedTerm{term: term, tier: tier, order: len(order)}
				order = append(order, term.Normalized)
				continue
			}
			m.term.Count += term.Count
			if tier.Priority() > m.tier.Priority() {
				m.tier = tier
			}
		}
	}

	all := make([]*mergedTerm, 0, len(order))
	for _, n := range order {
		all = append(all, merged[n])
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].term.Count != all[j].term.Count {
			return all[i].term.Count > all[j].term.Count
		}
		return all[i].order < all[j].order
	})

	var set types.TieredKeywordSet
	singles, phrases := 0, 0
	for _, m := range all {
		if IsPhrase(m.term) {
			if phrases >= topPhrases {
				continue
			}
			phrases++
		} else {
			if singles >= topSingles {
				continue
			}
			singles++
		}
		set.Add(m.tier, m.term)
	}
	return set
}
