package menumap

// Priority bonuses applied during scoring. Bonuses are cumulative and
// order-independent.
const (
	BonusMultiSource = 0.2
	BonusValid       = 0.1
	BonusTopLevel    = 0.1
)

// Merge folds candidate collections into a single collection keyed by
// CandidateKey. When a URL appears more than once, the provenance sets
// are unioned, the maximum priority wins, and an empty title is filled
// from the later occurrence. Nil collections are skipped, so optional
// stage results can be passed directly.
//
// Coverage is commutative: a candidate present in two inputs with
// priorities p1 and p2 ends up with both sources and max(p1, p2)
// regardless of input order.
func Merge(baseURL string, collections ...*PageCollection) *PageCollection {
	merged := NewPageCollection(baseURL)
	index := make(map[string]int)

	for _, col := range collections {
		if col == nil {
			continue
		}
		for _, c := range col.Pages {
			key := CandidateKey(c.URL)
			i, ok := index[key]
			if !ok {
				clone := *c
				clone.Sources = append([]Source(nil), c.Sources...)
				index[key] = len(merged.Pages)
				merged.Pages = append(merged.Pages, &clone)
				continue
			}
			existing := merged.Pages[i]
			for _, s := range c.Sources {
				existing.AddSource(s)
			}
			if c.Priority > existing.Priority {
				existing.Priority = c.Priority
			}
			if existing.Title == "" {
				existing.Title = c.Title
			}
			if existing.Valid == nil {
				existing.Valid = c.Valid
			}
		}
	}

	return merged
}

// Score applies the priority bonuses to every candidate in place:
// +0.2 for more than one source, +0.1 for a confirmed-reachable
// candidate, +0.1 for top-level (depth 0) pages.
func Score(col *PageCollection) {
	if col == nil {
		return
	}
	for _, c := range col.Pages {
		c.Priority = Weight(c)
	}
}

// Weight returns a candidate's priority with all applicable bonuses.
func Weight(c *PageCandidate) float64 {
	w := c.Priority
	if len(c.Sources) > 1 {
		w += BonusMultiSource
	}
	if c.Valid != nil && *c.Valid {
		w += BonusValid
	}
	if c.Depth == 0 {
		w += BonusTopLevel
	}
	return w
}
