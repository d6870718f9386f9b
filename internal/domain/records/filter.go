package records

import "strings"

// Filter combines the independent listing criteria. A nil or zero criterion
// is inactive and always passes; active criteria compose with logical AND.
type Filter struct {
	Search        string
	Type          *Type
	Status        *Status
	FavoritesOnly bool
}

// Matches reports whether a record satisfies every active criterion.
func (f Filter) Matches(r Record) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Client), needle) &&
			!strings.Contains(strings.ToLower(r.ID), needle) {
			return false
		}
	}
	if f.Type != nil && r.Type != *f.Type {
		return false
	}
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	if f.FavoritesOnly && !r.Favorite {
		return false
	}
	return true
}

// Apply returns the records matching the filter, in their original relative
// order. The input slice is never modified.
func (f Filter) Apply(recs []Record) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
