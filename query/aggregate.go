package query

import (
	"cmp"
	"slices"
	"strings"
)

// Count is one entry of an ordered participant total.
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Value int64  `json:"value" yaml:"value"`
}

// Counts is an ordered mapping from group key to total. The order is part
// of the query result.
type Counts []Count

// Get returns the total stored for key.
func (cs Counts) Get(key string) (int64, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c.Value, true
		}
	}
	return 0, false
}

// Keys returns the keys in result order.
func (cs Counts) Keys() []string {
	keys := make([]string, len(cs))
	for i, c := range cs {
		keys[i] = c.Key
	}
	return keys
}

// ParticipantsByInstitution sums participants per institution. Entries are
// ordered by institution name.
func (a *Analyzer) ParticipantsByInstitution() Counts {
	counts := a.sumParticipants(func(i int) string {
		return a.courses[i].Institution
	})
	slices.SortFunc(counts, func(x, y Count) int {
		return strings.Compare(x.Key, y.Key)
	})
	return counts
}

// ParticipantsByInstitutionSubject sums participants per
// "<institution>-<subject>" key. Entries are ordered by total, largest
// first; equal totals are ordered by key.
func (a *Analyzer) ParticipantsByInstitutionSubject() Counts {
	counts := a.sumParticipants(func(i int) string {
		return a.courses[i].Institution + "-" + a.courses[i].Subject
	})
	slices.SortFunc(counts, compareByTotal)
	return counts
}

// compareByTotal orders counts by value descending, then key ascending.
func compareByTotal(x, y Count) int {
	if c := cmp.Compare(y.Value, x.Value); c != 0 {
		return c
	}
	return strings.Compare(x.Key, y.Key)
}

// sumParticipants accumulates participants into one entry per group key in
// a single pass. The returned slice is in first-seen order.
func (a *Analyzer) sumParticipants(key func(i int) string) Counts {
	index := make(map[string]int)
	counts := make(Counts, 0)

	for i := range a.courses {
		k := key(i)
		pos, ok := index[k]
		if !ok {
			pos = len(counts)
			index[k] = pos
			counts = append(counts, Count{Key: k})
		}
		counts[pos].Value += a.courses[i].Participants
	}

	return counts
}
