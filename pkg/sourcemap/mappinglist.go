package sourcemap

import "sort"

// mappingList is an append-ordered buffer with a lazy-sort invariant: Add
// never reorders the buffer, Sort brings it into the v3 total order on
// demand. Ties don't occur among well-formed mappings, so Sort does not
// need to be stable.
type mappingList struct {
	items []Mapping
}

func (l *mappingList) Add(m Mapping) {
	l.items = append(l.items, m)
}

func (l *mappingList) Sort() {
	sort.Slice(l.items, func(i, j int) bool {
		return less(l.items[i], l.items[j])
	})
}
