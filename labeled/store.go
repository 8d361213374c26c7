package labeled

// store is a dense label table keyed by handle id, with presence bits to
// distinguish "never labeled" from a zero-valued label.
type store[L any] struct {
	labels  []L
	present []bool
}

// set records label against id, growing the table as needed.
func (s *store[L]) set(id int, label L) {
	for len(s.labels) <= id {
		var zero L
		s.labels = append(s.labels, zero)
		s.present = append(s.present, false)
	}
	s.labels[id] = label
	s.present[id] = true
}

// get returns the label recorded against id. The second result is false for
// out-of-range ids and for ids that were never labeled.
func (s *store[L]) get(id int) (L, bool) {
	if id < 0 || id >= len(s.labels) || !s.present[id] {
		var zero L
		return zero, false
	}

	return s.labels[id], true
}

// clone returns an independent copy of the table.
func (s *store[L]) clone() store[L] {
	return store[L]{
		labels:  append([]L(nil), s.labels...),
		present: append([]bool(nil), s.present...),
	}
}
