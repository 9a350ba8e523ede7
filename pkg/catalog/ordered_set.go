package catalog

// orderedSet deduplicates names while preserving encounter order.
type orderedSet struct {
	names []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(name string) {
	if name == "" {
		return
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

func (s *orderedSet) list() []string {
	if s.names == nil {
		return []string{}
	}
	return s.names
}
