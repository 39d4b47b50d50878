package imp

// Store is the association list from § Variable store: an immutable
// mapping from Name to Value with last-insertion-wins update
// semantics and Unit for unset keys. The zero value is an empty
// store.
//
// Lookups of an existing key are O(1) via an index map; Set returns a
// new Store value without mutating the receiver, copying only the
// entries slice (and, when a brand new key is introduced, the index
// map). Two Store values that share no newly-introduced keys share
// their index map by reference, which is safe because index is never
// mutated in place once built.
type Store struct {
	entries []storeEntry
	index   map[Name]int
}

type storeEntry struct {
	name  Name
	value Value
}

// Get returns the current value bound to name, or Unit if name has
// never been set. A lookup never alters the store.
func (s Store) Get(name Name) Value {
	v, _ := s.GetOK(name)
	return v
}

// GetOK is Get plus whether name has ever actually been bound, so a
// caller can tell a genuinely-unset name apart from one explicitly
// set to Unit — needed by lookupCallee's walk down the scope chain.
func (s Store) GetOK(name Name) (Value, bool) {
	if s.index == nil {
		return Unit{}, false
	}
	if i, ok := s.index[name]; ok {
		return s.entries[i].value, true
	}
	return Unit{}, false
}

// Set returns a new Store with name bound to value, preserving
// insertion order on first write and overwriting in place (by index)
// on subsequent writes, per "last-insertion-wins on update".
func (s Store) Set(name Name, value Value) Store {
	if s.index != nil {
		if i, ok := s.index[name]; ok {
			entries := make([]storeEntry, len(s.entries))
			copy(entries, s.entries)
			entries[i].value = value
			return Store{entries: entries, index: s.index}
		}
	}

	entries := make([]storeEntry, len(s.entries)+1)
	copy(entries, s.entries)
	entries[len(s.entries)] = storeEntry{name: name, value: value}

	index := make(map[Name]int, len(s.index)+1)
	for k, v := range s.index {
		index[k] = v
	}
	index[name] = len(s.entries)

	return Store{entries: entries, index: index}
}

// Len reports the number of distinct names currently bound.
func (s Store) Len() int { return len(s.entries) }

// Each calls f for every (name, value) pair in insertion order, for
// use by the debug dumper.
func (s Store) Each(f func(name Name, value Value)) {
	for _, e := range s.entries {
		f(e.name, e.value)
	}
}
