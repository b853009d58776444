package value

// Dict is an ordered string-to-Value mapping. Insertion order is preserved,
// so rows render and iterate with their columns in the order they were built.
type Dict struct {
	keys    []string
	entries map[string]Value
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{entries: make(map[string]Value)}
}

// Set inserts or replaces the value for a key. A new key goes to the end of
// the iteration order; replacing keeps the original position.
func (d *Dict) Set(key string, v Value) {
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = v
}

// Get returns the value for a key.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// Keys returns the keys in insertion order. The slice must not be mutated.
func (d *Dict) Keys() []string {
	return d.keys
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Clone returns a deep copy; values containing blocks stay independently
// evaluable.
func (d *Dict) Clone() *Dict {
	out := NewDict()
	for _, k := range d.keys {
		out.Set(k, d.entries[k].Clone())
	}
	return out
}
