package corpus

// Dictionary is the bijection between attribute-value strings and
// compact identifiers. Identifiers are assigned densely from 0 in
// insertion order; 0 is an ordinary identifier, not a sentinel.
type Dictionary struct {
	byID     []string
	byString map[string]uint32
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{byString: make(map[string]uint32)}
}

// Intern returns the identifier for s, assigning the next free one on
// first sight.
func (d *Dictionary) Intern(s string) uint32 {
	if id, ok := d.byString[s]; ok {
		return id
	}
	id := uint32(len(d.byID))
	d.byID = append(d.byID, s)
	d.byString[s] = id
	return id
}

// Lookup is the read-only form used during query compilation.
func (d *Dictionary) Lookup(s string) (uint32, bool) {
	id, ok := d.byString[s]
	return id, ok
}

// Reveal returns the string for an assigned identifier in O(1).
// An unassigned identifier is a programmer error and panics.
func (d *Dictionary) Reveal(id uint32) string {
	return d.byID[id]
}

// Len returns the number of distinct strings interned so far.
func (d *Dictionary) Len() int { return len(d.byID) }
