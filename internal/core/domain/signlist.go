package domain

// SignEntry pairs one glyph with the transliteration values that map to
// it, in order of first appearance.
type SignEntry struct {
	// Glyph is the cuneiform glyph sequence.
	Glyph string

	// Values are the distinct transliteration signs seen for the glyph.
	Values []string
}

// SignList is an ordered mapping from glyph to transliteration values,
// built up while scanning a text. Glyphs keep the order in which they
// first appeared; each value is listed at most once per glyph.
type SignList struct {
	entries      []SignEntry
	index        map[string]int
	unrecognised []string
	seen         map[string]bool
}

// NewSignList returns an empty sign list.
func NewSignList() *SignList {
	return &SignList{
		index: make(map[string]int),
		seen:  make(map[string]bool),
	}
}

// Add records that the transliteration value maps to the glyph.
func (l *SignList) Add(glyph, value string) {
	i, ok := l.index[glyph]
	if !ok {
		i = len(l.entries)
		l.index[glyph] = i
		l.entries = append(l.entries, SignEntry{Glyph: glyph})
	}

	for _, v := range l.entries[i].Values {
		if v == value {
			return
		}
	}
	l.entries[i].Values = append(l.entries[i].Values, value)
}

// AddUnrecognised records a sign that has no glyph mapping.
func (l *SignList) AddUnrecognised(sign string) {
	if l.seen[sign] {
		return
	}
	l.seen[sign] = true
	l.unrecognised = append(l.unrecognised, sign)
}

// Entries returns the glyph entries in order of first appearance.
func (l *SignList) Entries() []SignEntry {
	return l.entries
}

// Unrecognised returns the signs without a glyph mapping, in order of
// first appearance.
func (l *SignList) Unrecognised() []string {
	return l.unrecognised
}

// Len returns the number of distinct glyphs in the list.
func (l *SignList) Len() int {
	return len(l.entries)
}
