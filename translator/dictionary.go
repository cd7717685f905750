package translator

import (
	"strings"
	"sync"
)

// Dictionary is an immutable English to Urdu lookup table. Keys are
// lower-cased phrases of one to three cleaned words joined by single spaces.
type Dictionary struct {
	entries map[string]string
}

// NewDictionary builds a dictionary from the given entries. The map is
// copied, and every key is normalised the same way runtime tokens are, so
// "According To" and "according to" address the same entry.
func NewDictionary(entries map[string]string) *Dictionary {
	d := &Dictionary{entries: make(map[string]string, len(entries))}
	for phrase, urdu := range entries {
		key := normalizeKey(phrase)
		if key == "" {
			continue
		}
		d.entries[key] = urdu
	}
	return d
}

// Lookup returns the Urdu rendering for a normalised key.
func (d *Dictionary) Lookup(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	return NewDictionary(defaultEntries)
})

// Default returns the built-in dictionary. It is built once and shared by
// every caller; it is safe for concurrent use since it is never written
// after construction.
func Default() *Dictionary {
	return defaultDictionary()
}

// Clean strips every character that is not an ASCII letter, digit,
// underscore or hyphen. It is applied to dictionary keys and to runtime
// tokens alike.
func Clean(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if isWordByte(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

func normalizeKey(phrase string) string {
	words := strings.Fields(strings.ToLower(phrase))
	for i, w := range words {
		words[i] = Clean(w)
	}
	return strings.Join(words, " ")
}
