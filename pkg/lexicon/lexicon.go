package lexicon

import (
	"fmt"
	"slices"
)

// IntNer is the part of a random source needed for uniform choice.
type IntNer interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
}

// Lexicon is the categorised word bank. It is never mutated after Build,
// so a single value can be shared by concurrent generators.
type Lexicon struct {
	entries [NoEnd + 1][]string
	noends  map[string]struct{}
}

// Len returns the number of entries in category c.
func (l *Lexicon) Len(c Category) int {
	if l == nil {
		return 0
	}
	return len(l.entries[c])
}

// Entry returns the i-th entry of category c.
func (l *Lexicon) Entry(c Category, i int) string {
	return l.entries[c][i]
}

// Entries returns a copy of category c.
func (l *Lexicon) Entries(c Category) []string {
	if l == nil {
		return nil
	}
	return slices.Clone(l.entries[c])
}

// IsNoEnd reports whether word was loaded with the no-end tag.
func (l *Lexicon) IsNoEnd(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.noends[word]
	return ok
}

// Pick returns a uniformly chosen entry of category c.
func (l *Lexicon) Pick(c Category, rnd IntNer) (string, error) {
	n := l.Len(c)
	if n == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyCategory, c)
	}
	return l.entries[c][rnd.IntN(n)], nil
}

// Equal reports whether both lexicons hold the same multiset of entries in
// every category. Entry order is ignored.
func (l *Lexicon) Equal(other *Lexicon) bool {
	for _, c := range allCategories {
		a, b := l.Entries(c), other.Entries(c)
		if len(a) != len(b) {
			return false
		}
		slices.Sort(a)
		slices.Sort(b)
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}

// Builder accumulates entries for a Lexicon. Adding is append-only and
// duplicates are kept.
type Builder struct {
	entries [NoEnd + 1][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends word to category c. A NoEnd word is also appended to Word.
func (b *Builder) Add(word string, c Category) *Builder {
	b.entries[c] = append(b.entries[c], word)
	if c == NoEnd {
		b.entries[Word] = append(b.entries[Word], word)
	}
	return b
}

// AddTagged appends word to the category resolved from tag.
func (b *Builder) AddTagged(word, tag string) *Builder {
	return b.Add(word, CategoryFromTag(tag))
}

// Build returns a Lexicon holding a snapshot of the added entries. The
// Builder can keep being used without affecting the result.
func (b *Builder) Build() *Lexicon {
	l := &Lexicon{noends: make(map[string]struct{}, len(b.entries[NoEnd]))}
	for i := range b.entries {
		l.entries[i] = slices.Clone(b.entries[i])
	}
	for _, w := range l.entries[NoEnd] {
		l.noends[w] = struct{}{}
	}
	return l
}
