package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrFailedToWriteDictionary is returned when a dump cannot be written.
var ErrFailedToWriteDictionary = errors.New("failed to write dictionary")

// WriteText writes l in the line format accepted by Parse, grouped by
// category and sorted with an English collator. Parsing the output yields a
// Lexicon equal to l. Entries the line format cannot hold, such as phrases
// with spaces, fail with ErrMalformedEntry before anything is written.
func WriteText(w io.Writer, l *Lexicon) error {
	var buf bytes.Buffer
	for _, c := range allCategories {
		tag := c.Tag()
		for _, word := range sortedEntries(l, c) {
			// a bare "%word" first line would switch Load to the sectioned format
			if len(strings.Fields(word)) != 1 || (buf.Len() == 0 && tag == "" && isSectionHeader(word)) {
				return unwritable(c, word, "line")
			}
			if tag == "" {
				fmt.Fprintln(&buf, word)
				continue
			}
			fmt.Fprintf(&buf, "%s %s\n", word, tag)
		}
	}
	return flush(w, buf.Bytes())
}

// WriteSections writes l in the sectioned format accepted by ParseSections.
// Sections appear in alphabetical order; no-end words close the word section.
// Entries starting with a section or no-end marker fail with ErrMalformedEntry.
func WriteSections(w io.Writer, l *Lexicon) error {
	names := make([]string, 0, len(sectionKeys))
	for name := range sectionKeys {
		names = append(names, name)
	}
	slices.Sort(names)

	var buf bytes.Buffer
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		c := sectionKeys[name]
		fmt.Fprintf(&buf, "%%%s\n", name)
		for _, word := range sortedEntries(l, c) {
			if !sectionSafe(word) {
				return unwritable(c, word, "sectioned")
			}
			fmt.Fprintln(&buf, word)
		}
		if c == Word {
			for _, word := range sortedEntries(l, NoEnd) {
				if !sectionSafe(word) {
					return unwritable(NoEnd, word, "sectioned")
				}
				fmt.Fprintf(&buf, "!%s\n", word)
			}
		}
	}
	return flush(w, buf.Bytes())
}

func sectionSafe(word string) bool {
	return word == strings.TrimSpace(word) &&
		!strings.ContainsAny(word, "\r\n") &&
		!strings.HasPrefix(word, "%") &&
		!strings.HasPrefix(word, "!")
}

func unwritable(c Category, word, format string) error {
	return fmt.Errorf("%w: %s entry %q cannot be written in the %s format", ErrMalformedEntry, c, word, format)
}

func flush(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteDictionary, err)
	}
	return nil
}

// WriteYAML writes l in the layout accepted by ParseYAML.
func WriteYAML(w io.Writer, l *Lexicon) error {
	var d yamlDictionary
	lists := d.lists()
	for _, c := range allCategories {
		*lists[c] = sortedEntries(l, c)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&d); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteDictionary, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteDictionary, err)
	}
	return nil
}

// sortedEntries returns the entries of c ready for a dump. The generic word
// list drops one occurrence per no-end entry, since those are written with
// their own tag and re-added to the word list on load.
func sortedEntries(l *Lexicon, c Category) []string {
	entries := l.Entries(c)
	if c == Word {
		pending := make(map[string]int, l.Len(NoEnd))
		for _, w := range l.Entries(NoEnd) {
			pending[w]++
		}
		kept := entries[:0]
		for _, w := range entries {
			if pending[w] > 0 {
				pending[w]--
				continue
			}
			kept = append(kept, w)
		}
		entries = kept
	}
	collate.New(language.English).SortStrings(entries)
	return entries
}
