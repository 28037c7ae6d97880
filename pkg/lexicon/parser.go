package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Parse reads a dictionary in the line format: one entry per line, a word
// optionally followed by a single tag, separated by whitespace. Blank lines
// are skipped.
func Parse(r io.Reader) (*Lexicon, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		switch len(fields) {
		case 0:
			continue
		case 1:
			b.Add(normalize(fields[0]), Word)
		case 2:
			b.AddTagged(normalize(fields[0]), fields[1])
		default:
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedEntry, line, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadDictionary, err)
	}
	return b.Build(), nil
}

// yamlDictionary is the YAML dictionary layout. Words listed under noends are
// also generic words and must not be repeated under words.
type yamlDictionary struct {
	Protocols []string `yaml:"protocols,omitempty"`
	Ends      []string `yaml:"ends,omitempty"`
	Suffixes  []string `yaml:"suffixes,omitempty"`
	Starts    []string `yaml:"starts,omitempty"`
	NoEnds    []string `yaml:"noends,omitempty"`
	Words     []string `yaml:"words,omitempty"`
}

func (d *yamlDictionary) lists() map[Category]*[]string {
	return map[Category]*[]string{
		Protocol: &d.Protocols,
		End:      &d.Ends,
		Suffix:   &d.Suffixes,
		Start:    &d.Starts,
		NoEnd:    &d.NoEnds,
		Word:     &d.Words,
	}
}

// ParseYAML reads a dictionary stored as a YAML mapping from category key
// (protocols, ends, suffixes, starts, noends, words) to a list of entries.
// Entries may contain spaces.
func ParseYAML(r io.Reader) (*Lexicon, error) {
	var d yamlDictionary
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEntry, err)
	}

	b := NewBuilder()
	for _, c := range allCategories {
		for _, w := range *d.lists()[c] {
			w = normalize(strings.TrimSpace(w))
			if w == "" {
				return nil, fmt.Errorf("%w: %s entry %q", ErrMalformedEntry, c, w)
			}
			b.Add(w, c)
		}
	}
	return b.Build(), nil
}

// sectionKeys maps section headers of the sectioned format to categories.
var sectionKeys = map[string]Category{
	"protocol": Protocol,
	"end":      End,
	"suffix":   Suffix,
	"start":    Start,
	"word":     Word,
}

// ParseSections reads the sectioned dictionary format: a line "%name" starts
// a section (protocol, end, suffix, start or word) and every following line
// is one entry of it. Word entries prefixed with "!" are no-end words; the
// marker is dropped elsewhere. Entries before the first header and entries of
// unknown sections are generic words, so every line reaches the generator.
func ParseSections(r io.Reader) (*Lexicon, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	current := Word
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "%"):
			current = sectionKeys[line[1:]]
		case strings.HasPrefix(line, "!") && current == Word:
			b.Add(normalize(line[1:]), NoEnd)
		case strings.HasPrefix(line, "!"):
			b.Add(normalize(line[1:]), current)
		default:
			b.Add(normalize(line), current)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadDictionary, err)
	}
	return b.Build(), nil
}

// Load reads the dictionary at path. Files with a .yaml or .yml extension are
// parsed with ParseYAML. Other files whose first entry is a known section
// header such as "%word" are parsed with ParseSections, everything else with
// Parse.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadDictionary, err)
	}

	return parserFor(path, data)(bytes.NewReader(data))
}

func parserFor(path string, data []byte) func(io.Reader) (*Lexicon, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return ParseYAML
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			return ParseSections
		}
		break
	}
	return Parse
}

func isSectionHeader(line string) bool {
	name, ok := strings.CutPrefix(line, "%")
	if !ok {
		return false
	}
	_, known := sectionKeys[name]
	return known
}

// normalize brings words into NFC so visually identical entries compare equal.
func normalize(word string) string {
	return norm.NFC.String(word)
}
