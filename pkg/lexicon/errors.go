package lexicon

import "errors"

var (
	// ErrMalformedEntry is returned when a dictionary line has more than two fields
	// or a YAML dictionary has an unexpected shape.
	ErrMalformedEntry = errors.New("malformed dictionary entry")

	// ErrEmptyCategory is returned when a random choice is requested from a category
	// that has no entries.
	ErrEmptyCategory = errors.New("category has no entries")

	// ErrDictionaryNotFound is returned when the dictionary file does not exist.
	ErrDictionaryNotFound = errors.New("dictionary file not found")

	// ErrFailedToReadDictionary wraps any other I/O failure while reading a dictionary.
	ErrFailedToReadDictionary = errors.New("failed to read dictionary")
)
