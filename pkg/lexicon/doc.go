// Package lexicon loads and holds the categorised word bank used to build
// jargon sentences.
//
// A dictionary assigns every word one of six categories through an optional
// single-character tag:
//
//	*   protocol        TCP *
//	$   sentence end    synergistically $
//	%   suffix          -ize %
//	^   sentence start  basically ^
//	|   no-end word     leverage |
//	    generic word    paradigm
//
// Words tagged with "|" belong to both the no-end list and the generic word
// list. Unknown tags fall back to the generic word list.
//
// # Usage
//
//	lex, err := lexicon.Load(path)
//	if err != nil {
//	    // errors.Is(err, lexicon.ErrDictionaryNotFound) for a missing file
//	}
//	word, err := lex.Pick(lexicon.Start, rnd)
//
// Dictionaries can also be stored as YAML (files ending in .yaml or .yml)
// with one list per category key, or in a sectioned layout where "%start",
// "%word" and similar header lines switch the category and "!" marks no-end
// words. WriteText, WriteYAML and WriteSections produce sorted, canonical
// dumps in each format.
//
// A Lexicon is immutable once built and safe for concurrent reads.
package lexicon
