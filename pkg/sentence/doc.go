// Package sentence assembles corporate jargon sentences from a lexicon.
//
// Each call to Generator.Generate runs a fixed pipeline:
//
//  1. pick a length budget in [3, 10];
//  2. lead in with 0-3 start words;
//  3. add up to three generic words, each with a 20% chance of a suffix;
//  4. on a coin flip, add 0-3 protocols joined by "over" and forget the last word;
//  5. add up to three more words, plus two when the sentence would otherwise
//     have no content word to end on;
//  6. append an ending on a 10% draw, after a no-end word, or when the last
//     token contains a suffix.
//
// Randomness comes from a Source, so tests can script every draw. NewSource
// returns a ChaCha8 generator seeded from crypto/rand.
//
// # Usage
//
//	lex, err := lexicon.Load(path)
//	if err != nil {
//	    return err
//	}
//	g := sentence.New(lex, sentence.WithLogger(log))
//	if err := g.Write(os.Stdout, 5); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// A draw from an empty category fails with lexicon.ErrEmptyCategory. With
// WithSkipEmpty such draws add nothing and generation continues, which can
// yield an empty sentence for an empty lexicon.
//
// Generators keep no state between sentences. Several generators may share
// one Lexicon across goroutines; a single Generator is not safe for
// concurrent use because its Source is not.
package sentence
