package sentence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/bullshit/pkg/lexicon"
	"github.com/dmitrymomot/bullshit/pkg/logger"
)

// Composition limits and probabilities.
const (
	MinTarget    = 3 // smallest length budget
	MaxTarget    = 10
	MaxStarts    = 3
	MaxPerPhase  = 3 // words added by one word phase
	MaxProtocols = 3

	SuffixChance = 0.2
	EndingChance = 0.1

	// protocolThreshold is exceeded by a uniform draw half of the time.
	protocolThreshold = 0.5

	// guardWords is added to the second word phase when the sentence would
	// otherwise lack a content word.
	guardWords = 2

	// Connector joins consecutive protocols and does not count toward the budget.
	Connector = "over"
)

// ErrFailedToWriteSentences is returned when generated output cannot be written.
var ErrFailedToWriteSentences = errors.New("failed to write sentences")

// Sentence is an ordered list of tokens.
type Sentence []string

// String joins the tokens with single spaces.
func (s Sentence) String() string {
	return strings.Join(s, " ")
}

// Generator produces jargon sentences from a Lexicon. It keeps no state
// between calls apart from its random source.
type Generator struct {
	lex       *lexicon.Lexicon
	rnd       Source
	log       *slog.Logger
	skipEmpty bool
}

// New returns a Generator reading from lex.
func New(lex *lexicon.Lexicon, opts ...Option) *Generator {
	g := &Generator{
		lex: lex,
		rnd: NewSource(),
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds one sentence.
//
// Draws happen in a fixed order: length budget, start count, each start,
// first word count, each word with its suffix decision, protocol coin,
// protocol count, each protocol, second word count, each word, ending coin,
// ending word.
func (g *Generator) Generate() (Sentence, error) {
	c := &composition{Generator: g, target: g.between(MinTarget, MaxTarget)}

	if err := c.leadIn(); err != nil {
		return nil, err
	}
	if err := c.addWords(c.budget()); err != nil {
		return nil, err
	}
	if err := c.protocols(); err != nil {
		return nil, err
	}

	more := c.budget()
	if c.count+more <= 1 || !c.hasLast {
		more += guardWords
	}
	if err := c.addWords(more); err != nil {
		return nil, err
	}

	if err := c.ending(); err != nil {
		return nil, err
	}

	g.log.Debug("sentence generated",
		logger.Count(len(c.tokens)),
		slog.Int("target", c.target),
		logger.Sentence(c.tokens.String()),
	)
	return c.tokens, nil
}

// GenerateN builds n sentences. It stops at the first error.
func (g *Generator) GenerateN(n int) ([]Sentence, error) {
	out := make([]Sentence, 0, max(n, 0))
	for range n {
		s, err := g.Generate()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Write generates n sentences and writes them to w, one per line. Nothing is
// written when generation fails.
func (g *Generator) Write(w io.Writer, n int) error {
	sentences, err := g.GenerateN(n)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, s := range sentences {
		if _, err := fmt.Fprintln(bw, s.String()); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToWriteSentences, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteSentences, err)
	}
	return nil
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

// composition is the per-call state of Generate.
type composition struct {
	*Generator
	tokens  Sentence
	target  int
	count   int
	last    string
	hasLast bool
}

// pick draws from category cat. ok is false when the category is empty and
// the generator skips empty categories.
func (c *composition) pick(cat lexicon.Category) (word string, ok bool, err error) {
	if c.skipEmpty && c.lex.Len(cat) == 0 {
		c.log.Debug("skipping empty category", logger.Category(cat))
		return "", false, nil
	}
	word, err = c.lex.Pick(cat, c.rnd)
	if err != nil {
		return "", false, err
	}
	return word, true, nil
}

// budget draws how many words a word phase adds.
func (c *composition) budget() int {
	if c.count >= c.target {
		return 0
	}
	return c.between(0, min(c.target-c.count, MaxPerPhase))
}

func (c *composition) leadIn() error {
	for range c.between(0, MaxStarts) {
		word, ok, err := c.pick(lexicon.Start)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		c.tokens = append(c.tokens, word)
		c.count++
	}
	return nil
}

// addWords appends n generic words. Each may carry a suffix; the last word
// is remembered without it.
func (c *composition) addWords(n int) error {
	for range n {
		word, ok, err := c.pick(lexicon.Word)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		token := word
		if c.rnd.Float64() < SuffixChance {
			suffix, ok, err := c.pick(lexicon.Suffix)
			if err != nil {
				return err
			}
			if ok {
				token += suffix
			}
		}
		c.tokens = append(c.tokens, token)
		c.last, c.hasLast = word, true
		c.count++
	}
	return nil
}

// protocols runs the protocol phase. Once the coin succeeds the last word is
// forgotten, even if no protocol gets added.
func (c *composition) protocols() error {
	if c.rnd.Float64() <= protocolThreshold {
		return nil
	}
	n := c.between(0, MaxProtocols)
	for i := range n {
		word, ok, err := c.pick(lexicon.Protocol)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		c.tokens = append(c.tokens, word)
		if i != n-1 {
			c.tokens = append(c.tokens, Connector)
		}
		c.count++
	}
	c.last, c.hasLast = "", false
	return nil
}

func (c *composition) ending() error {
	if !(c.rnd.Float64() < EndingChance || (c.hasLast && c.lex.IsNoEnd(c.last)) || c.lastHasSuffix()) {
		return nil
	}
	word, ok, err := c.pick(lexicon.End)
	if err != nil {
		return err
	}
	if ok {
		c.tokens = append(c.tokens, word)
	}
	return nil
}

// lastHasSuffix reports whether the final token contains any suffix entry.
// Start and protocol tokens are tested too.
func (c *composition) lastHasSuffix() bool {
	if len(c.tokens) == 0 {
		c.log.Debug("no tokens before ending check")
		return false
	}
	last := c.tokens[len(c.tokens)-1]
	for i := range c.lex.Len(lexicon.Suffix) {
		if strings.Contains(last, c.lex.Entry(lexicon.Suffix, i)) {
			return true
		}
	}
	return false
}
