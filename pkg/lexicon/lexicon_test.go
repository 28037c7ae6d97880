package lexicon_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bullshit/pkg/lexicon"
)

type fixedIndex int

func (f fixedIndex) IntN(n int) int { return int(f) % n }

func TestBuilder(t *testing.T) {
	t.Run("no-end words are also generic words", func(t *testing.T) {
		lex := lexicon.NewBuilder().
			Add("leverage", lexicon.NoEnd).
			Add("paradigm", lexicon.Word).
			Build()

		assert.Equal(t, []string{"leverage"}, lex.Entries(lexicon.NoEnd))
		assert.Equal(t, []string{"leverage", "paradigm"}, lex.Entries(lexicon.Word))
		assert.True(t, lex.IsNoEnd("leverage"))
		assert.False(t, lex.IsNoEnd("paradigm"))
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		lex := lexicon.NewBuilder().
			AddTagged("TCP", "*").
			AddTagged("TCP", "*").
			Build()
		assert.Equal(t, 2, lex.Len(lexicon.Protocol))
	})

	t.Run("build takes a snapshot", func(t *testing.T) {
		b := lexicon.NewBuilder().Add("cloud", lexicon.Word)
		lex := b.Build()
		b.Add("edge", lexicon.Word)
		assert.Equal(t, 1, lex.Len(lexicon.Word))
	})

	t.Run("entries returns a copy", func(t *testing.T) {
		lex := lexicon.NewBuilder().Add("cloud", lexicon.Word).Build()
		entries := lex.Entries(lexicon.Word)
		entries[0] = "mutated"
		assert.Equal(t, "cloud", lex.Entry(lexicon.Word, 0))
	})
}

func TestPick(t *testing.T) {
	lex := lexicon.NewBuilder().
		Add("HTTP", lexicon.Protocol).
		Add("TCP", lexicon.Protocol).
		Build()

	word, err := lex.Pick(lexicon.Protocol, fixedIndex(1))
	require.NoError(t, err)
	assert.Equal(t, "TCP", word)

	_, err = lex.Pick(lexicon.Start, fixedIndex(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, lexicon.ErrEmptyCategory))
	assert.Contains(t, err.Error(), "starts")
}

func TestEqual(t *testing.T) {
	a := lexicon.NewBuilder().Add("a", lexicon.Word).Add("b", lexicon.Word).Add("x", lexicon.End).Build()
	b := lexicon.NewBuilder().Add("b", lexicon.Word).Add("x", lexicon.End).Add("a", lexicon.Word).Build()
	c := lexicon.NewBuilder().Add("a", lexicon.Word).Add("a", lexicon.Word).Add("x", lexicon.End).Build()

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
