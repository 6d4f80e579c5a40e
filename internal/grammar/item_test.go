package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/symbol"
)

func TestItem_StackTopAndAdvance(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t).Augmented()

	start := grammar.Item{Prod: 0, Dot: 0, Lookahead: symbol.EOF}

	top, ok := g.StackTop(start)
	assert.True(ok)
	assert.Equal(symbol.NewNonTerminal("List"), top)

	advanced, ok := g.Advance(start)
	assert.True(ok)
	assert.Equal(1, advanced.Dot)
	assert.True(g.IsComplete(advanced))
	assert.True(g.IsTerminator(advanced))

	_, ok = g.StackTop(advanced)
	assert.False(ok)

	_, ok = g.Advance(advanced)
	assert.False(ok)
}

func TestItem_AfterDotAndLookaheadAlwaysNonEmpty(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t).Augmented()

	complete := grammar.Item{Prod: 0, Dot: 1, Lookahead: symbol.EOF}
	rest := g.AfterDotAndLookahead(complete)
	assert.Equal(symbol.Seq{symbol.EOF}, rest)
}

func TestItem_String(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t).Augmented()

	dotAtStart := grammar.Item{Prod: 0, Dot: 0, Lookahead: symbol.EOF}
	assert.Equal("[FAKE_GOAL -> • List, EOF]", dotAtStart.String(g))

	dotAtEnd := grammar.Item{Prod: 0, Dot: 1, Lookahead: symbol.EOF}
	assert.Equal("[FAKE_GOAL -> List •, EOF]", dotAtEnd.String(g))
}

func TestItemSet_FingerprintIsOrderIndependent(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t).Augmented()

	a := grammar.Item{Prod: 0, Dot: 0, Lookahead: symbol.EOF}
	b := grammar.Item{Prod: 1, Dot: 0, Lookahead: symbol.EOF}

	s1 := grammar.NewItemSet(a, b)
	s2 := grammar.NewItemSet(b, a)

	assert.Equal(s1.Fingerprint(g), s2.Fingerprint(g))
}

func TestItemSet_FingerprintDistinguishesDifferentSets(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t).Augmented()

	a := grammar.NewItemSet(grammar.Item{Prod: 0, Dot: 0, Lookahead: symbol.EOF})
	b := grammar.NewItemSet(grammar.Item{Prod: 1, Dot: 0, Lookahead: symbol.EOF})

	assert.NotEqual(a.Fingerprint(g), b.Fingerprint(g))
}
