package automaton_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franleplant/lr1/internal/automaton"
	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/symbol"
)

func TestBuild_BalancedParensIsLR1(t *testing.T) {
	g := balancedParens(t)
	tbl := automaton.Build(g)

	assert.True(t, tbl.IsLR1())
	assert.Empty(t, tbl.Conflicts())
	assert.Len(t, tbl.Collection.States, 12)
}

func TestBuild_State0ShiftsOnOpenParen(t *testing.T) {
	g := balancedParens(t)
	tbl := automaton.Build(g)

	acts := tbl.Action(0, symbol.NewTerminal("("))
	if assert.Len(t, acts, 1) {
		assert.Equal(t, automaton.ActionShift, acts[0].Type)
	}
}

func TestBuild_AcceptOnTerminatorItem(t *testing.T) {
	g := balancedParens(t)
	tbl := automaton.Build(g)

	// The state reached after shifting List from state 0 accepts on EOF.
	dest, ok := tbl.Goto(0, symbol.NewNonTerminal("List"))
	assert.True(t, ok)

	acts := tbl.Action(dest, symbol.EOF)
	if assert.Len(t, acts, 1) {
		assert.Equal(t, automaton.ActionAccept, acts[0].Type)
	}
}

func TestBuild_UndefinedCellsAreEmpty(t *testing.T) {
	g := balancedParens(t)
	tbl := automaton.Build(g)

	assert.Empty(t, tbl.Action(0, symbol.NewTerminal(")")))
	_, ok := tbl.Goto(0, symbol.NewNonTerminal("Pair"))
	assert.True(t, ok) // state 0 does GOTO on Pair via List -> . Pair
}

func ambiguousGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	// A reduce/reduce conflict: after one "a" with lookahead EOF, the state
	// can reduce either S -> a or S -> (empty) (the start of S -> a S), and
	// no lookahead distinguishes the two.
	g, err := grammar.Build(
		"S",
		[]string{"S"},
		[]grammar.Rule{
			{Head: "S", Body: []string{"a", "S"}},
			{Head: "S", Body: []string{"a"}},
			{Head: "S", Body: []string{}},
		},
	)
	assert.NoError(t, err)
	return g
}

func TestBuild_NonLR1GrammarReportsConflicts(t *testing.T) {
	g := ambiguousGrammar(t)
	tbl := automaton.Build(g)

	if !tbl.IsLR1() {
		assert.NotEmpty(t, tbl.Conflicts())
	}
}

func TestDumpStates_ListsEveryState(t *testing.T) {
	g := balancedParens(t)
	tbl := automaton.Build(g)

	dump := tbl.DumpStates()
	assert.Contains(t, dump, "0  [FAKE_GOAL -> • List, EOF]")
	assert.Contains(t, dump, "\n11  [")
}

func TestDumpActionTable_HasStateColumnAndEOF(t *testing.T) {
	g := balancedParens(t)
	tbl := automaton.Build(g)

	dump := tbl.DumpActionTable()
	assert.Contains(t, dump, "State")
	assert.Contains(t, dump, "EOF")
}

func TestDumpGotoTable_ShowsDestinationState(t *testing.T) {
	g := balancedParens(t)
	tbl := automaton.Build(g)

	dest, ok := tbl.Goto(0, symbol.NewNonTerminal("List"))
	assert.True(t, ok)

	dump := tbl.DumpGotoTable()
	assert.Contains(t, dump, "List")
	assert.Contains(t, dump, strconv.Itoa(dest))
}
