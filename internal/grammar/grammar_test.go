package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/symbol"
)

func balancedParens(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.Build(
		"List",
		[]string{"List", "Pair"},
		[]grammar.Rule{
			{Head: "List", Body: []string{"List", "Pair"}},
			{Head: "List", Body: []string{"Pair"}},
			{Head: "Pair", Body: []string{"(", "Pair", ")"}},
			{Head: "Pair", Body: []string{"(", ")"}},
		},
	)
	assert.NoError(t, err)
	return g
}

func TestBuild_ClassifiesTerminalsAndNonTerminals(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t)

	assert.True(g.Goal.IsNonTerminal())
	assert.Equal("List", g.Goal.Name())

	open := symbol.NewTerminal("(")
	assert.True(g.Symbols.Has(open))
	assert.True(open.IsTerminal())

	pair := symbol.NewNonTerminal("Pair")
	assert.True(g.Symbols.Has(pair))
}

func TestBuild_RejectsUndeclaredGoal(t *testing.T) {
	_, err := grammar.Build("Missing", []string{"List"}, nil)
	assert.Error(t, err)

	var invalid *grammar.InvalidGrammarError
	assert.ErrorAs(t, err, &invalid)
}

func TestBuild_RejectsUndeclaredHead(t *testing.T) {
	_, err := grammar.Build("List", []string{"List"}, []grammar.Rule{
		{Head: "Pair", Body: []string{"(", ")"}},
	})
	assert.Error(t, err)
}

func TestBuild_RejectsReservedNonTerminal(t *testing.T) {
	_, err := grammar.Build(symbol.EOFName, []string{symbol.EOFName}, nil)
	assert.Error(t, err)
}

func TestBuild_RejectsReservedBodySymbol(t *testing.T) {
	_, err := grammar.Build("List", []string{"List"}, []grammar.Rule{
		{Head: "List", Body: []string{symbol.LambdaName}},
	})
	assert.Error(t, err)
}

func TestAugmented_PrependsFakeGoalProduction(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t)

	aug := g.Augmented()

	assert.Equal(symbol.FakeGoal, aug.Goal)
	assert.Equal(symbol.FakeGoal, aug.Productions[0].Head)
	assert.Equal(symbol.Seq{symbol.NewNonTerminal("List")}, aug.Productions[0].Body)

	// Original productions follow, shifted by one, in order.
	assert.Len(aug.Productions, len(g.Productions)+1)
	for i, p := range g.Productions {
		assert.True(p.Equal(aug.Productions[i+1]))
	}

	// g itself is untouched.
	assert.Equal(symbol.NewNonTerminal("List"), g.Goal)
}

func TestProductionIndicesFor_PreservesDefinitionOrder(t *testing.T) {
	g := balancedParens(t)
	idxs := g.ProductionIndicesFor(symbol.NewNonTerminal("Pair"))
	assert.Equal(t, []int{2, 3}, idxs)
}

func expressionGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.Build(
		"Goal",
		[]string{"Goal", "Expr", "Expr'", "Term", "Term'", "Factor"},
		[]grammar.Rule{
			{Head: "Goal", Body: []string{"Expr"}},
			{Head: "Expr", Body: []string{"Term", "Expr'"}},
			{Head: "Expr'", Body: []string{"+", "Term", "Expr'"}},
			{Head: "Expr'", Body: []string{"-", "Term", "Expr'"}},
			{Head: "Expr'", Body: []string{}},
			{Head: "Term", Body: []string{"Factor", "Term'"}},
			{Head: "Term'", Body: []string{"x", "Factor", "Term'"}},
			{Head: "Term'", Body: []string{"%", "Factor", "Term'"}},
			{Head: "Term'", Body: []string{}},
			{Head: "Factor", Body: []string{"(", "Expr", ")"}},
			{Head: "Factor", Body: []string{"num"}},
			{Head: "Factor", Body: []string{"name"}},
		},
	)
	assert.NoError(t, err)
	return g
}

func TestFIRST_MatchesSpecWorkedExample(t *testing.T) {
	assert := assert.New(t)
	g := expressionGrammar(t)

	exprPrime := symbol.NewNonTerminal("Expr'")
	assert.Equal(symbol.NewSet(
		symbol.NewTerminal("+"),
		symbol.NewTerminal("-"),
		symbol.Lambda,
	), g.FIRST(exprPrime))

	termPrime := symbol.NewNonTerminal("Term'")
	assert.Equal(symbol.NewSet(
		symbol.NewTerminal("x"),
		symbol.NewTerminal("%"),
		symbol.Lambda,
	), g.FIRST(termPrime))

	factor := symbol.NewNonTerminal("Factor")
	assert.Equal(symbol.NewSet(
		symbol.NewTerminal("("),
		symbol.NewTerminal("name"),
		symbol.NewTerminal("num"),
	), g.FIRST(factor))
}

func TestFirstOfSeq_MatchesSpecWorkedExample(t *testing.T) {
	assert := assert.New(t)
	g := expressionGrammar(t)

	seq := symbol.Seq{symbol.NewNonTerminal("Expr'"), symbol.NewTerminal("x")}
	fs, ok := g.FirstOfSeq(seq)
	assert.True(ok)
	assert.Equal(symbol.NewSet(
		symbol.NewTerminal("+"),
		symbol.NewTerminal("-"),
		symbol.NewTerminal("x"),
	), fs)
}

func TestFirstOfSeq_EmptyIsUndefined(t *testing.T) {
	fs, ok := grammar.Grammar{}.FirstOfSeq(nil)
	assert.False(t, ok)
	assert.Nil(t, fs)
}

func TestFIRST_EveryTerminalIncludingEOFAndLambda(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t)

	assert.Equal(symbol.NewSet(symbol.EOF), g.FIRST(symbol.EOF))
	assert.Equal(symbol.NewSet(symbol.Lambda), g.FIRST(symbol.Lambda))

	open := symbol.NewTerminal("(")
	assert.Equal(symbol.NewSet(open), g.FIRST(open))
}
