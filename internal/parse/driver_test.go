package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/parse"
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

func tokens(kinds ...string) *parse.SliceStream {
	toks := make([]parse.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = parse.NewToken(k, k)
	}
	return parse.NewSliceStream(toks...)
}

func TestParse_IsLR1(t *testing.T) {
	p := parse.New(balancedParens(t))
	assert.True(t, p.IsLR1())
}

func TestParse_EmptyStreamYieldsEmptyTreeNoError(t *testing.T) {
	p := parse.New(balancedParens(t))
	tr, err := p.Parse(parse.NewSliceStream())
	assert.NoError(t, err)
	assert.True(t, tr.Empty())
}

func TestParse_BareEOFYieldsEmptyTreeNoError(t *testing.T) {
	p := parse.New(balancedParens(t))
	tr, err := p.Parse(tokens("EOF"))
	assert.NoError(t, err)
	assert.True(t, tr.Empty())
}

func TestParse_SimplePairAccepts(t *testing.T) {
	assert := assert.New(t)
	p := parse.New(balancedParens(t))

	tr, err := p.Parse(tokens("(", ")", "EOF"))
	assert.NoError(err)
	assert.False(tr.Empty())

	root := tr.Node(tr.Root())
	assert.Equal("List", root.Symbol.Name())
	assert.Len(root.Children, 1)

	pair := tr.Node(root.Children[0])
	assert.Equal("Pair", pair.Symbol.Name())
	assert.Len(pair.Children, 2)
	assert.Equal("(", tr.Node(pair.Children[0]).Symbol.Name())
	assert.Equal(")", tr.Node(pair.Children[1]).Symbol.Name())
}

func TestParse_NestedPairAccepts(t *testing.T) {
	assert := assert.New(t)
	p := parse.New(balancedParens(t))

	tr, err := p.Parse(tokens("(", "(", ")", ")", "EOF"))
	assert.NoError(err)

	want := "List\n  Pair\n    (\n    Pair\n      (\n      )\n    )\n"
	assert.Equal(want, tr.String())
}

func TestParse_TwoTopLevelPairsUnderOneList(t *testing.T) {
	assert := assert.New(t)
	p := parse.New(balancedParens(t))

	tr, err := p.Parse(tokens("(", ")", "(", ")", "EOF"))
	assert.NoError(err)

	root := tr.Node(tr.Root())
	assert.Equal("List", root.Symbol.Name())
	assert.Len(root.Children, 2)
	assert.Equal("List", tr.Node(root.Children[0]).Symbol.Name())
	assert.Equal("Pair", tr.Node(root.Children[1]).Symbol.Name())
}

func TestParse_UnclosedParenIsUnexpectedEndOfInput(t *testing.T) {
	p := parse.New(balancedParens(t))
	_, err := p.Parse(tokens("("))

	var want *parse.UnexpectedEndOfInputError
	assert.ErrorAs(t, err, &want)
}

func TestParse_UnclosedParenThenEOFIsUnexpectedToken(t *testing.T) {
	p := parse.New(balancedParens(t))
	_, err := p.Parse(tokens("(", "EOF"))

	var want *parse.UnexpectedTokenError
	assert.ErrorAs(t, err, &want)
}

func TestParse_LeadingCloseParenIsUnexpectedToken(t *testing.T) {
	p := parse.New(balancedParens(t))
	_, err := p.Parse(tokens(")", "EOF"))

	var want *parse.UnexpectedTokenError
	assert.ErrorAs(t, err, &want)
}

func TestParse_TracerReceivesOneLinePerMove(t *testing.T) {
	p := parse.New(balancedParens(t))
	var lines []string
	p.SetTracer(func(line string) { lines = append(lines, line) })

	_, err := p.Parse(tokens("(", ")", "EOF"))
	assert.NoError(t, err)
	assert.NotEmpty(t, lines)
	assert.Equal(t, "accept", lines[len(lines)-1])
}
