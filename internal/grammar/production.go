package grammar

import (
	"fmt"

	"github.com/franleplant/lr1/internal/symbol"
)

// Production is a single rewrite rule `head -> body`. It is immutable once
// constructed. A Production is not itself compared by value anywhere in this
// package: once built, a Grammar interns it into Grammar.Productions and
// every other structure (Item, automaton.Action) refers to it by its index into that
// slice, so that production identity reduces to an integer comparison. See
// the "Shared immutable productions" design note.
type Production struct {
	Head symbol.Symbol
	Body symbol.Seq
}

// String renders p as "head -> s1 s2 ...", or "head -> ." if p has an empty
// body.
func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.Head.Name(), p.Body.String())
}

// Equal returns whether p and o are the same head and body.
func (p Production) Equal(o Production) bool {
	return p.Head == o.Head && p.Body.Equal(o.Body)
}

// Rule is the raw, pre-interning description of a production used as input
// to Build: a head name and a body of raw symbol names. Build classifies
// each name as a Terminal or NonTerminal based on the declared non-terminal
// set.
type Rule struct {
	Head string
	Body []string
}
