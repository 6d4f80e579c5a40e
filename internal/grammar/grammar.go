// Package grammar implements the context-free grammar data model: symbols
// and productions interned into a Grammar, FIRST-set computation, and the
// LR(1) item operations (closure/goto use these, in internal/automaton)
// that items need a Grammar to resolve.
package grammar

import (
	"fmt"

	"github.com/franleplant/lr1/internal/symbol"
)

// InvalidGrammarError is returned by Build when the input productions do
// not describe a well-formed grammar: an undeclared head, a terminal used
// as a head or goal, or a reserved name collision.
type InvalidGrammarError struct {
	Reason string
}

func (e *InvalidGrammarError) Error() string {
	return fmt.Sprintf("invalid grammar: %s", e.Reason)
}

// Grammar holds an immutable context-free grammar: its goal symbol, its
// productions (interned, referenced elsewhere by index), a head-indexed
// lookup of those indices, the set of every symbol appearing in it, and its
// derived FIRST sets.
//
// A Grammar is built once via Build and never mutated after; Augmented
// returns a new, independent Grammar rather than modifying the receiver.
type Grammar struct {
	Goal symbol.Symbol

	// Productions holds every production in definition order. Production 0
	// is always the start production (the first one passed to Build, or,
	// for an augmented grammar, the synthesized FAKE_GOAL production).
	Productions []Production

	// byHead maps a non-terminal's name to the indices into Productions of
	// the productions with that head, in definition order.
	byHead map[string][]int

	// Symbols is every symbol appearing anywhere in the grammar: the goal,
	// every head, and every body symbol.
	Symbols symbol.Set

	// first is the memoized FIRST set of every symbol in the grammar, plus
	// EOF and LAMBDA.
	first map[symbol.Symbol]symbol.Set
}

// Build constructs a Grammar from a goal non-terminal name, the declared set
// of non-terminal names, and an ordered list of raw production rules.
//
// Every rule's Head must be in nonTerminals. Every rule body symbol whose
// name appears in nonTerminals becomes a NonTerminal; every other body
// symbol becomes a Terminal. goal must also be in nonTerminals. None of
// EOF, LAMBDA, or FAKE_GOAL may appear in nonTerminals or in any rule body;
// doing so is a reserved-name collision.
//
// Productions are stored in the order given; production 0 is the start
// production. FIRST is computed once, here, to its fixed point (see
// Grammar.FIRST).
func Build(goal string, nonTerminals []string, rules []Rule) (Grammar, error) {
	declared := make(map[string]bool, len(nonTerminals))
	for _, nt := range nonTerminals {
		if isReservedName(nt) {
			return Grammar{}, &InvalidGrammarError{
				Reason: fmt.Sprintf("%q is a reserved name and cannot be declared as a non-terminal", nt),
			}
		}
		declared[nt] = true
	}

	if !declared[goal] {
		return Grammar{}, &InvalidGrammarError{
			Reason: fmt.Sprintf("goal symbol %q is not in the declared non-terminal set", goal),
		}
	}

	g := Grammar{
		Goal:    symbol.NewNonTerminal(goal),
		byHead:  map[string][]int{},
		Symbols: symbol.NewSet(symbol.NewNonTerminal(goal)),
	}

	for _, r := range rules {
		if !declared[r.Head] {
			return Grammar{}, &InvalidGrammarError{
				Reason: fmt.Sprintf("production head %q is not in the declared non-terminal set", r.Head),
			}
		}

		head := symbol.NewNonTerminal(r.Head)
		body := make(symbol.Seq, 0, len(r.Body))
		for _, name := range r.Body {
			if isReservedName(name) {
				return Grammar{}, &InvalidGrammarError{
					Reason: fmt.Sprintf("%q is a reserved name and cannot appear in a production body", name),
				}
			}
			var s symbol.Symbol
			if declared[name] {
				s = symbol.NewNonTerminal(name)
			} else {
				s = symbol.NewTerminal(name)
			}
			body = append(body, s)
			g.Symbols.Add(s)
		}

		idx := len(g.Productions)
		g.Productions = append(g.Productions, Production{Head: head, Body: body})
		g.byHead[r.Head] = append(g.byHead[r.Head], idx)
		g.Symbols.Add(head)
	}

	g.computeFirst()

	return g, nil
}

func isReservedName(name string) bool {
	switch name {
	case symbol.EOFName, symbol.LambdaName, symbol.FakeGoalName:
		return true
	default:
		return false
	}
}

// ProductionsFor returns the productions headed by the non-terminal named
// head, in definition order.
func (g Grammar) ProductionsFor(head symbol.Symbol) []Production {
	idxs := g.byHead[head.Name()]
	out := make([]Production, len(idxs))
	for i, idx := range idxs {
		out[i] = g.Productions[idx]
	}
	return out
}

// ProductionIndicesFor returns the indices into g.Productions of the
// productions headed by the non-terminal named head, in definition order.
func (g Grammar) ProductionIndicesFor(head symbol.Symbol) []int {
	return g.byHead[head.Name()]
}

// Augmented returns a new Grammar whose production list is
// `[FAKE_GOAL -> g.Goal] ++ g.Productions`, and whose goal is FAKE_GOAL. The
// augmented grammar is the input to canonical-collection construction; g
// itself is left unmodified.
func (g Grammar) Augmented() Grammar {
	augmented := Grammar{
		Goal:    symbol.FakeGoal,
		byHead:  map[string][]int{symbol.FakeGoalName: {0}},
		Symbols: symbol.NewSet(symbol.FakeGoal),
	}
	augmented.Symbols.AddAll(g.Symbols)

	augmented.Productions = make([]Production, 0, len(g.Productions)+1)
	augmented.Productions = append(augmented.Productions, Production{
		Head: symbol.FakeGoal,
		Body: symbol.Seq{g.Goal},
	})
	augmented.Productions = append(augmented.Productions, g.Productions...)

	for head, idxs := range g.byHead {
		shifted := make([]int, len(idxs))
		for i, idx := range idxs {
			shifted[i] = idx + 1
		}
		augmented.byHead[head] = shifted
	}

	augmented.computeFirst()

	return augmented
}

// Terminals returns every terminal symbol appearing in g, not including EOF
// or LAMBDA, in no particular guaranteed order.
func (g Grammar) Terminals() []symbol.Symbol {
	var out []symbol.Symbol
	for s := range g.Symbols {
		if s.IsTerminal() {
			out = append(out, s)
		}
	}
	return out
}

// NonTerminals returns every non-terminal symbol appearing in g, in no
// particular guaranteed order.
func (g Grammar) NonTerminals() []symbol.Symbol {
	var out []symbol.Symbol
	for s := range g.Symbols {
		if s.IsNonTerminal() {
			out = append(out, s)
		}
	}
	return out
}
