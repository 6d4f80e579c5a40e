// Package symbol defines the grammar symbol value type shared by every
// other package in this module: grammars, items, automaton states, and the
// parse tree all key off of it.
package symbol

import "fmt"

// Kind distinguishes the two disjoint classes of grammar symbol.
type Kind int

const (
	Terminal Kind = iota
	NonTerminal
)

func (k Kind) String() string {
	if k == NonTerminal {
		return "NONTERM"
	}
	return "TERM"
}

// Reserved names. None of these may be used as a declared non-terminal or as
// a terminal appearing in a production body; Grammar construction rejects
// any grammar that tries.
const (
	EOFName      = "EOF"
	LambdaName   = "LAMBDA"
	FakeGoalName = "FAKE_GOAL"
)

// Symbol is a tagged value distinguishing terminals from non-terminals. It is
// a plain comparable value: two Symbols are == if and only if they have the
// same kind and the same name, so Symbol is safe to use directly as a map
// key or in a struct that itself needs to be comparable (as Item does).
type Symbol struct {
	kind Kind
	name string
}

// NewTerminal returns the Symbol for the terminal named name.
func NewTerminal(name string) Symbol {
	return Symbol{kind: Terminal, name: name}
}

// NewNonTerminal returns the Symbol for the non-terminal named name.
func NewNonTerminal(name string) Symbol {
	return Symbol{kind: NonTerminal, name: name}
}

// EOF is the reserved end-of-input terminal.
var EOF = NewTerminal(EOFName)

// Lambda is the reserved empty-string marker used inside FIRST sets. It
// never appears in a production body or as a lookahead.
var Lambda = NewTerminal(LambdaName)

// FakeGoal is the reserved augmented start symbol introduced by
// Grammar.Augmented.
var FakeGoal = NewNonTerminal(FakeGoalName)

// Name returns the symbol's underlying name.
func (s Symbol) Name() string {
	return s.name
}

// Kind returns whether s is a Terminal or a NonTerminal.
func (s Symbol) Kind() Kind {
	return s.kind
}

// IsTerminal returns whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.kind == Terminal
}

// IsNonTerminal returns whether s is a non-terminal symbol.
func (s Symbol) IsNonTerminal() bool {
	return s.kind == NonTerminal
}

// IsReserved returns whether s is one of EOF, LAMBDA, or FAKE_GOAL.
func (s Symbol) IsReserved() bool {
	switch {
	case s == EOF, s == Lambda, s == FakeGoal:
		return true
	default:
		return false
	}
}

// String gives a debug-friendly representation of s, e.g. "TERM(id)" or
// "NONTERM(Expr)".
func (s Symbol) String() string {
	return fmt.Sprintf("%s(%s)", s.kind, s.name)
}

// Seq is an ordered sequence of symbols, such as a production body.
type Seq []Symbol

// String renders seq as space-separated symbol names, or "." if empty (the
// conventional rendering of an empty production body).
func (seq Seq) String() string {
	if len(seq) == 0 {
		return "."
	}
	out := ""
	for i, s := range seq {
		if i > 0 {
			out += " "
		}
		out += s.Name()
	}
	return out
}

// Equal returns whether seq and other contain the same symbols in the same
// order.
func (seq Seq) Equal(other Seq) bool {
	if len(seq) != len(other) {
		return false
	}
	for i := range seq {
		if seq[i] != other[i] {
			return false
		}
	}
	return true
}

// Set is an unordered collection of distinct symbols, keyed by value. It is
// used for FIRST sets and for the symbol set collected by grammar
// construction.
type Set map[Symbol]struct{}

// NewSet returns a Set containing the given symbols.
func NewSet(syms ...Symbol) Set {
	s := make(Set, len(syms))
	for _, sym := range syms {
		s[sym] = struct{}{}
	}
	return s
}

// Add adds sym to s. Has no effect if sym is already present.
func (s Set) Add(sym Symbol) {
	s[sym] = struct{}{}
}

// Has returns whether sym is in s.
func (s Set) Has(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

// AddAll adds every symbol of other to s.
func (s Set) AddAll(other Set) {
	for sym := range other {
		s.Add(sym)
	}
}

// Union returns a new Set containing every symbol in s or o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	out.AddAll(s)
	out.AddAll(o)
	return out
}

// Equal returns whether s and o contain exactly the same symbols.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for sym := range s {
		if !o.Has(sym) {
			return false
		}
	}
	return true
}
