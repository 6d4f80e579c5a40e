// Package parse drives a shift-reduce parse of a token stream against a
// grammar's LR(1) tables, producing an arena-allocated parse tree (see
// internal/tree). The driver itself never logs; callers that want to watch
// it work install a Tracer, which is invoked once per shift, reduce, and
// accept with a one-line description - the same "plain stdlib log.Printf"
// texture the teacher uses for its own operational diagnostics (see
// server/server.go), just routed through a caller-supplied sink instead of
// writing directly to the log package, since a library has no business
// deciding where its caller's logs go.
package parse

import (
	"fmt"
	"strings"

	"github.com/franleplant/lr1/internal/automaton"
	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/symbol"
	"github.com/franleplant/lr1/internal/tree"
	"github.com/franleplant/lr1/internal/util"
)

// Tracer receives one human-readable line per driver move, in order, when
// installed via Parser.SetTracer. The zero Parser has no tracer, and moves
// are silent.
type Tracer func(line string)

// Parser drives a shift-reduce parse against a single grammar's LR(1)
// tables. A Parser is not safe for concurrent or re-entrant use: it owns no
// mutable state between calls to Parse other than the grammar and tables
// themselves, both of which are immutable after New, so the restriction is
// solely about running two parses through the same Parser at once.
type Parser struct {
	Grammar grammar.Grammar
	Tables  *automaton.Tables

	trace Tracer
}

// New builds a Parser for g: internally augmenting g and constructing its
// canonical collection and ACTION/GOTO tables. Building the tables does not
// itself fail for a non-LR(1) grammar; that only surfaces from IsLR1 or from
// Parse reaching the offending cell.
func New(g grammar.Grammar) *Parser {
	return &Parser{
		Grammar: g,
		Tables:  automaton.Build(g),
	}
}

// NewFromTables builds a Parser from an already-constructed Tables - for
// example one reloaded from internal/cache rather than rebuilt from g. g
// must be the same (unaugmented) grammar tbl was built from; this is not
// checked here (see cache.Load, which validates the fingerprint before
// returning a Tables at all).
func NewFromTables(g grammar.Grammar, tbl *automaton.Tables) *Parser {
	return &Parser{Grammar: g, Tables: tbl}
}

// SetTracer installs fn as p's move tracer, replacing any previous one. Pass
// nil to silence tracing.
func (p *Parser) SetTracer(fn Tracer) {
	p.trace = fn
}

// IsLR1 reports whether p's tables are free of any shift/reduce or
// reduce/reduce conflict.
func (p *Parser) IsLR1() bool {
	return p.Tables.IsLR1()
}

func (p *Parser) logf(format string, args ...any) {
	if p.trace != nil {
		p.trace(fmt.Sprintf(format, args...))
	}
}

// symEntry is one Symbol-stack entry: the symbol shifted or reduced onto the
// stack, and the tree node (if any) it carries. This, paired with the
// parallel int stack of states, is the two-stack rendition of the single
// alternating Symbol/State stack described in section 4.8: the state at
// states.Of[i] always corresponds to having symbols.Of[:i+1] (the EOF
// sentinel included) already on the stack beneath it.
type symEntry struct {
	sym  symbol.Symbol
	node tree.NodeID
}

// Parse drives stream through p's tables, building and returning a parse
// tree. An empty stream, or a stream whose first token is already EOF,
// yields an empty tree and no error. Any other failure aborts the parse and
// discards the partially built tree; see errors.go for the taxonomy.
func (p *Parser) Parse(stream TokenStream) (*tree.Tree, error) {
	states := util.Stack[int]{}
	states.Push(0)

	symbols := util.Stack[symEntry]{}
	symbols.Push(symEntry{sym: symbol.EOF, node: tree.NoNode})

	t := tree.New()

	tok, ok := stream.Next()
	if !ok {
		// An empty stream is not a parse failure: there is nothing to
		// derive, so the empty tree is the correct result. Only a stream
		// that goes dry after at least one token has been consumed (the
		// stream.Next() below, mid-shift) is an UnexpectedEndOfInput.
		return t, nil
	}
	if tok.Kind() == symbol.EOFName {
		return t, nil
	}

	for {
		s := states.Peek()
		a := symbolFor(tok)

		acts := p.Tables.Action(s, a)
		switch len(acts) {
		case 0:
			return nil, &UnexpectedTokenError{
				State:     s,
				Token:     tok,
				StackDump: p.dumpStack(states, symbols),
				Expected:  p.Tables.ExpectedTerminals(s),
			}
		case 1:
			// fall through below
		default:
			return nil, &AmbiguousGrammarError{State: s, Token: tok, NumActions: len(acts)}
		}

		switch act := acts[0]; act.Type {
		case automaton.ActionShift:
			node := t.CreateNode(a)
			symbols.Push(symEntry{sym: a, node: node})
			states.Push(act.State)
			p.logf("shift %s, state %d -> %d", a.Name(), s, act.State)

			tok, ok = stream.Next()
			if !ok {
				return nil, &UnexpectedEndOfInputError{State: act.State, StackDump: p.dumpStack(states, symbols)}
			}

		case automaton.ActionReduce:
			prod := p.Tables.Grammar.Productions[act.Production]
			k := len(prod.Body)

			if symbols.Len() < k || states.Len() < k {
				return nil, &EmptyStackError{State: s, WantPopped: k, HavePopped: symbols.Len()}
			}
			popped := symbols.PopN(k)
			states.PopN(k)

			children := make([]tree.NodeID, k)
			for i, entry := range popped {
				children[i] = entry.node
			}

			newNode := t.CreateNode(prod.Head)
			for _, c := range children {
				t.AttachChild(newNode, c)
			}
			t.SetRoot(newNode)

			sPrime := states.Peek()
			dest, ok := p.Tables.Goto(sPrime, prod.Head)
			if !ok {
				// Tables.Build only ever omits a GOTO entry when no state
				// reaches it by that non-terminal; a state we just reduced
				// out of always has one, for a grammar whose tables were
				// built from the same canonical collection. Unreachable for
				// any Parser built via New.
				panic(fmt.Sprintf("parse: no GOTO[%d, %s] after reducing %s", sPrime, prod.Head.Name(), prod.String()))
			}

			symbols.Push(symEntry{sym: prod.Head, node: newNode})
			states.Push(dest)
			p.logf("reduce %s, state %d -> %d", prod.String(), sPrime, dest)

		case automaton.ActionAccept:
			p.logf("accept")
			return t, nil
		}
	}
}

func symbolFor(tok Token) symbol.Symbol {
	if tok.Kind() == symbol.EOFName {
		return symbol.EOF
	}
	return symbol.NewTerminal(tok.Kind())
}

func (p *Parser) dumpStack(states util.Stack[int], symbols util.Stack[symEntry]) string {
	names := make([]string, len(symbols.Of))
	for i, e := range symbols.Of {
		names[i] = e.sym.Name()
	}
	return fmt.Sprintf("states=%v symbols=[%s]", states.Of, strings.Join(names, " "))
}
