package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/symbol"
	"github.com/franleplant/lr1/internal/util"
)

// actionKey and gotoKey index the ACTION and GOTO tables by (state, symbol).
type actionKey struct {
	state int
	term  symbol.Symbol
}

type gotoKey struct {
	state int
	nt    symbol.Symbol
}

// Tables is the derived ACTION/GOTO table pair for a grammar's canonical
// collection: the output of the table-construction pass described by
// Algorithm 4.56, plus the conflict bookkeeping needed to tell whether the
// grammar is actually LR(1).
//
// Every ACTION cell is stored as a slice rather than a single Action so that
// a conflicting grammar can still be built into a Tables and inspected - the
// conflicts just show up as cells with more than one entry. IsLR1 is the
// single-call check for "no conflicts anywhere".
type Tables struct {
	// Grammar is the augmented grammar the tables were built from.
	Grammar grammar.Grammar

	// Collection is the canonical collection of LR(1) states underlying the
	// tables.
	Collection *CanonicalCollection

	action map[actionKey][]Action
	goto_  map[gotoKey]int
}

// Build runs the full table-construction pipeline on g: augmenting it,
// building its canonical collection, and deriving the ACTION and GOTO
// tables from it.
//
// For each state I and each item in I:
//   - If the item is complete, record an ACTION at (I, item.Lookahead):
//     Accept if the item is the terminator item, else Reduce(item's
//     production).
//   - Otherwise let X be the item's stacktop and J = GOTO(I, X). If X is a
//     terminal, record Shift(J) at ACTION(I, X). If X is a non-terminal,
//     record J at GOTO(I, X).
//
// Multiple Actions landing on the same (state, terminal) cell are all kept,
// in the order encountered; see IsLR1.
func Build(g grammar.Grammar) *Tables {
	gPrime := g.Augmented()
	cc := BuildCanonicalCollection(gPrime)

	t := &Tables{
		Grammar:    gPrime,
		Collection: cc,
		action:     map[actionKey][]Action{},
		goto_:      map[gotoKey]int{},
	}

	for i, I := range cc.States {
		for it := range I {
			if gPrime.IsComplete(it) {
				var act Action
				if gPrime.IsTerminator(it) {
					act = Action{Type: ActionAccept}
				} else {
					act = Action{Type: ActionReduce, Production: it.Prod}
				}
				t.addAction(i, it.Lookahead, act)
				continue
			}

			X, _ := gPrime.StackTop(it)
			J := cc.transitionsFor(i)[X]

			if X.IsTerminal() {
				t.addAction(i, X, Action{Type: ActionShift, State: J})
			} else {
				t.goto_[gotoKey{state: i, nt: X}] = J
			}
		}
	}

	return t
}

// ActionEntry is one flattened ACTION-table cell, exported so packages
// outside automaton (namely internal/cache) can serialize a Tables without
// reaching into its unexported maps.
type ActionEntry struct {
	State  int
	Term   symbol.Symbol
	Action Action
}

// GotoEntry is one flattened GOTO-table cell.
type GotoEntry struct {
	State   int
	NonTerm symbol.Symbol
	Dest    int
}

// Entries flattens t's ACTION and GOTO tables into serializable slices, in
// no particular order. Round-tripped through FromEntries, the result
// answers Action and Goto identically to t; its Collection is nil, since the
// canonical collection itself is not persisted (only the derived tables
// are) - see the internal/cache package.
func (t *Tables) Entries() ([]ActionEntry, []GotoEntry) {
	actions := make([]ActionEntry, 0, len(t.action))
	for key, acts := range t.action {
		for _, act := range acts {
			actions = append(actions, ActionEntry{State: key.state, Term: key.term, Action: act})
		}
	}
	gotos := make([]GotoEntry, 0, len(t.goto_))
	for key, dest := range t.goto_ {
		gotos = append(gotos, GotoEntry{State: key.state, NonTerm: key.nt, Dest: dest})
	}
	return actions, gotos
}

// FromEntries reconstructs a Tables for the augmented grammar gPrime from a
// previously flattened ACTION/GOTO entry list. The result's Collection is
// nil: DumpStates and DumpActionTable/DumpGotoTable's state count rely on
// it, so a Tables rebuilt this way only serves Action/Goto lookups (what
// Parser.Parse needs). Rebuild via Build instead when the dumps are wanted.
func FromEntries(gPrime grammar.Grammar, actions []ActionEntry, gotos []GotoEntry) *Tables {
	t := &Tables{
		Grammar: gPrime,
		action:  map[actionKey][]Action{},
		goto_:   map[gotoKey]int{},
	}
	for _, e := range actions {
		t.addAction(e.State, e.Term, e.Action)
	}
	for _, e := range gotos {
		t.goto_[gotoKey{state: e.State, nt: e.NonTerm}] = e.Dest
	}
	return t
}

func (t *Tables) addAction(state int, term symbol.Symbol, act Action) {
	key := actionKey{state: state, term: term}
	for _, existing := range t.action[key] {
		if existing.Equal(act) {
			return
		}
	}
	t.action[key] = append(t.action[key], act)
}

// Action returns every Action recorded for (state, term), in the order
// discovered. A nil/empty result means ACTION is undefined there - an error
// on that input in that state.
func (t *Tables) Action(state int, term symbol.Symbol) []Action {
	return t.action[actionKey{state: state, term: term}]
}

// Goto returns the destination state recorded for (state, nt), and whether
// one was recorded at all.
func (t *Tables) Goto(state int, nt symbol.Symbol) (int, bool) {
	dest, ok := t.goto_[gotoKey{state: state, nt: nt}]
	return dest, ok
}

// ExpectedTerminals returns the name of every terminal that has at least one
// recorded Action in state, sorted for stable, reproducible error messages -
// the set a driver can report back to the caller when it hits an
// UnexpectedTokenError in that state.
func (t *Tables) ExpectedTerminals(state int) []string {
	byName := map[string]struct{}{}
	for key := range t.action {
		if key.state == state {
			byName[key.term.Name()] = struct{}{}
		}
	}
	return util.OrderedKeys(byName)
}

// IsLR1 returns whether every ACTION cell in t holds at most one Action. A
// false result means the grammar that produced t is not LR(1): at least one
// state needs to make a shift/reduce or reduce/reduce choice it cannot
// resolve by lookahead alone.
func (t *Tables) IsLR1() bool {
	for _, acts := range t.action {
		if len(acts) > 1 {
			return false
		}
	}
	return true
}

// Conflict is one ACTION cell with more than one recorded Action, identified
// by its state and terminal.
type Conflict struct {
	State   int
	Term    symbol.Symbol
	Actions []Action
}

// Conflicts returns every conflicting ACTION cell in t, sorted by state then
// terminal name.
func (t *Tables) Conflicts() []Conflict {
	var out []Conflict
	for key, acts := range t.action {
		if len(acts) > 1 {
			out = append(out, Conflict{State: key.state, Term: key.term, Actions: acts})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].Term.Name() < out[j].Term.Name()
	})
	return out
}

// DumpStates renders every state in t's canonical collection, one line per
// state in index order: the state index, two spaces, then the state's items
// in the stable `[head -> a . b, lookahead]` form, sorted and
// space-separated.
func (t *Tables) DumpStates() string {
	var sb strings.Builder
	for i, I := range t.Collection.States {
		items := I.Items()
		strs := make([]string, len(items))
		for j, it := range items {
			strs[j] = it.String(t.Grammar)
		}
		sort.Strings(strs)
		fmt.Fprintf(&sb, "%d  %s\n", i, strings.Join(strs, " "))
	}
	return sb.String()
}

// DumpActionTable renders the ACTION table as an aligned text table: one row
// per state, EOF then every other terminal as columns, cells holding the
// recorded Action(s) comma-separated when in conflict, blank when undefined.
func (t *Tables) DumpActionTable() string {
	terms := terminalColumns(t.Grammar)

	header := make([]string, 0, len(terms)+1)
	header = append(header, "State")
	for _, term := range terms {
		header = append(header, term.Name())
	}

	data := [][]string{header}
	for i := range t.Collection.States {
		row := make([]string, 0, len(terms)+1)
		row = append(row, fmt.Sprintf("%d", i))
		for _, term := range terms {
			acts := t.Action(i, term)
			cells := make([]string, len(acts))
			for j, act := range acts {
				cells[j] = act.String(t.Grammar)
			}
			row = append(row, strings.Join(cells, ","))
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// DumpGotoTable renders the GOTO table as an aligned text table: one row per
// state, one column per non-terminal, cells holding the destination state
// index, blank when undefined.
//
// Every cell shows the destination state reached by that (state,
// non-terminal) edge, never the source - fixing the ambiguity the teacher's
// own dumper left open (see the "DumpGotoTable direction" design note).
func (t *Tables) DumpGotoTable() string {
	nts := nonTerminalColumns(t.Grammar)

	header := make([]string, 0, len(nts)+1)
	header = append(header, "State")
	for _, nt := range nts {
		header = append(header, nt.Name())
	}

	data := [][]string{header}
	for i := range t.Collection.States {
		row := make([]string, 0, len(nts)+1)
		row = append(row, fmt.Sprintf("%d", i))
		for _, nt := range nts {
			if dest, ok := t.Goto(i, nt); ok {
				row = append(row, fmt.Sprintf("%d", dest))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// terminalColumns returns EOF followed by every other terminal in g sorted
// by name, per the stable dump format ("columns EOF then terminals in
// iteration order"). LAMBDA never appears as a lookahead or shiftable
// symbol, so it is excluded.
func terminalColumns(g grammar.Grammar) []symbol.Symbol {
	var rest []symbol.Symbol
	for s := range g.Symbols {
		if s.IsTerminal() && s != symbol.EOF {
			rest = append(rest, s)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name() < rest[j].Name() })
	return append([]symbol.Symbol{symbol.EOF}, rest...)
}

// nonTerminalColumns returns every non-terminal in g except FAKE_GOAL,
// sorted by name, for stable dump column ordering. FAKE_GOAL never appears
// on the right of a GOTO edge since nothing shifts or reduces into it.
func nonTerminalColumns(g grammar.Grammar) []symbol.Symbol {
	var out []symbol.Symbol
	for s := range g.Symbols {
		if s.IsNonTerminal() && s != symbol.FakeGoal {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
