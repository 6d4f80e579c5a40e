package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/franleplant/lr1/internal/symbol"
)

// Item is an LR(1) item: `[A -> alpha . beta, a]`, represented as a
// reference to the production it came from (by index into the owning
// Grammar's interned production table), a dot position, and a single
// lookahead terminal.
//
// Unlike the teacher's string-keyed LR1Item, Item carries no copy of the
// production body: Prod, Dot, and Lookahead are all plain comparable values,
// which makes Item itself comparable and so usable directly as the key type
// of a Go map (see internal/automaton, where item sets are
// map[grammar.Item]struct{}). This follows design-note strategy (b):
// "intern productions ... let items carry the index."
type Item struct {
	Prod      int
	Dot       int
	Lookahead symbol.Symbol
}

// Production returns the production that item refers to, in g.
func (g Grammar) Production(item Item) Production {
	return g.Productions[item.Prod]
}

// IsComplete returns whether the dot in item has reached the end of its
// production's body.
func (g Grammar) IsComplete(item Item) bool {
	return item.Dot == len(g.Production(item).Body)
}

// IsTerminator returns whether item is the distinguished item that signals
// Accept: its production is `FAKE_GOAL -> goal`, it is complete, and its dot
// sits at position 1 (just past the single goal symbol in the body).
//
// This assumes g is an augmented grammar (see Augmented); calling it on an
// unaugmented grammar's items is meaningless, since there will be no
// FAKE_GOAL production to match against.
func (g Grammar) IsTerminator(item Item) bool {
	if !g.IsComplete(item) {
		return false
	}
	p := g.Production(item)
	return p.Head == symbol.FakeGoal && item.Dot == 1
}

// StackTop returns the body symbol immediately following the dot in item,
// and true. If item is complete, it returns the zero Symbol and false.
func (g Grammar) StackTop(item Item) (symbol.Symbol, bool) {
	body := g.Production(item).Body
	if item.Dot >= len(body) {
		return symbol.Symbol{}, false
	}
	return body[item.Dot], true
}

// AfterDotAndLookahead returns the sequence `body[dot+1:] . lookahead`: the
// symbols of item's production following the one just past the dot, with
// the item's own lookahead appended. This is always non-empty (the
// lookahead alone guarantees that), so it is the usual argument to
// Grammar.FirstOfSeq when computing a closure.
func (g Grammar) AfterDotAndLookahead(item Item) symbol.Seq {
	body := g.Production(item).Body
	var rest symbol.Seq
	if item.Dot+1 < len(body) {
		rest = append(rest, body[item.Dot+1:]...)
	}
	rest = append(rest, item.Lookahead)
	return rest
}

// Advance returns a copy of item with its dot moved one position to the
// right, and true. If item is already complete, it returns the zero Item
// and false.
func (g Grammar) Advance(item Item) (Item, bool) {
	if g.IsComplete(item) {
		return Item{}, false
	}
	return Item{Prod: item.Prod, Dot: item.Dot + 1, Lookahead: item.Lookahead}, true
}

// String renders item as `[head -> a b . c d, lookahead]`, with the dot
// shown as a bullet. This is the stable format used by the diagnostic state
// dump (see internal/automaton.Tables.DumpStates).
func (item Item) String(g Grammar) string {
	p := g.Production(item)

	var left, right []string
	for i, s := range p.Body {
		if i < item.Dot {
			left = append(left, s.Name())
		} else {
			right = append(right, s.Name())
		}
	}

	leftStr := strings.Join(left, " ")
	rightStr := strings.Join(right, " ")

	var body string
	switch {
	case leftStr != "" && rightStr != "":
		body = leftStr + " • " + rightStr
	case leftStr != "":
		body = leftStr + " •"
	case rightStr != "":
		body = "• " + rightStr
	default:
		body = "•"
	}

	return fmt.Sprintf("[%s -> %s, %s]", p.Head.Name(), body, item.Lookahead.Name())
}

// ItemSet is an unordered set of Items: an LR(1) state, or a seed for one.
type ItemSet map[Item]struct{}

// NewItemSet returns an ItemSet containing the given items.
func NewItemSet(items ...Item) ItemSet {
	s := make(ItemSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Add adds item to s.
func (s ItemSet) Add(item Item) {
	s[item] = struct{}{}
}

// Has returns whether item is in s.
func (s ItemSet) Has(item Item) bool {
	_, ok := s[item]
	return ok
}

// Items returns the elements of s as a slice, in no particular order.
func (s ItemSet) Items() []Item {
	out := make([]Item, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	return out
}

// Fingerprint returns a canonical string representation of s suitable for
// deduplicating item sets during canonical-collection construction: items
// are rendered with their String form and sorted, so that two ItemSets
// compare equal as fingerprints if and only if they contain the same items.
func (s ItemSet) Fingerprint(g Grammar) string {
	strs := make([]string, 0, len(s))
	for it := range s {
		strs = append(strs, it.String(g))
	}
	sort.Strings(strs)
	return strings.Join(strs, "\n")
}
