// Package automaton builds the canonical collection of LR(1) item sets for
// an augmented grammar and derives its ACTION/GOTO tables, detecting
// conflicts along the way. This is the construction described in Algorithm
// 4.56 ("Construction of canonical-LR parsing tables") of the purple dragon
// book, adapted from the teacher's own canonicalLR1Table/LR1_CLOSURE split
// into an explicit worklist-driven closure/goto pair plus a single build
// pass, rather than re-deriving ACTION/GOTO from item-set pattern matching
// on every query.
package automaton

import (
	"sort"

	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/symbol"
)

// Closure computes CLOSURE(seed) in the augmented grammar g: the least
// superset of seed such that, for every item [A -> alpha . B beta, a] in
// the set with B a non-terminal, and every production B -> gamma, and every
// b in FirstOfSeq(beta . a), the item [B -> . gamma, b] is also in the set.
//
// Items whose dot sits at a terminal, or which are complete, contribute
// nothing. Iteration continues until a full pass adds no new item.
func Closure(g grammar.Grammar, seed grammar.ItemSet) grammar.ItemSet {
	closed := make(grammar.ItemSet, len(seed))
	for it := range seed {
		closed.Add(it)
	}

	changed := true
	for changed {
		changed = false

		for it := range closed {
			top, ok := g.StackTop(it)
			if !ok || top.IsTerminal() {
				continue
			}

			alpha, ok := g.FirstOfSeq(g.AfterDotAndLookahead(it))
			if !ok {
				// Per the FIRST design note, this signals an empty
				// argument, which AfterDotAndLookahead can never produce
				// (the lookahead alone makes it non-empty). Skip rather
				// than treat as the empty set, as the spec directs.
				continue
			}

			for _, prodIdx := range g.ProductionIndicesFor(top) {
				for b := range alpha {
					if b == symbol.Lambda {
						continue
					}
					newItem := grammar.Item{Prod: prodIdx, Dot: 0, Lookahead: b}
					if !closed.Has(newItem) {
						closed.Add(newItem)
						changed = true
					}
				}
			}
		}
	}

	return closed
}

// Goto computes GOTO(I, X) in the augmented grammar g: the closure of every
// item in I advanced past X, for those items whose stacktop is exactly X.
// If no item in I has stacktop X, Goto returns (nil, false) - there is no
// transition on X from this state.
func Goto(g grammar.Grammar, I grammar.ItemSet, X symbol.Symbol) (grammar.ItemSet, bool) {
	kernel := grammar.ItemSet{}
	for it := range I {
		top, ok := g.StackTop(it)
		if !ok || top != X {
			continue
		}
		advanced, ok := g.Advance(it)
		if !ok {
			// StackTop succeeded, so the item is not complete and Advance
			// cannot fail; this is unreachable.
			panic("automaton: Advance failed on an item with a defined stacktop")
		}
		kernel.Add(advanced)
	}

	if len(kernel) == 0 {
		return nil, false
	}

	return Closure(g, kernel), true
}

// CanonicalCollection is the ordered set of distinct LR(1) states reachable
// from the start state, assigned stable integer indices in the order they
// were first discovered. State 0 is always CLOSURE({[FAKE_GOAL -> . goal,
// EOF]}).
type CanonicalCollection struct {
	// Grammar is the augmented grammar the collection was built from.
	Grammar grammar.Grammar

	// States holds every state, indexed by its stable state index.
	States []grammar.ItemSet

	// indexOf maps a state's item-set fingerprint to its index, used during
	// construction to detect whether a newly computed state already exists.
	indexOf map[string]int

	// Transitions records, for each state index and each symbol the state has
	// an outgoing GOTO edge on, the destination state index. Built alongside
	// States so that Tables.Build never has to recompute Goto.
	Transitions map[int]map[symbol.Symbol]int
}

// transitionsFor returns the map of outgoing edges of state i, from symbol to
// destination state index, creating an empty one if none was recorded yet.
func (cc *CanonicalCollection) transitionsFor(i int) map[symbol.Symbol]int {
	if cc.Transitions[i] == nil {
		cc.Transitions[i] = map[symbol.Symbol]int{}
	}
	return cc.Transitions[i]
}

// BuildCanonicalCollection runs the canonical-collection fixed-point
// construction on gPrime, which must already be augmented (see
// Grammar.Augmented). It returns the collection with state 0 seeded from the
// start item [FAKE_GOAL -> . goal, EOF].
func BuildCanonicalCollection(gPrime grammar.Grammar) *CanonicalCollection {
	startItem := grammar.Item{Prod: 0, Dot: 0, Lookahead: symbol.EOF}
	start := Closure(gPrime, grammar.NewItemSet(startItem))

	cc := &CanonicalCollection{
		Grammar:     gPrime,
		indexOf:     map[string]int{},
		Transitions: map[int]map[symbol.Symbol]int{},
	}
	cc.addState(start)

	// FIFO worklist of state indices still needing their outgoing
	// transitions discovered. Insertion order is the iteration order over
	// cc.States below, and each state's items are visited in sorted order,
	// which keeps state-index assignment - and therefore every table dump -
	// deterministic across runs on the same grammar.
	worklist := []int{0}

	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		I := cc.States[i]
		items := I.Items()
		sort.Slice(items, func(a, b int) bool {
			if items[a].Prod != items[b].Prod {
				return items[a].Prod < items[b].Prod
			}
			if items[a].Dot != items[b].Dot {
				return items[a].Dot < items[b].Dot
			}
			return items[a].Lookahead.Name() < items[b].Lookahead.Name()
		})
		for _, it := range items {
			X, ok := gPrime.StackTop(it)
			if !ok {
				continue
			}
			J, ok := Goto(gPrime, I, X)
			if !ok {
				// Goto only returns false when no item has stacktop X, but
				// X came from an item whose stacktop is X; unreachable.
				panic("automaton: GOTO miss for a symbol taken from an item's own stacktop")
			}

			destIdx, found := cc.stateIndex(J)
			if !found {
				destIdx = cc.addState(J)
				worklist = append(worklist, destIdx)
			}
			cc.transitionsFor(i)[X] = destIdx
		}
	}

	return cc
}

// stateIndex returns the index of J in cc if already present, and whether it
// was found.
func (cc *CanonicalCollection) stateIndex(J grammar.ItemSet) (int, bool) {
	idx, ok := cc.indexOf[J.Fingerprint(cc.Grammar)]
	return idx, ok
}

// addState assigns J the next index, records it, and returns that index.
// Callers must have already confirmed J is not already present.
func (cc *CanonicalCollection) addState(J grammar.ItemSet) int {
	idx := len(cc.States)
	cc.States = append(cc.States, J)
	cc.indexOf[J.Fingerprint(cc.Grammar)] = idx
	return idx
}
