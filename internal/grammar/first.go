package grammar

import "github.com/franleplant/lr1/internal/symbol"

// computeFirst populates g.first to its fixed point. It is called once, by
// Build and by Augmented, immediately after the production list is
// finalized.
//
// Initialization: FIRST(t) = {t} for every terminal t including EOF and
// LAMBDA; FIRST(A) = {} for every non-terminal A.
//
// Fixed-point step, for each production A -> X1 X2 ... Xn: walk the body
// left to right, unioning FIRST(Xi) \ {LAMBDA} into a running set, stopping
// at the first Xi whose FIRST doesn't contain LAMBDA; if the walk runs off
// the end with LAMBDA survivng in every Xi's FIRST (including the vacuous
// case of an empty body), LAMBDA is added to the running set. That running
// set is unioned into FIRST(A).
//
// The iteration repeats until a full pass makes no change, which terminates
// because FIRST sets are monotonically non-decreasing subsets of a finite
// lattice (the grammar's own symbol set, plus LAMBDA).
func (g *Grammar) computeFirst() {
	first := make(map[symbol.Symbol]symbol.Set, len(g.Symbols)+2)

	first[symbol.EOF] = symbol.NewSet(symbol.EOF)
	first[symbol.Lambda] = symbol.NewSet(symbol.Lambda)

	for s := range g.Symbols {
		if s.IsTerminal() {
			first[s] = symbol.NewSet(s)
		} else {
			first[s] = symbol.NewSet()
		}
	}
	if _, ok := first[g.Goal]; !ok {
		first[g.Goal] = symbol.NewSet()
	}

	changed := true
	for changed {
		changed = false

		for _, p := range g.Productions {
			rhs, lambdaAtEnd := firstOfBody(first, p.Body)
			if lambdaAtEnd {
				rhs.Add(symbol.Lambda)
			}

			before := len(first[p.Head])
			first[p.Head].AddAll(rhs)
			if len(first[p.Head]) != before {
				changed = true
			}
		}
	}

	g.first = first
}

// firstOfBody walks body left to right, unioning FIRST(Xi)\{LAMBDA} into the
// result for each Xi in turn, stopping as soon as an Xi's FIRST doesn't
// contain LAMBDA. It returns the accumulated set and whether the walk
// reached the end of body with every symbol along the way nullable (which
// signals that LAMBDA itself should be added by the caller; a fully-nullable
// empty body trivially satisfies this).
func firstOfBody(first map[symbol.Symbol]symbol.Set, body symbol.Seq) (symbol.Set, bool) {
	out := symbol.NewSet()
	for _, s := range body {
		fs := first[s]
		for sym := range fs {
			if sym != symbol.Lambda {
				out.Add(sym)
			}
		}
		if !fs.Has(symbol.Lambda) {
			return out, false
		}
	}
	return out, true
}

// FIRST returns the FIRST set of a single symbol s, which must be one
// appearing in g (or EOF/LAMBDA). Returns an empty set for an unknown
// symbol.
func (g Grammar) FIRST(s symbol.Symbol) symbol.Set {
	fs, ok := g.first[s]
	if !ok {
		return symbol.NewSet()
	}
	out := symbol.NewSet()
	out.AddAll(fs)
	return out
}

// FirstOfSeq computes FIRST(alpha) for an arbitrary sequence of symbols
// alpha by the same left-to-right walk used internally by computeFirst. It
// returns the set and true, unless alpha is empty, in which case the result
// is undefined and it returns (nil, false) - distinct from the empty set,
// per the "FIRST's empty-input behavior" design note. Callers in this
// module always pass AfterDotAndLookahead's result, which is guaranteed
// non-empty by the trailing lookahead symbol.
func (g Grammar) FirstOfSeq(alpha symbol.Seq) (symbol.Set, bool) {
	if len(alpha) == 0 {
		return nil, false
	}
	rhs, lambdaAtEnd := firstOfBody(g.first, alpha)
	if lambdaAtEnd {
		rhs.Add(symbol.Lambda)
	}
	return rhs, true
}
