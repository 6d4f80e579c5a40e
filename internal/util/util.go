// Package util holds small generic helpers shared across the grammar,
// automaton, and parse packages: an ordered-map key helper, a simple Stack,
// and the text-list helpers used when rendering error messages.
//
// Most of the richer set types the wider ictiobus codebase relies on
// (VSet, SVSet, KeySet) aren't needed here; the canonical-collection
// construction keys states and items off of plain comparable Go values
// instead (see internal/grammar and internal/automaton), so this package is
// deliberately smaller than its ictiobus counterpart.
package util

import (
	"sort"
	"strings"
)

// OrderedKeys returns the keys of m sorted ascending. It exists so that any
// code iterating over a Go map - whose key order is randomized by the
// runtime - can produce deterministic, reproducible output.
func OrderedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Stack is a simple LIFO stack. The zero value is an empty, ready-to-use
// stack.
type Stack[E any] struct {
	Of []E
}

// Push adds v to the top of the stack.
func (s *Stack[E]) Push(v E) {
	s.Of = append(s.Of, v)
}

// Pop removes and returns the top of the stack. It panics if the stack is
// empty; callers that cannot guarantee non-emptiness must check Empty first.
func (s *Stack[E]) Pop() E {
	v := s.Of[len(s.Of)-1]
	s.Of = s.Of[:len(s.Of)-1]
	return v
}

// PopN removes and returns the top n elements of the stack, in the order
// they were on the stack (bottom-most of the popped elements first).
func (s *Stack[E]) PopN(n int) []E {
	at := len(s.Of) - n
	popped := make([]E, n)
	copy(popped, s.Of[at:])
	s.Of = s.Of[:at]
	return popped
}

// Peek returns the top of the stack without removing it. It panics if the
// stack is empty.
func (s *Stack[E]) Peek() E {
	return s.Of[len(s.Of)-1]
}

// Len returns the number of elements on the stack.
func (s *Stack[E]) Len() int {
	return len(s.Of)
}

// Empty returns whether the stack has no elements.
func (s *Stack[E]) Empty() bool {
	return len(s.Of) == 0
}

// ArticleFor returns "a" or "an" depending on whether noun starts with a
// vowel letter (a, e, i, o, u in either case; the pronunciation is not
// considered), for use in assembling "expected a '(' or an identifier"
// style messages.
func ArticleFor(noun string, startOfSentence bool) string {
	article := "a"
	if noun != "" && strings.ContainsRune("aeiouAEIOU", rune(noun[0])) {
		article = "an"
	}
	if startOfSentence {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}

// MakeTextList gives a nice list of things based on their display name.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		listCopy := make([]string, len(items))
		copy(listCopy, items)
		listCopy[len(listCopy)-1] = "and " + listCopy[len(listCopy)-1]
		output += strings.Join(listCopy, ", ")
	}

	return output
}
