// Package cache persists a grammar's compiled ACTION/GOTO tables to disk so
// that a CLI invocation against an unchanged grammar can skip rebuilding the
// canonical collection from scratch. Entries are encoded with
// github.com/dekarrin/rezi, the same binary-serialization library the
// teacher uses to persist *game.State blobs in its sqlite DAO
// (server/dao/sqlite/sqlite.go) - here used for a flat, plain-struct
// snapshot instead of a live game object.
//
// A cache file is keyed by an FNV-1a fingerprint of the grammar's own text
// (goal plus every production, in definition order). Loading a file whose
// fingerprint doesn't match the grammar passed in is a cache miss, not an
// error: the caller rebuilds from scratch and the stale file is simply
// overwritten on the next Save.
package cache

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"

	"github.com/dekarrin/rezi"

	"github.com/franleplant/lr1/internal/automaton"
	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/symbol"
)

// cachedAction and cachedGoto are the on-disk entry shapes. symbol.Symbol's
// kind and name fields are unexported (deliberately, so Symbol stays a
// plain comparable value everywhere else in this module), so entries here
// carry the kind/name pair out explicitly rather than asking rezi to
// reflect into Symbol directly.
type cachedAction struct {
	State      int
	Kind       int
	Name       string
	Type       int
	ActState   int
	Production int
}

type cachedGoto struct {
	State int
	Kind  int
	Name  string
	Dest  int
}

// snapshot is the full on-disk record: a fingerprint plus the flattened
// table entries.
type snapshot struct {
	Fingerprint uint64
	Actions     []cachedAction
	Gotos       []cachedGoto
}

// Fingerprint returns the FNV-1a hash of g's text: its goal symbol's name
// followed by every production's String() form, in definition order. Two
// grammars with the same fingerprint are not guaranteed identical (FNV-1a
// is not cryptographic), but a changed fingerprint reliably signals a
// changed grammar, which is all a cache-validity check needs.
func Fingerprint(g grammar.Grammar) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "goal:%s\n", g.Goal.Name())
	for _, p := range g.Productions {
		fmt.Fprintf(h, "%s\n", p.String())
	}
	return h.Sum64()
}

// Save writes tbl's ACTION/GOTO tables to path, fingerprinted against g (the
// unaugmented grammar the caller built tbl from).
func Save(path string, g grammar.Grammar, tbl *automaton.Tables) error {
	actions, gotos := tbl.Entries()

	snap := snapshot{Fingerprint: Fingerprint(g)}
	for _, e := range actions {
		snap.Actions = append(snap.Actions, cachedAction{
			State:      e.State,
			Kind:       int(e.Term.Kind()),
			Name:       e.Term.Name(),
			Type:       int(e.Action.Type),
			ActState:   e.Action.State,
			Production: e.Action.Production,
		})
	}
	for _, e := range gotos {
		snap.Gotos = append(snap.Gotos, cachedGoto{
			State: e.State,
			Kind:  int(e.NonTerm.Kind()),
			Name:  e.NonTerm.Name(),
			Dest:  e.Dest,
		})
	}

	data := rezi.EncBinary(&snap)
	return os.WriteFile(path, data, 0644)
}

// Load reads path and reconstructs a Tables for g's augmented grammar, if
// the file exists and its fingerprint matches g. A missing file, a stale
// fingerprint, or any decode error is reported as (nil, false, nil) - a
// cache miss - except for I/O errors other than "file does not exist",
// which propagate so the caller can tell a read failure from a cold cache.
func Load(path string, g grammar.Grammar) (*automaton.Tables, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var snap snapshot
	n, err := rezi.DecBinary(data, &snap)
	if err != nil || n != len(data) {
		// A corrupt or foreign-format cache file is a miss, not a fatal
		// error: the caller rebuilds and overwrites it.
		return nil, false, nil
	}

	if snap.Fingerprint != Fingerprint(g) {
		return nil, false, nil
	}

	gPrime := g.Augmented()

	actions := make([]automaton.ActionEntry, len(snap.Actions))
	for i, a := range snap.Actions {
		actions[i] = automaton.ActionEntry{
			State: a.State,
			Term:  symbolFromCache(a.Kind, a.Name),
			Action: automaton.Action{
				Type:       automaton.ActionType(a.Type),
				State:      a.ActState,
				Production: a.Production,
			},
		}
	}

	gotos := make([]automaton.GotoEntry, len(snap.Gotos))
	for i, e := range snap.Gotos {
		gotos[i] = automaton.GotoEntry{
			State:   e.State,
			NonTerm: symbolFromCache(e.Kind, e.Name),
			Dest:    e.Dest,
		}
	}

	return automaton.FromEntries(gPrime, actions, gotos), true, nil
}

func symbolFromCache(kind int, name string) symbol.Symbol {
	if symbol.Kind(kind) == symbol.Terminal {
		return symbol.NewTerminal(name)
	}
	return symbol.NewNonTerminal(name)
}
