package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franleplant/lr1/internal/automaton"
	"github.com/franleplant/lr1/internal/cache"
	"github.com/franleplant/lr1/internal/grammar"
)

func balancedParens(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.Build(
		"List",
		[]string{"List", "Pair"},
		[]grammar.Rule{
			{Head: "List", Body: []string{"List", "Pair"}},
			{Head: "List", Body: []string{"Pair"}},
			{Head: "Pair", Body: []string{"(", "Pair", ")"}},
			{Head: "Pair", Body: []string{"(", ")"}},
		},
	)
	assert.NoError(t, err)
	return g
}

func TestFingerprint_StableAcrossCalls(t *testing.T) {
	g := balancedParens(t)
	assert.Equal(t, cache.Fingerprint(g), cache.Fingerprint(g))
}

func TestFingerprint_DiffersForDifferentGrammars(t *testing.T) {
	g1 := balancedParens(t)
	g2, err := grammar.Build("List", []string{"List"}, []grammar.Rule{
		{Head: "List", Body: []string{}},
	})
	assert.NoError(t, err)

	assert.NotEqual(t, cache.Fingerprint(g1), cache.Fingerprint(g2))
}

func TestSaveLoad_RoundTripsActionAndGotoCells(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t)
	tbl := automaton.Build(g)

	path := filepath.Join(t.TempDir(), "tables.cache")
	assert.NoError(cache.Save(path, g, tbl))

	loaded, ok, err := cache.Load(path, g)
	assert.NoError(err)
	assert.True(ok)

	wantActions, wantGotos := tbl.Entries()
	gotActions, gotGotos := loaded.Entries()
	assert.ElementsMatch(wantActions, gotActions)
	assert.ElementsMatch(wantGotos, gotGotos)
}

func TestLoad_MissingFileIsMissNotError(t *testing.T) {
	g := balancedParens(t)
	path := filepath.Join(t.TempDir(), "does-not-exist.cache")

	loaded, ok, err := cache.Load(path, g)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, loaded)
}

func TestLoad_StaleFingerprintIsMissNotError(t *testing.T) {
	assert := assert.New(t)
	g := balancedParens(t)
	tbl := automaton.Build(g)

	path := filepath.Join(t.TempDir(), "tables.cache")
	assert.NoError(cache.Save(path, g, tbl))

	other, err := grammar.Build("List", []string{"List"}, []grammar.Rule{
		{Head: "List", Body: []string{}},
	})
	assert.NoError(err)

	loaded, ok, err := cache.Load(path, other)
	assert.NoError(err)
	assert.False(ok)
	assert.Nil(loaded)
}
