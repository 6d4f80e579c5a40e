// Package lr1 wires the grammar/automaton/parse/tree pipeline into an
// interactive front end: a small registry of grammars built directly in Go
// (see Non-goals - there is no text grammar format to parse), a
// compiled-table cache, and a readline-backed REPL, in the same spirit as
// the teacher's own root-package Engine (engine.go) sitting in front of its
// game package.
package lr1

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/franleplant/lr1/internal/automaton"
	"github.com/franleplant/lr1/internal/cache"
	"github.com/franleplant/lr1/internal/grammar"
	"github.com/franleplant/lr1/internal/parse"
)

// Grammars is the compile-time registry of grammars the CLI's --grammar
// flag selects from. Adding a grammar means adding a Go function here, not
// dropping a file on disk - there is no grammar source format.
var Grammars = map[string]func() (grammar.Grammar, error){
	"parens": BalancedParens,
	"expr":   Expression,
}

// BalancedParens returns the classical balanced-parentheses grammar used
// throughout this module's tests: `List -> List Pair | Pair`,
// `Pair -> ( Pair ) | ( )`.
func BalancedParens() (grammar.Grammar, error) {
	return grammar.Build(
		"List",
		[]string{"List", "Pair"},
		[]grammar.Rule{
			{Head: "List", Body: []string{"List", "Pair"}},
			{Head: "List", Body: []string{"Pair"}},
			{Head: "Pair", Body: []string{"(", "Pair", ")"}},
			{Head: "Pair", Body: []string{"(", ")"}},
		},
	)
}

// Expression returns the classical expression grammar used in this module's
// FIRST-set worked examples: `Goal -> Expr`, `Expr -> Term Expr'`,
// `Expr' -> + Term Expr' | - Term Expr' | lambda`, `Term -> Factor Term'`,
// `Term' -> x Factor Term' | % Factor Term' | lambda`,
// `Factor -> ( Expr ) | num | name`.
func Expression() (grammar.Grammar, error) {
	return grammar.Build(
		"Goal",
		[]string{"Goal", "Expr", "Expr'", "Term", "Term'", "Factor"},
		[]grammar.Rule{
			{Head: "Goal", Body: []string{"Expr"}},
			{Head: "Expr", Body: []string{"Term", "Expr'"}},
			{Head: "Expr'", Body: []string{"+", "Term", "Expr'"}},
			{Head: "Expr'", Body: []string{"-", "Term", "Expr'"}},
			{Head: "Expr'", Body: []string{}},
			{Head: "Term", Body: []string{"Factor", "Term'"}},
			{Head: "Term'", Body: []string{"x", "Factor", "Term'"}},
			{Head: "Term'", Body: []string{"%", "Factor", "Term'"}},
			{Head: "Term'", Body: []string{}},
			{Head: "Factor", Body: []string{"(", "Expr", ")"}},
			{Head: "Factor", Body: []string{"num"}},
			{Head: "Factor", Body: []string{"name"}},
		},
	)
}

// Engine drives one grammar through the CLI/REPL: building (or loading
// cached) tables, running a read-parse-print loop over manually entered
// token lines, and printing diagnostic dumps on request.
type Engine struct {
	grammar     grammar.Grammar
	parser      *parse.Parser
	out         io.Writer
	cachePath   string
	cacheHit    bool
	promptColor string

	rl *readline.Instance
}

// promptColorCodes maps a config.Config.PromptColor name to the ANSI code
// RunREPL wraps the "lr1> " prompt in before handing it to readline. An
// unrecognized or empty name leaves
// the prompt uncolored.
var promptColorCodes = map[string]string{
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
}

// SetPromptColor sets the REPL prompt's color by name (one of
// promptColorCodes' keys); an empty or unrecognized name clears it back to
// the default uncolored prompt.
func (e *Engine) SetPromptColor(name string) {
	e.promptColor = name
}

// New builds an Engine for g, consulting the cache at cachePath first (an
// empty cachePath disables caching entirely) and falling back to a fresh
// automaton.Build on a miss. trace, if true, installs a tracer that writes
// one line per driver move to out.
func New(g grammar.Grammar, cachePath string, out io.Writer, trace bool) (*Engine, error) {
	e := &Engine{grammar: g, out: out, cachePath: cachePath}

	var tbl *automaton.Tables
	if cachePath != "" {
		if loaded, ok, err := cache.Load(cachePath, g); err == nil && ok {
			tbl = loaded
			e.cacheHit = true
		}
	}

	if tbl == nil {
		tbl = automaton.Build(g)
		if cachePath != "" {
			if err := cache.Save(cachePath, g, tbl); err != nil {
				return nil, fmt.Errorf("saving table cache: %w", err)
			}
		}
	}

	e.parser = parse.NewFromTables(g, tbl)
	if trace {
		e.parser.SetTracer(func(line string) {
			fmt.Fprintf(out, "trace: %s\n", line)
		})
	}

	return e, nil
}

// CacheHit reports whether the tables backing e were loaded from the cache
// rather than freshly built.
func (e *Engine) CacheHit() bool {
	return e.cacheHit
}

// IsLR1 reports whether e's grammar is LR(1): every ACTION cell has at most
// one entry.
func (e *Engine) IsLR1() bool {
	return e.parser.IsLR1()
}

// Dump renders all three diagnostic dumps one after another: the state
// listing, the ACTION table, and the GOTO table. Only available when the
// Tables backing e still carry their canonical collection (a fresh Build,
// not a cache.Load - see automaton.Tables.Entries).
func (e *Engine) Dump() string {
	tbl := e.parser.Tables
	if tbl.Collection == nil {
		return "no canonical collection available (tables were loaded from cache); rerun with caching disabled to dump"
	}
	var sb strings.Builder
	sb.WriteString(tbl.DumpStates())
	sb.WriteString("\n")
	sb.WriteString(tbl.DumpActionTable())
	sb.WriteString("\n\n")
	sb.WriteString(tbl.DumpGotoTable())
	sb.WriteString("\n")
	return sb.String()
}

// RunREPL opens a readline session on stdin/stdout and repeatedly reads a
// line of whitespace-separated terminal names, parses it as a token stream
// terminated implicitly by EOF, and prints the resulting tree or error. It
// returns when the user sends EOF (Ctrl-D) or interrupts (Ctrl-C).
func (e *Engine) RunREPL() error {
	prompt := "lr1> "
	if code, ok := promptColorCodes[e.promptColor]; ok {
		prompt = fmt.Sprintf("\033[%sm%s\033[0m", code, prompt)
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	e.rl = rl
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		kinds := append(strings.Fields(line), "EOF")
		toks := make([]parse.Token, len(kinds))
		for i, k := range kinds {
			toks[i] = parse.NewToken(k, k)
		}

		tr, err := e.parser.Parse(parse.NewSliceStream(toks...))
		if err != nil {
			fmt.Fprintf(e.out, "error: %s\n", err)
			continue
		}
		fmt.Fprint(e.out, tr.String())
	}
}
