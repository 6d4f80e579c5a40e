/*
Lr1 builds the canonical LR(1) tables for one of a small set of grammars
compiled into this program and either dumps them or drops into an
interactive REPL for parsing manually entered token sequences against them.

Usage:

	lr1 [flags]

The flags are:

	-g, --grammar NAME
		Selects a compiled-in grammar by name ("parens", "expr"). Defaults
		to the config file's grammar field, or "parens" if that is empty.

	-c, --cache PATH
		Table cache file location. Empty disables caching. Defaults to the
		config file's cache field.

	-d, --dump
		Print the state listing and ACTION/GOTO tables and exit instead of
		entering the REPL.

	-t, --trace
		Enable driver trace output, written to stdout as "trace: " lines
		alongside the REPL output.

	--config PATH
		TOML config file location. Defaults to "./lr1.toml"; a missing file
		is not an error.

Once in the REPL, each line is split on whitespace into terminal names,
implicitly EOF-terminated, and parsed. The resulting tree or error is
printed. Ctrl-D exits.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	lr1 "github.com/franleplant/lr1"
	"github.com/franleplant/lr1/internal/config"
	"github.com/franleplant/lr1/internal/util"
)

const (
	ExitSuccess = iota
	ExitConfigError
	ExitGrammarError
	ExitEngineError
	ExitParseError
)

var (
	returnCode  = ExitSuccess
	flagGrammar = pflag.StringP("grammar", "g", "", "Compiled-in grammar to use (parens, expr)")
	flagCache   = pflag.StringP("cache", "c", "", "Table cache file location; empty disables caching")
	flagDump    = pflag.BoolP("dump", "d", false, "Print diagnostic dumps and exit instead of entering the REPL")
	flagTrace   = pflag.BoolP("trace", "t", false, "Enable driver trace output to stdout")
	flagConfig  = pflag.String("config", "lr1.toml", "TOML config file location")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err)
		returnCode = ExitConfigError
		return
	}

	grammarName := *flagGrammar
	if grammarName == "" {
		grammarName = cfg.Grammar
	}
	if grammarName == "" {
		grammarName = "parens"
	}

	cachePath := *flagCache
	if cachePath == "" {
		cachePath = cfg.Cache
	}

	trace := *flagTrace || cfg.Trace

	build, ok := lr1.Grammars[grammarName]
	if !ok {
		available := util.MakeTextList(util.OrderedKeys(lr1.Grammars))
		fmt.Fprintf(os.Stderr, "ERROR: unknown grammar %q; available: %s\n", grammarName, available)
		returnCode = ExitGrammarError
		return
	}

	g, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: building grammar %q: %s\n", grammarName, err)
		returnCode = ExitGrammarError
		return
	}

	eng, err := lr1.New(g, cachePath, os.Stdout, trace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitEngineError
		return
	}
	eng.SetPromptColor(cfg.PromptColor)

	if !eng.IsLR1() {
		fmt.Fprintf(os.Stderr, "WARNING: grammar %q is not LR(1); some inputs may report AmbiguousGrammar\n", grammarName)
	}

	if *flagDump {
		fmt.Print(eng.Dump())
		return
	}

	if err := eng.RunREPL(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitParseError
		return
	}
}
