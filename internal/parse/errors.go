package parse

import (
	"errors"
	"fmt"

	"github.com/franleplant/lr1/internal/util"
)

// Sentinel errors, one per taxonomy member, so callers can classify a
// failure with errors.Is without type-asserting the concrete error.
var (
	ErrAmbiguousGrammar     = errors.New("ambiguous grammar")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrEmptyStack           = errors.New("empty stack")
)

// AmbiguousGrammarError is returned when the driver reaches an ACTION cell
// holding more than one action: the grammar that produced the tables is not
// LR(1), and the conflict only surfaces once a parse actually visits that
// cell (Parser.IsLR1 can detect it ahead of time without parsing anything).
type AmbiguousGrammarError struct {
	State      int
	Token      Token
	NumActions int
}

func (e *AmbiguousGrammarError) Error() string {
	return fmt.Sprintf("ambiguous grammar: state %d has %d actions on token %q", e.State, e.NumActions, e.Token.Kind())
}

func (e *AmbiguousGrammarError) Unwrap() error { return ErrAmbiguousGrammar }

// UnexpectedTokenError is returned when ACTION[state, token.Kind()] has no
// entry at all. Expected, when non-empty, lists the terminal kinds that did
// have an entry in that state, for a "expected X, Y, or Z" style message.
type UnexpectedTokenError struct {
	State     int
	Token     Token
	StackDump string
	Expected  []string
}

func (e *UnexpectedTokenError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected token %q in state %d; stack: %s", e.Token.Kind(), e.State, e.StackDump)
	}
	if len(e.Expected) == 1 {
		return fmt.Sprintf(
			"unexpected token %q in state %d; expected %s %q; stack: %s",
			e.Token.Kind(), e.State, util.ArticleFor(e.Expected[0], false), e.Expected[0], e.StackDump,
		)
	}
	return fmt.Sprintf(
		"unexpected token %q in state %d; expected one of %s; stack: %s",
		e.Token.Kind(), e.State, util.MakeTextList(e.Expected), e.StackDump,
	)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// UnexpectedEndOfInputError is returned when the driver demands another
// token from the stream but the stream is exhausted.
type UnexpectedEndOfInputError struct {
	State     int
	StackDump string
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input in state %d; stack: %s", e.State, e.StackDump)
}

func (e *UnexpectedEndOfInputError) Unwrap() error { return ErrUnexpectedEndOfInput }

// EmptyStackError is returned when a reduction calls for popping more
// entries than the stack holds. This indicates corrupt tables and should
// never occur against a grammar Parser.IsLR1 has confirmed.
type EmptyStackError struct {
	State      int
	WantPopped int
	HavePopped int
}

func (e *EmptyStackError) Error() string {
	return fmt.Sprintf("empty stack in state %d: wanted to pop %d entries, stack had %d", e.State, e.WantPopped, e.HavePopped)
}

func (e *EmptyStackError) Unwrap() error { return ErrEmptyStack }
