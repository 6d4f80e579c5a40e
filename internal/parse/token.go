package parse

// Token is the contract the driver reads the input stream through: a
// terminal's name and its textual form. The driver only ever consults
// Kind(); Lexeme() is never read by the driver and is not stored in the
// parse tree, whose nodes record only their symbol.
type Token interface {
	Kind() string
	Lexeme() string
}

// TokenStream is a pull-based iterator over Tokens. Next returns the next
// token and true, or the zero Token and false once the stream is
// exhausted. A well-formed stream's last token has Kind() == "EOF"; a
// stream that ends without one causes the driver to ask Next again and
// receive false, producing UnexpectedEndOfInputError.
type TokenStream interface {
	Next() (Token, bool)
}

// SimpleToken is the trivial (kind, lexeme) pair that satisfies Token.
type SimpleToken struct {
	kind   string
	lexeme string
}

// NewToken returns a SimpleToken with the given kind and lexeme.
func NewToken(kind, lexeme string) SimpleToken {
	return SimpleToken{kind: kind, lexeme: lexeme}
}

func (t SimpleToken) Kind() string   { return t.kind }
func (t SimpleToken) Lexeme() string { return t.lexeme }

// SliceStream is a TokenStream over an in-memory slice of Tokens, useful for
// tests and for callers that already have their full token list in hand.
type SliceStream struct {
	toks []Token
	pos  int
}

// NewSliceStream returns a SliceStream over toks.
func NewSliceStream(toks ...Token) *SliceStream {
	return &SliceStream{toks: toks}
}

func (s *SliceStream) Next() (Token, bool) {
	if s.pos >= len(s.toks) {
		return nil, false
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok, true
}
