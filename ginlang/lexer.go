package ginlang

import (
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const DefaultTabWidth = 4

type Options struct {
	// TabWidth is the indentation width of a tab character, DefaultTabWidth if zero
	TabWidth int
	// Logger receives recovered lexical errors at debug level, discarded if nil
	Logger *slog.Logger
}

// Lexer is a pull-based, single-pass tokenizer.
// Newlines outside brackets drive an indentation stack that synthesizes Indent and Dedent tokens.
type Lexer struct {
	source   *Source
	input    string
	offset   int
	line     int
	column   int
	tabWidth int
	logger   *slog.Logger

	indents  []int
	brackets int
	// synthetic tokens, read before scanning resumes
	queue []Token
	// pushed back tokens, last deferred on top
	deferred []Token

	diagnostics []error
}

func NewLexer(source *Source, options Options) *Lexer {
	tabWidth := options.TabWidth
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Lexer{
		source:   source,
		input:    source.Content,
		line:     1,
		column:   1,
		tabWidth: tabWidth,
		logger:   logger,
		indents:  []int{0},
	}
}

func (l *Lexer) Source() *Source {
	return l.source
}

// Diagnostics returns the lexical errors that were recovered without producing an Error token
func (l *Lexer) Diagnostics() []error {
	return l.diagnostics
}

// Next returns the next token, or false when the input and the indentation stack are exhausted
func (l *Lexer) Next() (Token, bool) {
	for {
		if n := len(l.deferred); n > 0 {
			tok := l.deferred[n-1]
			l.deferred = l.deferred[:n-1]
			return tok, true
		}
		if len(l.queue) > 0 {
			tok := l.queue[0]
			l.queue = l.queue[1:]
			return tok, true
		}
		if l.offset >= len(l.input) {
			if len(l.indents) > 1 {
				l.unwind()
				continue
			}
			return Token{}, false
		}
		if tok, ok := l.scan(); ok {
			return tok, true
		}
	}
}

func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func (l *Lexer) pos() Pos {
	return Pos{
		Filename: l.source.Name,
		Offset:   l.offset,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) peekByte(n int) byte {
	if l.offset+n < len(l.input) {
		return l.input[l.offset+n]
	}
	return 0
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) advanceN(n int) {
	for range n {
		l.advance()
	}
}

func (l *Lexer) enqueue(tok Token) {
	l.queue = append(l.queue, tok)
}

func (l *Lexer) diagnose(err error) {
	l.diagnostics = append(l.diagnostics, err)
	l.logger.Debug("recovered lexical error",
		"source", l.source.Name,
		"error", err,
	)
}

func (l *Lexer) errorToken(start Pos, text string, err error) Token {
	return Token{
		Kind: TokenError,
		Text: text,
		Span: Span{start, l.pos()},
		Err:  WithPos(err, start, l.source),
	}
}

func (l *Lexer) scan() (Token, bool) {
	for l.offset < len(l.input) {
		c := l.input[l.offset]
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		l.advance()
	}
	if l.offset >= len(l.input) {
		return Token{}, false
	}

	start := l.pos()
	c := l.input[l.offset]
	switch {

	case c == '\n':
		l.advance()
		tok := Token{
			Kind: TokenNewline,
			Text: "\n",
			Span: Span{start, l.pos()},
		}
		if l.brackets == 0 {
			l.measureIndent()
		}
		return tok, true

	case c == '"':
		return l.scanQuoted(start, '"', TokenString), true
	case c == '`':
		return l.scanQuoted(start, '`', TokenTemplateString), true

	case c == '#':
		if l.peekByte(1) == '#' {
			l.advanceN(2)
			return l.scanComment(start, TokenDocComment), true
		}
		l.advance()
		return l.scanComment(start, TokenComment), true

	case strings.HasPrefix(l.input[l.offset:], "---"):
		l.advanceN(3)
		return l.scanComment(start, TokenDocComment), true
	case strings.HasPrefix(l.input[l.offset:], "--"):
		l.advanceN(2)
		return l.scanComment(start, TokenComment), true

	case isDigit(c):
		return l.scanNumber(start), true

	case isLower(c) || c == '_':
		text := l.scanWord(func(c byte) bool {
			return isLower(c) || isDigit(c) || c == '_'
		})
		kind := lookupWord(text)
		return Token{
			Kind: kind,
			Text: text,
			Span: Span{start, l.pos()},
			Bool: kind == TokenBool && text == "true",
		}, true

	case isUpper(c):
		text := l.scanWord(func(c byte) bool {
			return isLower(c) || isUpper(c) || isDigit(c)
		})
		return Token{
			Kind: TokenTag,
			Text: text,
			Span: Span{start, l.pos()},
		}, true

	}

	if tok, ok := l.scanOperator(start); ok {
		return tok, true
	}

	r := l.advance()
	l.diagnose(WithPos(fmt.Errorf("%w: %q", ErrUnknownCharacter, r), start, l.source))
	return Token{}, false
}

func (l *Lexer) scanWord(accept func(byte) bool) string {
	begin := l.offset
	for l.offset < len(l.input) && accept(l.input[l.offset]) {
		l.advance()
	}
	return l.input[begin:l.offset]
}

func (l *Lexer) scanQuoted(start Pos, quote byte, kind TokenKind) Token {
	l.advance()
	begin := l.offset
	for l.offset < len(l.input) && l.input[l.offset] != quote {
		l.advance()
	}
	text := l.input[begin:l.offset]
	if l.offset >= len(l.input) {
		l.diagnose(WithPos(
			fmt.Errorf("%w: missing closing %c", ErrUnterminatedLiteral, quote),
			start, l.source,
		))
	} else {
		l.advance()
	}
	return Token{
		Kind: kind,
		Text: text,
		Span: Span{start, l.pos()},
	}
}

func (l *Lexer) scanComment(start Pos, kind TokenKind) Token {
	begin := l.offset
	for l.offset < len(l.input) && l.input[l.offset] != '\n' {
		l.advance()
	}
	return Token{
		Kind: kind,
		Text: strings.TrimSpace(l.input[begin:l.offset]),
		Span: Span{start, l.pos()},
	}
}

func (l *Lexer) scanNumber(start Pos) Token {
	text := l.scanWord(func(c byte) bool {
		return isDigit(c) || c == '.'
	})
	tok := Token{
		Text: text,
		Span: Span{start, l.pos()},
	}

	switch dots := strings.Count(text, "."); {

	case strings.Contains(text, ".."):
		parts := strings.Split(text, "..")
		if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
			return l.errorToken(start, text, fmt.Errorf("%w: %q", ErrInvalidRange, text))
		}
		from, err1 := strconv.ParseInt(parts[0], 10, 64)
		to, err2 := strconv.ParseInt(parts[1], 10, 64)
		if err1 != nil || err2 != nil {
			return l.errorToken(start, text, fmt.Errorf("%w: %q out of range", ErrInvalidNumber, text))
		}
		tok.Kind = TokenRange
		tok.Range = RangeBounds{Start: from, End: to}

	case dots == 0:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return l.errorToken(start, text, fmt.Errorf("%w: %q out of range", ErrInvalidNumber, text))
		}
		tok.Kind = TokenInt
		tok.Int = v

	case dots == 1 && !strings.HasSuffix(text, "."):
		v, err := decimal.NewFromString(text)
		if err != nil {
			return l.errorToken(start, text, fmt.Errorf("%w: %q: %w", ErrInvalidNumber, text, err))
		}
		tok.Kind = TokenFloat
		tok.Float = v

	default:
		return l.errorToken(start, text, fmt.Errorf("%w: %q", ErrInvalidNumber, text))
	}

	return tok
}

// longer operators come first so that prefixes never shadow them
var operators = []struct {
	text string
	kind TokenKind
}{
	{"::=", TokenIsReplacedBy},
	{"...", TokenEllipsis},
	{":=", TokenAssign},
	{"|-", TokenTurnstile},
	{"==", TokenEqualEqual},
	{"!=", TokenNotEqual},
	{"<=", TokenLessEqual},
	{">=", TokenGreaterEqual},
	{"->", TokenRightArrow},
	{"<-", TokenLeftArrow},
	{"(", TokenParenOpen},
	{")", TokenParenClose},
	{"{", TokenCurlyOpen},
	{"}", TokenCurlyClose},
	{"[", TokenBracketOpen},
	{"]", TokenBracketClose},
	{":", TokenColon},
	{";", TokenSemicolon},
	{",", TokenComma},
	{".", TokenDot},
	{"&", TokenAmpersand},
	{"|", TokenBar},
	{"^", TokenCaret},
	{"~", TokenTilde},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenStar},
	{"/", TokenSlash},
	{"%", TokenPercent},
	{`\`, TokenBackslash},
	{"=", TokenEquals},
	{"<", TokenLess},
	{">", TokenGreater},
}

func (l *Lexer) scanOperator(start Pos) (Token, bool) {
	rest := l.input[l.offset:]
	for _, op := range operators {
		if !strings.HasPrefix(rest, op.text) {
			continue
		}
		l.advanceN(len(op.text))
		switch op.kind {
		case TokenParenOpen, TokenCurlyOpen, TokenBracketOpen:
			l.brackets++
		case TokenParenClose, TokenCurlyClose, TokenBracketClose:
			if l.brackets > 0 {
				l.brackets--
			}
		}
		return Token{
			Kind: op.kind,
			Text: op.text,
			Span: Span{start, l.pos()},
		}, true
	}
	return Token{}, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
