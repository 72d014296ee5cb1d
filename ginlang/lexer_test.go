package ginlang

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func lex(t *testing.T, content string) ([]Token, *Lexer) {
	t.Helper()
	lexer := NewLexer(NewSource("test.gin", content), Options{})
	return slices.Collect(lexer.Tokens()), lexer
}

func kindsOf(tokens []Token) []TokenKind {
	ret := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		ret = append(ret, tok.Kind)
	}
	return ret
}

func TestLexSimpleBinding(t *testing.T) {
	tokens, _ := lex(t, "x: 5\n")
	kinds := kindsOf(tokens)
	if !slices.Equal(kinds, []TokenKind{TokenId, TokenColon, TokenInt, TokenNewline}) {
		t.Fatalf("got %v", kinds)
	}
	if tokens[2].Int != 5 {
		t.Fatalf("got %v", tokens[2].Int)
	}
}

func TestCapitalizationDispatch(t *testing.T) {
	cases := []struct {
		text string
		kind TokenKind
	}{
		{"Person", TokenTag},
		{"HTTPServer", TokenTag},
		{"V2", TokenTag},
		{"person", TokenId},
		{"_private", TokenId},
		{"snake_case", TokenId},
		{"x1", TokenId},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			tokens, _ := lex(t, c.text)
			if len(tokens) != 1 {
				t.Fatalf("got %v", tokens)
			}
			if tokens[0].Kind != c.kind || tokens[0].Text != c.text {
				t.Fatalf("got %v", tokens[0])
			}
		})
	}
}

func TestLexKeywords(t *testing.T) {
	tokens, _ := lex(t, "if else for return use is when does loop then true false")
	kinds := kindsOf(tokens)
	expected := []TokenKind{
		TokenIf, TokenElse, TokenFor, TokenReturn, TokenUse, TokenIs,
		TokenWhen, TokenDoes, TokenLoop, TokenThen, TokenBool, TokenBool,
	}
	if !slices.Equal(kinds, expected) {
		t.Fatalf("got %v", kinds)
	}
	if !tokens[10].Bool || tokens[11].Bool {
		t.Fatalf("got %v %v", tokens[10].Bool, tokens[11].Bool)
	}
}

func TestLexOperators(t *testing.T) {
	tokens, _ := lex(t, "a ::= b := c |- d ... e == f != g <= h >= i -> j <- k | l : m = n < o > p - q")
	var ops []TokenKind
	for _, tok := range tokens {
		if tok.Kind != TokenId {
			ops = append(ops, tok.Kind)
		}
	}
	expected := []TokenKind{
		TokenIsReplacedBy, TokenAssign, TokenTurnstile, TokenEllipsis,
		TokenEqualEqual, TokenNotEqual, TokenLessEqual, TokenGreaterEqual,
		TokenRightArrow, TokenLeftArrow, TokenBar, TokenColon, TokenEquals,
		TokenLess, TokenGreater, TokenMinus,
	}
	if !slices.Equal(ops, expected) {
		t.Fatalf("got %v", ops)
	}
}

func TestLexPunctuation(t *testing.T) {
	tokens, _ := lex(t, "( ) { } [ ] ; , . & ^ ~ + * / % \\")
	expected := []TokenKind{
		TokenParenOpen, TokenParenClose, TokenCurlyOpen, TokenCurlyClose,
		TokenBracketOpen, TokenBracketClose, TokenSemicolon, TokenComma, TokenDot,
		TokenAmpersand, TokenCaret, TokenTilde, TokenPlus, TokenStar, TokenSlash,
		TokenPercent, TokenBackslash,
	}
	if kinds := kindsOf(tokens); !slices.Equal(kinds, expected) {
		t.Fatalf("got %v", kinds)
	}
}

func TestLexNumbers(t *testing.T) {
	tokens, lexer := lex(t, "1 2.5 1..5 5.. 1.2.3 7")
	kinds := kindsOf(tokens)
	expected := []TokenKind{TokenInt, TokenFloat, TokenRange, TokenError, TokenError, TokenInt}
	if !slices.Equal(kinds, expected) {
		t.Fatalf("got %v", kinds)
	}
	if tokens[1].Float.String() != "2.5" {
		t.Fatalf("got %v", tokens[1].Float)
	}
	if tokens[2].Range != (RangeBounds{Start: 1, End: 5}) {
		t.Fatalf("got %v", tokens[2].Range)
	}
	if !errors.Is(tokens[3].Err, ErrInvalidRange) {
		t.Fatalf("got %v", tokens[3].Err)
	}
	if !errors.Is(tokens[4].Err, ErrInvalidNumber) {
		t.Fatalf("got %v", tokens[4].Err)
	}
	if tokens[5].Int != 7 {
		t.Fatalf("got %v", tokens[5])
	}
	// in-stream errors are not repeated as diagnostics
	if len(lexer.Diagnostics()) != 0 {
		t.Fatalf("got %v", lexer.Diagnostics())
	}
}

func TestLexMalformedRangeLocation(t *testing.T) {
	tokens, _ := lex(t, "x: 5..\ny: 1\n")
	kinds := kindsOf(tokens)
	expected := []TokenKind{
		TokenId, TokenColon, TokenError, TokenNewline,
		TokenId, TokenColon, TokenInt, TokenNewline,
	}
	if !slices.Equal(kinds, expected) {
		t.Fatalf("got %v", kinds)
	}
	var posErr PosError
	if !errors.As(tokens[2].Err, &posErr) {
		t.Fatalf("got %v", tokens[2].Err)
	}
	if posErr.Pos.Line != 1 || posErr.Pos.Column != 4 {
		t.Fatalf("got %v", posErr.Pos)
	}
}

func TestLexIntOverflow(t *testing.T) {
	tokens, _ := lex(t, "99999999999999999999")
	if len(tokens) != 1 || !errors.Is(tokens[0].Err, ErrInvalidNumber) {
		t.Fatalf("got %v", tokens)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	tokens, lexer := lex(t, `greeting: "hi`)
	kinds := kindsOf(tokens)
	if !slices.Equal(kinds, []TokenKind{TokenId, TokenColon, TokenString}) {
		t.Fatalf("got %v", kinds)
	}
	if tokens[2].Text != "hi" {
		t.Fatalf("got %q", tokens[2].Text)
	}
	diags := lexer.Diagnostics()
	if len(diags) != 1 || !errors.Is(diags[0], ErrUnterminatedLiteral) {
		t.Fatalf("got %v", diags)
	}
}

func TestLexStrings(t *testing.T) {
	tokens, lexer := lex(t, "\"a b\" `t\nx` \"\"")
	kinds := kindsOf(tokens)
	if !slices.Equal(kinds, []TokenKind{TokenString, TokenTemplateString, TokenString}) {
		t.Fatalf("got %v", kinds)
	}
	if tokens[0].Text != "a b" || tokens[1].Text != "t\nx" || tokens[2].Text != "" {
		t.Fatalf("got %v", tokens)
	}
	// the newline inside the template moves the line count
	if tokens[2].Span.Start.Line != 2 {
		t.Fatalf("got %v", tokens[2].Span.Start)
	}
	if len(lexer.Diagnostics()) != 0 {
		t.Fatalf("got %v", lexer.Diagnostics())
	}
}

func TestLexComments(t *testing.T) {
	tokens, _ := lex(t, "a -- note\nb --- doc\n## doc2\n# c\n")
	kinds := kindsOf(tokens)
	expected := []TokenKind{
		TokenId, TokenComment, TokenNewline,
		TokenId, TokenDocComment, TokenNewline,
		TokenDocComment, TokenNewline,
		TokenComment, TokenNewline,
	}
	if !slices.Equal(kinds, expected) {
		t.Fatalf("got %v", kinds)
	}
	texts := []string{tokens[1].Text, tokens[4].Text, tokens[6].Text, tokens[8].Text}
	if !slices.Equal(texts, []string{"note", "doc", "doc2", "c"}) {
		t.Fatalf("got %q", texts)
	}
}

func TestLexUnknownCharacters(t *testing.T) {
	tokens, lexer := lex(t, "a $ b @ ! c")
	kinds := kindsOf(tokens)
	if !slices.Equal(kinds, []TokenKind{TokenId, TokenId, TokenId}) {
		t.Fatalf("got %v", kinds)
	}
	diags := lexer.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("got %v", diags)
	}
	for _, err := range diags {
		if !errors.Is(err, ErrUnknownCharacter) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestLexPositions(t *testing.T) {
	tokens, _ := lex(t, "ab\n  cd")
	last := tokens[len(tokens)-2]
	if last.Text != "cd" {
		t.Fatalf("got %v", last)
	}
	pos := last.Span.Start
	if pos.Line != 2 || pos.Column != 3 || pos.Offset != 5 || pos.Filename != "test.gin" {
		t.Fatalf("got %#v", pos)
	}
	if end := last.Span.End; end.Column != 5 || end.Offset != 7 {
		t.Fatalf("got %#v", end)
	}
}

func TestRelexIsIdempotent(t *testing.T) {
	content := "add(a, b):\n    s: a + b  -- sum\nreturn s\nx: 1..5 2.5 \"str\" $\n"
	first, _ := lex(t, content)
	second, _ := lex(t, content)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("got %v\n%v", first, second)
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok      Token
		expected string
	}{
		{Token{Kind: TokenId, Text: "x"}, "Id(x)"},
		{Token{Kind: TokenString, Text: "a"}, `String("a")`},
		{Token{Kind: TokenColon, Text: ":"}, ":"},
		{Token{Kind: TokenIndent}, "Indent"},
		{Token{Kind: TokenIs, Text: "is"}, "is"},
	}
	for _, c := range cases {
		if str := c.tok.String(); str != c.expected {
			t.Fatalf("got %s", str)
		}
	}
	if str := TokenKind(250).String(); str != "TokenKind(250)" {
		t.Fatalf("got %s", str)
	}
}
