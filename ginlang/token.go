package ginlang

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenError

	// structure
	TokenNewline
	TokenIndent
	TokenDedent

	TokenComment
	TokenDocComment

	// names
	TokenId
	TokenTag

	// literals
	TokenInt
	TokenFloat
	TokenString
	TokenTemplateString
	TokenBool
	TokenRange

	// punctuation
	TokenParenOpen
	TokenParenClose
	TokenCurlyOpen
	TokenCurlyClose
	TokenBracketOpen
	TokenBracketClose
	TokenColon
	TokenSemicolon
	TokenComma
	TokenDot
	TokenAmpersand
	TokenBar
	TokenCaret
	TokenTilde

	// operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenBackslash
	TokenEquals
	TokenLess
	TokenGreater
	TokenEqualEqual
	TokenNotEqual
	TokenLessEqual
	TokenGreaterEqual
	TokenRightArrow
	TokenLeftArrow
	TokenIsReplacedBy
	TokenAssign
	TokenTurnstile
	TokenEllipsis

	// keywords
	TokenAnd
	TokenAs
	TokenBreak
	TokenContinue
	TokenDoes
	TokenElse
	TokenFor
	TokenFrom
	TokenIf
	TokenIn
	TokenIs
	TokenLoop
	TokenOr
	TokenReturn
	TokenThen
	TokenUse
	TokenWhen
	TokenWhere

	numTokenKinds
)

var tokenKindNames = [numTokenKinds]string{
	TokenInvalid:        "Invalid",
	TokenEOF:            "EOF",
	TokenError:          "Error",
	TokenNewline:        "Newline",
	TokenIndent:         "Indent",
	TokenDedent:         "Dedent",
	TokenComment:        "Comment",
	TokenDocComment:     "DocComment",
	TokenId:             "Id",
	TokenTag:            "Tag",
	TokenInt:            "Int",
	TokenFloat:          "Float",
	TokenString:         "String",
	TokenTemplateString: "TemplateString",
	TokenBool:           "Bool",
	TokenRange:          "Range",
	TokenParenOpen:      "(",
	TokenParenClose:     ")",
	TokenCurlyOpen:      "{",
	TokenCurlyClose:     "}",
	TokenBracketOpen:    "[",
	TokenBracketClose:   "]",
	TokenColon:          ":",
	TokenSemicolon:      ";",
	TokenComma:          ",",
	TokenDot:            ".",
	TokenAmpersand:      "&",
	TokenBar:            "|",
	TokenCaret:          "^",
	TokenTilde:          "~",
	TokenPlus:           "+",
	TokenMinus:          "-",
	TokenStar:           "*",
	TokenSlash:          "/",
	TokenPercent:        "%",
	TokenBackslash:      `\`,
	TokenEquals:         "=",
	TokenLess:           "<",
	TokenGreater:        ">",
	TokenEqualEqual:     "==",
	TokenNotEqual:       "!=",
	TokenLessEqual:      "<=",
	TokenGreaterEqual:   ">=",
	TokenRightArrow:     "->",
	TokenLeftArrow:      "<-",
	TokenIsReplacedBy:   "::=",
	TokenAssign:         ":=",
	TokenTurnstile:      "|-",
	TokenEllipsis:       "...",
	TokenAnd:            "and",
	TokenAs:             "as",
	TokenBreak:          "break",
	TokenContinue:       "continue",
	TokenDoes:           "does",
	TokenElse:           "else",
	TokenFor:            "for",
	TokenFrom:           "from",
	TokenIf:             "if",
	TokenIn:             "in",
	TokenIs:             "is",
	TokenLoop:           "loop",
	TokenOr:             "or",
	TokenReturn:         "return",
	TokenThen:           "then",
	TokenUse:            "use",
	TokenWhen:           "when",
	TokenWhere:          "where",
}

func (k TokenKind) String() string {
	if k < numTokenKinds {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

func (k TokenKind) IsKeyword() bool {
	return k >= TokenAnd && k <= TokenWhere
}

type RangeBounds struct {
	Start int64
	End   int64
}

type Token struct {
	Kind TokenKind
	Text string
	Span Span

	// literal values, set according to Kind
	Int   int64
	Float decimal.Decimal
	Bool  bool
	Range RangeBounds

	// set for TokenError
	Err error
}

func (t Token) String() string {
	switch t.Kind {
	case TokenId, TokenTag, TokenInt, TokenFloat, TokenBool, TokenRange:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case TokenString, TokenTemplateString, TokenComment, TokenDocComment:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case TokenError:
		return fmt.Sprintf("Error(%v)", t.Err)
	}
	return t.Kind.String()
}

func (t Token) Pos() Pos {
	return t.Span.Start
}
