package ginlang

type SemanticType uint8

const (
	SemanticNone SemanticType = iota
	SemanticFunction
	SemanticStruct
	SemanticComment
	SemanticKeyword
	SemanticOperator
	SemanticVariable
	SemanticString
	SemanticNumber
	SemanticParameter
	SemanticClass
)

// SemanticLegend is indexed by SemanticType
var SemanticLegend = []string{
	SemanticNone:      "",
	SemanticFunction:  "function",
	SemanticStruct:    "struct",
	SemanticComment:   "comment",
	SemanticKeyword:   "keyword",
	SemanticOperator:  "operator",
	SemanticVariable:  "variable",
	SemanticString:    "string",
	SemanticNumber:    "number",
	SemanticParameter: "parameter",
	SemanticClass:     "class",
}

func (s SemanticType) String() string {
	if int(s) < len(SemanticLegend) {
		return SemanticLegend[s]
	}
	return ""
}

// Semantic classifies a raw token kind for editor highlighting
func (k TokenKind) Semantic() SemanticType {
	switch {
	case k.IsKeyword(), k == TokenBool:
		return SemanticKeyword
	case k >= TokenPlus && k <= TokenEllipsis,
		k == TokenBar, k == TokenAmpersand, k == TokenCaret, k == TokenTilde:
		return SemanticOperator
	}
	switch k {
	case TokenId:
		return SemanticVariable
	case TokenTag:
		return SemanticStruct
	case TokenInt, TokenFloat, TokenRange:
		return SemanticNumber
	case TokenString, TokenTemplateString:
		return SemanticString
	case TokenComment, TokenDocComment:
		return SemanticComment
	}
	return SemanticNone
}

// SemanticTokens classifies a token stream, refining identifiers by what follows them.
// Identifiers before a colon or parenthesis are functions, identifiers in a parenthesized
// list opened at line start are parameters. Tags right after `is` are classes.
func SemanticTokens(tokens []Token) []SemanticType {
	ret := make([]SemanticType, len(tokens))
	inParams := false
	for i, tok := range tokens {
		ret[i] = tok.Kind.Semantic()
		var next, prev TokenKind
		if i+1 < len(tokens) {
			next = tokens[i+1].Kind
		}
		if i > 0 {
			prev = tokens[i-1].Kind
		}
		switch tok.Kind {
		case TokenId:
			switch {
			case inParams:
				ret[i] = SemanticParameter
			case next == TokenColon || next == TokenParenOpen:
				ret[i] = SemanticFunction
			}
			if next == TokenParenOpen && (i == 0 || prev == TokenNewline || prev == TokenIndent || prev == TokenDedent) {
				inParams = true
			}
		case TokenTag:
			if prev == TokenIs || prev == TokenIsReplacedBy {
				ret[i] = SemanticClass
			}
		case TokenParenClose:
			inParams = false
		}
	}
	return ret
}
