package ginlang

var keywords = map[string]TokenKind{
	"and":      TokenAnd,
	"as":       TokenAs,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"does":     TokenDoes,
	"else":     TokenElse,
	"for":      TokenFor,
	"from":     TokenFrom,
	"if":       TokenIf,
	"in":       TokenIn,
	"is":       TokenIs,
	"loop":     TokenLoop,
	"or":       TokenOr,
	"return":   TokenReturn,
	"then":     TokenThen,
	"use":      TokenUse,
	"when":     TokenWhen,
	"where":    TokenWhere,
}

func lookupWord(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	switch word {
	case "true", "false":
		return TokenBool
	}
	return TokenId
}
