package ginlang

import (
	"slices"
	"testing"
)

func TestSemanticTokens(t *testing.T) {
	tokens, _ := lex(t, "## doc\nadd(a, b): a + \"x\" 1\nColor is Red\n")
	var got []string
	for i, semantic := range SemanticTokens(tokens) {
		if semantic == SemanticNone {
			continue
		}
		got = append(got, tokens[i].Text+":"+semantic.String())
	}
	expected := []string{
		"doc:comment",
		"add:function",
		"a:parameter",
		"b:parameter",
		"a:variable",
		"+:operator",
		"x:string",
		"1:number",
		"Color:struct",
		"is:keyword",
		"Red:class",
	}
	if !slices.Equal(got, expected) {
		t.Fatalf("got %v", got)
	}
}

func TestSemanticKinds(t *testing.T) {
	cases := map[TokenKind]SemanticType{
		TokenIf:           SemanticKeyword,
		TokenBool:         SemanticKeyword,
		TokenEllipsis:     SemanticOperator,
		TokenIsReplacedBy: SemanticOperator,
		TokenBar:          SemanticOperator,
		TokenRange:        SemanticNumber,
		TokenComma:        SemanticNone,
		TokenNewline:      SemanticNone,
	}
	for kind, expected := range cases {
		if got := kind.Semantic(); got != expected {
			t.Fatalf("%v: got %v", kind, got)
		}
	}
}
