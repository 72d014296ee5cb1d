package ginlang

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Pos is a 1-based line and rune column plus a byte offset into the source
type Pos = lexer.Position

type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	return s.Start.String()
}
