package ginlang

import (
	"fmt"
	"strings"
)

// measureIndent runs right after a newline outside brackets.
// It consumes the leading whitespace of the next line and queues the structural tokens for it.
func (l *Lexer) measureIndent() {
	width := 0
loop:
	for l.offset < len(l.input) {
		switch l.input[l.offset] {
		case ' ':
			width++
		case '\t':
			width += l.tabWidth
		case '\r':
		default:
			break loop
		}
		l.advance()
	}

	// blank and comment-only lines keep the current level
	if l.offset >= len(l.input) {
		return
	}
	rest := l.input[l.offset:]
	if rest[0] == '\n' ||
		rest[0] == '#' ||
		strings.HasPrefix(rest, "--") {
		return
	}

	pos := l.pos()
	top := l.indents[len(l.indents)-1]
	switch {

	case width > top:
		l.indents = append(l.indents, width)
		l.enqueue(Token{
			Kind: TokenIndent,
			Span: Span{pos, pos},
		})

	case width < top:
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			l.enqueue(Token{
				Kind: TokenDedent,
				Span: Span{pos, pos},
			})
		}
		if enclosing := l.indents[len(l.indents)-1]; enclosing != width {
			// reopen a block at the new width so every Indent still has its Dedent
			l.enqueue(l.errorToken(pos, "", fmt.Errorf(
				"%w: width %d, enclosing block at %d",
				ErrMisalignedDedent, width, enclosing,
			)))
			l.indents = append(l.indents, width)
			l.enqueue(Token{
				Kind: TokenIndent,
				Span: Span{pos, pos},
			})
		}

	}
}

func (l *Lexer) unwind() {
	pos := l.pos()
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.enqueue(Token{
			Kind: TokenDedent,
			Span: Span{pos, pos},
		})
	}
}
