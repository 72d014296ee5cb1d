package ginlang

// Defer pushes a consumed token back to the front of the queue, so the next read returns it.
// Deferring B then A yields A then B.
func (l *Lexer) Defer(tok Token) {
	if tok.Kind == TokenEOF {
		return
	}
	l.deferred = append(l.deferred, tok)
}

// Peek is a read followed by a Defer
func (l *Lexer) Peek() (Token, bool) {
	tok, ok := l.Next()
	if ok {
		l.Defer(tok)
	}
	return tok, ok
}
