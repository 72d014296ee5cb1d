package ginlang

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
)

// Parser is a recursive-descent parser pulling tokens from a Lexer.
// All lookahead goes through Lexer.Defer.
type Parser struct {
	lexer  *Lexer
	source *Source
	logger *slog.Logger
	// Indent minus Dedent tokens currently consumed
	depth int
}

func NewParser(lexer *Lexer) *Parser {
	return &Parser{
		lexer:  lexer,
		source: lexer.Source(),
		logger: lexer.logger,
	}
}

// Next parses one top-level item. It returns io.EOF when the input is exhausted.
// On a syntax error the failed item is skipped and the next call resumes after it.
func (p *Parser) Next() (Item, error) {
	tok, doc := p.skipBlank()
	if tok.Kind == TokenEOF {
		return nil, io.EOF
	}
	item, err := p.parseItem(tok, doc)
	if err != nil {
		p.logger.Debug("parse error",
			"source", p.source.Name,
			"error", err,
		)
		p.synchronize()
		return nil, err
	}
	return item, nil
}

func (p *Parser) Items() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for {
			item, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(item, err) {
				return
			}
		}
	}
}

func (p *Parser) read() Token {
	for {
		tok, ok := p.lexer.Next()
		if !ok {
			pos := p.lexer.pos()
			return Token{
				Kind: TokenEOF,
				Span: Span{pos, pos},
			}
		}
		switch tok.Kind {
		case TokenComment:
			continue
		case TokenIndent:
			p.depth++
		case TokenDedent:
			p.depth--
		}
		return tok
	}
}

func (p *Parser) unread(tok Token) {
	switch tok.Kind {
	case TokenEOF:
		return
	case TokenIndent:
		p.depth--
	case TokenDedent:
		p.depth++
	}
	p.lexer.Defer(tok)
}

func (p *Parser) peek() Token {
	tok := p.read()
	p.unread(tok)
	return tok
}

// fail puts the offending token back for recovery and describes it
func (p *Parser) fail(tok Token, expected string) error {
	p.unread(tok)
	switch tok.Kind {
	case TokenError:
		return tok.Err
	case TokenEOF:
		return WithPos(
			fmt.Errorf("%w, expecting %s", ErrUnexpectedEOF, expected),
			tok.Pos(), p.source,
		)
	}
	return WithPos(&UnexpectedTokenError{
		Token:    tok,
		Expected: expected,
	}, tok.Pos(), p.source)
}

func (p *Parser) expect(kind TokenKind, expected string) (Token, error) {
	tok := p.read()
	if tok.Kind != kind {
		return tok, p.fail(tok, expected)
	}
	return tok, nil
}

// skipBlank reads past newlines and collects doc comments
func (p *Parser) skipBlank() (Token, *DocComment) {
	var doc *DocComment
	for {
		tok := p.read()
		switch tok.Kind {
		case TokenNewline:
			continue
		case TokenDocComment:
			doc = joinDoc(doc, tok)
			continue
		}
		return tok, doc
	}
}

// skipNewlines is for bracketed lists, where newlines only separate
func (p *Parser) skipNewlines() Token {
	for {
		tok := p.read()
		if tok.Kind != TokenNewline && tok.Kind != TokenDocComment {
			return tok
		}
	}
}

func joinDoc(doc *DocComment, tok Token) *DocComment {
	if doc == nil {
		return &DocComment{
			Pos:  tok.Pos(),
			Text: tok.Text,
		}
	}
	doc.Text += "\n" + tok.Text
	return doc
}

// endLine consumes the terminator of a line-based construct.
// A Dedent also ends the line and is left for the enclosing block.
func (p *Parser) endLine() error {
	for {
		tok := p.read()
		switch tok.Kind {
		case TokenDocComment:
			continue
		case TokenNewline, TokenEOF:
			return nil
		case TokenDedent:
			p.unread(tok)
			return nil
		}
		return p.fail(tok, "end of line")
	}
}

func (p *Parser) endExpr(expr Expr) error {
	if endsWithBlock(expr) {
		return nil
	}
	return p.endLine()
}

// endsWithBlock reports whether the expression's last token was a block-closing Dedent
func endsWithBlock(expr Expr) bool {
	switch expr := expr.(type) {
	case *If:
		return true
	case *DefBind:
		if value, ok := expr.Value.(*ExprValue); ok {
			return endsWithBlock(value.Expr)
		}
	case *Binary:
		return endsWithBlock(expr.Right)
	case *Call:
		if len(expr.Args) > 0 {
			return endsWithBlock(expr.Args[len(expr.Args)-1])
		}
	}
	return false
}

// synchronize skips to the start of the next top-level line that does not continue the failed item
func (p *Parser) synchronize() {
	for {
		tok := p.read()
		switch tok.Kind {
		case TokenEOF:
			return
		case TokenNewline:
			if p.depth > 0 {
				continue
			}
			if p.peek().Kind != TokenIndent {
				return
			}
		case TokenDedent:
			if p.depth > 0 {
				continue
			}
			p.depth = 0
			// the return line closing a broken multi-line binding
			if p.peek().Kind == TokenReturn {
				continue
			}
			return
		}
	}
}

func (p *Parser) parseItem(tok Token, doc *DocComment) (Item, error) {
	switch tok.Kind {

	case TokenUse:
		return p.parseImport(tok)

	case TokenId:
		bind, err := p.parseDefBind(tok, doc)
		if err != nil {
			return nil, err
		}
		if err := p.endExpr(bind); err != nil {
			return nil, err
		}
		return bind, nil

	case TokenTag:
		return p.parseTagBind(tok, doc)

	}
	return nil, p.fail(tok, "import, binding or tag definition")
}

func (p *Parser) parseImport(keyword Token) (*Import, error) {
	imp := &Import{
		Pos: keyword.Pos(),
	}
	for {
		tok, err := p.expect(TokenId, "module path")
		if err != nil {
			return nil, err
		}
		path, err := p.parsePath(tok)
		if err != nil {
			return nil, err
		}
		module := ModuleImport{
			Path: path,
		}
		if p.peek().Kind == TokenAs {
			p.read()
			alias, err := p.expect(TokenId, "import alias")
			if err != nil {
				return nil, err
			}
			module.Alias = alias.Text
		}
		imp.Modules = append(imp.Modules, module)
		if p.peek().Kind != TokenComma {
			break
		}
		p.read()
	}
	return imp, p.endLine()
}

func (p *Parser) parsePath(root Token) (Path, error) {
	path := Path{
		Pos:  root.Pos(),
		Root: root.Text,
	}
	for p.peek().Kind == TokenDot {
		p.read()
		seg, err := p.expect(TokenId, "path segment")
		if err != nil {
			return path, err
		}
		path.Segments = append(path.Segments, seg.Text)
	}
	return path, nil
}
