package ginlang

// parseDefBind parses a binding whose name has been read.
// A newline right after the colon selects the multi-line form.
func (p *Parser) parseDefBind(name Token, doc *DocComment) (*DefBind, error) {
	bind := &DefBind{
		Pos:  name.Pos(),
		Doc:  doc,
		Name: name.Text,
	}

	tok := p.read()
	if tok.Kind == TokenParenOpen {
		params, err := p.parseParams(TokenParenClose)
		if err != nil {
			return nil, err
		}
		bind.Parens = true
		bind.Params = params
		tok = p.read()
	}
	if tok.Kind != TokenColon {
		return nil, p.fail(tok, "':'")
	}

	tok = p.read()
	if tok.Kind != TokenNewline {
		p.unread(tok)
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		bind.Value = &ExprValue{
			Expr: expr,
		}
		return bind, nil
	}

	body := &BodyValue{}
	tok, doc = p.skipBlank()
	if tok.Kind == TokenIndent {
		exprs, err := p.parseBlock(doc)
		if err != nil {
			return nil, err
		}
		body.Exprs = exprs
		tok, _ = p.skipBlank()
	}
	if tok.Kind != TokenReturn {
		return nil, p.fail(tok, "return")
	}
	ret := &Return{
		Pos: tok.Pos(),
	}
	switch p.peek().Kind {
	case TokenNewline, TokenDedent, TokenEOF, TokenDocComment:
	default:
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ret.Value = value
	}
	body.Return = ret
	bind.Value = body

	return bind, nil
}

// parseBlock parses expressions up to and including the Dedent closing an already-read Indent
func (p *Parser) parseBlock(doc *DocComment) ([]Expr, error) {
	var exprs []Expr
	for {
		tok, more := p.skipBlank()
		if more != nil {
			doc = more
		}
		switch tok.Kind {
		case TokenDedent:
			return exprs, nil
		case TokenEOF:
			return nil, p.fail(tok, "end of block")
		}
		p.unread(tok)

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if bind, ok := expr.(*DefBind); ok && doc != nil {
			bind.Doc = doc
		}
		doc = nil
		exprs = append(exprs, expr)

		if err := p.endExpr(expr); err != nil {
			return nil, err
		}
	}
}

// parseIndentedBlock parses a newline, an Indent and the block it opens
func (p *Parser) parseIndentedBlock(what string) ([]Expr, error) {
	if _, err := p.expect(TokenNewline, "newline before "+what); err != nil {
		return nil, err
	}
	tok, doc := p.skipBlank()
	if tok.Kind != TokenIndent {
		return nil, p.fail(tok, "indented "+what)
	}
	return p.parseBlock(doc)
}

// isBindingAhead looks past an identifier for a colon, skipping one balanced parameter list
func (p *Parser) isBindingAhead() bool {
	var seen []Token
	read := func() Token {
		tok := p.read()
		seen = append(seen, tok)
		return tok
	}
	defer func() {
		for i := len(seen) - 1; i >= 0; i-- {
			p.unread(seen[i])
		}
	}()

	tok := read()
	if tok.Kind == TokenColon {
		return true
	}
	if tok.Kind != TokenParenOpen {
		return false
	}
	for depth := 1; depth > 0; {
		switch read().Kind {
		case TokenParenOpen:
			depth++
		case TokenParenClose:
			depth--
		case TokenEOF:
			return false
		}
	}
	return read().Kind == TokenColon
}

func (p *Parser) parseParams(closer TokenKind) ([]*Parameter, error) {
	params := []*Parameter{}
	for {
		tok := p.skipNewlines()
		if tok.Kind == closer {
			return params, nil
		}

		var param *Parameter
		switch tok.Kind {

		case TokenId:
			param = &Parameter{
				Pos:  tok.Pos(),
				Name: tok.Text,
				Kind: ParamGeneric,
			}
			switch p.peek().Kind {
			case TokenTag:
				tag, _, err := p.parseTag()
				if err != nil {
					return nil, err
				}
				param.Kind = ParamTagged
				param.Tag = tag
			case TokenColon:
				p.read()
				value, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				param.Kind = ParamDefault
				param.Default = value
			}

		case TokenTag:
			// positional tag argument of a generic, as in List(Number)
			p.unread(tok)
			tag, _, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			param = &Parameter{
				Pos:  tok.Pos(),
				Kind: ParamTagged,
				Tag:  tag,
			}

		default:
			return nil, p.fail(tok, "parameter")
		}
		params = append(params, param)

		tok = p.skipNewlines()
		switch tok.Kind {
		case TokenComma:
			continue
		case closer:
			return params, nil
		}
		return nil, p.fail(tok, "',' or '"+closer.String()+"'")
	}
}
