package ginlang

// parseExpr dispatches on the leading token.
// Binary operators chain to the right without precedence.
func (p *Parser) parseExpr() (Expr, error) {
	tok := p.read()
	switch tok.Kind {

	case TokenInt:
		return p.parseBinaryRest(&IntLit{
			Pos:   tok.Pos(),
			Value: tok.Int,
		})

	case TokenFloat:
		return p.parseBinaryRest(&FloatLit{
			Pos:   tok.Pos(),
			Value: tok.Float,
		})

	case TokenString, TokenTemplateString:
		return p.parseBinaryRest(&StringLit{
			Pos:      tok.Pos(),
			Value:    tok.Text,
			Template: tok.Kind == TokenTemplateString,
		})

	case TokenBool:
		return p.parseBinaryRest(&BoolLit{
			Pos:   tok.Pos(),
			Value: tok.Bool,
		})

	case TokenEllipsis:
		return p.parseBinaryRest(&EllipsisLit{
			Pos: tok.Pos(),
		})

	case TokenRange:
		return p.parseBinaryRest(&RangeLit{
			Pos:   tok.Pos(),
			Start: tok.Range.Start,
			End:   tok.Range.End,
		})

	case TokenId:
		if p.isBindingAhead() {
			return p.parseDefBind(tok, nil)
		}
		return p.parseReference(tok)

	case TokenTag:
		tag := &NominalTag{
			Pos:  tok.Pos(),
			Name: tok.Text,
		}
		if p.peek().Kind == TokenCurlyOpen {
			record, err := p.parseRecordLit(p.read(), tag)
			if err != nil {
				return nil, err
			}
			return p.parseBinaryRest(record)
		}
		return p.parseBinaryRest(&TagExpr{
			Tag: tag,
		})

	case TokenCurlyOpen:
		record, err := p.parseRecordLit(tok, nil)
		if err != nil {
			return nil, err
		}
		return p.parseBinaryRest(record)

	case TokenBracketOpen:
		elems, err := p.parseExprList(TokenBracketClose)
		if err != nil {
			return nil, err
		}
		return p.parseBinaryRest(&ListLit{
			Pos:   tok.Pos(),
			Elems: elems,
		})

	case TokenParenOpen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenParenClose, "')'"); err != nil {
			return nil, err
		}
		return p.parseBinaryRest(inner)

	case TokenIf:
		return p.parseIf(tok)

	case TokenFor:
		return p.parseForIn(tok)

	}
	return nil, p.fail(tok, "expression")
}

func (p *Parser) parseBinaryRest(left Expr) (Expr, error) {
	tok := p.read()
	op, ok := binaryOpTokens[tok.Kind]
	if !ok {
		p.unread(tok)
		return left, nil
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Binary{
		Pos:   left.NodePos(),
		Op:    op,
		Left:  left,
		Right: right,
	}, nil
}

// parseReference parses a path used as a value: a call with arguments,
// a call by juxtaposition with one argument, or a bare reference
func (p *Parser) parseReference(root Token) (Expr, error) {
	path, err := p.parsePath(root)
	if err != nil {
		return nil, err
	}

	next := p.peek()
	switch {

	case next.Kind == TokenParenOpen:
		p.read()
		args, err := p.parseExprList(TokenParenClose)
		if err != nil {
			return nil, err
		}
		return p.parseBinaryRest(&Call{
			Path: path,
			Args: args,
		})

	case startsOperand(next.Kind):
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &Call{
			Path: path,
			Args: []Expr{arg},
		}, nil

	}

	return p.parseBinaryRest(&Ident{
		Path: path,
	})
}

func startsOperand(kind TokenKind) bool {
	switch kind {
	case TokenId, TokenTag,
		TokenInt, TokenFloat, TokenString, TokenTemplateString, TokenBool, TokenRange,
		TokenEllipsis, TokenCurlyOpen, TokenBracketOpen:
		return true
	}
	return false
}

func (p *Parser) parseExprList(closer TokenKind) ([]Expr, error) {
	elems := []Expr{}
	for {
		tok := p.skipNewlines()
		if tok.Kind == closer {
			return elems, nil
		}
		p.unread(tok)
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		tok = p.skipNewlines()
		switch tok.Kind {
		case TokenComma:
			continue
		case closer:
			return elems, nil
		}
		return nil, p.fail(tok, "',' or '"+closer.String()+"'")
	}
}

// parseRecordLit parses identifier-keyed fields after an opening curly brace
func (p *Parser) parseRecordLit(open Token, tag Tag) (*RecordLit, error) {
	record := &RecordLit{
		Pos:    open.Pos(),
		Tag:    tag,
		Fields: []RecordField{},
	}
	for {
		tok := p.skipNewlines()
		if tok.Kind == TokenCurlyClose {
			return record, nil
		}
		if tok.Kind != TokenId {
			return nil, p.fail(tok, "field name")
		}
		if _, err := p.expect(TokenColon, "':'"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		record.Fields = append(record.Fields, RecordField{
			Name:  tok.Text,
			Value: value,
		})

		tok = p.read()
		switch tok.Kind {
		case TokenComma, TokenNewline:
			continue
		case TokenCurlyClose:
			return record, nil
		}
		return nil, p.fail(tok, "',' or '}'")
	}
}

func (p *Parser) parseIf(keyword Token) (*If, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokenThen {
		p.read()
	}
	then, err := p.parseIndentedBlock("if body")
	if err != nil {
		return nil, err
	}
	ret := &If{
		Pos:  keyword.Pos(),
		Cond: cond,
		Then: then,
	}

	if p.peek().Kind != TokenElse {
		return ret, nil
	}
	p.read()
	if next := p.peek(); next.Kind == TokenIf {
		nested, err := p.parseIf(p.read())
		if err != nil {
			return nil, err
		}
		ret.Else = []Expr{nested}
		return ret, nil
	}
	ret.Else, err = p.parseIndentedBlock("else body")
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Parser) parseForIn(keyword Token) (*ForIn, error) {
	loop := &ForIn{
		Pos: keyword.Pos(),
	}

	tok := p.read()
	loop.Pattern.Pos = tok.Pos()
	switch tok.Kind {
	case TokenId:
		loop.Pattern.Names = []string{tok.Text}
	case TokenParenOpen:
		loop.Pattern.Tuple = true
		for {
			name, err := p.expect(TokenId, "pattern name")
			if err != nil {
				return nil, err
			}
			loop.Pattern.Names = append(loop.Pattern.Names, name.Text)
			tok = p.read()
			if tok.Kind == TokenParenClose {
				break
			}
			if tok.Kind != TokenComma {
				return nil, p.fail(tok, "',' or ')'")
			}
		}
	default:
		return nil, p.fail(tok, "loop pattern")
	}

	if _, err := p.expect(TokenIn, "in"); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	loop.Iter = iter

	loop.Body, err = p.parseIndentedBlock("loop body")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLoop, "loop"); err != nil {
		return nil, err
	}
	return loop, nil
}
