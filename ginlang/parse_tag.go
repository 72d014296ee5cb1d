package ginlang

func (p *Parser) parseTagBind(name Token, doc *DocComment) (*TagBind, error) {
	head, err := p.parseTagHead(name)
	if err != nil {
		return nil, err
	}
	bind := &TagBind{
		Pos: name.Pos(),
		Doc: doc,
		Tag: head,
	}

	tok := p.read()
	if tok.Kind != TokenIs && tok.Kind != TokenIsReplacedBy {
		return nil, p.fail(tok, "is")
	}

	tok = p.read()
	if tok.Kind == TokenNewline {
		// definition in an indented block
		tok, _ = p.skipBlank()
		if tok.Kind != TokenIndent {
			return nil, p.fail(tok, "indented tag definition")
		}
		value, _, err := p.parseTagValue()
		if err != nil {
			return nil, err
		}
		bind.Value = value
		tok, _ = p.skipBlank()
		if tok.Kind != TokenDedent {
			return nil, p.fail(tok, "end of tag definition")
		}
		return bind, nil
	}

	p.unread(tok)
	value, blockEnded, err := p.parseTagValue()
	if err != nil {
		return nil, err
	}
	bind.Value = value
	if blockEnded {
		return bind, nil
	}
	return bind, p.endLine()
}

// parseTagValue returns whether the value ended by closing an indented continuation
func (p *Parser) parseTagValue() (TagValue, bool, error) {
	tok := p.read()
	switch tok.Kind {

	case TokenParenOpen, TokenCurlyOpen:
		closer := TokenParenClose
		if tok.Kind == TokenCurlyOpen {
			closer = TokenCurlyClose
		}
		fields, err := p.parseParams(closer)
		if err != nil {
			return nil, false, err
		}
		return &RecordValue{
			Pos:    tok.Pos(),
			Fields: fields,
		}, false, nil

	case TokenRange:
		return &RangeValue{
			Pos:   tok.Pos(),
			Start: tok.Range.Start,
			End:   tok.Range.End,
		}, false, nil

	case TokenBar:
		// leading bar of a union
		return p.parseTag()

	case TokenTag:
		p.unread(tok)
		return p.parseTag()

	}
	return nil, false, p.fail(tok, "tag, record or range")
}

// parseTag parses a tag or a union of tags.
// Continuations may follow a trailing bar on the next lines, indented or not,
// or start a line with a leading bar.
func (p *Parser) parseTag() (Tag, bool, error) {
	var variants []Tag
	indents := 0
	for {
		tok, err := p.expect(TokenTag, "tag")
		if err != nil {
			return nil, false, err
		}
		variant, err := p.parseTagHead(tok)
		if err != nil {
			return nil, false, err
		}
		variants = append(variants, variant)

		tok = p.read()
		if tok.Kind == TokenNewline {
			next := p.read()
			if next.Kind == TokenIndent && p.peek().Kind == TokenBar {
				indents++
				next = p.read()
			}
			if next.Kind != TokenBar {
				p.unread(next)
				p.unread(tok)
				break
			}
			tok = next
		}
		if tok.Kind != TokenBar {
			p.unread(tok)
			break
		}

	continuation:
		for {
			tok = p.read()
			switch tok.Kind {
			case TokenNewline:
			case TokenIndent:
				indents++
			default:
				p.unread(tok)
				break continuation
			}
		}
	}

	blockEnded := false
	for ; indents > 0; indents-- {
		tok, _ := p.skipBlank()
		if tok.Kind != TokenDedent {
			return nil, false, p.fail(tok, "end of union")
		}
		blockEnded = true
	}

	return NewUnion(variants...), blockEnded, nil
}

func (p *Parser) parseTagHead(name Token) (Tag, error) {
	if p.peek().Kind != TokenParenOpen {
		return &NominalTag{
			Pos:  name.Pos(),
			Name: name.Text,
		}, nil
	}
	p.read()
	params, err := p.parseParams(TokenParenClose)
	if err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return &NominalTag{
			Pos:  name.Pos(),
			Name: name.Text,
		}, nil
	}
	return &GenericTag{
		Pos:    name.Pos(),
		Name:   name.Text,
		Params: params,
	}, nil
}
