package ginlang

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

var (
	ErrUnknownCharacter    = errors.New("unknown character")
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrInvalidRange        = errors.New("invalid range")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrMisalignedDedent    = errors.New("misaligned dedent")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrDuplicateBinding    = errors.New("duplicate binding")
)

type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s: %s", p.Pos, p.Err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d: %s\n", p.Source.Name, p.Pos.Line, p.Pos.Column, p.Err)

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Source.Lines) {
		line := strings.TrimSuffix(p.Source.Lines[idx], "\r")
		sb.WriteString(line)
		sb.WriteString("\n")
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
				continue
			}
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos, source *Source) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// UnexpectedTokenError reports a token that fits no rule at its position
type UnexpectedTokenError struct {
	Token    Token
	Expected string
}

func (u *UnexpectedTokenError) Error() string {
	if u.Expected == "" {
		return fmt.Sprintf("%s, got %v", ErrUnexpectedToken, u.Token)
	}
	return fmt.Sprintf("%s, expecting %s, got %v", ErrUnexpectedToken, u.Expected, u.Token)
}

func (u *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}
