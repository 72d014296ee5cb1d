package ginlang

import "github.com/shopspring/decimal"

// Node is any syntax tree element
type Node interface {
	NodePos() Pos
}

// Item is a top-level construct: *Import, *TagBind or *DefBind
type Item interface {
	Node
	item()
}

// Expr is a value-position construct
type Expr interface {
	Node
	expr()
}

// Literal is the literal subset of Expr
type Literal interface {
	Expr
	literal()
}

type DocComment struct {
	Pos  Pos
	Text string
}

type Path struct {
	Pos      Pos
	Root     string
	Segments []string
}

func (p Path) String() string {
	ret := p.Root
	for _, seg := range p.Segments {
		ret += "." + seg
	}
	return ret
}

type ModuleImport struct {
	Path  Path
	Alias string
}

type Import struct {
	Pos     Pos
	Modules []ModuleImport
}

type DefBind struct {
	Pos  Pos
	Doc  *DocComment
	Name string
	// whether a parameter list was written, possibly empty
	Parens bool
	Params []*Parameter
	Value  DefValue
}

// DefValue is *ExprValue or *BodyValue
type DefValue interface {
	defValue()
}

type ExprValue struct {
	Expr Expr
}

type BodyValue struct {
	Exprs  []Expr
	Return *Return
}

type Return struct {
	Pos Pos
	// nil for a bare return
	Value Expr
}

type ParamKind uint8

const (
	ParamGeneric ParamKind = iota
	ParamTagged
	ParamDefault
)

func (k ParamKind) String() string {
	switch k {
	case ParamGeneric:
		return "generic"
	case ParamTagged:
		return "tagged"
	case ParamDefault:
		return "default"
	}
	return "unknown"
}

type Parameter struct {
	Pos     Pos
	Name    string
	Kind    ParamKind
	Tag     Tag
	Default Expr
}

type Ident struct {
	Path Path
}

type Call struct {
	Path Path
	Args []Expr
}

type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpAnd
	OpOr
)

var binaryOpTokens = map[TokenKind]BinaryOp{
	TokenPlus:         OpAdd,
	TokenMinus:        OpSubtract,
	TokenStar:         OpMultiply,
	TokenSlash:        OpDivide,
	TokenPercent:      OpModulo,
	TokenEqualEqual:   OpEqual,
	TokenNotEqual:     OpNotEqual,
	TokenLess:         OpLess,
	TokenLessEqual:    OpLessEqual,
	TokenGreater:      OpGreater,
	TokenGreaterEqual: OpGreaterEqual,
	TokenAnd:          OpAnd,
	TokenOr:           OpOr,
}

var binaryOpNames = [...]string{
	OpAdd:          "+",
	OpSubtract:     "-",
	OpMultiply:     "*",
	OpDivide:       "/",
	OpModulo:       "%",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpAnd:          "and",
	OpOr:           "or",
}

func (o BinaryOp) String() string {
	if int(o) < len(binaryOpNames) {
		return binaryOpNames[o]
	}
	return "?"
}

func (o BinaryOp) IsArithmetic() bool {
	return o <= OpModulo
}

type Binary struct {
	Pos   Pos
	Op    BinaryOp
	Left  Expr
	Right Expr
}

type TagExpr struct {
	Tag Tag
}

type If struct {
	Pos  Pos
	Cond Expr
	Then []Expr
	// nil without an else block
	Else []Expr
}

type Pattern struct {
	Pos   Pos
	Names []string
	Tuple bool
}

type ForIn struct {
	Pos     Pos
	Pattern Pattern
	Iter    Expr
	Body    []Expr
}

type IntLit struct {
	Pos   Pos
	Value int64
}

type FloatLit struct {
	Pos   Pos
	Value decimal.Decimal
}

type StringLit struct {
	Pos      Pos
	Value    string
	Template bool
}

type BoolLit struct {
	Pos   Pos
	Value bool
}

type EllipsisLit struct {
	Pos Pos
}

type RangeLit struct {
	Pos   Pos
	Start int64
	End   int64
}

type RecordField struct {
	Name  string
	Value Expr
}

type RecordLit struct {
	Pos Pos
	// nil for an anonymous record
	Tag    Tag
	Fields []RecordField
}

type ListLit struct {
	Pos   Pos
	Elems []Expr
}

func (i *Import) item()  {}
func (t *TagBind) item() {}
func (d *DefBind) item() {}

func (d *DefBind) expr()     {}
func (i *Ident) expr()       {}
func (c *Call) expr()        {}
func (b *Binary) expr()      {}
func (t *TagExpr) expr()     {}
func (i *If) expr()          {}
func (f *ForIn) expr()       {}
func (i *IntLit) expr()      {}
func (f *FloatLit) expr()    {}
func (s *StringLit) expr()   {}
func (b *BoolLit) expr()     {}
func (e *EllipsisLit) expr() {}
func (r *RangeLit) expr()    {}
func (r *RecordLit) expr()   {}
func (l *ListLit) expr()     {}

func (i *IntLit) literal()      {}
func (f *FloatLit) literal()    {}
func (s *StringLit) literal()   {}
func (b *BoolLit) literal()     {}
func (e *EllipsisLit) literal() {}
func (r *RangeLit) literal()    {}
func (r *RecordLit) literal()   {}
func (l *ListLit) literal()     {}

func (e *ExprValue) defValue() {}
func (b *BodyValue) defValue() {}

func (i *Import) NodePos() Pos      { return i.Pos }
func (t *TagBind) NodePos() Pos     { return t.Pos }
func (d *DefBind) NodePos() Pos     { return d.Pos }
func (i *Ident) NodePos() Pos       { return i.Path.Pos }
func (c *Call) NodePos() Pos        { return c.Path.Pos }
func (b *Binary) NodePos() Pos      { return b.Pos }
func (t *TagExpr) NodePos() Pos     { return t.Tag.NodePos() }
func (i *If) NodePos() Pos          { return i.Pos }
func (f *ForIn) NodePos() Pos       { return f.Pos }
func (i *IntLit) NodePos() Pos      { return i.Pos }
func (f *FloatLit) NodePos() Pos    { return f.Pos }
func (s *StringLit) NodePos() Pos   { return s.Pos }
func (b *BoolLit) NodePos() Pos     { return b.Pos }
func (e *EllipsisLit) NodePos() Pos { return e.Pos }
func (r *RangeLit) NodePos() Pos    { return r.Pos }
func (r *RecordLit) NodePos() Pos   { return r.Pos }
func (l *ListLit) NodePos() Pos     { return l.Pos }
func (p *Parameter) NodePos() Pos   { return p.Pos }
func (r *Return) NodePos() Pos      { return r.Pos }
