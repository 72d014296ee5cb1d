package ginlang

import (
	"slices"
	"strings"
)

type TypeKind uint8

const (
	TypeUnknown TypeKind = iota
	TypeNothing
	TypeBool
	TypeNumber
	TypeString
	TypeList
	TypeRecord
	TypeCustom
	TypeUnion
)

// GinType is the static shape of a value as far as it can be seen syntactically
type GinType struct {
	Kind TypeKind
	// TypeCustom
	Name string
	// TypeList element, TypeUnion members
	Elems []GinType
	// TypeRecord
	Fields []TypeField
}

type TypeField struct {
	Name string
	Type GinType
}

var (
	UnknownType = GinType{Kind: TypeUnknown}
	NothingType = GinType{Kind: TypeNothing}
	BoolType    = GinType{Kind: TypeBool}
	NumberType  = GinType{Kind: TypeNumber}
	StringType  = GinType{Kind: TypeString}
)

func ListType(elem GinType) GinType {
	return GinType{
		Kind:  TypeList,
		Elems: []GinType{elem},
	}
}

func (g GinType) Equal(other GinType) bool {
	return g.String() == other.String()
}

func (g GinType) String() string {
	switch g.Kind {
	case TypeNothing:
		return "Nothing"
	case TypeBool:
		return "Bool"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeList:
		return "List(" + g.Elems[0].String() + ")"
	case TypeRecord:
		parts := make([]string, 0, len(g.Fields))
		for _, field := range g.Fields {
			parts = append(parts, field.Name+" "+field.Type.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case TypeCustom:
		return g.Name
	case TypeUnion:
		parts := make([]string, 0, len(g.Elems))
		for _, elem := range g.Elems {
			parts = append(parts, elem.String())
		}
		return strings.Join(parts, " | ")
	}
	return "Unknown"
}

// NewUnionType flattens and dedupes members. Zero members is Nothing, one member is itself.
func NewUnionType(types ...GinType) GinType {
	var members []GinType
	var add func(GinType)
	add = func(t GinType) {
		if t.Kind == TypeUnion {
			for _, elem := range t.Elems {
				add(elem)
			}
			return
		}
		if slices.ContainsFunc(members, t.Equal) {
			return
		}
		members = append(members, t)
	}
	for _, t := range types {
		add(t)
	}
	switch len(members) {
	case 0:
		return NothingType
	case 1:
		return members[0]
	}
	return GinType{
		Kind:  TypeUnion,
		Elems: members,
	}
}

// TypeOf projects an expression onto its syntactic type.
// References and calls need name resolution and are Unknown.
func TypeOf(expr Expr) GinType {
	switch expr := expr.(type) {

	case *IntLit, *FloatLit:
		return NumberType
	case *StringLit:
		return StringType
	case *BoolLit:
		return BoolType
	case *EllipsisLit:
		return NothingType
	case *RangeLit:
		return ListType(NumberType)

	case *ListLit:
		elems := make([]GinType, 0, len(expr.Elems))
		for _, elem := range expr.Elems {
			elems = append(elems, TypeOf(elem))
		}
		return ListType(NewUnionType(elems...))

	case *RecordLit:
		if expr.Tag != nil {
			return GinType{
				Kind: TypeCustom,
				Name: TagName(expr.Tag),
			}
		}
		ret := GinType{
			Kind: TypeRecord,
		}
		for _, field := range expr.Fields {
			ret.Fields = append(ret.Fields, TypeField{
				Name: field.Name,
				Type: TypeOf(field.Value),
			})
		}
		return ret

	case *TagExpr:
		return GinType{
			Kind: TypeCustom,
			Name: TagName(expr.Tag),
		}

	case *Binary:
		if !expr.Op.IsArithmetic() {
			return BoolType
		}
		left, right := TypeOf(expr.Left), TypeOf(expr.Right)
		switch {
		case left.Kind == TypeString && right.Kind == TypeString && expr.Op == OpAdd:
			return StringType
		case left.Kind == TypeNumber && right.Kind == TypeNumber:
			return NumberType
		}
		return UnknownType

	case *DefBind:
		switch value := expr.Value.(type) {
		case *ExprValue:
			return TypeOf(value.Expr)
		case *BodyValue:
			if value.Return.Value == nil {
				return NothingType
			}
			return TypeOf(value.Return.Value)
		}

	case *If:
		if expr.Else == nil {
			return UnknownType
		}
		return NewUnionType(blockType(expr.Then), blockType(expr.Else))

	case *ForIn:
		return NothingType

	case *Ident, *Call:
		return UnknownType

	}
	return UnknownType
}

func blockType(exprs []Expr) GinType {
	if len(exprs) == 0 {
		return NothingType
	}
	return TypeOf(exprs[len(exprs)-1])
}
