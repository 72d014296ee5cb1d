package ginlang

import (
	"fmt"
	"strings"
)

// Sprint renders a node as a compact s-expression
func Sprint(node any) string {
	var b strings.Builder
	printNode(&b, node)
	return b.String()
}

func printNode(b *strings.Builder, node any) {
	switch node := node.(type) {

	case *File:
		for i, item := range node.Items {
			if i > 0 {
				b.WriteString("\n")
			}
			printNode(b, item)
		}

	case *Import:
		b.WriteString("(use")
		for _, module := range node.Modules {
			b.WriteString(" ")
			b.WriteString(module.Path.String())
			if module.Alias != "" {
				b.WriteString(" as ")
				b.WriteString(module.Alias)
			}
		}
		b.WriteString(")")

	case *TagBind:
		b.WriteString("(tag ")
		printNode(b, node.Tag)
		b.WriteString(" ")
		printNode(b, node.Value)
		b.WriteString(")")

	case *DefBind:
		b.WriteString("(def ")
		b.WriteString(node.Name)
		if node.Parens {
			b.WriteString(" (")
			printList(b, node.Params)
			b.WriteString(")")
		}
		switch value := node.Value.(type) {
		case *ExprValue:
			b.WriteString(" ")
			printNode(b, value.Expr)
		case *BodyValue:
			for _, expr := range value.Exprs {
				b.WriteString(" ")
				printNode(b, expr)
			}
			b.WriteString(" ")
			printNode(b, value.Return)
		}
		b.WriteString(")")

	case *Return:
		if node.Value == nil {
			b.WriteString("(return)")
			return
		}
		b.WriteString("(return ")
		printNode(b, node.Value)
		b.WriteString(")")

	case *Parameter:
		switch node.Kind {
		case ParamGeneric:
			b.WriteString(node.Name)
		case ParamTagged:
			if node.Name == "" {
				printNode(b, node.Tag)
				return
			}
			b.WriteString("(" + node.Name + " ")
			printNode(b, node.Tag)
			b.WriteString(")")
		case ParamDefault:
			b.WriteString("(" + node.Name + " = ")
			printNode(b, node.Default)
			b.WriteString(")")
		}

	case *NominalTag:
		b.WriteString(node.Name)

	case *GenericTag:
		b.WriteString(node.Name + "(")
		printList(b, node.Params)
		b.WriteString(")")

	case *UnionTag:
		b.WriteString("(|")
		for _, variant := range node.Variants {
			b.WriteString(" ")
			printNode(b, variant)
		}
		b.WriteString(")")

	case *RecordValue:
		b.WriteString("(record")
		for _, field := range node.Fields {
			b.WriteString(" ")
			printNode(b, field)
		}
		b.WriteString(")")

	case *RangeValue:
		fmt.Fprintf(b, "%d..%d", node.Start, node.End)

	case *IntLit:
		fmt.Fprintf(b, "%d", node.Value)
	case *FloatLit:
		b.WriteString(node.Value.String())
	case *StringLit:
		if node.Template {
			b.WriteString("`" + node.Value + "`")
		} else {
			fmt.Fprintf(b, "%q", node.Value)
		}
	case *BoolLit:
		fmt.Fprintf(b, "%v", node.Value)
	case *EllipsisLit:
		b.WriteString("...")
	case *RangeLit:
		fmt.Fprintf(b, "%d..%d", node.Start, node.End)

	case *RecordLit:
		if node.Tag != nil {
			printNode(b, node.Tag)
		}
		b.WriteString("{")
		for i, field := range node.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(field.Name + ": ")
			printNode(b, field.Value)
		}
		b.WriteString("}")

	case *ListLit:
		b.WriteString("[")
		printList(b, node.Elems)
		b.WriteString("]")

	case *Ident:
		b.WriteString(node.Path.String())

	case *Call:
		b.WriteString("(" + node.Path.String())
		for _, arg := range node.Args {
			b.WriteString(" ")
			printNode(b, arg)
		}
		b.WriteString(")")

	case *Binary:
		b.WriteString("(" + node.Op.String() + " ")
		printNode(b, node.Left)
		b.WriteString(" ")
		printNode(b, node.Right)
		b.WriteString(")")

	case *TagExpr:
		printNode(b, node.Tag)

	case *If:
		b.WriteString("(if ")
		printNode(b, node.Cond)
		b.WriteString(" (then")
		for _, expr := range node.Then {
			b.WriteString(" ")
			printNode(b, expr)
		}
		b.WriteString(")")
		if node.Else != nil {
			b.WriteString(" (else")
			for _, expr := range node.Else {
				b.WriteString(" ")
				printNode(b, expr)
			}
			b.WriteString(")")
		}
		b.WriteString(")")

	case *ForIn:
		b.WriteString("(for ")
		if node.Pattern.Tuple {
			b.WriteString("(" + strings.Join(node.Pattern.Names, " ") + ")")
		} else {
			b.WriteString(strings.Join(node.Pattern.Names, " "))
		}
		b.WriteString(" in ")
		printNode(b, node.Iter)
		for _, expr := range node.Body {
			b.WriteString(" ")
			printNode(b, expr)
		}
		b.WriteString(")")

	default:
		panic(fmt.Errorf("unknown node type %T", node))
	}
}

func printList[T any](b *strings.Builder, nodes []T) {
	for i, node := range nodes {
		if i > 0 {
			b.WriteString(" ")
		}
		printNode(b, node)
	}
}
