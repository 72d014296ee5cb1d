package docs

import (
	"fmt"
	"strings"

	"github.com/reusee/ginc/ginlang"
	"github.com/samber/lo"
)

// Signature renders the head of a binding the way it is written in source
func Signature(item ginlang.Item) string {
	switch item := item.(type) {

	case *ginlang.DefBind:
		sig := item.Name
		if item.Parens {
			sig += "(" + params(item.Params) + ")"
		}
		if t := ginlang.TypeOf(item); t.Kind != ginlang.TypeUnknown {
			sig += " " + t.String()
		}
		return sig

	case *ginlang.TagBind:
		return tagString(item.Tag) + " is " + tagValueString(item.Value)

	case *ginlang.Import:
		return "use " + strings.Join(lo.Map(item.Modules, func(m ginlang.ModuleImport, _ int) string {
			if m.Alias != "" {
				return m.Path.String() + " as " + m.Alias
			}
			return m.Path.String()
		}), ", ")

	}
	panic(fmt.Errorf("unexpected item %T", item))
}

func params(ps []*ginlang.Parameter) string {
	return strings.Join(lo.Map(ps, func(p *ginlang.Parameter, _ int) string {
		switch p.Kind {
		case ginlang.ParamTagged:
			if p.Name == "" {
				return tagString(p.Tag)
			}
			return p.Name + " " + tagString(p.Tag)
		case ginlang.ParamDefault:
			return p.Name + ": " + ginlang.Sprint(p.Default)
		}
		return p.Name
	}), ", ")
}

func tagString(tag ginlang.Tag) string {
	switch tag := tag.(type) {
	case *ginlang.NominalTag:
		return tag.Name
	case *ginlang.GenericTag:
		return tag.Name + "(" + params(tag.Params) + ")"
	case *ginlang.UnionTag:
		return strings.Join(lo.Map(tag.Variants, func(v ginlang.Tag, _ int) string {
			return tagString(v)
		}), " | ")
	}
	panic(fmt.Errorf("unexpected tag %T", tag))
}

func tagValueString(value ginlang.TagValue) string {
	switch value := value.(type) {
	case *ginlang.RecordValue:
		return "{" + params(value.Fields) + "}"
	case *ginlang.RangeValue:
		return fmt.Sprintf("%d..%d", value.Start, value.End)
	case ginlang.Tag:
		return tagString(value)
	}
	panic(fmt.Errorf("unexpected tag value %T", value))
}
