package ginlang

// Tag is a type-level reference: *NominalTag, *GenericTag or *UnionTag
type Tag interface {
	Node
	TagValue
	tag()
}

// TagValue is the right-hand side of a tag binding.
// Aliases and unions reuse the Tag variants.
type TagValue interface {
	Node
	tagValue()
}

type NominalTag struct {
	Pos  Pos
	Name string
}

type GenericTag struct {
	Pos    Pos
	Name   string
	Params []*Parameter
}

type UnionTag struct {
	Variants []Tag
}

type RecordValue struct {
	Pos    Pos
	Fields []*Parameter
}

type RangeValue struct {
	Pos   Pos
	Start int64
	End   int64
}

type TagBind struct {
	Pos Pos
	Doc *DocComment
	// *NominalTag or *GenericTag
	Tag   Tag
	Value TagValue
}

// Name returns the bound tag name
func (t *TagBind) Name() string {
	return TagName(t.Tag)
}

func TagName(tag Tag) string {
	switch tag := tag.(type) {
	case *NominalTag:
		return tag.Name
	case *GenericTag:
		return tag.Name
	case *UnionTag:
		return ""
	}
	panic("unreachable")
}

// NewUnion flattens nested unions. A single variant is returned as is.
func NewUnion(variants ...Tag) Tag {
	var flat []Tag
	for _, variant := range variants {
		if union, ok := variant.(*UnionTag); ok {
			flat = append(flat, union.Variants...)
			continue
		}
		flat = append(flat, variant)
	}
	switch len(flat) {
	case 0:
		panic("union without variants")
	case 1:
		return flat[0]
	}
	return &UnionTag{
		Variants: flat,
	}
}

func (n *NominalTag) tag() {}
func (g *GenericTag) tag() {}
func (u *UnionTag) tag()   {}

func (n *NominalTag) tagValue()  {}
func (g *GenericTag) tagValue()  {}
func (u *UnionTag) tagValue()    {}
func (r *RecordValue) tagValue() {}
func (r *RangeValue) tagValue()  {}

func (n *NominalTag) NodePos() Pos  { return n.Pos }
func (g *GenericTag) NodePos() Pos  { return g.Pos }
func (r *RecordValue) NodePos() Pos { return r.Pos }
func (r *RangeValue) NodePos() Pos  { return r.Pos }

func (u *UnionTag) NodePos() Pos {
	return u.Variants[0].NodePos()
}
