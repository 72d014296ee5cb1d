package ginlang

import "encoding/gob"

func init() {
	gob.Register(new(Import))
	gob.Register(new(TagBind))
	gob.Register(new(DefBind))
	gob.Register(new(ExprValue))
	gob.Register(new(BodyValue))
	gob.Register(new(NominalTag))
	gob.Register(new(GenericTag))
	gob.Register(new(UnionTag))
	gob.Register(new(RecordValue))
	gob.Register(new(RangeValue))
	gob.Register(new(Ident))
	gob.Register(new(Call))
	gob.Register(new(Binary))
	gob.Register(new(TagExpr))
	gob.Register(new(If))
	gob.Register(new(ForIn))
	gob.Register(new(IntLit))
	gob.Register(new(FloatLit))
	gob.Register(new(StringLit))
	gob.Register(new(BoolLit))
	gob.Register(new(EllipsisLit))
	gob.Register(new(RangeLit))
	gob.Register(new(RecordLit))
	gob.Register(new(ListLit))
}
