package ginlang

import "testing"

func TestTypeOf(t *testing.T) {
	cases := []struct {
		content  string
		expected string
	}{
		{"x: 1", "Number"},
		{"x: 1.5", "Number"},
		{`x: "s"`, "String"},
		{"x: true", "Bool"},
		{"x: ...", "Nothing"},
		{"x: 1..3", "List(Number)"},
		{"x: [1, 2.5]", "List(Number)"},
		{`x: [1, "a"]`, "List(Number | String)"},
		{"x: []", "List(Nothing)"},
		{`x: { name: "a", age: 1 }`, "{name String, age Number}"},
		{`x: Person { name: "a" }`, "Person"},
		{"x: Red", "Red"},
		{"x: 1 + 2", "Number"},
		{`x: "a" + "b"`, "String"},
		{"x: 1 < 2", "Bool"},
		{"x: a + 1", "Unknown"},
		{"x: f 1", "Unknown"},
		{"f:\nreturn 1", "Number"},
		{"f:\nreturn", "Nothing"},
		{"f:\n    if c\n        1\n    else\n        \"s\"\nreturn", "Nothing"},
	}
	for _, c := range cases {
		t.Run(c.content, func(t *testing.T) {
			file := mustParse(t, c.content)
			bind := file.Items[0].(*DefBind)
			if str := TypeOf(bind).String(); str != c.expected {
				t.Fatalf("got %s", str)
			}
		})
	}
}

func TestTypeOfIf(t *testing.T) {
	file := mustParse(t, "f:\n    if c\n        1\n    else\n        \"s\"\nreturn\n")
	cond := file.Items[0].(*DefBind).Value.(*BodyValue).Exprs[0]
	if str := TypeOf(cond).String(); str != "Number | String" {
		t.Fatalf("got %s", str)
	}
}

func TestNewUnionType(t *testing.T) {
	if u := NewUnionType(); u.Kind != TypeNothing {
		t.Fatalf("got %v", u)
	}
	if u := NewUnionType(NumberType, NumberType); u.Kind != TypeNumber {
		t.Fatalf("got %v", u)
	}
	nested := NewUnionType(StringType, NewUnionType(NumberType, BoolType))
	if str := nested.String(); str != "String | Number | Bool" {
		t.Fatalf("got %s", str)
	}
}
