package inspects

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/ginc/modes"
	"go.starlark.net/starlark"
)

const querySource = `use io

add(a, b): a + b

Color is Red | Green | Blue
`

func parse(t *testing.T) *ginlang.File {
	t.Helper()
	file, errs := ginlang.Parse(ginlang.NewSource("query.gin", querySource), ginlang.Options{})
	if len(errs) > 0 {
		t.Fatalf("got %v", errs)
	}
	return file
}

func TestQuery(t *testing.T) {
	file := parse(t)
	for _, c := range []struct {
		expr     string
		expected string
	}{
		{`len(items)`, `3`},
		{`[i["kind"] for i in items]`, `["import", "def_bind", "tag_bind"]`},
		{`[i["name"] for i in items if i["kind"] == "def_bind"]`, `["add"]`},
		{`[p["name"] for p in lookup("add")["params"]]`, `["a", "b"]`},
		{`lookup("add")["value"]["expr"]["op"]`, `"+"`},
		{`lookup("missing")`, `None`},
		{`sprint("Color")`, `"(tag Color (| Red Green Blue))"`},
		{`name`, `"query.gin"`},
		{`source.count("\n")`, `5`},
		{`items[0]["pos"]`, `"query.gin:1:1"`},
	} {
		got, err := Query(file, c.expr)
		if err != nil {
			t.Fatalf("%s: %v", c.expr, err)
		}
		if got.String() != c.expected {
			t.Fatalf("%s: got %s", c.expr, got)
		}
	}
}

func TestQueryErrors(t *testing.T) {
	file := parse(t)
	for _, expr := range []string{
		`items[`,
		`undefined_name`,
		`sprint("missing")`,
		`lookup()`,
	} {
		if _, err := Query(file, expr); err == nil {
			t.Fatalf("%s: should fail", expr)
		}
	}
}

func TestTap(t *testing.T) {
	file := parse(t)
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		tap Tap,
	) {
		// stdin is empty under go test
		tap(t.Context(), "test", Globals(file))
	})
}

func TestGlobals(t *testing.T) {
	globals := stringDict(Globals(parse(t)))
	for _, name := range []string{"name", "source", "items", "lookup", "sprint"} {
		if _, ok := globals[name]; !ok {
			t.Fatalf("missing %s", name)
		}
	}
	if _, ok := globals["lookup"].(*starlark.Builtin); !ok {
		t.Fatalf("got %T", globals["lookup"])
	}
}
