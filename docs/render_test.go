package docs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/ginc/ginlang"
)

func parse(t *testing.T, content string) *ginlang.File {
	t.Helper()
	file, errs := ginlang.Parse(ginlang.NewSource("demo.gin", content), ginlang.Options{})
	if len(errs) > 0 {
		t.Fatalf("got %v", errs)
	}
	return file
}

func TestSignature(t *testing.T) {
	for _, c := range []struct {
		src      string
		expected string
	}{
		{"x: 1\n", "x Number"},
		{"name: \"gin\"\n", "name String"},
		{"f(a, b): a\n", "f(a, b)"},
		{"add(a, b): 1 + 2\n", "add(a, b) Number"},
		{"g(): true\n", "g() Bool"},
		{"h(n Int, m: 3): n\n", "h(n Int, m: 3)"},
		{"use http.web, io as i\n", "use http.web, io as i"},
		{"Color is Red | Green | Blue\n", "Color is Red | Green | Blue"},
		{"Point is {x Int, y Int}\n", "Point is {x Int, y Int}"},
		{"Digit is 0..9\n", "Digit is 0..9"},
	} {
		file := parse(t, c.src)
		if got := Signature(file.Items[0]); got != c.expected {
			t.Fatalf("%q: got %q", c.src, got)
		}
	}
}

func TestRender(t *testing.T) {
	file := parse(t, `## Adds two numbers together and returns the sum of them
add(a, b): a + b

## The primary colors.
##
## Used by painters.
Color is Red | Green | Blue

x: 1
`)
	buf := new(bytes.Buffer)
	if err := Render(buf, file, 30); err != nil {
		t.Fatal(err)
	}
	expected := `unit demo.gin

add(a, b)
    Adds two numbers together
    and returns the sum of
    them

Color is Red | Green | Blue
    The primary colors.

    Used by painters.

x Number
`
	if got := buf.String(); got != expected {
		t.Fatalf("got\n%s", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("a  b\nc", 80)
	if got != "    a b c\n" {
		t.Fatalf("got %q", got)
	}
	// words longer than the width are kept whole
	got = Wrap("abcdefgh", 6)
	if strings.TrimSpace(got) != "abcdefgh" {
		t.Fatalf("got %q", got)
	}
}
