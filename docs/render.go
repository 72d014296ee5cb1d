package docs

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/reusee/ginc/ginlang"
)

const indent = "    "

// Render writes one section per item: the signature, then the doc comment wrapped at width
func Render(w io.Writer, file *ginlang.File, width int) error {
	if _, err := fmt.Fprintf(w, "unit %s\n", file.Source.Name); err != nil {
		return err
	}
	for _, item := range file.Items {
		if _, err := fmt.Fprintf(w, "\n%s\n", Signature(item)); err != nil {
			return err
		}
		doc := docOf(item)
		if doc == "" {
			continue
		}
		if _, err := io.WriteString(w, Wrap(doc, width)); err != nil {
			return err
		}
	}
	return nil
}

// Wrap reflows paragraphs of text to fit in width with the indent included
func Wrap(text string, width int) string {
	limit := uint(max(width-len(indent), 1))
	var b strings.Builder
	for i, para := range strings.Split(text, "\n\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		para = strings.Join(strings.Fields(para), " ")
		for _, line := range strings.Split(wordwrap.WrapString(para, limit), "\n") {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func docOf(item ginlang.Item) string {
	var doc *ginlang.DocComment
	switch item := item.(type) {
	case *ginlang.DefBind:
		doc = item.Doc
	case *ginlang.TagBind:
		doc = item.Doc
	}
	if doc == nil {
		return ""
	}
	return strings.TrimSpace(doc.Text)
}
