// Package htmldoc assembles per-sentence drawings into the final output
// stream: one HTML document embedding every drawing, or bare fragments for
// snippet consumers. Coordinate math never happens here.
package htmldoc

import (
	"bytes"
	"html"
)

// MetaItem is one requested-and-present metadata entry of a sentence.
type MetaItem struct {
	Key, Value string
}

// Fragment is a rendered sentence plus the metadata to display above it.
type Fragment struct {
	Meta []MetaItem
	Body []byte
}

// Document wraps fragments into a single HTML document, each sentence as its
// own figure preceded by its metadata strip.
func Document(frags []Fragment) []byte {
	var buf bytes.Buffer
	buf.WriteString("<html>\n<body>\n")
	for _, f := range frags {
		for _, m := range f.Meta {
			buf.WriteString("<h4><b>")
			buf.WriteString(html.EscapeString(m.Key))
			buf.WriteString("</b>: ")
			buf.WriteString(html.EscapeString(m.Value))
			buf.WriteString("</h4>\n")
		}
		buf.WriteString("<div>\n")
		buf.Write(f.Body)
		buf.WriteString("</div>\n")
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

// Snippets concatenates bare drawings with no document wrapper and no
// metadata strip. Callers decide whether to split the result per sentence.
func Snippets(frags []Fragment) []byte {
	var buf bytes.Buffer
	for _, f := range frags {
		buf.Write(f.Body)
	}
	return buf.Bytes()
}
