package htmldoc

import (
	"strings"
	"testing"
)

func TestDocument(t *testing.T) {
	frags := []Fragment{
		{
			Meta: []MetaItem{{Key: "sent_id", Value: "a-1"}, {Key: "text", Value: "hi"}},
			Body: []byte("<svg>one</svg>\n"),
		},
		{
			Body: []byte("<svg>two</svg>\n"),
		},
	}

	out := string(Document(frags))

	if !strings.HasPrefix(out, "<html>\n<body>\n") || !strings.HasSuffix(out, "</body>\n</html>\n") {
		t.Errorf("document wrapper missing: %q", out)
	}
	wants := []string{
		"<h4><b>sent_id</b>: a-1</h4>\n",
		"<h4><b>text</b>: hi</h4>\n",
		"<div>\n<svg>one</svg>\n</div>\n",
		"<div>\n<svg>two</svg>\n</div>\n",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}

	// Metadata strips precede their own sentence only.
	if strings.Index(out, "sent_id") > strings.Index(out, "one") {
		t.Error("metadata rendered after its sentence")
	}
}

func TestDocumentEscapesMetadata(t *testing.T) {
	out := string(Document([]Fragment{{
		Meta: []MetaItem{{Key: "note", Value: "<script>x</script>"}},
		Body: []byte("<svg/>"),
	}}))

	if strings.Contains(out, "<script>") {
		t.Errorf("metadata not escaped: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped value, got %q", out)
	}
}

func TestDocumentEmpty(t *testing.T) {
	out := string(Document(nil))
	if out != "<html>\n<body>\n</body>\n</html>\n" {
		t.Errorf("empty document = %q", out)
	}
}

func TestSnippets(t *testing.T) {
	frags := []Fragment{
		{Meta: []MetaItem{{Key: "sent_id", Value: "a-1"}}, Body: []byte("<svg>one</svg>\n")},
		{Body: []byte("<svg>two</svg>\n")},
	}

	out := string(Snippets(frags))

	if out != "<svg>one</svg>\n<svg>two</svg>\n" {
		t.Errorf("Snippets = %q", out)
	}
	if strings.Contains(out, "html") || strings.Contains(out, "h4") {
		t.Error("snippet output carries document markup")
	}
}
