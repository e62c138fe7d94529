package svg

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes s for embedding in SVG attribute or text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
