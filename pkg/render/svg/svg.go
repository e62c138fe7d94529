// Package svg renders a laid-out sentence to SVG markup.
//
// The renderer walks coordinates computed by pkg/layout and emits text,
// path, polygon and line primitives. It holds no state and performs no I/O:
// the result is a byte slice the caller embeds or writes out.
package svg

import (
	"bytes"
	"fmt"

	"github.com/treebanktools/udview/pkg/layout"
)

// DefaultColor is the stroke and fill color applied when none is configured.
// Light on purpose: the original audience previews on dark editor themes.
const DefaultColor = "white"

// Option configures the SVG renderer.
type Option func(*renderer)

type renderer struct {
	color string
}

// WithColor sets the uniform stroke/fill color (any SVG color specifier).
func WithColor(c string) Option {
	return func(r *renderer) {
		if c != "" {
			r.color = c
		}
	}
}

// Render emits the SVG drawing for one laid-out sentence.
func Render(l layout.Layout, opts ...Option) []byte {
	r := renderer{color: DefaultColor}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	for _, tok := range l.Tokens {
		for _, line := range tok.Lines {
			r.renderText(&buf, line)
		}
	}
	for _, arc := range l.Arcs {
		r.renderArc(&buf, arc)
	}
	for _, root := range l.Roots {
		r.renderRoot(&buf, root)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) renderText(buf *bytes.Buffer, line layout.Line) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.0f" fill="%s"`,
		line.X, line.Y, line.Size, EscapeXML(r.color))
	if line.Bold {
		buf.WriteString(` font-weight="bold"`)
	}
	if line.Italic {
		buf.WriteString(` font-style="italic"`)
	}
	fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(line.Text))
}

// renderArc draws the connector as a flat-topped curve: up from the left
// endpoint, across the peak, down to the right endpoint, with the arrowhead
// at the head end and the relation label above the peak.
func (r *renderer) renderArc(buf *bytes.Buffer, arc layout.ArcPath) {
	radius := (arc.X2 - arc.X1) / 2
	if h := arc.BaseY - arc.PeakY; h < radius {
		radius = h
	}
	if radius < 0 {
		radius = 0
	}

	fmt.Fprintf(buf,
		`  <path d="M %.1f %.1f Q %.1f %.1f %.1f %.1f L %.1f %.1f Q %.1f %.1f %.1f %.1f" stroke="%s" fill="none"/>`+"\n",
		arc.X1, arc.BaseY,
		arc.X1, arc.PeakY, arc.X1+radius, arc.PeakY,
		arc.X2-radius, arc.PeakY,
		arc.X2, arc.PeakY, arc.X2, arc.BaseY,
		EscapeXML(r.color))

	r.renderArrow(buf, arc.ArrowX, arc.ArrowY)

	if arc.HasLabel {
		r.renderText(buf, layout.Line{
			Text: arc.Label, Bold: arc.LabelBold,
			Size: layout.SizeTiny, X: arc.LabelX, Y: arc.LabelY,
		})
	}
}

func (r *renderer) renderRoot(buf *bytes.Buffer, root layout.RootPath) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		root.X, root.TopY, root.X, root.BaseY, EscapeXML(r.color))
	r.renderArrow(buf, root.X, root.BaseY)
	if root.HasLabel {
		r.renderText(buf, layout.Line{
			Text: "root", Size: layout.SizeTiny, X: root.LabelX, Y: root.LabelY,
		})
	}
}

// renderArrow draws a small downward-pointing triangle with its apex at
// (x, y), marking where a connector meets the token row.
func (r *renderer) renderArrow(buf *bytes.Buffer, x, y float64) {
	color := EscapeXML(r.color)
	fmt.Fprintf(buf, `  <polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" stroke="%s" fill="%s"/>`+"\n",
		x, y, x-3, y-6, x+3, y-6, color, color)
}
