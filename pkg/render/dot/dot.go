// Package dot renders dependency trees as Graphviz node-link diagrams, an
// alternative backend to the inline arc drawings for consumers that prefer
// classic tree graphs.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/treebanktools/udview/pkg/conllu"
	"github.com/treebanktools/udview/pkg/tree"
)

// ToDOT converts one sentence's dependency tree to Graphviz DOT. Tokens
// become boxes labeled with form and POS; arcs become head→dependent edges
// labeled with the relation. Roots get a double border.
func ToDOT(s *conllu.Sentence, m tree.Model) string {
	roots := make(map[int]bool, len(m.Roots))
	for _, idx := range m.Roots {
		roots[idx] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph sentence {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded\", fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, w := range s.Words() {
		attrs := fmt.Sprintf("label=%q", nodeLabel(w))
		if roots[w.Index] {
			attrs += `, peripheries=2`
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", w.Index, attrs)
	}

	buf.WriteString("\n")
	for _, a := range m.Arcs {
		fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", a.Head, a.Dep, a.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(w conllu.Token) string {
	if w.Upos.Value == "" {
		return w.Form.Value
	}
	return w.Form.Value + "\n" + w.Upos.Value
}

// RenderSVG renders a DOT graph to SVG using the in-process Graphviz engine.
func RenderSVG(ctx context.Context, dotSrc string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz <svg> tag so the fragment embeds
// cleanly next to the inline drawings (origin at 0 0, explicit size).
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
