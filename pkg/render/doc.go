// Package render groups the output backends for dependency-tree drawings.
//
// # Overview
//
// Three backends share the coordinates and tree models produced upstream:
//
//   - [svg]: inline arc drawings, the primary format
//   - [htmldoc]: HTML document assembly and snippet concatenation
//   - [dot]: Graphviz node-link diagrams, DOT source or rendered SVG
//
// # Inline Drawings
//
// The [svg] subpackage walks a computed layout and emits text, path, polygon
// and line primitives:
//
//	l := layout.Compute(sentence, model, fields)
//	out := svg.Render(l, svg.WithColor("black"))
//
// # Document Assembly
//
// The [htmldoc] subpackage wraps per-sentence fragments into one HTML
// document with metadata strips, or concatenates bare fragments for snippet
// consumers:
//
//	doc := htmldoc.Document(frags)
//	raw := htmldoc.Snippets(frags)
//
// # Node-Link Diagrams
//
// The [dot] subpackage renders the same trees as classic directed graphs
// using the in-process Graphviz engine:
//
//	src := dot.ToDOT(sentence, model)
//	out, err := dot.RenderSVG(ctx, src)
//
// [svg]: github.com/treebanktools/udview/pkg/render/svg
// [htmldoc]: github.com/treebanktools/udview/pkg/render/htmldoc
// [dot]: github.com/treebanktools/udview/pkg/render/dot
package render
