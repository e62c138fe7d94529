// Package pkg provides the core libraries for udview treebank visualization.
//
// # Overview
//
// udview turns CoNLL-U treebank text into dependency-tree drawings for live
// preview while annotating or correcting a treebank. The pkg directory is
// organized along the conversion pipeline:
//
//  1. [conllu] - CoNLL-U parsing (sentences, tokens, metadata)
//  2. [tree] - Tree model (arcs, roots, arc stacking depths)
//  3. [layout] - Coordinate assignment (token columns, arc geometry)
//  4. [render] - Output backends (inline SVG, HTML documents, Graphviz)
//  5. [pipeline] - Orchestration (parse → tree → layout → render)
//
// # Architecture
//
// The typical data flow through udview:
//
//	CoNLL-U text
//	     ↓
//	[conllu] package (tokenize, collect metadata)
//	     ↓
//	[tree] package (arcs + greedy depth stacking)
//	     ↓
//	[layout] package (columns, arc peaks, root markers)
//	     ↓
//	[render/svg] / [render/htmldoc] / [render/dot]
//	     ↓
//	HTML document or SVG snippets
//
// # Quick Start
//
// Convert a treebank to an HTML preview document:
//
//	import (
//	    "context"
//	    "os"
//	    "github.com/treebanktools/udview/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	stats, err := runner.Convert(context.Background(), os.Stdin, os.Stdout, pipeline.Options{
//	    Fields: []string{"form", "upos", "head", "deprel"},
//	    Meta:   []string{"sent_id", "text"},
//	})
//
// Or drive the stages directly:
//
//	sentences, _ := conllu.ParseAll(r)
//	for i := range sentences {
//	    m := tree.Build(&sentences[i])
//	    l := layout.Compute(&sentences[i], m, conllu.DefaultFields)
//	    out := svg.Render(l, svg.WithColor("black"))
//	}
//
// # Main Packages
//
// [conllu] - Forgiving CoNLL-U reader. Malformed lines are skipped, comment
// metadata is collected in order, multiword ranges and empty nodes are parsed
// but never treated as head-bearing tokens.
//
// [tree] - Derives dependent→head arcs and root positions from a sentence and
// stacks arcs so partially overlapping spans never share a vertical level.
//
// [layout] - Pure coordinate assignment: token columns sized by their widest
// label, arc peaks rising with stacking depth and span width, text rows
// anchored to the canvas bottom.
//
// [render/svg] - Inline arc drawings as standalone SVG fragments.
//
// [render/htmldoc] - Document assembly: metadata strips plus one figure per
// sentence, or bare snippet concatenation.
//
// [render/dot] - Graphviz node-link backend, for consumers that prefer
// classic tree graphs over inline arcs.
//
// [pipeline] - The conversion used by the render, serve and browse commands.
// Sentences render in parallel with output in input order; data anomalies
// never abort a batch.
//
// [cache] - Content-hash render cache backing the preview server.
//
// [errors] - Structured error codes for configuration and I/O failures.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/tree/...     # Specific package
//
// [conllu]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/conllu
// [tree]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/tree
// [layout]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/layout
// [render]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/render/svg
// [render/htmldoc]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/render/htmldoc
// [render/dot]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/cache
// [errors]: https://pkg.go.dev/github.com/treebanktools/udview/pkg/errors
package pkg
