// Package pipeline runs the parse → tree → layout → render chain shared by
// the render, serve and browse commands.
//
// The pipeline consists of three stages:
//
//  1. Parse: read CoNLL-U text into sentences (pkg/conllu)
//  2. Model & layout: derive arcs/depths and coordinates (pkg/tree, pkg/layout)
//  3. Render: emit SVG, HTML or DOT markup (pkg/render)
//
// Sentences are independent pure-function units, so stage 2+3 run as a
// bounded parallel map; output is concatenated in input order.
package pipeline

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/treebanktools/udview/pkg/conllu"
	"github.com/treebanktools/udview/pkg/render/svg"
)

// Output formats.
const (
	// FormatSVG draws inline dependency arcs above the token row.
	FormatSVG = "svg"
	// FormatNodelink draws classic node-link trees via Graphviz.
	FormatNodelink = "nodelink"
	// FormatDOT emits Graphviz DOT source without rendering it.
	FormatDOT = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatNodelink: true,
	FormatDOT:      true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, nodelink, dot)", format)
	}
	return nil
}

// Options configures a conversion run.
type Options struct {
	// Fields are the requested display columns, in display order.
	// Unsupported names are ignored with a warning, never an error.
	Fields []string

	// Meta lists metadata keys surfaced above each sentence, in order.
	Meta []string

	// Color is the uniform stroke/fill color specifier.
	Color string

	// Snippets suppresses the HTML document wrapper and the metadata strip.
	Snippets bool

	// Format selects the drawing backend (svg, nodelink, dot).
	Format string

	// Workers bounds the per-sentence render parallelism.
	Workers int

	// Logger receives parse/render diagnostics. Never nil after validation.
	Logger *log.Logger

	fields    []conllu.Field
	validated bool
}

// ValidateAndSetDefaults normalizes field names, applies defaults and checks
// the format. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Color == "" {
		o.Color = svg.DefaultColor
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	o.fields = o.fields[:0]
	for _, name := range o.Fields {
		f, standard := conllu.ParseField(name)
		switch {
		case !standard:
			o.Logger.Warnf("ignoring %s (not a standard CoNLL-U field)", name)
		case !conllu.SupportedFields[f]:
			o.Logger.Warnf("ignoring %s (field not supported)", name)
		default:
			o.fields = append(o.fields, f)
		}
	}
	if len(o.fields) == 0 {
		o.fields = append(o.fields, conllu.DefaultFields...)
	}

	o.validated = true
	return nil
}

// DisplayFields returns the validated field selection.
// ValidateAndSetDefaults must have been called.
func (o *Options) DisplayFields() []conllu.Field {
	return o.fields
}
