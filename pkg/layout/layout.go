// Package layout assigns coordinates to a sentence's tokens and arcs.
//
// The layout is a pure function of the sentence, its tree model and the
// requested display fields: the same inputs always produce the same
// coordinates. Document wrapping, colors and snippet mode are renderer
// concerns and never reach this package.
package layout

import (
	"github.com/treebanktools/udview/pkg/conllu"
	"github.com/treebanktools/udview/pkg/tree"
)

// Canvas geometry in user units (SVG pixels).
const (
	// TextBlockHeight is the fixed height of the token label rows at the
	// bottom of the canvas.
	TextBlockHeight = 55.0

	// arcBaselineOffset is where arc endpoints sit, above the canvas bottom.
	arcBaselineOffset = 50.0

	// arcBaseRise is the minimum rise of an arc peak above the arc baseline.
	arcBaseRise = 20.0

	// levelHeight is the extra rise added per stacking depth.
	levelHeight = 30.0

	// spanRise is the extra rise per token of span width, so wider arcs
	// peak higher than narrower ones sharing a depth.
	spanRise = 2.0

	// topMargin separates the tallest peak from the canvas top.
	topMargin = 10.0
)

// Text rows, measured up from the canvas bottom, and their font sizes.
const (
	posRowOffset   = 40.0
	formRowOffset  = 25.0
	lemmaRowOffset = 13.0
	idRowOffset    = 2.0

	SizeNormal = 16.0
	SizeSmall  = 12.0
	SizeTiny   = 10.0
)

// arcAnchorLeft/Right inset arc endpoints from the token's left edge;
// depthInset spreads stacked endpoints so they do not coincide.
const (
	arcAnchorLeft  = 12.0
	arcAnchorRight = 18.0
	depthInset     = 2.0
)

// labelCharWidth approximates tiny-text glyph width for centering arc labels.
const labelCharWidth = 4.5

// Line is one positioned text label of a token column.
type Line struct {
	Field  conllu.Field
	Text   string
	Bold   bool
	Italic bool
	Size   float64
	X, Y   float64
}

// TokenBox is a token column: its left edge, total width and text lines.
type TokenBox struct {
	Index int
	X     float64
	Width float64
	Lines []Line
}

// ArcPath is a laid-out dependency arc. The curve runs from (X1, BaseY) up
// to PeakY and back down to (X2, BaseY); the arrowhead sits at the head end.
type ArcPath struct {
	X1, X2      float64
	BaseY       float64
	PeakY       float64
	HeadInitial bool

	ArrowX, ArrowY float64

	HasLabel       bool
	Label          string
	LabelBold      bool
	LabelX, LabelY float64
}

// RootPath is the vertical marker above a root token.
type RootPath struct {
	X, TopY, BaseY float64
	HasLabel       bool
	LabelX, LabelY float64
}

// Layout is the positioned drawing of one sentence.
type Layout struct {
	Width, Height float64
	Tokens        []TokenBox
	Arcs          []ArcPath
	Roots         []RootPath
}

// Compute lays out a sentence. Tokens are placed left to right in textual
// order; each column is as wide as its widest requested label. Arcs are
// stacked above the token row by their assigned depth, peaks rising with
// span width. The HEAD field controls whether arcs and root markers appear
// at all, DEPREL whether they carry labels.
func Compute(s *conllu.Sentence, m tree.Model, fields []conllu.Field) Layout {
	want := fieldSet(fields)
	words := s.Words()

	// Single pass: measure every requested label per token, take the
	// maximum, accumulate the running x offset.
	var (
		l        Layout
		x        float64
		xByIndex = make(map[int]float64, len(words))
	)
	for _, w := range words {
		width := tokenWidth(w, want)
		box := TokenBox{Index: w.Index, X: x, Width: width}
		xByIndex[w.Index] = x
		x += width
		l.Tokens = append(l.Tokens, box)
	}
	l.Width = x

	showArcs := want[conllu.FieldHead]
	showLabels := want[conllu.FieldDeprel]

	var maxRise float64
	if showArcs {
		for _, a := range m.Arcs {
			if r := rise(a); r > maxRise {
				maxRise = r
			}
		}
		if maxRise > 0 {
			maxRise += topMargin
		}
	}
	l.Height = TextBlockHeight + maxRise

	// Text rows are anchored to the canvas bottom so the token block stays
	// put as arc depth grows.
	for i := range l.Tokens {
		l.Tokens[i].Lines = tokenLines(words[i], l.Tokens[i].X, l.Height, want)
	}

	if !showArcs {
		return l
	}

	baseY := l.Height - arcBaselineOffset
	for _, a := range m.Arcs {
		x1 := xByIndex[a.Lo] + arcAnchorLeft + depthInset*float64(a.Depth)
		x2 := xByIndex[a.Hi] + arcAnchorRight - depthInset*float64(a.Depth)
		peakY := baseY - rise(a)

		arc := ArcPath{
			X1: x1, X2: x2,
			BaseY:       baseY,
			PeakY:       peakY,
			HeadInitial: a.HeadInitial(),
			ArrowY:      baseY,
		}
		if a.HeadInitial() {
			arc.ArrowX = x1
		} else {
			arc.ArrowX = x2
		}
		if showLabels {
			arc.HasLabel = true
			arc.Label = a.Label
			arc.LabelBold = a.Bold
			mid := (x1 + x2) / 2
			arc.LabelX = mid - float64(len(a.Label))*labelCharWidth/2
			arc.LabelY = peakY - 3
		}
		l.Arcs = append(l.Arcs, arc)
	}

	for _, idx := range m.Roots {
		root := RootPath{
			X:     xByIndex[idx] + arcAnchorLeft,
			TopY:  topMargin / 2,
			BaseY: baseY,
		}
		if showLabels {
			root.HasLabel = true
			root.LabelX = root.X + 5
			root.LabelY = root.TopY + SizeTiny
		}
		l.Roots = append(l.Roots, root)
	}

	return l
}

// rise is the peak height of an arc above the arc baseline.
func rise(a tree.Arc) float64 {
	return arcBaseRise + levelHeight*float64(a.Depth) + spanRise*float64(a.Width())
}

func fieldSet(fields []conllu.Field) map[conllu.Field]bool {
	set := make(map[conllu.Field]bool, len(fields))
	for _, f := range fields {
		if conllu.SupportedFields[f] {
			set[f] = true
		}
	}
	return set
}

// tokenLines builds the positioned text labels of one token column.
// Row order from top: merged POS (tiny), FORM (normal), LEMMA (small,
// italic), ID (small, bold) — matching the treebank-viewer convention.
func tokenLines(w conllu.Token, x, height float64, want map[conllu.Field]bool) []Line {
	var lines []Line
	if pos, ok := mergedPOS(w, want); ok && pos.Value != "" {
		lines = append(lines, Line{
			Field: conllu.FieldUpos, Text: pos.Value, Bold: pos.Bold,
			Size: SizeTiny, X: x, Y: height - posRowOffset,
		})
	}
	if want[conllu.FieldForm] {
		lines = append(lines, Line{
			Field: conllu.FieldForm, Text: w.Form.Value, Bold: w.Form.Bold,
			Size: SizeNormal, X: x, Y: height - formRowOffset,
		})
	}
	if want[conllu.FieldLemma] {
		lines = append(lines, Line{
			Field: conllu.FieldLemma, Text: w.Lemma.Value, Bold: w.Lemma.Bold,
			Italic: true, Size: SizeSmall, X: x, Y: height - lemmaRowOffset,
		})
	}
	if want[conllu.FieldID] {
		lines = append(lines, Line{
			Field: conllu.FieldID, Text: w.ID, Bold: true,
			Size: SizeSmall, X: x, Y: height - idRowOffset,
		})
	}
	return lines
}

// mergedPOS joins UPOS and XPOS into the single displayed POS label.
// Emphasis on either part bolds the merged label.
func mergedPOS(w conllu.Token, want map[conllu.Field]bool) (conllu.Text, bool) {
	var parts []string
	bold := false
	if want[conllu.FieldUpos] && w.Upos.Value != "" {
		parts = append(parts, w.Upos.Value)
		bold = bold || w.Upos.Bold
	}
	if want[conllu.FieldXpos] && w.Xpos.Value != "" {
		parts = append(parts, w.Xpos.Value)
		bold = bold || w.Xpos.Bold
	}
	if !want[conllu.FieldUpos] && !want[conllu.FieldXpos] {
		return conllu.Text{}, false
	}
	return conllu.Text{Value: joinPOS(parts), Bold: bold}, true
}

func joinPOS(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + " - " + parts[1]
	}
}
