package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/treebanktools/udview/pkg/conllu"
)

// Horizontal metrics: a column is as wide as its widest requested label at
// charWidth units per display cell, plus a fixed inter-token gap.
const (
	charWidth = 9.0
	tokenGap  = 15.0
)

// tokenWidth measures every requested-field label of one token and returns
// the column width. Emphasis markers are stripped before the token reaches
// this point, so only display text is measured.
func tokenWidth(w conllu.Token, want map[conllu.Field]bool) float64 {
	maxCells := 0
	measure := func(s string) {
		if c := runewidth.StringWidth(s); c > maxCells {
			maxCells = c
		}
	}

	if want[conllu.FieldForm] {
		measure(w.Form.Value)
	}
	if want[conllu.FieldLemma] {
		measure(w.Lemma.Value)
	}
	if pos, ok := mergedPOS(w, want); ok {
		measure(pos.Value)
	}
	if want[conllu.FieldDeprel] {
		measure(w.Deprel.Value)
	}
	if want[conllu.FieldID] {
		measure(w.ID)
	}

	return charWidth*float64(maxCells) + tokenGap
}
