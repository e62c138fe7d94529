// Package tree derives the dependency structure a sentence drawing needs:
// arcs between tokens and their heads, root positions, and the vertical
// depth at which each arc must be stacked to avoid crossing ambiguity.
package tree

import (
	"github.com/treebanktools/udview/pkg/conllu"
)

// Arc is a directed dependent→head relation with its drawing span.
// Lo and Hi are the inclusive token-index interval the arc covers.
type Arc struct {
	Dep   int // 1-based index of the dependent token
	Head  int // 1-based index of the governing token
	Label string
	Bold  bool

	Lo, Hi int
	Depth  int // vertical stacking level, 0 = nearest the token row
}

// Width returns the number of token gaps the arc spans.
func (a Arc) Width() int { return a.Hi - a.Lo }

// HeadInitial reports whether the head precedes the dependent.
func (a Arc) HeadInitial() bool { return a.Head < a.Dep }

// Model is the per-sentence tree structure consumed by layout.
type Model struct {
	Arcs  []Arc
	Roots []int // indexes of tokens with head 0, in textual order

	// Dropped counts arcs omitted because their head index fell outside
	// the sentence. The sentence still renders without them.
	Dropped int
}

// Malformed reports whether the sentence deviated from a single well-formed
// tree (dropped arcs, or a root count other than one).
func (m Model) Malformed() bool {
	return m.Dropped > 0 || len(m.Roots) != 1
}

// Build computes arcs and roots for a sentence. Only regular word tokens
// bear arcs; a head index that names no present word drops that arc, a head
// equal to the token's own index likewise. Multiple roots are kept: each
// becomes an independent tree drawn side by side.
func Build(s *conllu.Sentence) Model {
	words := s.Words()

	// Heads must name a present word, not merely fall in range: a skipped
	// malformed line leaves a gap that arcs may still point into.
	present := make(map[int]bool, len(words))
	for _, w := range words {
		present[w.Index] = true
	}

	var m Model
	for _, w := range words {
		switch {
		case w.Head == 0:
			m.Roots = append(m.Roots, w.Index)
		case w.Head == conllu.NoHead:
			m.Dropped++
		case !present[w.Head] || w.Head == w.Index:
			m.Dropped++
		default:
			m.Arcs = append(m.Arcs, Arc{
				Dep:   w.Index,
				Head:  w.Head,
				Label: w.Deprel.Value,
				Bold:  w.Deprel.Bold,
				Lo:    min(w.Index, w.Head),
				Hi:    max(w.Index, w.Head),
			})
		}
	}

	AssignDepths(m.Arcs)
	return m
}
