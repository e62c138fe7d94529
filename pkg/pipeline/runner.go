package pipeline

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/treebanktools/udview/pkg/conllu"
	"github.com/treebanktools/udview/pkg/layout"
	"github.com/treebanktools/udview/pkg/render/dot"
	"github.com/treebanktools/udview/pkg/render/htmldoc"
	"github.com/treebanktools/udview/pkg/render/svg"
	"github.com/treebanktools/udview/pkg/tree"
)

// Stats contains conversion statistics.
type Stats struct {
	Sentences  int
	Tokens     int
	Malformed  int // sentences rendered despite tree anomalies
	ParseTime  time.Duration
	RenderTime time.Duration
}

// Runner executes the conversion pipeline.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger discards diagnostics.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{logger: logger}
}

// Convert reads CoNLL-U text from in and writes the finished markup to out.
// Data anomalies never abort the batch: malformed lines are skipped during
// parsing and malformed trees render partially.
func (r *Runner) Convert(ctx context.Context, in io.Reader, out io.Writer, opts Options) (Stats, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Stats{}, err
	}

	var stats Stats
	start := time.Now()
	sentences, err := conllu.ParseAll(in)
	if err != nil {
		return stats, err
	}
	stats.ParseTime = time.Since(start)
	stats.Sentences = len(sentences)
	for i := range sentences {
		stats.Tokens += len(sentences[i].Tokens)
	}

	start = time.Now()
	frags, malformed := r.renderAll(ctx, sentences, opts)
	stats.RenderTime = time.Since(start)
	stats.Malformed = malformed

	var output []byte
	switch {
	case opts.Format == FormatDOT:
		// DOT graphs are already self-delimiting; no HTML wrapping applies.
		output = htmldoc.Snippets(frags)
	case opts.Snippets:
		output = htmldoc.Snippets(frags)
	default:
		output = htmldoc.Document(frags)
	}

	if _, err := out.Write(output); err != nil {
		return stats, err
	}
	return stats, nil
}

// renderAll maps sentences to fragments with a bounded worker pool,
// preserving input order in the result.
func (r *Runner) renderAll(ctx context.Context, sentences []conllu.Sentence, opts Options) ([]htmldoc.Fragment, int) {
	frags := make([]htmldoc.Fragment, len(sentences))
	malformed := make([]bool, len(sentences))

	workers := opts.Workers
	if workers > len(sentences) {
		workers = len(sentences)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				frags[i], malformed[i] = r.renderSentence(ctx, &sentences[i], opts)
			}
		}()
	}
	for i := range sentences {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	count := 0
	for _, m := range malformed {
		if m {
			count++
		}
	}
	return frags, count
}

// RenderSentence renders a single sentence with the given options, for
// callers that preview one sentence at a time.
func (r *Runner) RenderSentence(ctx context.Context, s *conllu.Sentence, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	frag, _ := r.renderSentence(ctx, s, opts)
	return frag.Body, nil
}

func (r *Runner) renderSentence(ctx context.Context, s *conllu.Sentence, opts Options) (htmldoc.Fragment, bool) {
	model := tree.Build(s)
	if model.Malformed() {
		r.logger.Debugf("sentence %q: malformed tree (%d arcs dropped, %d roots)",
			s.ID(), model.Dropped, len(model.Roots))
	}

	frag := htmldoc.Fragment{Meta: selectMeta(s, opts)}

	switch opts.Format {
	case FormatDOT:
		frag.Body = []byte(dot.ToDOT(s, model))
	case FormatNodelink:
		body, err := dot.RenderSVG(ctx, dot.ToDOT(s, model))
		if err != nil {
			r.logger.Warnf("sentence %q: nodelink render failed: %v", s.ID(), err)
			frag.Body = []byte("<p>This tree cannot be visualized; check the format!</p>\n")
			break
		}
		frag.Body = body
	default:
		l := layout.Compute(s, model, opts.DisplayFields())
		frag.Body = svg.Render(l, svg.WithColor(opts.Color))
	}

	return frag, model.Malformed()
}

// selectMeta picks the requested metadata keys present on the sentence, in
// request order. Snippet mode carries no metadata strip.
func selectMeta(s *conllu.Sentence, opts Options) []htmldoc.MetaItem {
	if opts.Snippets {
		return nil
	}
	var items []htmldoc.MetaItem
	for _, key := range opts.Meta {
		if val, ok := s.Meta[key]; ok {
			items = append(items, htmldoc.MetaItem{Key: key, Value: val})
		}
	}
	return items
}
