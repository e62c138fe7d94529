package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	uderrors "github.com/treebanktools/udview/pkg/errors"
	"github.com/treebanktools/udview/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path ("" = stdout)
	fields   []string // display fields, e.g. form,upos,head,deprel
	meta     []string // metadata keys surfaced above each sentence
	color    string   // stroke/fill color specifier
	snippets bool     // emit bare SVG fragments without HTML wrapping
	format   string   // drawing backend: svg, nodelink, dot
}

// renderCommand creates the render command, the main conversion surface.
// CoNLL-U text is read from the file argument or stdin and the finished
// markup is written to stdout (or --output), so the command slots directly
// into an editor's preview pipeline.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		fields: c.Config.Fields,
		meta:   c.Config.Meta,
		color:  c.Config.Color,
		format: pipeline.FormatSVG,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert CoNLL-U input to dependency-tree markup",
		Long: `Convert CoNLL-U input to dependency-tree markup.

Reads CoNLL-U text from the given file, or from stdin when no file is given,
and writes one HTML document embedding an SVG drawing per sentence. With
--snippets each sentence becomes a standalone SVG fragment instead.

Malformed input never aborts the conversion: bad lines are skipped and
broken trees render partially, so a half-edited file still previews.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return uderrors.Wrap(uderrors.ErrCodeInvalidFormat, err, "--format")
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringSliceVarP(&opts.fields, "fields", "f", opts.fields, "CoNLL-U fields to display (default form,upos,head,deprel)")
	cmd.Flags().StringSliceVarP(&opts.meta, "meta", "m", opts.meta, "metadata keys to display, if available")
	cmd.Flags().StringVarP(&opts.color, "color", "c", opts.color, "HTML color code for stroke + fill")
	cmd.Flags().BoolVar(&opts.snippets, "snippets", false, "emit bare SVG fragments without HTML wrapping")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "drawing backend: svg (default), nodelink, dot")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	in, closeIn, err := openInput(input)
	if err != nil {
		return err
	}
	defer closeIn()

	out := io.Writer(os.Stdout)
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return uderrors.Wrap(uderrors.ErrCodeWrite, err, "create %s", opts.output)
		}
		defer f.Close()
		out = f
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()
	runner := pipeline.NewRunner(logger)
	stats, err := runner.Convert(ctx, in, out, pipeline.Options{
		Fields:   opts.fields,
		Meta:     opts.meta,
		Color:    opts.color,
		Snippets: opts.snippets,
		Format:   opts.format,
		Logger:   logger,
	})
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d sentences", stats.Sentences))

	if opts.output != "" {
		printSuccess("Wrote %s", opts.output)
		printFile(opts.output)
	}
	printStats(stats.Sentences, stats.Tokens, stats.Malformed)
	return nil
}

// openInput opens the named file, or wires up stdin when path is empty.
func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, uderrors.Wrap(uderrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return f, func() { f.Close() }, nil
}
