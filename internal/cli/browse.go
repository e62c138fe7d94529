package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/treebanktools/udview/pkg/conllu"
	uderrors "github.com/treebanktools/udview/pkg/errors"
	"github.com/treebanktools/udview/pkg/pipeline"
	"github.com/treebanktools/udview/pkg/tree"
)

// List styles
var (
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseOpts holds the command-line flags for the browse command.
type browseOpts struct {
	output string
	fields []string
	meta   []string
	color  string
	format string
}

// browseCommand creates the browse command. It lists the sentences of a
// treebank in an interactive picker and renders just the chosen one, which
// beats scrolling a thousand-sentence document for a single tree.
func (c *CLI) browseCommand() *cobra.Command {
	opts := browseOpts{
		fields: c.Config.Fields,
		meta:   c.Config.Meta,
		color:  c.Config.Color,
		format: pipeline.FormatSVG,
	}

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Pick a sentence interactively and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runBrowse(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringSliceVarP(&opts.fields, "fields", "f", opts.fields, "CoNLL-U fields to display")
	cmd.Flags().StringSliceVarP(&opts.meta, "meta", "m", opts.meta, "metadata keys to display, if available")
	cmd.Flags().StringVarP(&opts.color, "color", "c", opts.color, "HTML color code for stroke + fill")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "drawing backend: svg (default), nodelink, dot")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, path string, opts *browseOpts) error {
	logger := loggerFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return uderrors.Wrap(uderrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	sentences, err := conllu.ParseAll(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if len(sentences) == 0 {
		printWarning("No sentences found in %s", path)
		return nil
	}

	model := newSentenceListModel(sentences)
	// The picker draws on stderr so a redirected stdout still only carries
	// the rendered markup.
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	result, ok := final.(sentenceListModel)
	if !ok || result.selected < 0 {
		return nil
	}

	runner := pipeline.NewRunner(logger)
	body, err := runner.RenderSentence(ctx, &sentences[result.selected], pipeline.Options{
		Fields:   opts.fields,
		Meta:     opts.meta,
		Color:    opts.color,
		Snippets: true,
		Format:   opts.format,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, body, 0o644); err != nil {
			return uderrors.Wrap(uderrors.ErrCodeWrite, err, "write %s", opts.output)
		}
		printSuccess("Wrote %s", opts.output)
		printFile(opts.output)
		return nil
	}
	_, err = os.Stdout.Write(body)
	return err
}

// sentenceListModel is the bubbletea model for interactive sentence selection.
type sentenceListModel struct {
	sentences []conllu.Sentence
	malformed []bool
	cursor    int
	selected  int
	height    int
	offset    int
}

func newSentenceListModel(sentences []conllu.Sentence) sentenceListModel {
	malformed := make([]bool, len(sentences))
	for i := range sentences {
		malformed[i] = tree.Build(&sentences[i]).Malformed()
	}
	return sentenceListModel{
		sentences: sentences,
		malformed: malformed,
		selected:  -1,
		height:    15,
	}
}

func (m sentenceListModel) Init() tea.Cmd {
	return nil
}

func (m sentenceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.sentences)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m sentenceListModel) View() string {
	var b strings.Builder

	b.WriteString(listTitleStyle.Render("Select Sentence"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.sentences) {
		end = len(m.sentences)
	}

	for i := m.offset; i < end; i++ {
		s := &m.sentences[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		id := s.ID()
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}

		status := " "
		if m.malformed[i] {
			status = StyleWarning.Render("!")
		}

		text := s.Text()
		if r := []rune(text); len(r) > 60 {
			text = string(r[:57]) + "..."
		}

		line := fmt.Sprintf("%s%s %-16s  %s", cursor, status, id, listDimStyle.Render(text))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.sentences))))

	return b.String()
}
