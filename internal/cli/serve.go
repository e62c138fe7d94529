package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/treebanktools/udview/pkg/cache"
	"github.com/treebanktools/udview/pkg/pipeline"
)

// cacheTTL bounds how long a rendered document stays in the file cache.
const cacheTTL = 24 * time.Hour

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	noCache bool
	fields  []string
	meta    []string
	color   string
	format  string
}

// serveCommand creates the serve command, a live HTML preview server.
// The treebank file is re-read on every request, so saving the file in an
// editor and refreshing the browser shows the updated trees. Renders are
// cached by content hash, so refreshing an unchanged file is free.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:   "localhost:8080",
		fields: c.Config.Fields,
		meta:   c.Config.Meta,
		color:  c.Config.Color,
		format: pipeline.FormatSVG,
	}

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a live HTML preview of a treebank file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "re-render on every request")
	cmd.Flags().StringSliceVarP(&opts.fields, "fields", "f", opts.fields, "CoNLL-U fields to display")
	cmd.Flags().StringSliceVarP(&opts.meta, "meta", "m", opts.meta, "metadata keys to display, if available")
	cmd.Flags().StringVarP(&opts.color, "color", "c", opts.color, "HTML color code for stroke + fill")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "drawing backend: svg (default), nodelink, dot")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	// Fail on an unreadable file now rather than on the first request.
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	defer store.Close()

	h := &previewHandler{
		path:   path,
		cache:  store,
		logger: logger,
		runner: pipeline.NewRunner(logger),
		opts: pipeline.Options{
			Fields: opts.fields,
			Meta:   opts.meta,
			Color:  opts.color,
			Format: opts.format,
			Logger: logger,
		},
		keyOpts: cache.RenderKeyOpts{
			Fields: opts.fields,
			Meta:   opts.meta,
			Color:  opts.color,
			Format: opts.format,
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", h.preview)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	printSuccess("Serving %s on http://%s", path, opts.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// previewHandler renders the watched treebank file on demand.
type previewHandler struct {
	path    string
	cache   cache.Cache
	logger  *log.Logger
	runner  *pipeline.Runner
	opts    pipeline.Options
	keyOpts cache.RenderKeyOpts
}

func (h *previewHandler) preview(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	key := cache.RenderKey(cache.Hash(data), h.keyOpts)
	if doc, ok, err := h.cache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(doc)
		return
	}

	var buf bytes.Buffer
	stats, err := h.runner.Convert(r.Context(), bytes.NewReader(data), &buf, h.opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.logger.Debugf("rendered %d sentences for %s", stats.Sentences, r.RemoteAddr)

	if err := h.cache.Set(r.Context(), key, buf.Bytes(), cacheTTL); err != nil {
		h.logger.Debugf("cache set failed: %v", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
