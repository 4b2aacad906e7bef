package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/jacoelho/jsonq/internal/config"
	"github.com/jacoelho/jsonq/internal/exit"
	"github.com/jacoelho/jsonq/internal/formatter"
	"github.com/jacoelho/jsonq/internal/formatter/text"
	"github.com/jacoelho/jsonq/internal/formatter/yaml"
	"github.com/jacoelho/jsonq/internal/parser"
	"github.com/jacoelho/jsonq/internal/ratelimit"
	"github.com/jacoelho/jsonq/internal/selector"
	"github.com/jacoelho/jsonq/internal/value"
)

// absent is printed for queries that resolve to nothing.
const absent = "<absent>"

// Runner parses each configured input and prints either the rendered
// document or the answers to its queries.
type Runner struct {
	config      *config.Config
	logger      log.Logger
	stdin       io.Reader
	stdout      io.Writer
	rateLimiter *ratelimit.Limiter
	formatter   formatter.Formatter
}

// New creates a Runner reading stdin and writing stdout.
func New(cfg *config.Config, logger log.Logger) (*Runner, *exit.Result) {
	return NewWithIO(cfg, logger, os.Stdin, os.Stdout)
}

// NewWithIO creates a Runner with custom standard streams.
// If creation fails, returns nil runner and exit result.
func NewWithIO(cfg *config.Config, logger log.Logger, stdin io.Reader, stdout io.Writer) (*Runner, *exit.Result) {
	f, err := newFormatter(cfg, stdout)
	if err != nil {
		return nil, exit.Errorf("Error creating runner: %v\n", err)
	}

	return &Runner{
		config:      cfg,
		logger:      logger,
		stdin:       stdin,
		stdout:      stdout,
		rateLimiter: ratelimit.New(cfg.RateLimit),
		formatter:   f,
	}, nil
}

func newFormatter(cfg *config.Config, w io.Writer) (formatter.Formatter, error) {
	switch cfg.Format {
	case formatter.Compact:
		return text.NewCompactWithWriter(w), nil
	case formatter.Pretty:
		return text.NewPrettyWithWriter(w, cfg.Indent), nil
	case formatter.YAML:
		return yaml.NewWithWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, cfg.Format)
	}
}

// Run processes every input in order and returns the process exit code.
// A failing document does not stop the remaining ones.
func (r *Runner) Run(ctx context.Context) int {
	start := time.Now()
	failed := 0

	for i, source := range r.config.Files {
		if err := r.rateLimiter.Wait(ctx); err != nil {
			level.Warn(r.logger).Log("msg", "interrupted", "processed", i, "total", len(r.config.Files), "err", err)
			return exit.CodeFailure
		}

		if err := r.processSource(source); err != nil {
			level.Error(r.logger).Log("msg", "document failed", "source", source, "err", err)
			failed++
		}
	}

	level.Debug(r.logger).Log(
		"msg", "finished",
		"documents", len(r.config.Files),
		"failed", failed,
		"rate_limit", r.rateLimiter.Limit(),
		"duration", time.Since(start),
	)

	if failed > 0 {
		return exit.CodeFailure
	}
	return exit.CodeOK
}

func (r *Runner) processSource(source string) error {
	data, err := r.read(source)
	if err != nil {
		return err
	}

	level.Debug(r.logger).Log("msg", "read document", "source", source, "size", humanize.Bytes(uint64(len(data))))

	doc, err := parser.Parse(string(data), r.config.ParserOptions()...)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	level.Debug(r.logger).Log("msg", "parsed document", "source", source, "kind", doc.Kind())

	if len(r.config.Queries) == 0 && len(r.config.JSONPaths) == 0 {
		return r.formatter.Format(doc)
	}

	return r.answer(doc)
}

func (r *Runner) read(source string) ([]byte, error) {
	if source == config.Stdin {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

// answer prints one "query: value" line per result.
func (r *Runner) answer(doc value.Value) error {
	for _, path := range r.config.Queries {
		result, ok := value.Query(doc, path)
		if !ok {
			level.Debug(r.logger).Log("msg", "query not found", "query", path)
			if err := r.printAnswer(path, absent); err != nil {
				return err
			}
			continue
		}
		if err := r.printAnswer(path, result.String()); err != nil {
			return err
		}
	}

	for _, expr := range r.config.JSONPaths {
		matches, err := selector.Select(doc, expr)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			if err := r.printAnswer(expr, absent); err != nil {
				return err
			}
			continue
		}
		for _, match := range matches {
			if err := r.printAnswer(expr, match.String()); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Runner) printAnswer(query, rendered string) error {
	_, err := fmt.Fprintf(r.stdout, "%s: %s\n", query, rendered)
	return err
}
