package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jsonq/internal/exit"
	"github.com/jacoelho/jsonq/internal/formatter"
	"github.com/jacoelho/jsonq/internal/parser"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

// Version is reported by --version.
var Version = "dev"

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrNegativeIndent = errors.New("indent cannot be negative")
	ErrNegativeRate   = errors.New("rate limit cannot be negative")
	ErrEmptyQuery     = errors.New("query cannot be empty")
	ErrRepeatedStdin  = errors.New("standard input can only be read once")
)

// Config represents the complete configuration for the jsonq tool.
type Config struct {
	// Inputs, "-" reads stdin
	Files []string

	// Rendering
	Format string
	Indent int

	// Queries replace the document rendering when present
	Queries   []string
	JSONPaths []string

	// Parsing
	MaxDepth int
	Strict   bool

	RateLimit float64 // Documents per second (0 = unlimited)
	Debug     bool
}

// fileConfig is the YAML layout accepted by --config. Pointer fields tell
// an absent key apart from a zero value.
type fileConfig struct {
	Format    *string  `yaml:"format"`
	Indent    *int     `yaml:"indent"`
	Queries   []string `yaml:"queries"`
	JSONPaths []string `yaml:"jsonpaths"`
	MaxDepth  *int     `yaml:"max_depth"`
	Strict    *bool    `yaml:"strict"`
	RateLimit *float64 `yaml:"rate_limit"`
	Debug     *bool    `yaml:"debug"`
}

// ParserOptions translates the parsing settings into parser options.
func (c *Config) ParserOptions() []parser.Option {
	opts := []parser.Option{parser.WithMaxDepth(c.MaxDepth)}
	if c.Strict {
		opts = append(opts, parser.WithStrict())
	}
	return opts
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	switch c.Format {
	case formatter.Compact, formatter.Pretty, formatter.YAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	if c.Indent < 0 {
		return ErrNegativeIndent
	}

	if c.RateLimit < 0 {
		return ErrNegativeRate
	}

	for _, q := range c.Queries {
		if q == "" {
			return fmt.Errorf("%w: --query", ErrEmptyQuery)
		}
	}
	for _, q := range c.JSONPaths {
		if q == "" {
			return fmt.Errorf("%w: --jsonpath", ErrEmptyQuery)
		}
	}

	stdinSeen := false
	for _, file := range c.Files {
		if file == Stdin {
			if stdinSeen {
				return ErrRepeatedStdin
			}
			stdinSeen = true
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("input file %s not found: %w", file, err)
		}
	}

	return nil
}

// stringsFlag implements flag.Value for repeatable string flags.
type stringsFlag []string

func (s *stringsFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringsFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func defaults() *Config {
	return &Config{
		Format:   formatter.Pretty,
		MaxDepth: parser.DefaultMaxDepth,
	}
}

// Parse parses command-line arguments and returns a validated Config.
// Values from --config are applied first and explicit flags override them.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		configFile = fs.String("config", "", "Path to YAML configuration file")
		format     = fs.String("format", formatter.Pretty, "Output format: compact, pretty or yaml")
		indent     = fs.Int("indent", 0, "Starting indent level for pretty output")
		maxDepth   = fs.Int("max-depth", parser.DefaultMaxDepth, "Maximum nesting depth (0 disables the limit)")
		strict     = fs.Bool("strict", false, "Reject trailing input after the document")
		rateLimit  = fs.Float64("rate-limit", 0, "Documents per second (0 for unlimited)")
		debug      = fs.Bool("debug", false, "Enable debug logging")
		showVer    = fs.Bool("version", false, "Show version information")
		queries    stringsFlag
		jsonPaths  stringsFlag
	)
	fs.BoolVar(showVer, "v", false, "Show version information")
	fs.Var(&queries, "query", "Dot separated path to print (can be used multiple times)")
	fs.Var(&jsonPaths, "jsonpath", "JSONPath expression to print (can be used multiple times)")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	if *showVer {
		return nil, exit.Success(fmt.Sprintf("jsonq %s\n", Version))
	}

	config := defaults()

	if *configFile != "" {
		fileCfg, err := loadConfigFile(*configFile)
		if err != nil {
			return nil, exit.Errorf("Error: failed to load config file: %v\n\n%s", err, Usage())
		}
		fileCfg.apply(config)
	}

	// Command-line flags take precedence over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			config.Format = *format
		case "indent":
			config.Indent = *indent
		case "max-depth":
			config.MaxDepth = *maxDepth
		case "strict":
			config.Strict = *strict
		case "rate-limit":
			config.RateLimit = *rateLimit
		case "debug":
			config.Debug = *debug
		case "query":
			config.Queries = queries
		case "jsonpath":
			config.JSONPaths = jsonPaths
		}
	})

	config.Files = fs.Args()
	if len(config.Files) == 0 {
		config.Files = []string{Stdin}
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// loadConfigFile reads a YAML configuration file. Unknown keys are rejected.
func loadConfigFile(filename string) (*fileConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg fileConfig
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	return &cfg, nil
}

func (f *fileConfig) apply(c *Config) {
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Indent != nil {
		c.Indent = *f.Indent
	}
	if f.Queries != nil {
		c.Queries = f.Queries
	}
	if f.JSONPaths != nil {
		c.JSONPaths = f.JSONPaths
	}
	if f.MaxDepth != nil {
		c.MaxDepth = *f.MaxDepth
	}
	if f.Strict != nil {
		c.Strict = *f.Strict
	}
	if f.RateLimit != nil {
		c.RateLimit = *f.RateLimit
	}
	if f.Debug != nil {
		c.Debug = *f.Debug
	}
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jsonq - parse, render and query JSON documents

Usage: jsonq [options] [file1] [file2] ...

Reads standard input when no file is given or a file is "-".

Options:
  --format FORMAT         Output format: compact, pretty or yaml (default: pretty)
  --indent N              Starting indent level for pretty output (default: 0)
  --query PATH            Dot separated path to print (can be used multiple times)
  --jsonpath EXPR         JSONPath expression to print (can be used multiple times)
  --max-depth N           Maximum nesting depth, 0 disables the limit (default: 10000)
  --strict                Reject trailing input after the document
  --rate-limit N          Documents per second (0 for unlimited)
  --config FILE           Path to YAML configuration file
  --debug                 Enable debug logging
  -h, --help              Show this help message
  -v, --version           Show version information

Examples:
  jsonq doc.json                             # Pretty print a document
  jsonq --format compact doc.json            # Print on a single line
  jsonq --query items.0.name doc.json        # Print one value
  jsonq --jsonpath '$.items[*].name' doc.json
  echo '{"a":[1,2]}' | jsonq --query a.1     # Read from stdin
  jsonq --config jsonq.yaml a.json b.json   # Load options from a file`
}
