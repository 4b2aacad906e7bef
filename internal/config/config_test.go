package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jacoelho/jsonq/internal/exit"
	"github.com/jacoelho/jsonq/internal/parser"
)

func TestParse(t *testing.T) {
	tempDir := t.TempDir()
	docFile := filepath.Join(tempDir, "doc.json")
	otherFile := filepath.Join(tempDir, "other.json")
	configFile := filepath.Join(tempDir, "jsonq.yaml")
	badConfigFile := filepath.Join(tempDir, "bad.yaml")

	if err := os.WriteFile(docFile, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(otherFile, []byte(`[1]`), 0644); err != nil {
		t.Fatal(err)
	}
	configYAML := "format: compact\nindent: 2\nqueries:\n  - a\n  - b.0\nmax_depth: 64\nstrict: true\nrate_limit: 5\n"
	if err := os.WriteFile(configFile, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(badConfigFile, []byte("colour: blue\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults_read_stdin",
			args: []string{"jsonq"},
			want: &Config{
				Files:    []string{Stdin},
				Format:   "pretty",
				MaxDepth: parser.DefaultMaxDepth,
			},
		},
		{
			name: "multiple_files",
			args: []string{"jsonq", docFile, otherFile},
			want: &Config{
				Files:    []string{docFile, otherFile},
				Format:   "pretty",
				MaxDepth: parser.DefaultMaxDepth,
			},
		},
		{
			name: "all_flags",
			args: []string{
				"jsonq", "--format", "yaml", "--indent", "1", "--query", "a", "--query", "b",
				"--jsonpath", "$.a", "--max-depth", "0", "--strict", "--rate-limit", "2.5", "--debug", docFile,
			},
			want: &Config{
				Files:     []string{docFile},
				Format:    "yaml",
				Indent:    1,
				Queries:   []string{"a", "b"},
				JSONPaths: []string{"$.a"},
				MaxDepth:  0,
				Strict:    true,
				RateLimit: 2.5,
				Debug:     true,
			},
		},
		{
			name: "config_file",
			args: []string{"jsonq", "--config", configFile, docFile},
			want: &Config{
				Files:     []string{docFile},
				Format:    "compact",
				Indent:    2,
				Queries:   []string{"a", "b.0"},
				MaxDepth:  64,
				Strict:    true,
				RateLimit: 5,
			},
		},
		{
			name: "flags_override_config_file",
			args: []string{"jsonq", "--config", configFile, "--format", "pretty", "--query", "c", "--strict=false", docFile},
			want: &Config{
				Files:     []string{docFile},
				Format:    "pretty",
				Indent:    2,
				Queries:   []string{"c"},
				MaxDepth:  64,
				Strict:    false,
				RateLimit: 5,
			},
		},
		{
			name:    "unknown_config_key",
			args:    []string{"jsonq", "--config", badConfigFile, docFile},
			wantErr: true,
		},
		{
			name:    "missing_config_file",
			args:    []string{"jsonq", "--config", filepath.Join(tempDir, "missing.yaml"), docFile},
			wantErr: true,
		},
		{
			name:    "repeated_stdin",
			args:    []string{"jsonq", Stdin, docFile, Stdin},
			wantErr: true,
		},
		{
			name:    "unknown_format",
			args:    []string{"jsonq", "--format", "xml", docFile},
			wantErr: true,
		},
		{
			name:    "negative_indent",
			args:    []string{"jsonq", "--indent", "-1", docFile},
			wantErr: true,
		},
		{
			name:    "negative_rate_limit",
			args:    []string{"jsonq", "--rate-limit", "-1", docFile},
			wantErr: true,
		},
		{
			name:    "empty_query",
			args:    []string{"jsonq", "--query", "", docFile},
			wantErr: true,
		},
		{
			name:    "missing_file",
			args:    []string{"jsonq", filepath.Join(tempDir, "missing.json")},
			wantErr: true,
		},
		{
			name:    "unknown_flag",
			args:    []string{"jsonq", "--colour", docFile},
			wantErr: true,
		},
		{
			name:    "no_arguments",
			args:    []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, exitResult := Parse(tt.args)

			if tt.wantErr {
				if exitResult == nil {
					t.Fatalf("Parse() expected error but got none")
				}
				if exitResult.ExitCode != exit.CodeUsage {
					t.Errorf("Parse() error should have exit code %d, got %d", exit.CodeUsage, exitResult.ExitCode)
				}
				return
			}

			if exitResult != nil {
				t.Fatalf("Parse() unexpected error: exit code %d, message: %s", exitResult.ExitCode, exitResult.Message)
			}

			if !reflect.DeepEqual(cfg, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	for _, arg := range []string{"-help", "--help", "-h"} {
		_, exitResult := Parse([]string{"jsonq", arg})
		if exitResult == nil {
			t.Fatalf("expected exit result for %s", arg)
		}
		if exitResult.ExitCode != exit.CodeOK {
			t.Errorf("expected exit code 0 for %s, got %d", arg, exitResult.ExitCode)
		}
	}

	for _, arg := range []string{"-v", "--version"} {
		_, exitResult := Parse([]string{"jsonq", arg})
		if exitResult == nil {
			t.Fatalf("expected exit result for %s", arg)
		}
		if exitResult.ExitCode != exit.CodeOK || !strings.Contains(exitResult.Message, Version) {
			t.Errorf("%s = (%d, %q), want version output", arg, exitResult.ExitCode, exitResult.Message)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := Config{Files: []string{Stdin}, Format: "compact"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	badFormat := valid
	badFormat.Format = "toml"
	if err := badFormat.Validate(); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Validate() error = %v, want %v", err, ErrUnknownFormat)
	}

	badPath := valid
	badPath.JSONPaths = []string{""}
	if err := badPath.Validate(); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("Validate() error = %v, want %v", err, ErrEmptyQuery)
	}

	twice := valid
	twice.Files = []string{Stdin, Stdin}
	if err := twice.Validate(); !errors.Is(err, ErrRepeatedStdin) {
		t.Fatalf("Validate() error = %v, want %v", err, ErrRepeatedStdin)
	}
}

func TestConfig_ParserOptions(t *testing.T) {
	t.Parallel()

	deep := "[[[1]]]"

	cfg := Config{MaxDepth: 2}
	if _, err := parser.Parse(deep, cfg.ParserOptions()...); !errors.Is(err, parser.ErrMaxDepth) {
		t.Fatalf("Parse() error = %v, want %v", err, parser.ErrMaxDepth)
	}

	cfg = Config{MaxDepth: 0, Strict: true}
	if _, err := parser.Parse(deep+" tail", cfg.ParserOptions()...); !errors.Is(err, parser.ErrTrailingInput) {
		t.Fatalf("Parse() error = %v, want %v", err, parser.ErrTrailingInput)
	}
}

func TestUsage(t *testing.T) {
	usage := Usage()
	for _, expected := range []string{"--format", "--query", "--jsonpath", "--max-depth", "--strict", "--config"} {
		if !strings.Contains(usage, expected) {
			t.Errorf("Usage() missing %q", expected)
		}
	}
}
