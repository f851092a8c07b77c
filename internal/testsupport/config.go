package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"yyccgen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose repository root is a unique temp
// directory. Every path is absolute so the result can be used without
// going through config.Load.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.RepoRoot = base
	cfgVal.Paths.EncodingTable = filepath.Join(base, "script", "pycodec", "encoding_table.csv")
	cfgVal.Paths.EncodingOutput = filepath.Join(base, "script", "pycodec", "encoding_table.cpp")
	cfgVal.Paths.ScriptDir = filepath.Join(base, "script")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLayout sets the encoding table layout.
func WithLayout(layout string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoding.Layout = layout
	}
}

// WithDialect sets the generated C++ dialect.
func WithDialect(dialect string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoding.Dialect = dialect
	}
}

// WithStrict turns alias collisions into errors.
func WithStrict() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoding.Strict = true
	}
}

// WithTable writes rows (plus a header) to the configured encoding table.
func WithTable(rows ...string) ConfigOption {
	return func(b *configBuilder) {
		WriteTable(b.t, b.cfg.Paths.EncodingTable, rows...)
	}
}

// BaseDir returns the temp repository root backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Paths.RepoRoot
}

// WriteConfigFile serializes cfg as TOML into the repository root and returns
// the file path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "yyccgen.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
