package enctable

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"yyccgen/internal/fsutil"
	"yyccgen/internal/logging"
)

// Options describes one generator run. The zero value of every optional field
// selects the default behaviour.
type Options struct {
	InputPath  string
	OutputPath string
	Layout     Layout
	Dialect    Dialect
	// TemplatePath overrides Dialect with a user supplied template.
	TemplatePath string
	// Strict turns any collision into a fatal error.
	Strict bool
	// CheckIconv logs iconv identifiers unknown to the IANA registry.
	CheckIconv bool
}

// Result summarizes a completed run.
type Result struct {
	OutputPath string
	Tokens     int
	Aliases    int
	CodePages  int
	Iconv      int
	Collisions []Collision
	Iconvs     []IconvFinding
	Bytes      int
}

// Load reads and parses the table at path.
func Load(path string, layout Layout) ([]LanguageToken, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}
	defer file.Close()

	tokens, err := Parse(file, layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}

// Generate parses the input table, renders the C++ tables and replaces the
// output file. The output is only touched after everything else succeeded.
func Generate(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	logger = logging.NewComponentLogger(logger, "enctable")

	tokens, err := Load(opts.InputPath, opts.Layout)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("encoding table parsed",
		logging.String(logging.FieldPath, opts.InputPath),
		logging.Int(logging.FieldRows, len(tokens)),
	)

	collisions := FindCollisions(tokens)
	for _, c := range collisions {
		logger.Warn("ambiguous encoding table entry",
			logging.String("key", c.Alias),
			logging.String("kind", string(c.Kind)),
			logging.String("resolves_to", c.Winner()),
			logging.Alert(c.String()),
		)
	}
	if opts.Strict && len(collisions) > 0 {
		return Result{Collisions: collisions}, fmt.Errorf("%w: %s (%d total)", ErrAliasCollision, collisions[0], len(collisions))
	}

	var iconvFindings []IconvFinding
	if opts.CheckIconv {
		iconvFindings = CheckIconv(tokens)
		for _, f := range iconvFindings {
			logger.Info("iconv name not in IANA registry",
				logging.String("encoding", f.Name),
				logging.String("iconv", f.IconvName),
				logging.Int("line", f.Line),
			)
		}
	}

	emitter, err := newEmitter(opts)
	if err != nil {
		return Result{}, err
	}
	tables := BuildTables(filepath.Base(opts.InputPath), tokens)
	data, err := emitter.Bytes(tables)
	if err != nil {
		return Result{}, err
	}

	unlock, err := fsutil.Lock(ctx, opts.OutputPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logger.Warn("release output lock", logging.Error(err))
		}
	}()
	if err := fsutil.WriteFileAtomic(opts.OutputPath, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrOutputWrite, opts.OutputPath, err)
	}

	result := Result{
		OutputPath: opts.OutputPath,
		Tokens:     len(tokens),
		Aliases:    len(tables.Aliases),
		CodePages:  len(tables.CodePages),
		Iconv:      len(tables.Iconv),
		Collisions: collisions,
		Iconvs:     iconvFindings,
		Bytes:      len(data),
	}
	logger.Info("encoding table generated",
		logging.String(logging.FieldPath, opts.OutputPath),
		logging.Int(logging.FieldRows, result.Tokens),
		logging.Int("aliases", result.Aliases),
		logging.Int("code_pages", result.CodePages),
		logging.Int("iconv", result.Iconv),
	)
	return result, nil
}

func newEmitter(opts Options) (*Emitter, error) {
	if opts.TemplatePath != "" {
		return NewEmitterFromFile(opts.TemplatePath)
	}
	return NewEmitter(opts.Dialect)
}
