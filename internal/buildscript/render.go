package buildscript

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"yyccgen/internal/fsutil"
	"yyccgen/internal/logging"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Platform identifies one of the generated scripts.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
)

type platformSpec struct {
	template string
	output   string
	escape   func(string) string
}

var platforms = map[Platform]platformSpec{
	PlatformWindows: {template: "win_build.bat.tmpl", output: "win_build.bat", escape: EscapeCmdArgument},
	PlatformLinux:   {template: "linux_build.sh.tmpl", output: "linux_build.sh", escape: EscapeShellArgument},
}

// Platforms lists every supported platform in generation order.
func Platforms() []Platform {
	return []Platform{PlatformWindows, PlatformLinux}
}

// OutputName returns the file name written for p.
func OutputName(p Platform) string {
	return platforms[p].output
}

// templateContext is what the script templates see.
type templateContext struct {
	RepoRootDir string
	CppVersion  string
	BuildDoc    bool
	PIC         bool
}

// Renderer renders build scripts for one Settings value.
type Renderer struct {
	settings  Settings
	templates *template.Template
}

// NewRenderer parses the embedded script templates.
func NewRenderer(settings Settings) (*Renderer, error) {
	tmpl, err := template.New("scripts").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse script templates: %w", err)
	}
	return &Renderer{settings: settings, templates: tmpl}, nil
}

// Render returns the script for p.
func (r *Renderer) Render(p Platform) ([]byte, error) {
	spec, ok := platforms[p]
	if !ok {
		return nil, fmt.Errorf("unsupported platform %q", p)
	}
	ctx := templateContext{
		RepoRootDir: spec.escape(r.settings.RepoRoot()),
		CppVersion:  r.settings.CppVersion(),
		BuildDoc:    r.settings.BuildDoc(),
		PIC:         r.settings.PIC(),
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, spec.template, ctx); err != nil {
		return nil, fmt.Errorf("render %s script: %w", p, err)
	}
	return buf.Bytes(), nil
}

// WriteAll renders every platform script into dir and returns the written
// paths. Each file is replaced atomically.
func (r *Renderer) WriteAll(ctx context.Context, dir string, logger *slog.Logger) ([]string, error) {
	logger = logging.NewComponentLogger(logger, "buildscript")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create script directory %q: %w", dir, err)
	}

	// Render everything before touching disk.
	rendered := make(map[Platform][]byte, len(platforms))
	for _, p := range Platforms() {
		data, err := r.Render(p)
		if err != nil {
			return nil, err
		}
		rendered[p] = data
	}

	var written []string
	for _, p := range Platforms() {
		target := filepath.Join(dir, OutputName(p))
		if err := writeScript(ctx, target, rendered[p]); err != nil {
			return written, err
		}
		logger.Info("build script generated",
			logging.String("platform", string(p)),
			logging.String(logging.FieldPath, target),
			logging.String("cpp_version", r.settings.CppVersion()),
			logging.Bool("build_doc", r.settings.BuildDoc()),
			logging.Bool("pic", r.settings.PIC()),
		)
		written = append(written, target)
	}
	return written, nil
}

func writeScript(ctx context.Context, target string, data []byte) error {
	unlock, err := fsutil.Lock(ctx, target)
	if err != nil {
		return err
	}
	defer unlock()
	if err := fsutil.WriteFileAtomic(target, data, 0o755); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
