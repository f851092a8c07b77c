package enctable

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Dialect selects one of the built-in C++ templates.
type Dialect string

const (
	// DialectModern targets the std::u8string_view based sources.
	DialectModern Dialect = "modern"
	// DialectLegacy reproduces the YYCC_U8 based sources byte for byte.
	DialectLegacy Dialect = "legacy"
)

// Names of the blocks every table template defines.
const (
	BlockAliases   = "aliases"
	BlockCodePages = "code_pages"
	BlockIconv     = "iconv"
)

// ParseDialect maps a user supplied dialect name onto a Dialect. An empty
// value selects DialectModern.
func ParseDialect(value string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(DialectModern):
		return DialectModern, nil
	case string(DialectLegacy):
		return DialectLegacy, nil
	default:
		return "", fmt.Errorf("unsupported output dialect %q (want %q or %q)", value, DialectModern, DialectLegacy)
	}
}

// AliasEntry maps an alternate name onto its canonical name.
type AliasEntry struct {
	Alias string
	Name  string
}

// CodePageEntry maps a canonical name onto a Windows code page.
type CodePageEntry struct {
	Name     string
	CodePage uint32
}

// IconvEntry maps a canonical name onto an iconv identifier.
type IconvEntry struct {
	Name      string
	IconvName string
}

// Tables is the flattened content of the three generated lookup tables.
type Tables struct {
	// Source is the base name of the input table, used in the generated banner.
	Source    string
	Aliases   []AliasEntry
	CodePages []CodePageEntry
	Iconv     []IconvEntry
}

// AliasTable lists every (alias, name) pair in token order, then alias order.
// Aliases shared by several tokens are emitted once per token.
func AliasTable(tokens []LanguageToken) []AliasEntry {
	var entries []AliasEntry
	for _, token := range tokens {
		for _, alias := range token.Aliases {
			entries = append(entries, AliasEntry{Alias: alias, Name: token.Name})
		}
	}
	return entries
}

// CodePageTable lists the tokens that carry a code page.
func CodePageTable(tokens []LanguageToken) []CodePageEntry {
	var entries []CodePageEntry
	for _, token := range tokens {
		if token.HasCodePage {
			entries = append(entries, CodePageEntry{Name: token.Name, CodePage: token.CodePage})
		}
	}
	return entries
}

// IconvTable lists the tokens that carry an iconv identifier.
func IconvTable(tokens []LanguageToken) []IconvEntry {
	var entries []IconvEntry
	for _, token := range tokens {
		if token.HasIconv() {
			entries = append(entries, IconvEntry{Name: token.Name, IconvName: token.IconvName})
		}
	}
	return entries
}

// BuildTables flattens tokens into all three tables.
func BuildTables(source string, tokens []LanguageToken) Tables {
	return Tables{
		Source:    source,
		Aliases:   AliasTable(tokens),
		CodePages: CodePageTable(tokens),
		Iconv:     IconvTable(tokens),
	}
}

// Emitter renders Tables as C++ source through a text/template.
type Emitter struct {
	tmpl *template.Template
}

// NewEmitter returns an emitter for one of the built-in dialects.
func NewEmitter(dialect Dialect) (*Emitter, error) {
	if dialect == "" {
		dialect = DialectModern
	}
	name := string(dialect) + ".cpp.tmpl"
	tmpl, err := template.New(name).Funcs(templateFuncs()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("%w: dialect %q: %w", ErrTemplate, dialect, err)
	}
	return &Emitter{tmpl: tmpl}, nil
}

// NewEmitterFromFile parses a user supplied template. The template receives a
// Tables value and may use the cstr function to escape C++ string literals.
func NewEmitterFromFile(path string) (*Emitter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrTemplate, path, err)
	}
	tmpl, err := template.New(filepath.Base(path)).Funcs(templateFuncs()).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrTemplate, path, err)
	}
	return &Emitter{tmpl: tmpl}, nil
}

// Render writes the complete generated document.
func (e *Emitter) Render(w io.Writer, tables Tables) error {
	if err := e.tmpl.Execute(w, tables); err != nil {
		return fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return nil
}

// RenderBlock writes a single named block (BlockAliases, BlockCodePages or
// BlockIconv).
func (e *Emitter) RenderBlock(w io.Writer, block string, tables Tables) error {
	if e.tmpl.Lookup(block) == nil {
		return fmt.Errorf("%w: template does not define block %q", ErrTemplate, block)
	}
	if err := e.tmpl.ExecuteTemplate(w, block, tables); err != nil {
		return fmt.Errorf("%w: block %q: %w", ErrTemplate, block, err)
	}
	return nil
}

// Bytes renders the complete document into memory.
func (e *Emitter) Bytes(tables Tables) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, tables); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var cppStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"cstr": cppStringEscaper.Replace,
	}
}
