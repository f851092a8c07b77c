package enctable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	compactFieldCount = 4
	wideMinFieldCount = 3
	maxLineBytes      = 1 << 20
)

// Parse reads an encoding table and returns its rows in input order. The
// first line is a header and is always skipped. Any malformed row aborts the
// parse; no partial result is returned.
func Parse(r io.Reader, layout Layout) ([]LanguageToken, error) {
	if layout == "" {
		layout = LayoutCompact
	}
	p := &parser{layout: layout, lower: cases.Lower(language.Und)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var tokens []LanguageToken
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		token, err := p.parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: exceeds %d bytes", ErrMalformedRow, lineNo+1, maxLineBytes)
		}
		return nil, fmt.Errorf("read encoding table: %w", err)
	}
	if lineNo == 0 {
		return nil, ErrEmptyTable
	}
	return tokens, nil
}

type parser struct {
	layout Layout
	lower  cases.Caser
}

func (p *parser) parseLine(line string, lineNo int) (LanguageToken, error) {
	fields := strings.Split(line, "\t")

	var name, codePage, iconv string
	var aliases []string
	switch p.layout {
	case LayoutCompact:
		if len(fields) != compactFieldCount {
			return LanguageToken{}, rowError(lineNo, "expected %d tab separated fields, got %d", compactFieldCount, len(fields))
		}
		name, codePage, iconv = fields[0], fields[2], fields[3]
		aliases = strings.Split(fields[1], ",")
	case LayoutWide:
		if len(fields) < wideMinFieldCount {
			return LanguageToken{}, rowError(lineNo, "expected at least %d tab separated fields, got %d", wideMinFieldCount, len(fields))
		}
		name, codePage, iconv = fields[0], fields[1], fields[2]
		aliases = fields[3:]
	default:
		return LanguageToken{}, fmt.Errorf("unsupported table layout %q", p.layout)
	}

	token := LanguageToken{
		Name:      p.normalize(name),
		Aliases:   p.normalizeAliases(aliases),
		IconvName: strings.TrimSpace(iconv),
		Line:      lineNo,
	}
	if token.Name == "" {
		return LanguageToken{}, rowError(lineNo, "empty encoding name")
	}
	if cp := strings.TrimSpace(codePage); cp != "" {
		value, err := strconv.ParseUint(cp, 10, 32)
		if err != nil {
			return LanguageToken{}, rowError(lineNo, "code page %q is not an unsigned integer", cp)
		}
		token.CodePage = uint32(value)
		token.HasCodePage = true
	}
	return token, nil
}

func (p *parser) normalize(value string) string {
	return p.lower.String(strings.TrimSpace(value))
}

// normalizeAliases lowercases and trims every alias, dropping blanks and
// repeats while keeping first-seen order.
func (p *parser) normalizeAliases(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, alias := range raw {
		alias = p.normalize(alias)
		if alias == "" {
			continue
		}
		if _, dup := seen[alias]; dup {
			continue
		}
		seen[alias] = struct{}{}
		out = append(out, alias)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func rowError(lineNo int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedRow, lineNo, fmt.Sprintf(format, args...))
}
