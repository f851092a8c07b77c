package enctable

import (
	"fmt"
	"strings"
)

// LanguageToken is one normalized row of the encoding table.
type LanguageToken struct {
	// Name is the canonical lowercase encoding name.
	Name string
	// Aliases lists alternate lowercase names in table order.
	Aliases []string
	// CodePage is the Windows code page; only meaningful when HasCodePage is set.
	CodePage    uint32
	HasCodePage bool
	// IconvName is the iconv identifier, empty when the row has none.
	IconvName string
	// Line is the 1-based line number the token was read from.
	Line int
}

// HasIconv reports whether the token carries an iconv identifier.
func (t LanguageToken) HasIconv() bool {
	return t.IconvName != ""
}

// Layout selects the column arrangement of the input table.
type Layout string

const (
	// LayoutCompact is name, comma separated aliases, code page, iconv name.
	LayoutCompact Layout = "compact"
	// LayoutWide is name, code page, iconv name, then one alias per column.
	LayoutWide Layout = "wide"
)

// ParseLayout maps a user supplied layout name onto a Layout. An empty value
// selects LayoutCompact.
func ParseLayout(value string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(LayoutCompact):
		return LayoutCompact, nil
	case string(LayoutWide):
		return LayoutWide, nil
	default:
		return "", fmt.Errorf("unsupported table layout %q (want %q or %q)", value, LayoutCompact, LayoutWide)
	}
}
