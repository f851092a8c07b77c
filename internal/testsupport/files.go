package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TableHeader is the header line written by WriteTable.
const TableHeader = "Name\tAlias\tCode Page\tIconv Identifier"

// WriteTable writes a tab separated encoding table with a header line
// followed by rows. Each row is written as given plus a trailing newline.
func WriteTable(t testing.TB, path string, rows ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var b strings.Builder
	b.WriteString(TableHeader)
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
