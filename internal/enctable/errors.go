package enctable

import "errors"

var (
	// ErrInputNotFound marks a missing or unreadable source table.
	ErrInputNotFound = errors.New("encoding table not found")
	// ErrEmptyTable marks an input without even a header line.
	ErrEmptyTable = errors.New("encoding table is empty")
	// ErrMalformedRow marks a data row that cannot be turned into a token.
	ErrMalformedRow = errors.New("malformed encoding table row")
	// ErrAliasCollision is returned in strict mode when aliases are ambiguous.
	ErrAliasCollision = errors.New("ambiguous encoding alias")
	// ErrOutputWrite marks a failure to replace the generated source file.
	ErrOutputWrite = errors.New("write generated table")
	// ErrTemplate marks a template that failed to parse or execute.
	ErrTemplate = errors.New("render encoding table template")
)
