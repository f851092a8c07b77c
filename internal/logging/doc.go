// Package logging assembles the structured slog loggers used by yyccgen.
//
// It owns the console and JSON handlers, maps configured level names onto slog
// levels, and defines the field keys generator code logs with. Console output
// colours level labels only when writing to a terminal, so piping the CLI into
// a file or CI log keeps plain text. A no-op logger is provided for tests and
// library callers that do not care about diagnostics.
package logging
