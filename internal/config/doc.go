// Package config loads, normalizes, and validates yyccgen configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the YYCC_ROOT environment
// variable. Relative paths in the [paths] section are anchored at the
// repository root so the same file works from any working directory.
//
// A Config is built once per process and handed to the generators as a
// value; nothing in this package keeps mutable global state.
package config
