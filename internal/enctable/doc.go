// Package enctable turns the encoding alias table shipped with the YYCC
// sources into C++ lookup tables.
//
// The input is a tab-delimited text file: one header line followed by one row
// per canonical encoding name. Parse normalizes every row into a
// LanguageToken, BuildTables flattens the tokens into the three tables the C++
// side consumes (alias -> name, name -> Windows code page, name -> iconv
// identifier), and Render writes them through a text/template so the
// surrounding C++ syntax can follow either the legacy or the current source
// dialect.
//
// Generate wires those steps to the filesystem. Nothing is written unless the
// whole table parsed and rendered cleanly, and the destination is replaced
// atomically so a failed run never leaves a truncated source file behind.
package enctable
