// Package buildscript renders the Windows batch and POSIX shell scripts that
// drive the CMake builds of YYCC.
//
// Settings carries the three user-facing knobs (C++ standard, documentation,
// position independent code) plus the repository root. The root is the only
// value interpolated into a command line, so it is escaped per platform:
// cmd.exe caret escaping for the batch script and POSIX single-word quoting
// for the shell script.
package buildscript
