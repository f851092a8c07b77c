package buildscript

import (
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	cmdNeedsQuotes = regexp.MustCompile(`["\s]`)
	cmdMetaChars   = regexp.MustCompile(`[()%!^"<>&|]`)
)

// EscapeCmdArgument quotes arg for use on a cmd.exe command line.
//
// Arguments that are empty or contain whitespace or double quotes are wrapped
// in double quotes (inner quotes become \"), then every cmd.exe metacharacter
// is caret-escaped so the shell passes it through literally.
func EscapeCmdArgument(arg string) string {
	if arg == "" || cmdNeedsQuotes.MatchString(arg) {
		arg = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
	}
	return escapeForCmdExe(arg)
}

func escapeForCmdExe(arg string) string {
	return cmdMetaChars.ReplaceAllString(arg, `^$0`)
}

// EscapeShellArgument quotes arg as a single POSIX shell word.
func EscapeShellArgument(arg string) string {
	return shellquote.Join(arg)
}
