// Package stringtest provides helpers for building and comparing expected
// terminal output in tests.
package stringtest

import (
	"regexp"
	"strings"
)

// csi matches ANSI control sequences such as SGR color codes and cursor
// movement.
var csi = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected grids row by row.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"@@",
//		"  ",
//	) // -> "@@\n  "
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// StripANSI removes ANSI control sequences from s, leaving the printable
// text.
func StripANSI(s string) string {
	return csi.ReplaceAllString(s, "")
}
