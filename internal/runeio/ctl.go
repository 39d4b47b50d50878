// Package runeio renders runes for debug output the way a terminal
// would echo them, trimmed down from the control-character handling a
// full line-editing REPL needs to just the caret form the runtime
// dumper prints non-printable characters in.
package runeio

// CaretForm computes the ^-escaped printable form of a C0/C1 control
// rune (e.g. "^C" for 0x03, "^[" for ESC), or "" if r isn't a control
// character.
func CaretForm(r rune) string {
	switch {
	case r < 0x20 || r == 0x7f:
		return "^" + string(r^0x40)
	case 0x80 <= r && r <= 0x9f:
		return "^[" + string(r^0xc0)
	default:
		return ""
	}
}
