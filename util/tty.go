// tty.go - terminal detection.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package util

import (
	"os"

	"github.com/nogoegst/terminal"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return terminal.IsTerminal(int(f.Fd()))
}
