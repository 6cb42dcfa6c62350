// Package logutil provides logger plumbing shared by the non-pure parts of
// the editor. The core packages do no logging of their own.
package logutil

import (
	"io"
	"log"
)

// Discard is a Logger that ignores all loggings. It is the default logger of
// components that accept one.
var Discard = log.New(io.Discard, "", 0)

// New creates a Logger writing to w with the given prefix and the standard
// time flags.
func New(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags)
}
