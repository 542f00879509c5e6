// Package logging wraps the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "vecbind"})

// SetLevel sets the level from a name such as "debug" or "warn". Unknown
// names fall back to info.
func SetLevel(name string) {
	level, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		level = clog.InfoLevel
	}
	L.SetLevel(level)
}

// SetOutput redirects the logger.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
