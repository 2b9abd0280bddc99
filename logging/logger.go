// Package logging is the central log of the command-line front end: plain
// messages to one writer, errors to another, and verbose detail gated by a
// level.
package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

type Logger struct {
	// Mutex orders writes to both sinks, so messages from a background run
	// and from the foreground never interleave mid-line
	mu        sync.Mutex
	out       *log.Logger
	errs      *log.Logger
	verbosity int
}

func New(out, errs io.Writer, verbosity int) *Logger {
	return &Logger{
		out:       log.New(out, "", 0),
		errs:      log.New(errs, "", 0),
		verbosity: verbosity,
	}
}

// Default writes to stdout and stderr.
func Default(verbosity int) *Logger {
	return New(os.Stdout, os.Stderr, verbosity)
}

// Discard drops everything.
func Discard() *Logger {
	return New(io.Discard, io.Discard, 0)
}

// Your generic printf to let user see things
func (l *Logger) Printf(s string, a ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf(s, a...)
}

// As generic as printf, but goes to the error sink. Does not stop anything.
func (l *Logger) Error(s string, a ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs.Printf(s, a...)
}

// Verbose prints only when the configured verbosity reaches level.
func (l *Logger) Verbose(level int, s string, a ...interface{}) {
	if level > l.verbosity {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf(s, a...)
}

func (l *Logger) Verbosity() int { return l.verbosity }

// Writer exposes the plain sink for multi-line reports. Callers must not
// hold it across a Printf.
func (l *Logger) Writer() io.Writer { return l.out.Writer() }
