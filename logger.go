package tem104

import (
	"fmt"
	"log"
	"os"
)

// leveledLogger is the logging contract used throughout the client: a
// thin, prefixed wrapper around either a caller-supplied *log.Logger or
// stdout, with no timestamp decoration of its own.
type leveledLogger interface {
	Info(msg string)
	Infof(format string, args ...interface{})
	Warning(msg string)
	Warningf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
}

var _ leveledLogger = (*logger)(nil)

type logger struct {
	prefix string
	sink   *log.Logger
}

// newLogger returns a logger prefixed with prefix. If custom is nil, output
// goes to stdout with no extra decoration.
func newLogger(prefix string, custom *log.Logger) (l *logger) {
	l = &logger{prefix: prefix}

	if custom != nil {
		l.sink = custom
	} else {
		l.sink = log.New(os.Stdout, "", 0)
	}

	return
}

func (l *logger) Info(msg string) {
	l.sink.Printf("%s [info]: %s", l.prefix, msg)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.sink.Printf("%s [info]: %s", l.prefix, fmt.Sprintf(format, args...))
}

func (l *logger) Warning(msg string) {
	l.sink.Printf("%s [warn]: %s", l.prefix, msg)
}

func (l *logger) Warningf(format string, args ...interface{}) {
	l.sink.Printf("%s [warn]: %s", l.prefix, fmt.Sprintf(format, args...))
}

func (l *logger) Error(msg string) {
	l.sink.Printf("%s [error]: %s", l.prefix, msg)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.sink.Printf("%s [error]: %s", l.prefix, fmt.Sprintf(format, args...))
}
