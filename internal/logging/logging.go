// Package logging holds the logger defaults shared by the generator stages.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops every record.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// OrDiscard returns log, or a Discard logger when log is nil.
func OrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	return Discard()
}
