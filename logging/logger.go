// Package logging provides the default structured logger a Coordinator
// falls back to when none is supplied at construction.
package logging

import "github.com/sirupsen/logrus"

// NewLogger returns a logrus.FieldLogger configured at the given level. It
// is the default logger used by a coordinator that wasn't given one
// explicitly.
func NewLogger(level logrus.Level) logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(level)
	return l
}
