package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level uint8

// Levels mirror logrus ordering (lower is more severe).
const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func (lvl Level) logrus() logrus.Level {
	return logrus.Level(lvl)
}

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}

// Disable turns off all logging output.
func Disable() {
	logrus.SetOutput(io.Discard)
}

// SetOutput redirects all logging output to w.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}
