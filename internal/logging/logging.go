// Package logging configures the logrus logger shared by every command.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CLIFormatter renders entries as "LEVEL: message key=value ..." lines meant
// for a terminal's error stream
type CLIFormatter struct {
	// Timestamps prefixes every line with the entry time
	Timestamps bool
}

// Format implements logrus.Formatter
func (f *CLIFormatter) Format(entry *log.Entry) ([]byte, error) {
	const layout = "2006-01-02 15:04:05.000"

	b := bytes.Buffer{}

	if f.Timestamps {
		b.WriteString(entry.Time.Format(layout))
		b.WriteByte(' ')
	}

	b.WriteString(levelName(entry.Level))
	b.WriteString(": ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		// logger names routing, it is not part of the message
		if k == "logger" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(level log.Level) string {
	if level == log.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(level.String())
}

// Options selects the verbosity of the logger
type Options struct {
	Verbose bool
	Debug   bool
}

// New returns a logger writing to w at the level implied by opts
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&CLIFormatter{Timestamps: opts.Debug})

	switch {
	case opts.Debug:
		logger.SetLevel(log.DebugLevel)
	case opts.Verbose:
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
