package shell

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	log "github.com/sirupsen/logrus"

	"github.com/younsl/cloudctl/pkg/floatingip"
	"github.com/younsl/cloudctl/pkg/formatter"
)

// Env is what a running command sees of the process
type Env struct {
	Out     io.Writer
	ErrOut  io.Writer
	Printer *formatter.Printer
	Log     *log.Entry

	// Backend connects to the active cloud and selects the floating IP backend
	Backend func() (floatingip.Backend, error)

	// Spinner enables the progress spinner on ErrOut
	Spinner bool
}

// startSpinner shows a spinner with msg until the returned stop func is called
func (e *Env) startSpinner(msg string) (stop func()) {
	if !e.Spinner {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(e.ErrOut))
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}

// logEntry returns the command logger, falling back to the standard logger
func (e *Env) logEntry() *log.Entry {
	if e.Log == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return e.Log
}
