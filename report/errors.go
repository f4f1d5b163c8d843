package report

import (
	"fmt"
	"os"
)

// InternalError is an error that results from a bug or unexpected condition
// inside the compiler itself: it is never caused by erroneous input source.
// Internal errors are raised as panics so they immediately abort whatever
// construction is in flight; the driver catches them at the top of the run.
type InternalError struct {
	// The error message.
	Message string
}

func (ie *InternalError) Error() string {
	return ie.Message
}

// ICE raises an internal compiler error with the given formatted message.
// NB: This function never returns.
func ICE(msg string, args ...interface{}) {
	panic(&InternalError{Message: fmt.Sprintf(msg, args...)})
}

// AssertThat raises an internal compiler error with the given formatted
// message if the given condition does not hold.  It is used to validate
// invariants that earlier compiler phases are required to have established.
func AssertThat(cond bool, msg string, args ...interface{}) {
	if !cond {
		ICE(msg, args...)
	}
}

// -----------------------------------------------------------------------------

// ReportFatal reports a fatal error.  These are errors that should cause the
// backend to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a missing project
// file, an unreadable symbol graph, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}

// ReportWarning reports a backend warning.
func ReportWarning(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarning(fmt.Sprintf(msg, args...))
	}
}

// -----------------------------------------------------------------------------

// CatchErrors catches any internal errors raised by a `panic` during a stage
// of the backend.  Internal errors are always displayed regardless of log
// level: they indicate a compiler defect, not bad user input.
// NB: This function must ALWAYS be deferred.
func CatchErrors() {
	if x := recover(); x != nil {
		if ierr, ok := x.(*InternalError); ok {
			displayICE(ierr.Message)
			os.Exit(-1)
		} else {
			panic(x)
		}
	}
}
