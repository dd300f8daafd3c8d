package logging

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const Stacktrace = "stacktrace"

//stackTracer is implemented by errors created or wrapped with github.com/pkg/errors
type stackTracer interface {
	StackTrace() errors.StackTrace
}

//WithStacktrace adds err and, if one is available, the innermost recorded stack trace as fields to entry
func WithStacktrace(entry *log.Entry, err error) *log.Entry {
	entry = entry.WithError(err)
	if stack := ExtractStack(err); stack != nil {
		entry = entry.WithField(Stacktrace, stack)
	}
	return entry
}

//ExtractStack walks down the chain of wrapped errors and returns the deepest errors.StackTrace,
//which points closest to where the error originated. nil if there is none
func ExtractStack(err error) errors.StackTrace {
	var stack errors.StackTrace
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			stack = st.StackTrace()
		}
		err = errors.Unwrap(err)
	}
	return stack
}
