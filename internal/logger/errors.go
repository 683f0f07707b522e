package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")
)

// ErrorHandler reports events zerolog failed to write, a full disk for a
// rolling file for example, on stderr and in the write failure counter.
func ErrorHandler(err error) {
	if writeFailures != nil {
		writeFailures.Inc()
	}

	_, _ = fmt.Fprintf(os.Stderr, "storefront: could not write log event: %v\n", err)
}
