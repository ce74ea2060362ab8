// Package errors holds the CLI exit path. Fatal errors go to the rotating
// log and to stderr with a uniform "Error: " prefix before the process exits.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/hamcare-app/hamcare/internal/logger"
)

// Seams for tests.
var (
	out      io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// Fatal logs err, prints it to stderr and exits with status 1. A nil err is
// a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintf(out, "Error: %v\n", err)
	exitFunc(1)
}

// Fatalf is Fatal with a format string. It always exits.
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
