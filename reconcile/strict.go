package reconcile

import (
	"fmt"

	"github.com/andareed/airline-dash/logging"
)

// invariant guards identifiers that come from closed enumerations. A
// violation is a bug: it panics in dashdebug builds and is logged and
// skipped otherwise.
func invariant(ok bool, format string, args ...any) bool {
	if ok {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if strictIDs {
		panic("reconcile: " + msg)
	}
	logging.Warnf("reconcile: ignoring %s", msg)
	return false
}
