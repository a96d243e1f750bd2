package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/airline-dash/logging"
	"github.com/muesli/termenv"
)

var ErrOSC52Unsupported = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

var (
	osc52Out  io.Writer = os.Stdout
	osc52Term           = func() string { return os.Getenv("TERM") }
	osc52TTY            = func() bool { return isTTY(os.Stdout) }
)

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return ErrOSC52Unsupported
	}
	termenv.NewOutput(osc52Out).Copy(text)
	logging.Infof("clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := osc52Term(); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return osc52TTY()
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
