// Package clipboard copies export payloads to the system clipboard, falling
// back to the terminal's OSC 52 sequence over SSH or when no clipboard tool
// is installed.
package clipboard

import (
	"fmt"

	"github.com/andareed/airline-dash/logging"
	"github.com/atotto/clipboard"
)

// Method names how the text reached the clipboard.
type Method string

const (
	System Method = "system"
	OSC52  Method = "osc52"
)

var writeSystem = clipboard.WriteAll

// Copy places text on the clipboard.
func Copy(text string) (Method, error) {
	if clipboard.Unsupported {
		logging.Debugf("clipboard: no system clipboard tool, trying OSC52")
	} else if err := writeSystem(text); err == nil {
		logging.Infof("clipboard: copied %d bytes", len(text))
		return System, nil
	} else {
		logging.Warnf("clipboard: system copy failed: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return OSC52, nil
}
