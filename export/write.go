package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andareed/airline-dash/dataset"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format int

const (
	JSON Format = iota
	YAML
	XLSX
)

var formatExts = []string{"json", "yaml", "xlsx"}

func (f Format) String() string {
	if f < JSON || f > XLSX {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return formatExts[f]
}

func (f Format) Ext() string { return "." + f.String() }

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "xlsx", "excel":
		return XLSX, nil
	}
	return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath picks the format from the file extension, falling back to
// def when the path has none.
func FormatForPath(path string, def Format) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return def, nil
	}
	return ParseFormat(ext)
}

// DefaultFileName is the download name the dashboard has always used.
func DefaultFileName(now time.Time, f Format) string {
	return fmt.Sprintf("indian-airlines-dashboard-%d%s", now.UnixMilli(), f.Ext())
}

// Write encodes p to w. The spreadsheet needs ds for its per-airline sheets.
func Write(w io.Writer, p Payload, ds *dataset.Dataset, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case XLSX:
		return writeXLSX(w, p, ds)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Marshal is Write into memory, for the clipboard.
func Marshal(p Payload, ds *dataset.Dataset, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, p, ds, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes p to path, choosing the format from the extension.
func WriteFile(path string, p Payload, ds *dataset.Dataset, def Format) (Format, error) {
	f, err := FormatForPath(path, def)
	if err != nil {
		return f, err
	}
	if filepath.Ext(path) == "" {
		path += f.Ext()
	}
	data, err := Marshal(p, ds, f)
	if err != nil {
		return f, err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return f, fmt.Errorf("write export file: %w", err)
	}
	return f, nil
}
