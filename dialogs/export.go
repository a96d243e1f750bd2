package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/airline-dash/export"
	"github.com/andareed/airline-dash/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportRequestedMsg struct{}
	ExportConfirmedMsg struct {
		Path   string
		Format export.Format
	}
	ExportCanceledMsg struct{}
	ExportErrorMsg    struct{ Err error }
	ExportOKMsg       struct{ Path string }
)

var exportFormats = []export.Format{export.JSON, export.YAML, export.XLSX}

type Export struct {
	input   textinput.Model
	format  export.Format
	visible bool
	// relative names are written here
	lastDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName, lastDir string, format export.Format) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Export{input: ti, format: format, visible: true, lastDir: lastDir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := strings.TrimSpace(d.input.Value())
			if val == "" {
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			path := val
			if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
				path = filepath.Join(d.lastDir, filepath.Base(path))
			}
			format := d.format
			logging.Debugf("ExportDialog: confirmed %s as %s", path, format)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path, Format: format} }
		case "esc":
			logging.Debugf("ExportDialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		case "tab":
			d.cycleFormat()
			return d, nil
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// cycleFormat moves to the next format and swaps the extension on the
// typed name to match.
func (d *Export) cycleFormat() {
	for i, f := range exportFormats {
		if f == d.format {
			d.format = exportFormats[(i+1)%len(exportFormats)]
			break
		}
	}
	val := d.input.Value()
	if ext := filepath.Ext(val); ext != "" {
		d.input.SetValue(strings.TrimSuffix(val, ext) + d.format.Ext())
	}
	if ext := filepath.Ext(d.input.Placeholder); ext != "" {
		d.input.Placeholder = strings.TrimSuffix(d.input.Placeholder, ext) + d.format.Ext()
	}
}

func (d Export) Format() export.Format { return d.format }
func (d Export) Value() string         { return d.input.Value() }

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	format := fmt.Sprintf("Format: %s", strings.ToUpper(d.format.String()))
	help := hintStyle.Render("enter to export • tab format • esc to cancel")
	return boxStyle.Width(60).Render(fmt.Sprintf("%s\n%s\n\n%s", d.input.View(), format, help))
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
