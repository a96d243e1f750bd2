package main

// footerMode is what the footer's mode pill shows.
type footerMode int

const (
	footerDashboard footerMode = iota
	footerPicker
	footerExport
	footerHelp
)

func (f footerMode) label() string {
	switch f {
	case footerPicker:
		return "AIRLINES"
	case footerExport:
		return "EXPORT"
	case footerHelp:
		return "HELP"
	default:
		return "DASHBOARD"
	}
}

func (f footerMode) hints() string {
	switch f {
	case footerPicker:
		return "space toggle   a all   n none   enter/esc close"
	case footerExport:
		return "enter export   tab format   esc cancel"
	case footerHelp:
		return "enter/esc return"
	default:
		return "(? help · 1-5 tabs · p airlines · r years · t chart · e export · y copy)"
	}
}

func (m *model) footerMode() footerMode {
	if m.ui.mode == modeDialog {
		return m.ui.dialogKind
	}
	return footerDashboard
}
