package main

type mode int

const (
	modeView mode = iota
	modeDialog
)

type uiState struct {
	mode       mode
	dialogKind footerMode
	noticeMsg  string
	noticeType string
	noticeSeq  int
	// tabSeq invalidates pending tab rebuilds when the user switches again
	// before the settle delay runs out.
	tabSeq int
	// settling is set from a tab switch until its rebuild runs.
	settling   bool
	yearCursor int
	bodyHeight int
}
