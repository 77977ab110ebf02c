package ui

// Layout constants define the geometry of the TUI elements.
const (
	LayoutChromeHeight = 2 // Title line + bottom border
	LayoutFooterHeight = 2 // Top border + quick commands/status
	LayoutSideMargin   = 1 // Left + Right padding of the transcript

	// Below this height the footer is dropped to keep the transcript usable
	minHeightForFooter = 12

	modalMaxWidth = 72
)

// Layout controls the visibility of UI elements based on terminal size.
type Layout struct {
	ShowFooter     bool
	ViewportWidth  int
	ViewportHeight int
}

// CalculateLayout sizes the transcript between the chrome bar and footer.
func CalculateLayout(termW, termH int) Layout {
	l := Layout{
		ShowFooter:    termH >= minHeightForFooter,
		ViewportWidth: max(1, termW-2*LayoutSideMargin),
	}
	h := termH - LayoutChromeHeight
	if l.ShowFooter {
		h -= LayoutFooterHeight
	}
	l.ViewportHeight = max(1, h)
	return l
}

// modalWidth is the inner width available to modal content.
func (m Model) modalWidth() int {
	if m.termWidth == 0 {
		return modalMaxWidth - 8
	}
	return max(20, min(m.termWidth-8, modalMaxWidth)-6)
}

// resize applies the current terminal size to the viewport and modals.
func (m *Model) resize() {
	l := CalculateLayout(m.termWidth, m.termHeight)
	m.viewport.Width = l.ViewportWidth
	m.viewport.Height = l.ViewportHeight
	if m.overlay == contactOverlay {
		m.contact.resize(m.modalWidth())
	}
	m.refreshViewport()
}
