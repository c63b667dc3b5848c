package tui

// errorBanner renders the surfaced error slot. It stays until another
// surfaced error replaces it or the state clears it.
type errorBanner struct {
	message string
}

func (b errorBanner) View() string {
	if b.message == "" {
		return ""
	}
	return errorStyle.Render("! " + b.message)
}
