package tui

// stateChangedMsg is sent after the dashboard state signalled a write.
type stateChangedMsg struct{}

// stateClosedMsg is sent once the state change channel is closed.
type stateClosedMsg struct{}

// opDoneMsg reports the end of a user-triggered device operation.
type opDoneMsg struct {
	op  string
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
