package views

// ViewState holds the state every view model shares: terminal size and a
// one-line status message. Embed it to pick up the accessors.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status message shown at the bottom of the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows an error as the status message
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), true)
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}
