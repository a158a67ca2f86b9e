package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors are reported in the status line and never end the session.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
