package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (letter fallbacks for arrows).
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Toggle key.Binding
	Wide   key.Binding

	ZoomIn, ZoomOut key.Binding
	Offsets         key.Binding
	Clear           key.Binding

	Export, Import key.Binding
	About          key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle pixel")),
		Wide:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "narrow/wide")),

		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase size")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrease size")),
		Offsets: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "show offsets")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),

		Export: key.NewBinding(key.WithKeys("ctrl+c", "y"), key.WithHelp("ctrl+c", "copy to clipboard")),
		Import: key.NewBinding(key.WithKeys("ctrl+v", "p"), key.WithHelp("ctrl+v", "import from clipboard")),
		About:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Toggle, km.Wide, km.Export, km.Import}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.Toggle, km.Wide, km.Clear},
		{km.ZoomIn, km.ZoomOut, km.Offsets},
		{km.Export, km.Import, km.About},
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.Toggle, km.Wide, km.ZoomIn, km.ZoomOut, km.Offsets, km.Clear,
		km.Export, km.Import, km.About,
	} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
