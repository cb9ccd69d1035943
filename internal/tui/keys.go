package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Calculate key.Binding
	Up        key.Binding
	Down      key.Binding
	Copy      key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "results")),
		Copy:      key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter/y", "copy")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "edit timer")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// forFocus enables only the bindings that apply while f has focus, so the
// help footer reflects what a key press will do.
func (k keyMap) forFocus(f Focus) keyMap {
	inInput := f == FocusInput
	k.Calculate.SetEnabled(inInput)
	k.ForceQuit.SetEnabled(inInput)
	k.Up.SetEnabled(!inInput)
	k.Copy.SetEnabled(!inInput)
	k.Back.SetEnabled(!inInput)
	k.Quit.SetEnabled(!inInput)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Copy, k.Up, k.Down, k.Back, k.NextTab, k.ForceQuit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Calculate, k.Copy, k.Back},
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.ForceQuit, k.Quit},
	}
}
