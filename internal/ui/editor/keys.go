package editor

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browse-mode key bindings.
type keyMap struct {
	Select      key.Binding
	EditChoices key.Binding
	Material    key.Binding
	Title       key.Binding
	Explanation key.Binding
	Feedback    key.Binding
	Score       key.Binding
	Difficulty  key.Binding
	Preview     key.Binding
	LevelFilter key.Binding
	DiffFilter  key.Binding
	ScoreFilter key.Binding
	Sort        key.Binding
	ClearFilter key.Binding
	Export      key.Binding
	Save        key.Binding
	Reset       key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Select:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		EditChoices: key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "edit choices")),
		Material:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "question")),
		Title:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "title")),
		Explanation: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "explanation")),
		Feedback:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "feedback")),
		Score:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "score")),
		Difficulty:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "difficulty")),
		Preview:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		LevelFilter: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "level filter")),
		DiffFilter:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "difficulty filter")),
		ScoreFilter: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "score filter")),
		Sort:        key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "sort")),
		ClearFilter: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear filters")),
		Export:      key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "export powerpath")),
		Save:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
