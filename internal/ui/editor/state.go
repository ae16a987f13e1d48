package editor

import (
	"qedit/internal/dataset"
)

// mode is the editor's input mode.
type mode int

const (
	modeBrowse mode = iota
	modeEditLine
	modeEditChoices
	modeScoreRange
	modePreview
	modeConfirm
)

// editField names the question field a line editor targets.
type editField int

const (
	fieldMaterial editField = iota
	fieldTitle
	fieldExplanation
	fieldFeedback
	fieldScore
	fieldDifficulty
)

// label returns the prompt label for a field.
func (field editField) label() string {
	switch field {
	case fieldMaterial:
		return "Question"
	case fieldTitle:
		return "Title"
	case fieldExplanation:
		return "Explanation"
	case fieldFeedback:
		return "Feedback"
	case fieldScore:
		return "Score"
	case fieldDifficulty:
		return "Difficulty"
	default:
		return ""
	}
}

// confirmAction names what a pending y/n confirmation will do.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmReset
	confirmQuit
)

// viewState captures the browse surface's derived state.
type viewState struct {
	filter  dataset.Filter
	order   dataset.Order
	visible []*dataset.Item

	// Cycle positions for the level/difficulty filters; -1 means the
	// dimension is off.
	levelIdx int
	diffIdx  int

	dirty   bool
	message string
	isError bool
}

// counts summarizes the dataset for the header line.
type counts struct {
	shown    int
	total    int
	selected int
}

func countsFor(ds *dataset.Dataset, visible []*dataset.Item) counts {
	return counts{
		shown:    len(visible),
		total:    ds.Len(),
		selected: len(ds.Selected()),
	}
}
