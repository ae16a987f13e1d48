// Package choices implements the editable text format for answer
// choice lists. A list renders as blocks separated by a blank line:
// correct choices carry a "✓ " marker and incorrect ones a letter
// label derived from their position in the list. Parsing is the
// canonical direction; formatting is a rendering of its output.
package choices

// Choice is one answer option.
type Choice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

const (
	// CorrectMarker prefixes a correct choice's block.
	CorrectMarker = "✓ "
	// BlockSeparator separates choice blocks in display text.
	BlockSeparator = "\n\n"
)
