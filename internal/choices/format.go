package choices

import (
	"strings"

	"qedit/internal/record"
)

// Format renders a raw choices value as display text. Anything that is
// not a list yields an empty string and elements that are not objects
// are skipped, so malformed source data degrades to less output rather
// than an error.
//
// The letter label for an incorrect choice comes from the choice's
// absolute position in the list, not from a count of incorrect choices
// seen so far. A list [wrong, correct, wrong] therefore renders as
// "A.", "✓", "C." with no "B." anywhere. Downstream data already
// depends on this labeling, so it must not be "fixed" by re-indexing.
func Format(value record.Value) string {
	elements, ok := value.([]record.Value)
	if !ok {
		return ""
	}
	var builder strings.Builder
	for idx, element := range elements {
		entry, ok := element.(*record.Record)
		if !ok {
			continue
		}
		builder.WriteString(blockPrefix(idx, isCorrect(entry)))
		builder.WriteString(choiceText(entry))
		builder.WriteString(BlockSeparator)
	}
	return strings.TrimSpace(builder.String())
}

// FormatList renders a typed choice list as display text using the
// same block layout as Format.
func FormatList(list []Choice) string {
	var builder strings.Builder
	for idx, choice := range list {
		builder.WriteString(blockPrefix(idx, choice.IsCorrect))
		builder.WriteString(choice.Text)
		builder.WriteString(BlockSeparator)
	}
	return strings.TrimSpace(builder.String())
}

func blockPrefix(idx int, correct bool) string {
	if correct {
		return CorrectMarker
	}
	return string(rune('A'+idx)) + ". "
}

func isCorrect(entry *record.Record) bool {
	value, _ := entry.Get("is_correct")
	return record.Truthy(value)
}

func choiceText(entry *record.Record) string {
	value, ok := entry.Get("text")
	if !ok {
		return ""
	}
	return record.Stringify(value)
}
