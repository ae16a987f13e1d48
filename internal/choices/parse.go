package choices

import (
	"regexp"
	"strings"

	"qedit/internal/record"
)

var letterPrefix = regexp.MustCompile(`^[A-Z]\.\s`)

// Parse reconstructs a choice list from display text. It is total:
// every input yields some list, possibly empty. Blocks are classified
// in priority order: the correct marker first, then a letter label,
// and finally verbatim text as an incorrect choice, which is how
// free-form edits that dropped the expected prefix survive a save.
//
// A genuine choice whose text starts with "✓ " or a letter label is
// misclassified; the format has no escape mechanism.
func Parse(text string) []Choice {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var list []Choice
	for _, block := range strings.Split(trimmed, BlockSeparator) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		switch {
		case strings.HasPrefix(block, CorrectMarker):
			list = append(list, Choice{
				Text:      strings.TrimSpace(block[len(CorrectMarker):]),
				IsCorrect: true,
			})
		default:
			if match := letterPrefix.FindString(block); match != "" {
				list = append(list, Choice{Text: strings.TrimSpace(block[len(match):])})
				continue
			}
			list = append(list, Choice{Text: block})
		}
	}
	return list
}

// ToValue converts a typed choice list into the record model's list
// shape, as stored in a question's choices field.
func ToValue(list []Choice) record.Value {
	elements := make([]record.Value, 0, len(list))
	for _, choice := range list {
		entry := record.New()
		entry.Set("text", choice.Text)
		entry.Set("is_correct", choice.IsCorrect)
		elements = append(elements, entry)
	}
	return elements
}

// FromValue extracts a typed choice list from a raw choices value.
// Non-list values yield nil and non-object elements are skipped,
// mirroring Format.
func FromValue(value record.Value) []Choice {
	elements, ok := value.([]record.Value)
	if !ok {
		return nil
	}
	var list []Choice
	for _, element := range elements {
		entry, ok := element.(*record.Record)
		if !ok {
			continue
		}
		list = append(list, Choice{Text: choiceText(entry), IsCorrect: isCorrect(entry)})
	}
	return list
}
