package choices

import (
	"testing"

	"qedit/internal/record"
)

func choiceValue(text string, correct bool) record.Value {
	entry := record.New()
	entry.Set("text", text)
	entry.Set("is_correct", correct)
	return entry
}

// TestFormatListBasic verifies letter labels and the correct marker.
func TestFormatListBasic(t *testing.T) {
	display := FormatList([]Choice{
		{Text: "x"},
		{Text: "y", IsCorrect: true},
	})
	if display != "A. x\n\n✓ y" {
		t.Fatalf("unexpected display text: %q", display)
	}
}

// TestFormatListEmpty verifies an empty list renders as an empty
// string.
func TestFormatListEmpty(t *testing.T) {
	if display := FormatList(nil); display != "" {
		t.Fatalf("expected empty display text, got %q", display)
	}
}

// TestFormatLetterSkipsCorrectPositions verifies letters come from the
// absolute list position: a correct choice consumes its letter without
// showing it.
func TestFormatLetterSkipsCorrectPositions(t *testing.T) {
	display := FormatList([]Choice{
		{Text: "w"},
		{Text: "c", IsCorrect: true},
		{Text: "w2"},
	})
	if display != "A. w\n\n✓ c\n\nC. w2" {
		t.Fatalf("expected letter B to be skipped, got %q", display)
	}
}

// TestFormatNonListValue verifies non-list input degrades to an empty
// string.
func TestFormatNonListValue(t *testing.T) {
	for _, value := range []record.Value{nil, "text", record.New()} {
		if display := Format(value); display != "" {
			t.Fatalf("expected empty display for %T, got %q", value, display)
		}
	}
}

// TestFormatSkipsNonObjectElements verifies garbage elements vanish
// while their position still consumes a letter.
func TestFormatSkipsNonObjectElements(t *testing.T) {
	display := Format([]record.Value{
		choiceValue("a", false),
		"garbage",
		choiceValue("b", true),
	})
	if display != "A. a\n\n✓ b" {
		t.Fatalf("unexpected display text: %q", display)
	}

	display = Format([]record.Value{
		choiceValue("a", false),
		"garbage",
		choiceValue("b", false),
	})
	if display != "A. a\n\nC. b" {
		t.Fatalf("expected the skipped element to keep its letter slot, got %q", display)
	}
}

// TestFormatMissingFields verifies absent text renders empty and
// absent is_correct means incorrect.
func TestFormatMissingFields(t *testing.T) {
	entry := record.New()
	display := Format([]record.Value{entry})
	if display != "A." {
		t.Fatalf("unexpected display text: %q", display)
	}
}
