package markdown

import (
	"strings"
	"testing"
)

func renderPlain(t *testing.T, input string) string {
	t.Helper()
	return Render(input, Options{Width: 40, NoColor: true})
}

// TestRenderEmpty verifies blank input renders to nothing.
func TestRenderEmpty(t *testing.T) {
	if got := renderPlain(t, "   \n\t\n"); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

// TestRenderParagraphReflows verifies soft line breaks become spaces
// so hard-wrapped source reflows.
func TestRenderParagraphReflows(t *testing.T) {
	got := renderPlain(t, "first line\nsecond line")
	if got != "first line second line" {
		t.Fatalf("expected reflowed paragraph, got %q", got)
	}
}

// TestRenderWraps verifies long paragraphs wrap at the requested
// width.
func TestRenderWraps(t *testing.T) {
	got := Render(strings.Repeat("word ", 20), Options{Width: 20, NoColor: true})
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected wrapped output, got %q", got)
	}
}

// TestRenderHeadingAndParagraph verifies block separation.
func TestRenderHeadingAndParagraph(t *testing.T) {
	got := renderPlain(t, "## Solving\n\nIsolate the variable.")
	if got != "Solving\n\nIsolate the variable." {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestRenderUnorderedList verifies bullets with single-newline item
// separation.
func TestRenderUnorderedList(t *testing.T) {
	got := renderPlain(t, "- add seven\n- divide by two")
	if got != "• add seven\n• divide by two" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestRenderOrderedList verifies ordinals advance and honor the start
// number.
func TestRenderOrderedList(t *testing.T) {
	got := renderPlain(t, "1. first\n2. second")
	if got != "1. first\n2. second" {
		t.Fatalf("unexpected output: %q", got)
	}
	got = renderPlain(t, "3. third\n4. fourth")
	if got != "3. third\n4. fourth" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestRenderCodeBlock verifies fenced code is indented and not
// reflowed.
func TestRenderCodeBlock(t *testing.T) {
	got := renderPlain(t, "```\nx = 7\ny = 2\n```")
	if got != "  x = 7\n  y = 2" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestRenderBlockquote verifies the quote gutter.
func TestRenderBlockquote(t *testing.T) {
	got := renderPlain(t, "> remember the sign")
	if got != "│ remember the sign" {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestRenderLatexPassthrough verifies inline math survives verbatim,
// the property the preview pane depends on.
func TestRenderLatexPassthrough(t *testing.T) {
	material := "If $-4x + 7 = 10x$, what is the value of $12x - 1$?"
	got := renderPlain(t, material)
	if got != material {
		t.Fatalf("latex altered: %q", got)
	}
}

// TestRenderMixedDocument verifies the shape the preview pane builds:
// heading, material, subheadings, and a choices block.
func TestRenderMixedDocument(t *testing.T) {
	doc := "## Find value\n\nSolve for $x$.\n\n#### Choices\n\nA. $2$\n\n✓ $5$"
	got := renderPlain(t, doc)
	want := "Find value\n\nSolve for $x$.\n\nChoices\n\nA. $2$\n\n✓ $5$"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}
