package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qedit/internal/dataset"
	"qedit/internal/record"
)

func reportFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	payload := `[
  {
    "material": "Is $x < 5$ when $x = 3$?",
    "choices": [
      {"text": "no", "is_correct": false},
      {"text": "yes", "is_correct": true}
    ],
    "explanation": "Substitute & compare.",
    "question_title": "Inequality <check>",
    "level_title": "Inequalities",
    "score_rating": "6.5"
  },
  {
    "material": "Untitled question body",
    "choices": [{"text": "only", "is_correct": false}]
  }
]`
	records, err := record.DecodeArray([]byte(payload))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return dataset.FromRecords("review.json", records)
}

// TestBuildHTML verifies document structure, choice markup, and
// metadata rendering.
func TestBuildHTML(t *testing.T) {
	ds := reportFixture(t)
	html, err := BuildHTML("review.json", ds.Items())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>review.json</title>",
		"<h2>Inequality &lt;check&gt;</h2>",
		"difficulty 1 · Inequalities · score 6.5",
		`<div class="choice">A. no</div>`,
		`<div class="choice correct">✓ yes</div>`,
		`<div class="explanation">Substitute &amp; compare.</div>`,
		"<h2>Question 2</h2>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %s:\n%s", want, html)
		}
	}
}

// TestBuildHTMLEscapesMaterial verifies markup in question text cannot
// break out of the page.
func TestBuildHTMLEscapesMaterial(t *testing.T) {
	records, err := record.DecodeArray([]byte(`[{"material": "<script>alert(1)</script>", "choices": []}]`))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	ds := dataset.FromRecords("x.json", records)
	html, err := BuildHTML("x.json", ds.Items())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("material not escaped:\n%s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped material:\n%s", html)
	}
}

// TestWrite verifies the report lands on disk.
func TestWrite(t *testing.T) {
	ds := reportFixture(t)
	path := filepath.Join(t.TempDir(), "review_report.html")
	if err := Write(path, "review.json", ds.Items()); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Fatalf("unexpected file start: %q", string(data[:20]))
	}
}
