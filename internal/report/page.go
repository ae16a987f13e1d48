package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"qedit/internal/dataset"
)

const pageStyle = `body{font-family:sans-serif;max-width:900px;margin:2rem auto;padding:0 1rem}
h1{color:#1e88e5}
.question{border:1px solid #ddd;border-radius:6px;padding:1rem;margin-bottom:1rem}
.meta{color:#666;font-size:0.85rem;margin-bottom:0.5rem}
.choice{margin:0.3rem 0}
.correct{color:#2e7d32;font-weight:bold}
.explanation{background:#f5f5f5;border-radius:4px;padding:0.6rem;margin-top:0.6rem;white-space:pre-wrap}`

// reportPage is the top-level report component.
func reportPage(title string, items []*dataset.Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n<h1>%s</h1>\n",
			templ.EscapeString(title), pageStyle, templ.EscapeString(title)); err != nil {
			return err
		}
		for _, item := range items {
			if err := questionSection(item).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// questionSection renders one question with its choices, correct ones
// marked, and the explanation when present.
func questionSection(item *dataset.Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		q := item.Question
		title := q.Title()
		if title == "" {
			title = fmt.Sprintf("Question %d", item.Index+1)
		}
		if _, err := fmt.Fprintf(w, "<div class=\"question\">\n<h2>%s</h2>\n", templ.EscapeString(title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<div class=\"meta\">difficulty %d", q.Difficulty()); err != nil {
			return err
		}
		if level := q.Level(); level != "" {
			if _, err := fmt.Fprintf(w, " · %s", templ.EscapeString(level)); err != nil {
				return err
			}
		}
		if score := q.ScoreText(); score != "" {
			if _, err := fmt.Fprintf(w, " · score %s", templ.EscapeString(score)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</div>\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<p>%s</p>\n", templ.EscapeString(q.Material())); err != nil {
			return err
		}
		for idx, choice := range q.Choices() {
			class := "choice"
			label := string(rune('A'+idx)) + "."
			if choice.IsCorrect {
				class = "choice correct"
				label = "✓"
			}
			if _, err := fmt.Fprintf(w, "<div class=\"%s\">%s %s</div>\n", class, label, templ.EscapeString(choice.Text)); err != nil {
				return err
			}
		}
		if explanation := q.Explanation(); explanation != "" {
			if _, err := fmt.Fprintf(w, "<div class=\"explanation\">%s</div>\n", templ.EscapeString(explanation)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}
