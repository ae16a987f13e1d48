package editor

import (
	"fmt"
	"strings"

	"qedit/internal/dataset"
	"qedit/internal/ui/markdown"
)

func (m Model) openPreview() Model {
	items := m.ds.Selected()
	if len(items) == 0 {
		if item := m.currentItem(); item != nil {
			items = []*dataset.Item{item}
		}
	}
	if len(items) == 0 {
		m.setMessage("Nothing to preview.", true)
		return m
	}
	m.preview.SetContent(previewContent(items, markdown.Options{
		Width:   m.preview.Width,
		NoColor: m.noColor,
	}))
	m.preview.GotoTop()
	m.mode = modePreview
	return m
}

// previewContent renders selected questions as a markdown document:
// title, material, the choice blocks, and the explanation when one is
// set.
func previewContent(items []*dataset.Item, opts markdown.Options) string {
	var doc strings.Builder
	for i, item := range items {
		if i > 0 {
			doc.WriteString("\n\n---\n\n")
		}
		q := item.Question
		title := q.Title()
		if title == "" {
			title = fmt.Sprintf("Question %d", item.Index+1)
		}
		doc.WriteString("## " + title + "\n\n")
		doc.WriteString(q.Material() + "\n\n")
		doc.WriteString("#### Choices\n\n")
		doc.WriteString(q.DisplayChoices() + "\n")
		if explanation := q.Explanation(); explanation != "" {
			doc.WriteString("\n#### Explanation\n\n")
			doc.WriteString(explanation + "\n")
		}
	}
	return markdown.Render(doc.String(), opts)
}
