package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"qedit/internal/dataset"
)

func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

func defaultColumns() []table.Column {
	return columnsForWidth(120)
}

// columnsForWidth distributes the window width over the table columns,
// giving the material column whatever remains after the fixed ones.
func columnsForWidth(width int) []table.Column {
	fixed := 4 + 4 + 8 + 6 + 5 + 14
	material := max(width-fixed-26, 20)
	return []table.Column{
		{Title: "Sel", Width: 4},
		{Title: "#", Width: 4},
		{Title: "Question", Width: material},
		{Title: "Choices", Width: 24},
		{Title: "Score", Width: 6},
		{Title: "Diff", Width: 5},
		{Title: "Level", Width: 14},
	}
}

func rowsForItems(items []*dataset.Item) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{
			selectedMarker(item),
			formatIndex(item),
			excerpt(item.Question.Material(), 120),
			choicesSummary(item),
			item.Question.ScoreText(),
			item.Question.DifficultyText(),
			excerpt(item.Question.Level(), 14),
		})
	}
	return rows
}

func selectedMarker(item *dataset.Item) string {
	if item.Selected {
		return "[x]"
	}
	return "[ ]"
}

func formatIndex(item *dataset.Item) string {
	return strconv.Itoa(item.Index + 1)
}

// choicesSummary shows the first block of the display text plus the
// block count, enough to spot a question's answers at a glance.
func choicesSummary(item *dataset.Item) string {
	display := item.Question.DisplayChoices()
	if display == "" {
		return "-"
	}
	blocks := strings.Split(display, "\n\n")
	first := excerpt(strings.ReplaceAll(blocks[0], "\n", " "), 16)
	if len(blocks) == 1 {
		return first
	}
	return first + " (+" + strconv.Itoa(len(blocks)-1) + ")"
}

func excerpt(text string, limit int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
