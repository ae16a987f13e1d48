package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qedit/internal/dataset"
)

func renderHeader(ds *dataset.Dataset, c counts, noColor bool) string {
	line := fmt.Sprintf("qedit | %s | showing %d of %d question(s)", ds.Name(), c.shown, c.total)
	if c.selected > 0 {
		line += fmt.Sprintf(" | %d selected", c.selected)
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

func renderStatus(state viewState, noColor bool) string {
	var parts []string
	if len(state.filter.Levels) > 0 {
		parts = append(parts, "level="+strings.Join(state.filter.Levels, ","))
	}
	if len(state.filter.Difficulties) > 0 {
		labels := make([]string, 0, len(state.filter.Difficulties))
		for _, difficulty := range state.filter.Difficulties {
			labels = append(labels, strconv.Itoa(difficulty))
		}
		parts = append(parts, "difficulty="+strings.Join(labels, ","))
	}
	if state.filter.ScoreRange {
		parts = append(parts, fmt.Sprintf("score=%g-%g", state.filter.ScoreMin, state.filter.ScoreMax))
	}
	if state.order != dataset.OrderNone {
		parts = append(parts, "sort="+state.order.String())
	}
	if len(parts) == 0 {
		return stylize("no filters", noColor, lipgloss.Color("242"))
	}
	return stylize(strings.Join(parts, " | "), noColor, lipgloss.Color("242"))
}

func renderMessage(state viewState, noColor bool) string {
	if state.message == "" {
		if state.dirty {
			return stylize("unsaved changes", noColor, lipgloss.Color("214"))
		}
		return ""
	}
	color := lipgloss.Color("78")
	if state.isError {
		color = lipgloss.Color("203")
	}
	return stylize(state.message, noColor, color)
}

func renderFooter(m mode, confirm confirmAction, noColor bool) string {
	if m == modeConfirm {
		prompt := "Reset all changes to the original data? (y/n)"
		if confirm == confirmQuit {
			prompt = "Quit with unsaved changes? (y/n)"
		}
		return stylize(prompt, noColor, lipgloss.Color("214"))
	}
	hints := "space select | enter choices | m/t/e/f/g/i edit | p preview | " +
		"L/D/S filter | O sort | X clear | P export | w save | r reset | q quit"
	return stylize(hints, noColor, lipgloss.Color("240"))
}

func (m Model) viewLineEditor() string {
	item := ""
	if m.editItem != nil {
		item = fmt.Sprintf(" for question %d", m.editItem.Index+1)
	}
	label := m.editField.label()
	if m.mode == modeScoreRange {
		label = "Score filter (min-max, blank to clear)"
		item = ""
	}
	header := stylize("Edit "+label+item, m.noColor, lipgloss.Color("33"))
	footer := stylize("enter apply | esc cancel", m.noColor, lipgloss.Color("240"))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.input.View(), footer)
}

func (m Model) viewChoicesEditor() string {
	item := ""
	if m.editItem != nil {
		item = fmt.Sprintf(" for question %d", m.editItem.Index+1)
	}
	header := stylize("Edit choices"+item, m.noColor, lipgloss.Color("33"))
	hint := stylize(`Use "✓ Correct answer" or "A. Incorrect answer", one per block, blank line between blocks.`,
		m.noColor, lipgloss.Color("242"))
	footer := stylize("ctrl+s apply | esc cancel", m.noColor, lipgloss.Color("240"))
	return lipgloss.JoinVertical(lipgloss.Left, header, hint, m.area.View(), footer)
}

func (m Model) viewPreview() string {
	header := stylize("Preview", m.noColor, lipgloss.Color("33"))
	footer := stylize("↑/↓ scroll | esc back", m.noColor, lipgloss.Color("240"))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.preview.View(), footer)
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
