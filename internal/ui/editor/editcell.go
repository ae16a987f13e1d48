package editor

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"qedit/internal/dataset"
)

func (m Model) openLineEditor(field editField) Model {
	item := m.currentItem()
	if item == nil {
		m.setMessage("Nothing to edit.", true)
		return m
	}
	m.editItem = item
	m.editField = field
	m.input.SetValue(lineValue(item, field))
	m.input.CursorEnd()
	m.input.Focus()
	m.mode = modeEditLine
	return m
}

func (m Model) openScoreRangeEditor() Model {
	m.editItem = nil
	if m.state.filter.ScoreRange {
		m.input.SetValue(fmt.Sprintf("%g-%g", m.state.filter.ScoreMin, m.state.filter.ScoreMax))
	} else {
		m.input.SetValue("")
	}
	m.input.CursorEnd()
	m.input.Focus()
	m.mode = modeScoreRange
	return m
}

func (m Model) openChoicesEditor() Model {
	item := m.currentItem()
	if item == nil {
		m.setMessage("Nothing to edit.", true)
		return m
	}
	m.editItem = item
	m.area.SetValue(item.Question.DisplayChoices())
	m.area.Focus()
	m.mode = modeEditChoices
	return m
}

func (m Model) updateLineEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		m.input.Blur()
		if m.mode == modeScoreRange {
			m.applyScoreRange(value)
			m.mode = modeBrowse
			return m, nil
		}
		m.applyLineEdit(value)
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateChoicesEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.area.Blur()
		return m, nil
	case "ctrl+s":
		if m.editItem != nil {
			// Parse is canonical: the stored list is the parse result
			// and the cell re-renders as its normalized formatting.
			m.editItem.Question.ApplyChoicesText(m.area.Value())
			m.state.dirty = true
			m.refresh()
		}
		m.area.Blur()
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *Model) applyLineEdit(value string) {
	item := m.editItem
	if item == nil {
		return
	}
	q := item.Question
	switch m.editField {
	case fieldMaterial:
		q.SetMaterial(value)
	case fieldTitle:
		q.SetTitle(value)
	case fieldExplanation:
		q.SetExplanation(value)
	case fieldFeedback:
		q.SetFeedback(value)
	case fieldScore:
		if !m.validScore(value) {
			m.setMessage(fmt.Sprintf("Score must be a number between %d and %d.", m.cfg.Score.Min, m.cfg.Score.Max), true)
			return
		}
		q.SetScore(value)
	case fieldDifficulty:
		q.SetDifficulty(value)
	}
	m.state.dirty = true
	m.refresh()
}

func (m *Model) validScore(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return false
	}
	return parsed >= float64(m.cfg.Score.Min) && parsed <= float64(m.cfg.Score.Max)
}

// applyScoreRange parses "min-max" (or a single number for an exact
// match) into the score filter; blank turns the filter off.
func (m *Model) applyScoreRange(value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		m.state.filter.ScoreRange = false
		m.refresh()
		return
	}
	lo, hi, err := parseScoreRange(trimmed)
	if err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.state.filter.ScoreRange = true
	m.state.filter.ScoreMin = lo
	m.state.filter.ScoreMax = hi
	m.refresh()
}

func parseScoreRange(value string) (float64, float64, error) {
	parts := strings.SplitN(value, "-", 2)
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid score range %q (expected min-max)", value)
	}
	hi := lo
	if len(parts) == 2 {
		hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid score range %q (expected min-max)", value)
		}
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

func lineValue(item *dataset.Item, field editField) string {
	q := item.Question
	switch field {
	case fieldMaterial:
		return q.Material()
	case fieldTitle:
		return q.Title()
	case fieldExplanation:
		return q.Explanation()
	case fieldFeedback:
		return q.Feedback()
	case fieldScore:
		return q.ScoreText()
	case fieldDifficulty:
		return q.DifficultyText()
	default:
		return ""
	}
}
