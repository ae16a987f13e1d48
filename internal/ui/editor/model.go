package editor

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qedit/internal/config"
	"qedit/internal/dataset"
	"qedit/internal/export"
)

// Model is the interactive question editor.
type Model struct {
	ds      *dataset.Dataset
	cfg     config.Config
	noColor bool

	table   table.Model
	input   textinput.Model
	area    textarea.Model
	preview viewport.Model

	keys  keyMap
	mode  mode
	state viewState

	editField editField
	editItem  *dataset.Item
	confirm   confirmAction

	width  int
	height int
}

// Options configures the editor.
type Options struct {
	Config  config.Config
	NoColor bool
}

// NewModel constructs an editor over a loaded dataset.
func NewModel(ds *dataset.Dataset, opts Options) Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	input := textinput.New()
	input.CharLimit = 0

	area := textarea.New()
	area.CharLimit = 0

	model := Model{
		ds:      ds,
		cfg:     opts.Config,
		noColor: opts.NoColor,
		table:   t,
		input:   input,
		area:    area,
		preview: viewport.New(0, 0),
		keys:    defaultKeyMap(),
		state: viewState{
			levelIdx: -1,
			diffIdx:  -1,
		},
	}
	model.refresh()
	return model
}

// Run starts the editor program and blocks until it exits.
func Run(ds *dataset.Dataset, opts Options) error {
	program := tea.NewProgram(NewModel(ds, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-6, 3))
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.area.SetWidth(max(typed.Width-4, 20))
		m.area.SetHeight(max(typed.Height-8, 5))
		m.preview.Width = max(typed.Width-2, 20)
		m.preview.Height = max(typed.Height-4, 3)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(typed)
		case modeEditLine, modeScoreRange:
			return m.updateLineEditor(typed)
		case modeEditChoices:
			return m.updateChoicesEditor(typed)
		case modePreview:
			return m.updatePreview(typed)
		case modeConfirm:
			return m.updateConfirm(typed)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.state.dirty {
			m.confirm = confirmQuit
			m.mode = modeConfirm
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		if item := m.currentItem(); item != nil {
			item.Selected = !item.Selected
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.EditChoices):
		return m.openChoicesEditor(), nil
	case key.Matches(msg, m.keys.Material):
		return m.openLineEditor(fieldMaterial), nil
	case key.Matches(msg, m.keys.Title):
		return m.openLineEditor(fieldTitle), nil
	case key.Matches(msg, m.keys.Explanation):
		return m.openLineEditor(fieldExplanation), nil
	case key.Matches(msg, m.keys.Feedback):
		return m.openLineEditor(fieldFeedback), nil
	case key.Matches(msg, m.keys.Score):
		return m.openLineEditor(fieldScore), nil
	case key.Matches(msg, m.keys.Difficulty):
		return m.openLineEditor(fieldDifficulty), nil
	case key.Matches(msg, m.keys.Preview):
		return m.openPreview(), nil
	case key.Matches(msg, m.keys.LevelFilter):
		m.cycleLevelFilter()
		return m, nil
	case key.Matches(msg, m.keys.DiffFilter):
		m.cycleDifficultyFilter()
		return m, nil
	case key.Matches(msg, m.keys.ScoreFilter):
		return m.openScoreRangeEditor(), nil
	case key.Matches(msg, m.keys.Sort):
		m.cycleSort()
		return m, nil
	case key.Matches(msg, m.keys.ClearFilter):
		m.clearFilters()
		return m, nil
	case key.Matches(msg, m.keys.Export):
		m.exportSelected()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.saveAll()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.confirm = confirmReset
		m.mode = modeConfirm
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		action := m.confirm
		m.confirm = confirmNone
		m.mode = modeBrowse
		switch action {
		case confirmReset:
			m.ds.Reset()
			m.state.dirty = false
			m.setMessage("All changes reset to the original data.", false)
			m.refresh()
			return m, nil
		case confirmQuit:
			return m, tea.Quit
		}
	case "n", "N", "esc":
		m.confirm = confirmNone
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "p":
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case modeEditChoices:
		return m.viewChoicesEditor()
	case modeEditLine, modeScoreRange:
		return m.viewLineEditor()
	case modePreview:
		return m.viewPreview()
	}
	header := renderHeader(m.ds, countsFor(m.ds, m.state.visible), m.noColor)
	status := renderStatus(m.state, m.noColor)
	footer := renderFooter(m.mode, m.confirm, m.noColor)
	message := renderMessage(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, status, m.table.View(), message, footer)
}

// refresh recomputes the visible view and table rows after any change
// to the data, filter, sort, or selection.
func (m *Model) refresh() {
	m.state.visible = m.ds.View(m.state.filter, m.state.order)
	m.table.SetRows(rowsForItems(m.state.visible))
	if cursor := m.table.Cursor(); cursor >= len(m.state.visible) && len(m.state.visible) > 0 {
		m.table.SetCursor(len(m.state.visible) - 1)
	}
}

func (m *Model) currentItem() *dataset.Item {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.state.visible) {
		return nil
	}
	return m.state.visible[cursor]
}

func (m *Model) setMessage(message string, isError bool) {
	m.state.message = message
	m.state.isError = isError
}

func (m *Model) cycleLevelFilter() {
	levels := m.ds.Levels()
	if len(levels) == 0 {
		m.setMessage("No level titles in this dataset.", false)
		return
	}
	m.state.levelIdx++
	if m.state.levelIdx >= len(levels) {
		m.state.levelIdx = -1
	}
	if m.state.levelIdx < 0 {
		m.state.filter.Levels = nil
	} else {
		m.state.filter.Levels = []string{levels[m.state.levelIdx]}
	}
	m.refresh()
}

func (m *Model) cycleDifficultyFilter() {
	difficulties := m.ds.Difficulties()
	if len(difficulties) == 0 {
		m.setMessage("No difficulty levels in this dataset.", false)
		return
	}
	m.state.diffIdx++
	if m.state.diffIdx >= len(difficulties) {
		m.state.diffIdx = -1
	}
	if m.state.diffIdx < 0 {
		m.state.filter.Difficulties = nil
	} else {
		m.state.filter.Difficulties = []int{difficulties[m.state.diffIdx]}
	}
	m.refresh()
}

func (m *Model) cycleSort() {
	switch m.state.order {
	case dataset.OrderNone:
		m.state.order = dataset.OrderScoreAsc
	case dataset.OrderScoreAsc:
		m.state.order = dataset.OrderScoreDesc
	default:
		m.state.order = dataset.OrderNone
	}
	m.refresh()
}

func (m *Model) clearFilters() {
	m.state.filter = dataset.Filter{}
	m.state.levelIdx = -1
	m.state.diffIdx = -1
	m.refresh()
}

func (m *Model) exportSelected() {
	selected := m.ds.Selected()
	if len(selected) == 0 {
		m.setMessage("Select question(s) with space before exporting.", true)
		return
	}
	path := m.exportPath(export.PowerPathName(m.ds.Name()))
	if err := export.WritePowerPath(path, selected); err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.setMessage(fmt.Sprintf("%d question(s) exported to %s", len(selected), path), false)
}

func (m *Model) saveAll() {
	path := m.exportPath(export.UpdatedName(m.ds.Name()))
	if err := export.WriteUpdated(path, m.ds); err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.state.dirty = false
	m.setMessage("All changes saved to "+path, false)
}

// exportPath resolves output next to the source file unless the config
// names an export directory.
func (m *Model) exportPath(name string) string {
	dir := m.cfg.Export.Dir
	if dir == "" && m.ds.Path() != "" {
		dir = filepath.Dir(m.ds.Path())
	}
	return export.OutputPath(dir, name)
}
