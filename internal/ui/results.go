package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"cli-table/internal/db"
	"cli-table/internal/grid"
	"cli-table/internal/table"
	"cli-table/internal/width"
)

const defaultLimit = 20

// widenSteps are the percentages the widen key cycles through; 0 is off.
var widenSteps = []int{0, 150, 200, 300}

var viewerStyles = []grid.Style{grid.Markdown, grid.Rounded, grid.Normal, grid.Double, grid.ASCII, grid.Blank}

// ResultsModel is a scrollable table whose width settings can be changed
// with single keys. The table is rebuilt from the source records on every
// change, so settings never compound.
type ResultsModel struct {
	title       string
	sql         string
	records     [][]string
	settings    table.Settings
	limit       int
	viewport    viewport.Model
	status      StatusBarModel
	help        help.Model
	keys        keyMap
	searching   bool
	searchQuery string
	matches     []int
	width       int
	height      int
}

// NewResultsModel creates a viewer over records, whose first row is the header.
func NewResultsModel(title string, records [][]string, s table.Settings) ResultsModel {
	limit := defaultLimit
	switch {
	case s.Truncate > 0:
		limit = s.Truncate
	case s.Wrap > 0:
		limit = s.Wrap
	}

	m := ResultsModel{
		title:    title,
		records:  records,
		settings: s,
		limit:    limit,
		viewport: viewport.New(80, 20),
		status:   NewStatusBarModel(),
		help:     help.New(),
		keys:     newKeyMap(),
	}
	m.status.SetQueryInfo(0, m.rowCount())
	m.refresh()
	return m
}

// SetQuery records the query the records came from and how long it took.
// The query replaces the title.
func (m *ResultsModel) SetQuery(sql string, elapsed time.Duration) {
	m.sql = strings.Join(strings.Fields(sql), " ")
	m.status.SetQueryInfo(elapsed, m.rowCount())
}

// Settings returns the active width settings.
func (m ResultsModel) Settings() table.Settings {
	return m.settings
}

// Init satisfies tea.Model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.status.SetWidth(msg.Width)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		m.status.ClearExpiredMessage()
		if m.searching {
			return m.updateSearchMode(msg), nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Truncate):
			m.settings.Truncate = toggle(m.settings.Truncate, m.limit)
		case key.Matches(msg, m.keys.Wrap):
			m.settings.Wrap = toggle(m.settings.Wrap, m.limit)
		case key.Matches(msg, m.keys.Narrower):
			m.setLimit(m.limit - 1)
		case key.Matches(msg, m.keys.Wider):
			m.setLimit(m.limit + 1)
		case key.Matches(msg, m.keys.Widen):
			m.settings.Increase = nextStep(widenSteps, m.settings.Increase)
		case key.Matches(msg, m.keys.Style):
			m.settings.Style = nextStyle(m.settings.Style)
		case key.Matches(msg, m.keys.Mode):
			if m.plain() {
				m.settings.Measurer = width.ANSI{}
			} else {
				m.settings.Measurer = width.Plain{}
			}
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.searchQuery = ""
			m.layout()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return m, nil
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ResultsModel) updateSearchMode(msg tea.KeyMsg) ResultsModel {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchQuery = ""
	case "enter":
		m.searching = false
		if m.searchQuery != "" {
			m.status.SetMessage(fmt.Sprintf("%d matching rows", len(m.matchRows())), MsgSuccess)
		}
	case "backspace":
		if len(m.searchQuery) > 0 {
			r := []rune(m.searchQuery)
			m.searchQuery = string(r[:len(r)-1])
		}
	default:
		if msg.Type == tea.KeySpace {
			m.searchQuery += " "
		} else if msg.Type == tea.KeyRunes {
			m.searchQuery += string(msg.Runes)
		}
	}
	m.layout()
	m.refresh()
	return m
}

// View renders the title, the table, the status bar and the key help.
func (m ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(m.titleLine())
	b.WriteString("\n")

	if m.showSearch() {
		searchDisp := SearchLabel.Render("/") + SearchInput.Render(m.searchQuery)
		if m.searching {
			searchDisp += SearchInput.Render("█")
		}
		if len(m.matches) > 0 {
			searchDisp += DimText.Render(fmt.Sprintf(" [%d matches]", len(m.matches)))
		} else if m.searchQuery != "" {
			searchDisp += DimText.Render(" [no matches]")
		}
		b.WriteString(searchDisp)
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.status.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m ResultsModel) titleLine() string {
	title := HeaderStyle.Render(m.title)
	if m.sql != "" {
		title = HighlightSQL(m.sql)
	}
	if m.width > 0 {
		// The cut may drop the closing reset of a colored token.
		title = width.Truncate(width.ANSI{}, title, m.width-1, "\x1b[m…")
	}
	return title
}

// refresh rebuilds the table from the source records.
func (m *ResultsModel) refresh() {
	t := table.New(m.records)
	m.matches = m.matchRows()

	// Escape-aware measuring can constrain styled cells; plain measuring
	// would count the escape bytes, so style after constraining instead.
	plain := m.plain()
	if !plain {
		m.decorate(t)
	}
	if err := m.settings.Apply(t); err != nil {
		m.status.SetMessage(err.Error(), MsgError)
	}
	if plain {
		m.decorate(t)
	}

	m.viewport.SetContent(t.String())
	m.status.SetSettings(fmt.Sprintf("limit %d | %s", m.limit, m.settings.Describe()))
}

func (m *ResultsModel) decorate(t *table.Table) {
	if len(m.records) == 0 {
		return
	}
	t.With(table.Modify(grid.Row(0)).With(table.Format(func(s string) string { return HeaderStyle.Render(s) })))
	for _, r := range m.matches {
		t.With(table.Modify(grid.Row(r)).With(table.Format(func(s string) string { return MatchText.Render(s) })))
	}
	for r := 1; r < len(m.records); r++ {
		for c, v := range m.records[r] {
			if v == db.NullText {
				t.With(table.Modify(grid.Cell(r, c)).With(table.Format(func(s string) string { return NullText.Render(s) })))
			}
		}
	}
}

func (m ResultsModel) matchRows() []int {
	if m.searchQuery == "" {
		return nil
	}
	var rows []int
	for r := 1; r < len(m.records); r++ {
		for _, cell := range m.records[r] {
			if FuzzyMatch(cell, m.searchQuery) {
				rows = append(rows, r)
				break
			}
		}
	}
	return rows
}

func (m *ResultsModel) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	chrome := 3 // title, status bar, one line of help
	if m.help.ShowAll {
		chrome += len(m.keys.FullHelp()[0]) - 1
	}
	if m.showSearch() {
		chrome++
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 1)
}

func (m *ResultsModel) setLimit(n int) {
	m.limit = max(n, 1)
	if m.settings.Truncate > 0 {
		m.settings.Truncate = m.limit
	}
	if m.settings.Wrap > 0 {
		m.settings.Wrap = m.limit
	}
}

func (m ResultsModel) showSearch() bool {
	return m.searching || m.searchQuery != ""
}

func (m ResultsModel) plain() bool {
	_, ok := m.settings.Measurer.(width.Plain)
	if m.settings.Measurer == nil {
		_, ok = width.Default.(width.Plain)
	}
	return ok
}

func (m ResultsModel) rowCount() int {
	return max(len(m.records)-1, 0)
}

func toggle(v, on int) int {
	if v > 0 {
		return 0
	}
	return on
}

func nextStep(steps []int, cur int) int {
	for i, s := range steps {
		if s == cur {
			return steps[(i+1)%len(steps)]
		}
	}
	return steps[0]
}

func nextStyle(cur grid.Style) grid.Style {
	for i, s := range viewerStyles {
		if s.Name == cur.Name {
			return viewerStyles[(i+1)%len(viewerStyles)]
		}
	}
	return viewerStyles[0]
}
