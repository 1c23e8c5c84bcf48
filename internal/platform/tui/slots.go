package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/riverwood/internal/storage"
)

// SlotsKeyMap defines the key bindings for the save slot browser.
type SlotsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SlotsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SlotsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Delete, k.Reload, k.Quit},
	}
}

// DefaultSlotsKeyMap returns default key bindings.
func DefaultSlotsKeyMap() SlotsKeyMap {
	return SlotsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete (twice)"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	slotsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	slotsBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	slotsEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
)

// SlotsModel is the Bubble Tea model listing the stored save slots.
type SlotsModel struct {
	backend  storage.Backend
	slots    []storage.SlotInfo
	table    table.Model
	help     help.Model
	keys     SlotsKeyMap
	width    int
	height   int
	status   string
	armed    string // slot awaiting delete confirmation
	selected string
	quitting bool
}

// NewSlotsModel creates a slot browser over backend.
func NewSlotsModel(backend storage.Backend, width, height int) SlotsModel {
	m := SlotsModel{
		backend: backend,
		help:    help.New(),
		keys:    DefaultSlotsKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m *SlotsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Slot", Width: 20},
		{Title: "Size", Width: 8},
		{Title: "Saves", Width: 8},
		{Title: "Updated", Width: 16},
	}
	if w := m.width - 12; w > 52 {
		columns[0].Width = min(w-32, 40)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload refreshes the slot list from the backend.
func (m *SlotsModel) reload() {
	slots, err := m.backend.List()
	if err != nil {
		m.status = fmt.Sprintf("cannot list slots: %v", err)
		slots = nil
	}
	m.slots = slots
	m.table.SetRows(slotRows(slots))
	if m.table.Cursor() >= len(slots) {
		m.table.GotoTop()
	}
}

func slotRows(slots []storage.SlotInfo) []table.Row {
	rows := make([]table.Row, len(slots))
	for i, s := range slots {
		rows[i] = table.Row{
			s.Slot,
			humanize.Bytes(uint64(s.Size)),
			humanize.Comma(s.Writes),
			humanize.Time(s.UpdatedAt),
		}
	}
	return rows
}

func (m SlotsModel) current() (storage.SlotInfo, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.slots) {
		return storage.SlotInfo{}, false
	}
	return m.slots[i], true
}

// Init initializes the slot browser.
func (m SlotsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the slot browser.
func (m SlotsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, m.keys.Delete) {
			m.armed = ""
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if s, ok := m.current(); ok {
				m.selected = s.Slot
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteCurrent()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.status = ""
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(slotRows(m.slots))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteCurrent removes the highlighted slot on the second press.
func (m *SlotsModel) deleteCurrent() {
	s, ok := m.current()
	if !ok {
		return
	}
	if m.armed != s.Slot {
		m.armed = s.Slot
		m.status = fmt.Sprintf("press x again to delete %q", s.Slot)
		return
	}

	m.armed = ""
	if err := m.backend.Delete(s.Slot); err != nil {
		m.status = fmt.Sprintf("delete failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("deleted %q", s.Slot)
	m.reload()
}

// View renders the slot browser.
func (m SlotsModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(slotsTitleStyle.Render(centerText("SAVE SLOTS", m.width)))
	b.WriteString("\n\n")

	if len(m.slots) == 0 {
		b.WriteString(slotsBoxStyle.Render(slotsEmptyStyle.Render("No saved worlds yet.\nStart one with `riverwood play`.")))
	} else {
		b.WriteString(slotsBoxStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(messageStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the slot chosen with enter, empty if none.
func (m SlotsModel) Selected() string {
	return m.selected
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunSlots runs the slot browser and returns the slot picked for play.
func RunSlots(backend storage.Backend, width, height int) (string, error) {
	p := tea.NewProgram(
		NewSlotsModel(backend, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(SlotsModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
