package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/riverwood/internal/core"
	"github.com/vovakirdan/riverwood/internal/games/riverwood"
)

const (
	// statusSeconds is how long a status message stays visible.
	statusSeconds = 3

	// keyHold is how long an action stays held after its last key event.
	// Terminals report no key releases, only auto-repeat, so a key counts as
	// released once its repeats stop for this long.
	keyHold = 150 * time.Millisecond
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model running one Riverwood game.
type Model struct {
	game    *riverwood.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	tracker *core.InputTracker
	pending []core.Action          // actions seen since the last tick
	seen    map[core.Action]uint64 // frame of each action's last key event
	frame   uint64
	hold    uint64 // frames an action stays held without key events
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	slot    string
	session string

	message   string
	messageAt uint64
	quitting  bool
}

// NewModel loads the game and prepares the model.
// The world is loaded here so the load outcome can be shown right away.
func NewModel(game *riverwood.Game, cfg core.RuntimeConfig, slot string, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, screenHeight(cfg.ScreenH)),
		config:  cfg,
		tracker: core.NewInputTracker(),
		seen:    make(map[core.Action]uint64),
		hold:    holdFrames(cfg.TickRate),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		slot:    slot,
		session: uuid.NewString(),
	}

	game.Reset(cfg)
	outcome := game.Outcome()
	m.logger.Info("world loaded", "slot", slot, "outcome", outcome, "session", m.session)
	switch outcome {
	case riverwood.Restored:
		m.setMessage(fmt.Sprintf("Welcome back, tick %d", game.State().Tick()))
	case riverwood.Discarded:
		m.setMessage("Save slot was unreadable, new world started")
		m.logger.Warn("discarded unreadable save", "slot", slot)
	default:
		m.setMessage("A new world")
	}
	return m
}

// holdFrames converts keyHold to ticks, at least one.
func holdFrames(tickRate int) uint64 {
	return uint64(max(1, int(keyHold)*tickRate/int(time.Second)))
}

// screenHeight leaves room for the status and help lines.
func screenHeight(h int) int {
	return max(h-2, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.game.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// Keys held while the window loses focus never repeat back.
		m.pending = nil
		clear(m.seen)
		m.tracker.Reset()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		if err := m.game.Save(); err != nil {
			m.logger.Error("save on quit failed", "slot", m.slot, "error", err)
		} else {
			m.logger.Info("saved on quit", "slot", m.slot, "tick", m.game.State().Tick())
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionSave:
		if err := m.game.Save(); err != nil {
			m.logger.Error("save failed", "slot", m.slot, "error", err)
			m.setMessage("Save failed")
		} else {
			m.setMessage("Saved")
		}
	case core.ActionNone:
	default:
		m.pending = append(m.pending, a)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.nextFrame())
	if msg := stepMessage(res); msg != "" {
		m.setMessage(msg)
	}
	switch {
	case res.Err != nil:
		m.logger.Warn("autosave failed", "slot", m.slot, "tick", res.Tick, "error", res.Err)
		m.setMessage("Autosave failed")
	case res.Saved:
		m.logger.Debug("autosaved", "slot", m.slot, "tick", res.Tick)
		m.setMessage("Autosaved")
	}

	return m, tickCmd(m.config.TickRate)
}

// nextFrame builds the input frame of the coming tick. Every action with a key
// event in the last hold frames is held, so auto-repeat extends one press.
func (m *Model) nextFrame() core.InputFrame {
	m.frame++
	for _, a := range m.pending {
		m.seen[a] = m.frame
	}
	m.pending = nil

	held := make([]core.Action, 0, len(m.seen))
	for a, at := range m.seen {
		if m.frame-at >= m.hold {
			delete(m.seen, a)
			continue
		}
		held = append(held, a)
	}
	return m.tracker.Next(held...)
}

// stepMessage describes what the player achieved in a step, if anything.
func stepMessage(res core.StepResult) string {
	switch {
	case res.Gained > 0:
		return fmt.Sprintf("+%d wood", res.Gained)
	case res.Felled > 0:
		return "Tree felled, no room for more wood"
	case res.Built:
		return "Bridge built"
	}
	return ""
}

func (m *Model) setMessage(msg string) {
	m.message = msg
	m.messageAt = m.game.State().Tick()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	s := m.game.State()
	p := s.Player()
	status := fmt.Sprintf(" slot %s  %s  (%d,%d) facing %s",
		m.slot, elapsed(s.Tick(), m.config.TickRate).Truncate(time.Second), p.X, p.Y, p.Dir)

	line := statusStyle.Render(status)
	if m.message != "" && s.Tick()-m.messageAt < uint64(statusSeconds*m.config.TickRate) {
		line += "  " + messageStyle.Render(m.message)
	}
	return line
}

// Quitting reports whether the player left the game.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game *riverwood.Game, cfg core.RuntimeConfig, slot string, logger *log.Logger) error {
	model := NewModel(game, cfg, slot, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
