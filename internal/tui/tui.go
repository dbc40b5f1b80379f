// Package tui provides a Bubble Tea terminal user interface for fanbox-dl.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnozawa/fanbox-dl/internal/download"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	logs     []LogEntry
	artists  []string
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	manager  *download.Manager
	inflight *download.Inflight
	events   <-chan download.ProgressEvent

	snapshot download.Progress
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model around an already-constructed manager.
// events carries the manager's progress events into the log tail.
func NewModel(manager *download.Manager, inflight *download.Inflight, events <-chan download.ProgressEvent) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateLoading,
		spinner:  sp,
		progress: prog,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		manager:  manager,
		inflight: inflight,
		events:   events,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initialize(), m.spinner.Tick, m.waitForEvent())
}

// Message types
type (
	// ProgressMsg is sent when a download progress event arrives.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// InitDoneMsg is sent when plan discovery completes.
	InitDoneMsg struct {
		Artists []string
		Err     error
	}

	// RunDoneMsg is sent when the whole run completes.
	RunDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			m.inflight.CleanupPartials()
			return m, tea.Quit

		case "v":
			m.verbose = !m.verbose

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForEvent())
		if msg.Event.Level == download.LevelVerbose && !m.verbose {
			return m, tea.Batch(cmds...)
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.artists = msg.Artists
			m.state = StateDownloading
			cmds = append(cmds, m.run(), m.tickProgress())
		}

	case RunDoneMsg:
		m.snapshot = m.manager.Progress()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.state == StateDownloading {
			m.snapshot = m.manager.Progress()

			var percent float64
			if m.snapshot.PostsTotal > 0 {
				percent = float64(m.snapshot.PostsDone) / float64(m.snapshot.PostsTotal)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fanbox-dl"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download pledged FANBOX content"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching supported plans..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	if len(m.artists) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Supporting %d creator(s):", len(m.artists))))
		b.WriteString("\n")
		for _, artist := range m.artists {
			b.WriteString(artistStyle.Render(fmt.Sprintf("  %s", artist)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var percent float64
	if m.snapshot.PostsTotal > 0 {
		percent = float64(m.snapshot.PostsDone) / float64(m.snapshot.PostsTotal)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Posts: %d/%d | Files: %d (%d skipped, %d failed) | %.2f MB",
		m.snapshot.PostsDone,
		m.snapshot.PostsTotal,
		m.snapshot.Downloaded,
		m.snapshot.Skipped,
		m.snapshot.Failed,
		float64(m.snapshot.Received)/1024/1024,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	box := boxStyle.Render(fmt.Sprintf(
		"Download complete\n\n"+
			"Creators: %d\n"+
			"Files: %d (%d skipped, %d failed)\n"+
			"Size: %.2f MB",
		len(m.artists),
		m.snapshot.Downloaded,
		m.snapshot.Skipped,
		m.snapshot.Failed,
		float64(m.snapshot.Received)/1024/1024,
	))
	return box
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateLoading, StateDownloading:
		return "v: verbose • esc: cancel"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// initialize discovers supported plans in the background.
func (m *Model) initialize() tea.Cmd {
	return func() tea.Msg {
		if err := m.manager.Initialize(m.ctx); err != nil {
			return InitDoneMsg{Err: err}
		}
		return InitDoneMsg{Artists: m.manager.ArtistNames()}
	}
}

// run starts the actual download run in the background.
func (m *Model) run() tea.Cmd {
	return func() tea.Msg {
		return RunDoneMsg{Err: m.manager.Run(m.ctx)}
	}
}

// waitForEvent blocks on the next manager progress event. A closed or
// nil channel parks the command forever, which is fine: it holds no
// resources besides its goroutine.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// Run starts the TUI application.
func Run(manager *download.Manager, inflight *download.Inflight, events <-chan download.ProgressEvent) error {
	p := tea.NewProgram(NewModel(manager, inflight, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
