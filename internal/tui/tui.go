// Package tui provides a Bubble Tea terminal user interface for gpx-splitter.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dverhagen/gpx-splitter/internal/config"
	"github.com/dverhagen/gpx-splitter/internal/palette"
	"github.com/dverhagen/gpx-splitter/internal/split"
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

	routeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateSplitting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   split.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	colors    palette.Palette
	logs      []LogEntry
	inputs    []string
	results   []*split.Result
	err       error

	// Split context
	ctx    context.Context
	cancel context.CancelFunc

	// Split manager reference
	manager *split.Manager

	// Progress events flow from manager goroutines into Update.
	events chan split.ProgressEvent

	// Split progress
	totalFiles     int32
	completedFiles int32
	failedFiles    int32

	// Options
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/routes/vakantie.gpx, /routes/rit2.gpx"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		colors:    palette.Default(),
		logs:      make([]LogEntry, 0),
		events:    make(chan split.ProgressEvent, 256),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when a split progress event arrives.
	ProgressMsg struct {
		Event split.ProgressEvent
	}

	// InitDoneMsg is sent when initialization completes.
	InitDoneMsg struct {
		Inputs  []string
		Manager *split.Manager
		Err     error
	}

	// SplitDoneMsg is sent when all splits complete.
	SplitDoneMsg struct {
		Completed int32
		Failed    int32
		Total     int32
		Err       error
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
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateSplitting || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateInitializing
				return m, tea.Batch(m.initializeSplit(), m.spinner.Tick, m.waitForEvent())
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new split
				m.state = StateInput
				m.logs = nil
				m.inputs = nil
				m.results = nil
				m.err = nil
				m.completedFiles = 0
				m.failedFiles = 0
				m.totalFiles = 0
				m.manager = nil
				m.events = make(chan split.ProgressEvent, 256)
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Keep listening for the next event.
		cmds = append(cmds, m.waitForEvent())

		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == split.LevelVerbose && !m.verbose {
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
			m.inputs = msg.Inputs
			m.manager = msg.Manager
			m.state = StateSplitting
			// Start the actual split and tick for progress updates
			cmds = append(cmds, m.startSplit(), m.tickProgress())
		}

	case SplitDoneMsg:
		m.completedFiles = msg.Completed
		m.failedFiles = msg.Failed
		m.totalFiles = msg.Total
		if m.manager != nil {
			m.results = m.manager.Results()
		}
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
		// Update progress from manager
		if m.manager != nil && m.state == StateSplitting {
			completed, failed, total := m.manager.GetProgress()
			m.completedFiles = completed
			m.failedFiles = failed
			m.totalFiles = total

			// Calculate percentage and animate progress bar
			var percent float64
			if total > 0 {
				percent = float64(completed+failed) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
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

// waitForEvent returns a command that delivers the next manager event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🗺  GPX Splitter"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Split multi-route GPX files into single-route files"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateSplitting:
		b.WriteString(m.viewSplitting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter GPX file paths (comma or newline separated):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("Route colors:"))
	b.WriteString("\n  ")
	b.WriteString(m.renderSwatches())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output: <input>_<timestamp> next to each file • creator %s", m.settings.Creator)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Checking input files..."))
	b.WriteString("\n\n")

	// Show logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewSplitting() string {
	var b strings.Builder

	// Queued inputs
	if len(m.inputs) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Splitting %d file(s):", len(m.inputs))))
		b.WriteString("\n")
		for _, input := range m.inputs {
			b.WriteString(routeStyle.Render(fmt.Sprintf("  ▸ %s", input)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Progress bar
	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.completedFiles+m.failedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Failed: %d",
		m.completedFiles+m.failedFiles,
		m.totalFiles,
		m.failedFiles,
	)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	lines := []string{"✨ Split Complete!", ""}
	lines = append(lines, fmt.Sprintf("Files: %d", m.completedFiles))
	for _, r := range m.results {
		if r.OutputDir == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s → %s", filepath.Base(r.InputPath), r.OutputDir))
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderSwatches() string {
	var b strings.Builder
	for _, hex := range m.colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
		b.WriteString(" ")
	}
	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case split.LevelError:
			style = errorStyle
			prefix = "✗"
		case split.LevelWarning:
			style = warningStyle
			prefix = "!"
		case split.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case split.LevelInfo:
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
	case StateInput:
		return "enter: start • v: verbose • esc: quit"
	case StateInitializing, StateSplitting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new split • q: quit"
	}
	return ""
}

// initializeSplit validates the inputs and creates the manager.
func (m *Model) initializeSplit() tea.Cmd {
	return func() tea.Msg {
		paths := m.textInput.Value()

		settings := config.DefaultSettings()
		settings.Verbose = m.verbose

		// Create manager with progress callback. The channel send never
		// blocks; a full buffer drops the event.
		events := m.events
		manager := split.NewManager(settings, func(event split.ProgressEvent) {
			select {
			case events <- event:
			default:
			}
		})

		if err := manager.Initialize(m.ctx, paths); err != nil {
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{
			Inputs:  manager.GetInputNames(),
			Manager: manager,
			Err:     nil,
		}
	}
}

// startSplit starts the actual split in background.
func (m *Model) startSplit() tea.Cmd {
	return func() tea.Msg {
		if m.manager == nil {
			return SplitDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := m.manager.StartSplits(m.ctx)
		completed, failed, total := m.manager.GetProgress()

		return SplitDoneMsg{
			Completed: completed,
			Failed:    failed,
			Total:     total,
			Err:       err,
		}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
