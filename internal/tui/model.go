package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/MaybeLow/OfficeAI/internal/errors"
	"github.com/MaybeLow/OfficeAI/internal/logging"
	"github.com/MaybeLow/OfficeAI/internal/onboarding"
)

// Layout constants for the wizard.
const (
	defaultWidth = 80
	maxBodyWidth = 76
)

// TickMsg refreshes the elapsed clock.
type TickMsg time.Time

// ContextCancelledMsg reports that the run's context ended.
type ContextCancelledMsg struct {
	Err error
}

// Options configures the wizard UI.
type Options struct {
	Version string
	Logger  logging.Logger
	// Now replaces time.Now for the elapsed clock.
	Now func() time.Time
}

// Model is the root bubbletea model. It owns the controller and swaps the
// active screen whenever the controller changes step.
type Model struct {
	ctx    context.Context
	ctrl   *onboarding.Controller
	logger logging.Logger

	header  HeaderModel
	footer  FooterModel
	screen  screen
	keymap  KeyMap
	initCmd tea.Cmd

	width int
	done  bool
	quit  bool
	err   error
}

// NewModel creates the wizard model for ctrl.
func NewModel(ctx context.Context, ctrl *onboarding.Controller, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	m := Model{
		ctx:    ctx,
		ctrl:   ctrl,
		logger: opts.Logger,
		header: NewHeaderModel(opts.Version, opts.Now),
		footer: NewFooterModel(),
		keymap: DefaultKeyMap(),
		width:  defaultWidth,
	}
	m.initCmd = m.enterStep()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), watchContextCmd(m.ctx), m.initCmd)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.footer.SetWidth(msg.Width)
		return m, nil

	case TickMsg:
		if m.done || m.quit {
			return m, nil
		}
		return m, tickCmd()

	case ContextCancelledMsg:
		if m.done {
			return m, nil
		}
		m.err = msg.Err
		m.header.SetDone()
		return m, tea.Quit
	}

	// Cursor blinks and other textarea traffic.
	if s, ok := m.screen.(personalInfoScreen); ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		m.screen = s
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done || m.quit {
		return m, nil
	}
	if key.Matches(msg, m.keymap.Quit) && !(m.typing() && msg.String() == "q") {
		m.quit = true
		m.header.SetDone()
		m.logger.Info("onboarding abandoned",
			logging.String("session", m.ctrl.SessionID()),
			logging.String("step", m.ctrl.Step().String()))
		return m, tea.Quit
	}

	next, act, cmd := m.screen.update(msg, m.keymap)
	m.screen = next
	if act == nil {
		return m, cmd
	}

	if err := act(m.ctrl); err != nil {
		m.err = err
		m.header.SetDone()
		return m, tea.Quit
	}
	if m.ctrl.Finished() {
		m.done = true
		m.header.SetDone()
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.enterStep())
}

// enterStep builds the screen for the controller's current step.
func (m *Model) enterStep() tea.Cmd {
	s, cmd := newScreen(m.ctrl, m.logger)
	m.screen = s
	m.header.SetProgress(m.ctrl.Progress())
	m.footer.SetBindings(s.bindings(m.keymap))
	return cmd
}

// typing reports whether keys should go to a text field first.
func (m Model) typing() bool {
	_, ok := m.screen.(personalInfoScreen)
	return ok
}

// Done reports whether the run reached a terminal step.
func (m Model) Done() bool { return m.done }

// Err returns why the UI stopped without finishing: the context error, a
// rejected event, or ErrIncomplete when the user quit.
func (m Model) Err() error {
	switch {
	case m.err != nil:
		return m.err
	case m.done:
		return nil
	default:
		return apperrors.ErrIncomplete
	}
}

// View renders the entire wizard.
func (m Model) View() string {
	if m.done || m.quit {
		return ""
	}
	bodyWidth := m.width - 6
	if bodyWidth > maxBodyWidth {
		bodyWidth = maxBodyWidth
	}
	body := panelStyle.Render(strings.TrimRight(m.screen.view(bodyWidth), "\n"))
	if m.err != nil {
		body += "\n" + errorStyle.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

// Run is the public entry point for the interactive wizard. It returns nil
// once a terminal step completes.
func Run(ctx context.Context, ctrl *onboarding.Controller, opts Options, progOpts ...tea.ProgramOption) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, ctrl, opts)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)...)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.WrapError(err, "running terminal UI")
	}
	if m, ok := finalModel.(Model); ok {
		return m.Err()
	}
	return nil
}

// tickCmd returns a command that sends a TickMsg after a second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
