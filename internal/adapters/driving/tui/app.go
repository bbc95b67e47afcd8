package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/keymap"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/messages"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/styles"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/views/help"
	"github.com/holocron-labs/holocron-cli/internal/core/services"
	"github.com/holocron-labs/holocron-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Beyond routing messages to the dashboard, the app owns the idle
// watchdog: every keypress re-arms it, and when it fires the session
// is cleared and the program exits with a notice.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// dashboardView is the catalog browsing view.
	dashboardView *dashboard.View

	// helpView lists the keybindings; shown while showHelp is set.
	helpView *help.View
	showHelp bool

	// keymap holds the active keybindings.
	keymap *keymap.KeyMap

	// watchdog fires after a stretch of inactivity.
	watchdog *services.Watchdog

	// notice is shown to the user after the program exits.
	notice string

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		dashboardView: dashboard.NewView(s, km, ports.Catalog),
		helpView:      help.NewView(s, km),
		keymap:        km,
		watchdog:      services.NewWatchdog(ports.IdleTimeout),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dashboardView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("holocron - Catalog Admin"),
		a.dashboardView.Init(),
		a.waitForIdle(),
	)
}

// waitForIdle blocks until the watchdog fires, then reports it as a
// session expiry.
func (a *App) waitForIdle() tea.Cmd {
	return func() tea.Msg {
		<-a.watchdog.Expired()
		return messages.SessionExpired{Reason: "Signed out after inactivity."}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.dashboardView.SetDimensions(msg.Width, msg.Height)
		a.helpView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Any keypress counts as activity.
		a.watchdog.Reset()

		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			a.watchdog.Stop()
			return a, tea.Quit
		}

		if a.showHelp {
			if keymap.Matches(msg.String(), a.keymap.Quit) {
				a.watchdog.Stop()
				return a, tea.Quit
			}
			a.showHelp = false
			return a, nil
		}

		if !a.dashboardView.Searching() && keymap.Matches(msg.String(), a.keymap.Help) {
			a.showHelp = true
			return a, nil
		}

		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.SessionExpired:
		logger.Info("Session over: %s", msg.Reason)
		if err := a.ports.Auth.SignOut(); err != nil {
			logger.Warn("Sign out failed: %v", err)
		}
		a.notice = msg.Reason
		a.watchdog.Stop()
		return a, tea.Quit

	case messages.Quit:
		a.watchdog.Stop()
		return a, tea.Quit
	}

	a.dashboardView, cmd = a.dashboardView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.showHelp {
		return a.helpView.View()
	}
	return a.dashboardView.View()
}

// Run starts the TUI application. The returned notice, if any, should
// be printed for the user after the terminal is restored.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Notice returns the message to show after the program exits.
func (a *App) Notice() string {
	return a.notice
}

// Dashboard returns the dashboard view (for testing).
func (a *App) Dashboard() *dashboard.View {
	return a.dashboardView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// ShowingHelp returns whether the help view is active.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
}
