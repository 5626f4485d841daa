// Package tui provides the interactive terminal interface following the
// Elm architecture. It implements tea.Model for use with Bubbletea.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/attable-dev/tatt-cli/internal/adapters/driving/tui/styles"
	"github.com/attable-dev/tatt-cli/internal/adapters/driving/tui/views/search"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driving"
	"github.com/attable-dev/tatt-cli/internal/humanize"
)

// App is the main TUI application. It owns the search view and handles
// the global keys; everything else is forwarded to the view.
type App struct {
	// styles holds the TUI styles.
	styles *styles.Styles

	// searchView is the single view of the application.
	searchView *search.View

	// ctx is the context for cancellation.
	ctx context.Context

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application.
func NewApp(session driving.SessionService, nav search.Navigator, formatter *humanize.Formatter) *App {
	s := styles.DefaultStyles()

	return &App{
		styles:     s,
		searchView: search.NewView(s, session, nav, formatter),
		ctx:        context.Background(),
	}
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("tatt - transcript search"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

	case tea.KeyMsg:
		// Global quit keys. Plain q only quits when the view is not
		// capturing text input.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "q" && !a.searchView.InputFocused() {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.searchView.View()
}

// Ready reports whether the app has received its initial window size.
func (a *App) Ready() bool {
	return a.ready
}
