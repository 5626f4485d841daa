// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/attable-dev/tatt-cli/internal/adapters/driving/tui/messages"
	"github.com/attable-dev/tatt-cli/internal/adapters/driving/tui/styles"
	"github.com/attable-dev/tatt-cli/internal/core/domain"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driving"
	"github.com/attable-dev/tatt-cli/internal/humanize"
)

// Navigator is the slice of the history the view drives directly.
type Navigator interface {
	// Back moves to the previous search, reporting whether it could.
	Back() bool

	// Forward moves to the next search, reporting whether it could.
	Forward() bool
}

// View is the search view: query input, result list and status line.
type View struct {
	styles    *styles.Styles
	input     textinput.Model
	session   driving.SessionService
	nav       Navigator
	formatter *humanize.Formatter
	ctx       context.Context

	width      int
	height     int
	ready      bool
	focusInput bool // true = typing, false = navigating results
	selected   int
	loading    bool

	results domain.ResultSet
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	session driving.SessionService,
	nav Navigator,
	formatter *humanize.Formatter,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if formatter == nil {
		formatter = humanize.New()
	}

	input := textinput.New()
	input.Placeholder = "search transcripts..."
	input.Prompt = "/ "
	if session != nil {
		input.SetValue(session.State().Text)
	}
	input.Focus()

	return &View{
		styles:     s,
		input:      input,
		session:    session,
		nav:        nav,
		formatter:  formatter,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.loading = false
		v.results = msg.Results
		v.selected = 0
		return v, nil

	case messages.MoreLoaded:
		v.loading = false
		v.results = msg.Results
		return v, nil

	case messages.Navigated:
		v.loading = false
		if msg.Moved {
			v.results = msg.Results
			v.input.SetValue(msg.State.Text)
			v.selected = 0
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Tab always toggles between input and results.
	if msg.Type == tea.KeyTab {
		v.focusInput = !v.focusInput
		if v.focusInput {
			v.input.Focus()
		} else {
			v.input.Blur()
		}
		return v, nil
	}

	// Enter in input mode submits a fresh search.
	if msg.Type == tea.KeyEnter && v.focusInput {
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		v.loading = true
		v.focusInput = false
		v.input.Blur()
		return v, v.performSearch(query)
	}

	// Input mode: all other keys go to the input.
	if v.focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Results mode.
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.moveUp()
		return v, nil
	case tea.KeyDown:
		return v, v.moveDown()
	}

	switch msg.String() {
	case "k":
		v.moveUp()
		return v, nil
	case "j":
		return v, v.moveDown()
	case "m":
		if !v.results.CanLoadMore() || v.loading {
			return v, nil
		}
		v.loading = true
		return v, v.loadMore()
	case "[":
		v.loading = true
		return v, v.navigate(true)
	case "]":
		v.loading = true
		return v, v.navigate(false)
	case "/":
		v.focusInput = true
		v.input.Focus()
		return v, nil
	}

	return v, nil
}

func (v *View) moveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

// moveDown advances the selection. Stepping past the last result with
// a continuation token pending fetches the next page.
func (v *View) moveDown() tea.Cmd {
	if v.selected < len(v.results.Episodes)-1 {
		v.selected++
		return nil
	}
	if v.results.CanLoadMore() && !v.loading {
		v.loading = true
		return v.loadMore()
	}
	return nil
}

// performSearch submits the query as a fresh top-level search.
func (v *View) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		v.session.SetText(query)
		return messages.SearchCompleted{Results: v.session.RunSearch(v.ctx)}
	}
}

// loadMore requests the next result page.
func (v *View) loadMore() tea.Cmd {
	return func() tea.Msg {
		return messages.MoreLoaded{Results: v.session.LoadMore(v.ctx)}
	}
}

// navigate steps through the search history. The session re-runs the
// search from its navigation subscription before Back/Forward returns.
func (v *View) navigate(back bool) tea.Cmd {
	return func() tea.Msg {
		var moved bool
		if back {
			moved = v.nav.Back()
		} else {
			moved = v.nav.Forward()
		}
		return messages.Navigated{
			Moved:   moved,
			Results: v.session.Results(),
			State:   v.session.State(),
		}
	}
}

// InputFocused reports whether the query input currently has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Results returns the result set currently displayed.
func (v *View) Results() domain.ResultSet {
	return v.results
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SetDimensions sets the terminal dimensions (for testing).
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("tatt — transcript search"))
	b.WriteString("\n")
	b.WriteString(v.styles.InputBox.Width(v.width - 4).Render(v.input.View()))
	b.WriteString("\n\n")
	b.WriteString(v.renderResults())
	b.WriteString("\n")
	b.WriteString(v.renderStatus())

	return b.String()
}

// chromeHeight is the number of terminal rows taken by everything
// around the result list: title, input box and its border, padding and
// the status line.
const chromeHeight = 8

func (v *View) renderResults() string {
	if v.results.Err != "" {
		return v.styles.Error.Render("Error: " + v.results.Err)
	}
	if len(v.results.Episodes) == 0 {
		return v.styles.Muted.Render("No results yet. Type a query and press Enter.")
	}

	start, end := v.visibleRange()

	var b strings.Builder
	if start > 0 {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  … %d above", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		ep := v.results.Episodes[i]
		title := ep.Title + " — " + ep.Season.Title()
		if i == v.selected && !v.focusInput {
			b.WriteString(v.styles.Selected.Render("> " + title))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + title))
		}
		b.WriteString("\n")

		// Only the selected episode shows its excerpts, to keep the
		// list scannable.
		if i == v.selected {
			for _, group := range ep.Highlights {
				b.WriteString("    ")
				b.WriteString(v.renderGroup(group))
				b.WriteString("\n")
			}
		}
	}
	if end < len(v.results.Episodes) {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  … %d below", len(v.results.Episodes)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// visibleRange windows the episode list to the rows available below
// the chrome, keeping the selection in view. The selected episode's
// expanded excerpts count against the budget.
func (v *View) visibleRange() (int, int) {
	rows := v.height - chromeHeight
	if v.selected < len(v.results.Episodes) {
		rows -= len(v.results.Episodes[v.selected].Highlights)
	}
	if rows < 1 {
		rows = 1
	}

	start := 0
	if v.selected >= rows {
		start = v.selected - rows + 1
	}
	end := start + rows
	if end > len(v.results.Episodes) {
		end = len(v.results.Episodes)
	}
	return start, end
}

func (v *View) renderGroup(group domain.HighlightGroup) string {
	parts := make([]string, 0, len(group))
	for _, span := range group {
		if span.Highlighted {
			parts = append(parts, v.styles.Match.Render(span.Text))
		} else {
			parts = append(parts, v.styles.Muted.Render(span.Text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (v *View) renderStatus() string {
	if v.loading {
		return v.styles.Muted.Render("searching...")
	}
	if len(v.results.Episodes) == 0 {
		return v.styles.Muted.Render("enter: search · tab: toggle focus · q: quit")
	}

	status := []string{
		plural(len(v.results.Episodes), "episode"),
		plural(v.results.TotalHighlights(), "highlight"),
		"took " + v.formatter.Duration(v.results.QueryTime),
	}
	if v.results.CanLoadMore() {
		status = append(status, "m: load more")
	}
	return v.styles.Muted.Render(strings.Join(status, " · "))
}

func plural(n int, label string) string {
	s := label
	if n != 1 {
		s += "s"
	}
	return strconv.Itoa(n) + " " + s
}
