// Package dashboard provides the catalog browsing view for the TUI.
//
// The view owns the query state: active category, page, and search
// term. Every change to it produces exactly one fetch command, and
// stale completions are discarded by generation number, so rapid
// category or page flips can never paint an outdated page.
package dashboard

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/components/input"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/components/status"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/components/table"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/keymap"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/messages"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/styles"
	"github.com/holocron-labs/holocron-cli/internal/core/domain"
	"github.com/holocron-labs/holocron-cli/internal/core/ports/driving"
)

// View is the catalog dashboard: category sidebar, search box,
// record table and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	table     *table.Table
	statusbar *status.Bar

	catalog driving.CatalogService
	ctx     context.Context

	query      domain.QueryState
	totalPages int

	// gen counts issued fetches; completions carrying an older
	// generation are dropped.
	gen int

	searching   bool
	sidebarOpen bool
	err         error

	width  int
	height int
	ready  bool
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewSearchInput(s),
		table:       table.NewTable(s),
		statusbar:   status.NewBar(s, km),
		catalog:     catalog,
		ctx:         context.Background(),
		query:       domain.NewQueryState(),
		totalPages:  1,
		sidebarOpen: true,
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init fetches the first page.
func (v *View) Init() tea.Cmd {
	return v.fetch()
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PageLoaded:
		return v.handlePageLoaded(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.searching {
		return v.handleSearchKey(msg)
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.SignOut):
		return v, func() tea.Msg {
			return messages.SessionExpired{Reason: "Signed out."}
		}

	case keymap.Matches(keyStr, v.keymap.Search):
		v.searching = true
		v.statusbar.SetSearching(true)
		return v, v.input.Focus()

	case keymap.Matches(keyStr, v.keymap.NextCategory):
		return v.selectCategory(v.nextCategory(1))

	case keymap.Matches(keyStr, v.keymap.PrevCategory):
		return v.selectCategory(v.nextCategory(-1))

	case keymap.Matches(keyStr, v.keymap.NextPage):
		if v.query.Page < v.totalPages {
			v.query = v.query.WithPage(v.query.Page + 1)
			return v, v.fetch()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.PrevPage):
		if v.query.Page > 1 {
			v.query = v.query.WithPage(v.query.Page - 1)
			return v, v.fetch()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Reload):
		return v, v.fetch()

	case keymap.Matches(keyStr, v.keymap.ToggleSidebar):
		v.sidebarOpen = !v.sidebarOpen
		v.resize()
		return v, nil
	}

	return v, nil
}

// handleSearchKey processes keys while the search input is focused.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.statusbar.SetSearching(false)
		v.input.Blur()
		return v.submitSearch(v.input.Value())

	case tea.KeyEsc:
		v.searching = false
		v.statusbar.SetSearching(false)
		v.input.Blur()
		return v, nil

	default:
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
}

// submitSearch resolves the raw input. Empty input clears the active
// search, a number looks up by ID and anything else filters by name
// from page one.
func (v *View) submitSearch(raw string) (*View, tea.Cmd) {
	search := domain.ResolveSearch(raw)

	switch search.Kind {
	case domain.SearchByID:
		return v, v.lookup(search)

	case domain.SearchByName:
		v.query = v.query.WithSearch(search.Term)
		return v, v.fetch()

	default:
		if v.query.Search == "" {
			return v, nil
		}
		v.query = v.query.WithSearch("")
		return v, v.fetch()
	}
}

// selectCategory switches the active category and refetches.
func (v *View) selectCategory(category domain.Category) (*View, tea.Cmd) {
	if category == v.query.Category {
		return v, nil
	}
	v.query = v.query.WithCategory(category)
	v.input.Reset()
	return v, v.fetch()
}

// nextCategory returns the category a number of steps away in the
// fixed ordering, wrapping at both ends.
func (v *View) nextCategory(step int) domain.Category {
	all := domain.AllCategories()
	current := 0
	for i, c := range all {
		if c == v.query.Category {
			current = i
			break
		}
	}
	next := (current + step + len(all)) % len(all)
	return all[next]
}

// fetch issues a page fetch for the current query under a fresh
// generation.
func (v *View) fetch() tea.Cmd {
	v.gen++
	gen := v.gen
	query := v.query
	v.statusbar.SetState(status.StateLoading)

	return func() tea.Msg {
		page, err := v.catalog.FetchPage(v.ctx, query)
		return messages.PageLoaded{Query: query, Page: page, Gen: gen, Err: err}
	}
}

// lookup issues a single-record fetch by ID under a fresh generation.
func (v *View) lookup(search domain.SearchQuery) tea.Cmd {
	v.gen++
	gen := v.gen
	query := domain.QueryState{
		Category: v.query.Category,
		Page:     1,
		Limit:    v.query.Limit,
		Search:   search.Term,
	}
	v.statusbar.SetState(status.StateLoading)

	return func() tea.Msg {
		page, err := v.catalog.LookupByID(v.ctx, query.Category, search.ID)
		return messages.PageLoaded{Query: query, Page: page, Gen: gen, Err: err}
	}
}

// handlePageLoaded applies a completed fetch, unless it is stale or
// the session died underneath it.
func (v *View) handlePageLoaded(msg messages.PageLoaded) (*View, tea.Cmd) {
	if msg.Gen != v.gen {
		return v, nil
	}

	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, domain.ErrUnauthorized):
			return v, func() tea.Msg {
				return messages.SessionExpired{Reason: "Session expired. Please sign in again."}
			}
		case errors.Is(msg.Err, domain.ErrNoSession):
			return v, func() tea.Msg {
				return messages.SessionExpired{Reason: "Not signed in."}
			}
		case errors.Is(msg.Err, domain.ErrNotFound):
			v.err = msg.Err
			v.query = msg.Query
			v.totalPages = 1
			v.table.Clear()
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("No record with that ID.")
			v.statusbar.SetPager(1, 1)
			return v, nil
		default:
			// A failed page leaves nothing to show; keeping the previous
			// rows next to the error would misrepresent them as current.
			v.err = msg.Err
			v.totalPages = 1
			v.table.Clear()
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			v.statusbar.SetPager(1, 1)
			return v, nil
		}
	}

	v.err = nil
	v.query = msg.Query
	v.totalPages = msg.Page.TotalPages
	v.table.SetPage(msg.Query.Category, msg.Page.Results)
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	v.statusbar.SetPager(msg.Query.Page, msg.Page.TotalPages)
	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)
	sections = append(sections, v.styles.Title.Render("Holocron"), "")

	if v.searching {
		sections = append(sections, v.input.View(), "")
	} else if v.query.Search != "" {
		filter := v.styles.Muted.Render("Filter: " + v.query.Search)
		sections = append(sections, filter, "")
	}

	body := v.table.View()
	if v.sidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, v.renderSidebar(), "  ", body)
	}
	sections = append(sections, body, "")
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSidebar renders the category list with the active one marked.
func (v *View) renderSidebar() string {
	lines := make([]string, 0, len(domain.AllCategories()))
	for _, category := range domain.AllCategories() {
		if category == v.query.Category {
			lines = append(lines, v.styles.SidebarSelected.Render("> "+category.Title()))
		} else {
			lines = append(lines, v.styles.SidebarItem.Render("  "+category.Title()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.resize()
}

// resize reflows the components to the current width. The table gets
// the sidebar's columns back when the sidebar is hidden.
func (v *View) resize() {
	v.input.SetWidth(v.width)
	v.statusbar.SetWidth(v.width)

	tableWidth := v.width - 4
	if v.sidebarOpen {
		tableWidth = v.width - 20
	}
	v.table.SetWidth(tableWidth)
}

// Query returns the current query state.
func (v *View) Query() domain.QueryState {
	return v.query
}

// TotalPages returns the page count of the last loaded page.
func (v *View) TotalPages() int {
	return v.totalPages
}

// Searching returns whether the search input is focused.
func (v *View) Searching() bool {
	return v.searching
}

// SidebarOpen returns whether the category sidebar is visible.
func (v *View) SidebarOpen() bool {
	return v.sidebarOpen
}

// Err returns the last non-fatal error, if any.
func (v *View) Err() error {
	return v.err
}

// Table returns the record table (for testing).
func (v *View) Table() *table.Table {
	return v.table
}

// Ready returns whether the view has received dimensions.
func (v *View) Ready() bool {
	return v.ready
}
