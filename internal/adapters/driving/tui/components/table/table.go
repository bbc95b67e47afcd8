// Package table renders a page of catalog records as a column table.
package table

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/styles"
	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

// NoDataMessage is shown as the only row of an empty table.
const NoDataMessage = "No data available."

// maxCellWidth keeps one verbose property from eating the terminal.
const maxCellWidth = 40

// Table renders records under the column set of the active category.
type Table struct {
	styles  *styles.Styles
	headers []string
	rows    [][]string
	width   int
}

// NewTable creates an empty table.
func NewTable(s *styles.Styles) *Table {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Table{
		styles: s,
		width:  80,
	}
}

// Init initialises the table.
func (t *Table) Init() tea.Cmd {
	return nil
}

// Update handles table messages. The table is passive; it changes
// through SetPage.
func (t *Table) Update(_ tea.Msg) (*Table, tea.Cmd) {
	return t, nil
}

// SetPage replaces the table contents with one page of records.
// The column set comes from the category; a record whose detail fetch
// failed simply renders empty cells for the missing properties.
func (t *Table) SetPage(category domain.Category, records []domain.CatalogRecord) {
	projection := domain.ProjectionFor(category)

	if projection.IsZero() {
		t.setGeneric(records)
		return
	}

	t.headers = projection.Labels()
	t.rows = make([][]string, len(records))
	for i, record := range records {
		t.rows[i] = projection.Row(record)
	}
}

// setGeneric falls back to per-record projections when the category
// has no fixed column list.
func (t *Table) setGeneric(records []domain.CatalogRecord) {
	t.headers = nil
	t.rows = make([][]string, len(records))

	for i, record := range records {
		projection := domain.GenericProjection(record)
		if t.headers == nil {
			t.headers = projection.Labels()
		}
		t.rows[i] = projection.Row(record)
	}
}

// Clear empties the table.
func (t *Table) Clear() {
	t.headers = nil
	t.rows = nil
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Headers returns the current column headings.
func (t *Table) Headers() []string {
	return t.headers
}

// View renders the table.
func (t *Table) View() string {
	if t.Empty() {
		return t.styles.Muted.Render(NoDataMessage)
	}

	widths := t.columnWidths()

	lines := make([]string, 0, len(t.rows)+1)
	lines = append(lines, t.renderRow(t.headers, widths, t.styles.TableHeader))
	for _, row := range t.rows {
		lines = append(lines, t.renderRow(row, widths, t.styles.TableCell))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderRow renders one row with every cell padded to its column width.
func (t *Table) renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = truncate(cells[i], widths[i])
		}
		rendered[i] = style.Width(widths[i] + 2).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// columnWidths sizes each column to its widest cell, capped.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = len(header)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}
	return widths
}

// truncate shortens a cell to fit its column.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// SetWidth sets the available rendering width.
func (t *Table) SetWidth(width int) {
	t.width = width
}
