package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

func TestTable_SetPage(t *testing.T) {
	tbl := NewTable(nil)

	tbl.SetPage(domain.CategoryPeople, []domain.CatalogRecord{
		{UID: "1", Properties: domain.Properties{
			"name": "Luke Skywalker", "height": "172", "mass": "77",
		}},
	})

	require.Equal(t, 1, tbl.RowCount())
	assert.False(t, tbl.Empty())

	view := tbl.View()
	assert.Contains(t, view, "Luke Skywalker")
	assert.Contains(t, view, "172")
	// Column headings render with underscores replaced.
	assert.Contains(t, view, "hair color")
}

func TestTable_EmptyShowsNoData(t *testing.T) {
	tbl := NewTable(nil)

	tbl.SetPage(domain.CategoryPeople, nil)

	assert.True(t, tbl.Empty())
	assert.Contains(t, tbl.View(), NoDataMessage)
}

func TestTable_DegradedRecordRendersEmptyCells(t *testing.T) {
	tbl := NewTable(nil)

	tbl.SetPage(domain.CategoryPeople, []domain.CatalogRecord{
		{UID: "1", Properties: domain.Properties{"name": "Luke Skywalker"}},
		{UID: "2", Name: "C-3PO", Properties: domain.Properties{}},
	})

	require.Equal(t, 2, tbl.RowCount())
	view := tbl.View()
	assert.Contains(t, view, "Luke Skywalker")
	assert.Contains(t, view, "C-3PO")
}

func TestTable_FilmColumns(t *testing.T) {
	tbl := NewTable(nil)

	tbl.SetPage(domain.CategoryFilms, []domain.CatalogRecord{
		{UID: "1", Properties: domain.Properties{
			"title":      "A New Hope",
			"director":   "George Lucas",
			"episode_id": float64(4),
		}},
	})

	view := tbl.View()
	assert.Contains(t, view, "A New Hope")
	assert.Contains(t, view, "George Lucas")
	assert.Contains(t, view, "episode id")
}

func TestTable_Clear(t *testing.T) {
	tbl := NewTable(nil)
	tbl.SetPage(domain.CategoryPeople, []domain.CatalogRecord{{UID: "1"}})
	require.False(t, tbl.Empty())

	tbl.Clear()
	assert.True(t, tbl.Empty())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly", truncate("exactly", 7))
	assert.Equal(t, "long te...", truncate("long text here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
