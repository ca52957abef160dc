package listview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID     string
	Status string
	Device string
	Name   string
}

func testConfig() Config[row] {
	return Config[row]{
		ID:     func(r row) string { return r.ID },
		Status: func(r row, status string) bool { return r.Status == status },
		Facets: map[string]func(row) string{
			"device": func(r row) string { return r.Device },
		},
		Search: func(r row, term string) bool {
			return strings.Contains(strings.ToLower(r.Name), strings.ToLower(term))
		},
	}
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		status := "active"
		if i%3 == 0 {
			status = "hidden"
		}
		device := "desktop"
		if i%2 == 0 {
			device = "mobile"
		}
		rows[i] = row{
			ID:     fmt.Sprintf("id-%02d", i),
			Status: status,
			Device: device,
			Name:   fmt.Sprintf("Row %d", i),
		}
	}
	return rows
}

func TestPaginationSlices(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)

	// 12 rows at 5 per page: 5, 5, 2
	v := c.View(rows)
	assert.Equal(t, 3, v.TotalPages)
	assert.Len(t, v.Rows, 5)
	assert.Equal(t, "id-00", v.Rows[0].ID)

	c.PageChange(2, rows)
	v = c.View(rows)
	assert.Len(t, v.Rows, 5)
	assert.Equal(t, "id-05", v.Rows[0].ID)

	c.PageChange(3, rows)
	v = c.View(rows)
	assert.Len(t, v.Rows, 2)
	assert.Equal(t, "id-10", v.Rows[0].ID)
	assert.Equal(t, "id-11", v.Rows[1].ID)
}

func TestPagesReconstructFiltered(t *testing.T) {
	c := New(testConfig())
	c.SetPageSize(4)
	rows := makeRows(11)

	filtered := c.Filtered(rows)
	var union []row
	for p := 1; p <= TotalPages(len(filtered), 4); p++ {
		c.PageChange(p, rows)
		union = append(union, c.View(rows).Rows...)
	}

	assert.Equal(t, filtered, union)
}

func TestTotalPagesFloor(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(12, 5))
}

func TestPageChangeOutOfRangeIsNoop(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)

	c.PageChange(0, rows)
	assert.Equal(t, 1, c.Page())

	c.PageChange(4, rows)
	assert.Equal(t, 1, c.Page())

	c.PageChange(3, rows)
	assert.Equal(t, 3, c.Page())
}

func TestFilterChangeResetsPage(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)

	c.PageChange(3, rows)
	c.SetStatusFilter("active")
	assert.Equal(t, 1, c.Page())

	c.PageChange(2, rows)
	c.SetFacet("device", "mobile")
	assert.Equal(t, 1, c.Page())

	c.SetPageSize(10)
	assert.Equal(t, 1, c.Page())
}

func TestFilterOrderStatusFacetSearch(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)

	c.SetStatusFilter("active")
	c.SetFacet("device", "desktop")
	c.SetSearch("row 1")

	for _, r := range c.Filtered(rows) {
		assert.Equal(t, "active", r.Status)
		assert.Equal(t, "desktop", r.Device)
		assert.Contains(t, strings.ToLower(r.Name), "row 1")
	}
}

func TestToggleSelectAllIsSelfInverse(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)
	c.SetStatusFilter("active")

	// From an empty selection two toggles land back on empty.
	c.ToggleSelectAll(rows)
	assert.True(t, c.AllSelected(rows))
	c.ToggleSelectAll(rows)
	assert.Zero(t, c.SelectedCount())

	// And from a full selection two toggles land back on full.
	c.ToggleSelectAll(rows)
	c.ToggleSelectAll(rows)
	c.ToggleSelectAll(rows)
	assert.True(t, c.AllSelected(rows))
}

func TestSelectAllIsAdditiveAcrossFilters(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)

	// Select something outside the upcoming filter, then select-all inside it.
	c.ToggleSelect("id-00") // hidden row
	c.SetStatusFilter("active")
	c.ToggleSelectAll(rows)

	assert.True(t, c.IsSelected("id-00"))
	for _, r := range c.Filtered(rows) {
		assert.True(t, c.IsSelected(r.ID))
	}

	// Clearing the filtered set must not drop the outside id.
	c.ToggleSelectAll(rows)
	assert.True(t, c.IsSelected("id-00"))
	assert.Equal(t, 1, c.SelectedCount())
}

func TestAllSelectedAgainstFilteredNotPage(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)
	c.SetPageSize(5)

	// Select only the first page's rows; header checkbox must stay unchecked
	// because the filtered set spans all pages.
	for _, r := range c.View(rows).Rows {
		c.ToggleSelect(r.ID)
	}
	assert.False(t, c.AllSelected(rows))

	c.ToggleSelectAll(rows)
	assert.True(t, c.AllSelected(rows))
}

func TestAllSelectedEmptyFiltered(t *testing.T) {
	c := New(testConfig())
	assert.False(t, c.AllSelected(nil))

	c.ToggleSelectAll(nil)
	assert.Equal(t, 0, c.SelectedCount())
}

func TestClearSelection(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(6)

	c.ToggleSelectAll(rows)
	assert.NotZero(t, c.SelectedCount())

	c.ClearSelection()
	assert.Zero(t, c.SelectedCount())
}

func TestPageBar(t *testing.T) {
	// Few pages: plain window, no ellipses.
	assert.Equal(t, []PageEntry{{Number: 1}, {Number: 2}}, PageBar(1, 2))

	// Middle of a long range: 1 ... 4 5 6 ... 10
	assert.Equal(t, []PageEntry{
		{Number: 1},
		{Ellipsis: true},
		{Number: 4}, {Number: 5}, {Number: 6},
		{Ellipsis: true},
		{Number: 10},
	}, PageBar(5, 10))

	// Near the start: window still touches page 1.
	assert.Equal(t, []PageEntry{
		{Number: 1}, {Number: 2}, {Number: 3},
		{Ellipsis: true},
		{Number: 10},
	}, PageBar(2, 10))

	// current == 3: leading 1 but no leading ellipsis yet.
	assert.Equal(t, []PageEntry{
		{Number: 1},
		{Number: 2}, {Number: 3}, {Number: 4},
		{Ellipsis: true},
		{Number: 10},
	}, PageBar(3, 10))

	// Near the end: no trailing ellipsis.
	assert.Equal(t, []PageEntry{
		{Number: 1},
		{Ellipsis: true},
		{Number: 8}, {Number: 9}, {Number: 10},
	}, PageBar(9, 10))
}

func TestViewPrevNextFlags(t *testing.T) {
	c := New(testConfig())
	rows := makeRows(12)

	v := c.View(rows)
	assert.False(t, v.HasPrev)
	assert.True(t, v.HasNext)

	c.PageChange(3, rows)
	v = c.View(rows)
	assert.True(t, v.HasPrev)
	assert.False(t, v.HasNext)
}
