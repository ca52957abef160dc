package listview

import "sort"

const DefaultPageSize = 5

// FilterAll is the sentinel value that disables a status or facet filter.
const FilterAll = "all"

// Config wires a Controller to one entity type. ID is mandatory; the other
// extractors are optional and disable the matching filter dimension when nil.
// Status is a matcher rather than an extractor because some views filter on
// non-exclusive dimensions (the provider flags), where one row can satisfy
// several status values at once.
type Config[T any] struct {
	ID     func(T) string
	Status func(T, string) bool
	Facets map[string]func(T) string
	Search func(T, string) bool
}

// Controller owns the list state of one admin table view: status filter,
// facet filters, free-text search, page size, current page and the checkbox
// selection set. It never owns the rows; every derivation is recomputed
// against whatever collection the caller passes in, so the entity store
// remains the single source for the cached data.
type Controller[T any] struct {
	cfg Config[T]

	status   string
	facets   map[string]string
	search   string
	pageSize int
	page     int
	selected map[string]struct{}
}

func New[T any](cfg Config[T]) *Controller[T] {
	return &Controller[T]{
		cfg:      cfg,
		status:   FilterAll,
		facets:   make(map[string]string),
		pageSize: DefaultPageSize,
		page:     1,
		selected: make(map[string]struct{}),
	}
}

// SetStatusFilter switches the status filter and always lands the view back
// on page 1, so a narrower result set can never leave the view stranded on
// an out-of-range page.
func (c *Controller[T]) SetStatusFilter(status string) {
	if status == "" {
		status = FilterAll
	}
	c.status = status
	c.page = 1
}

func (c *Controller[T]) StatusFilter() string {
	return c.status
}

func (c *Controller[T]) SetFacet(name, value string) {
	if value == "" {
		value = FilterAll
	}
	c.facets[name] = value
	c.page = 1
}

func (c *Controller[T]) Facet(name string) string {
	if v, ok := c.facets[name]; ok {
		return v
	}
	return FilterAll
}

func (c *Controller[T]) SetSearch(term string) {
	c.search = term
	c.page = 1
}

func (c *Controller[T]) Search() string {
	return c.search
}

func (c *Controller[T]) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	c.pageSize = size
	c.page = 1
}

func (c *Controller[T]) PageSize() int {
	return c.pageSize
}

func (c *Controller[T]) Page() int {
	return c.page
}

// PageChange moves to page p. Out-of-range requests are a no-op, which is
// what keeps the Prev/Next buttons safe to spam at either edge.
func (c *Controller[T]) PageChange(p int, items []T) {
	total := TotalPages(len(c.Filtered(items)), c.pageSize)
	if p >= 1 && p <= total {
		c.page = p
	}
}

// Filtered applies the active filters in a fixed order: status, then facets,
// then free-text search.
func (c *Controller[T]) Filtered(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.cfg.Status != nil && c.status != FilterAll && !c.cfg.Status(item, c.status) {
			continue
		}
		if !c.matchesFacets(item) {
			continue
		}
		if c.cfg.Search != nil && c.search != "" && !c.cfg.Search(item, c.search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (c *Controller[T]) matchesFacets(item T) bool {
	for name, extract := range c.cfg.Facets {
		want := c.Facet(name)
		if want != FilterAll && extract(item) != want {
			return false
		}
	}
	return true
}

// View derives the full render state for the current page.
type View[T any] struct {
	Rows        []T         `json:"rows"`
	Total       int         `json:"total"`
	Page        int         `json:"page"`
	PageSize    int         `json:"pageSize"`
	TotalPages  int         `json:"totalPages"`
	Pages       []PageEntry `json:"pages"`
	HasPrev     bool        `json:"hasPrev"`
	HasNext     bool        `json:"hasNext"`
	Selected    []string    `json:"selected"`
	AllSelected bool        `json:"allSelected"`
}

func (c *Controller[T]) View(items []T) View[T] {
	filtered := c.Filtered(items)
	totalPages := TotalPages(len(filtered), c.pageSize)

	start := (c.page - 1) * c.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return View[T]{
		Rows:        filtered[start:end],
		Total:       len(filtered),
		Page:        c.page,
		PageSize:    c.pageSize,
		TotalPages:  totalPages,
		Pages:       PageBar(c.page, totalPages),
		HasPrev:     c.page > 1,
		HasNext:     c.page < totalPages,
		Selected:    c.SelectedIDs(),
		AllSelected: c.AllSelected(items),
	}
}

func (c *Controller[T]) ToggleSelect(id string) {
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

// ToggleSelectAll flips the selection of every currently filtered row in one
// atomic step: when all of them are selected the whole filtered set is
// dropped, otherwise the filtered ids are added on top of whatever is
// already selected. Rows outside the filter keep their selection either way.
func (c *Controller[T]) ToggleSelectAll(items []T) {
	ids := c.filteredIDs(items)

	allSelected := true
	for _, id := range ids {
		if _, ok := c.selected[id]; !ok {
			allSelected = false
			break
		}
	}

	if allSelected {
		for _, id := range ids {
			delete(c.selected, id)
		}
	} else {
		for _, id := range ids {
			c.selected[id] = struct{}{}
		}
	}
}

// AllSelected reports the header checkbox state: checked only when the
// filtered set is non-empty and every filtered row is selected. Computed
// against the filtered set, not the visible page.
func (c *Controller[T]) AllSelected(items []T) bool {
	ids := c.filteredIDs(items)
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if _, ok := c.selected[id]; !ok {
			return false
		}
	}
	return true
}

func (c *Controller[T]) IsSelected(id string) bool {
	_, ok := c.selected[id]
	return ok
}

func (c *Controller[T]) SelectedIDs() []string {
	ids := make([]string, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Controller[T]) SelectedCount() int {
	return len(c.selected)
}

func (c *Controller[T]) ClearSelection() {
	c.selected = make(map[string]struct{})
}

func (c *Controller[T]) filteredIDs(items []T) []string {
	filtered := c.Filtered(items)
	ids := make([]string, len(filtered))
	for i, item := range filtered {
		ids[i] = c.cfg.ID(item)
	}
	return ids
}
