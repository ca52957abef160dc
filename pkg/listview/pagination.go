package listview

// TotalPages returns ceil(total/pageSize) with a floor of one page, so an
// empty result set still renders a single (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PageEntry is one slot in the rendered page bar: either a page number or an
// ellipsis placeholder.
type PageEntry struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageBar builds the page-number list with ellipses around a sliding window
// of [current-1, current+1]: page 1 is pinned once the window moves past it,
// the last page is pinned while the window is still far from it.
func PageBar(current, total int) []PageEntry {
	var pages []PageEntry

	if current > 2 {
		pages = append(pages, PageEntry{Number: 1})
		if current > 3 {
			pages = append(pages, PageEntry{Ellipsis: true})
		}
	}

	start := max(1, current-1)
	end := min(total, current+1)
	for i := start; i <= end; i++ {
		pages = append(pages, PageEntry{Number: i})
	}

	if current < total-2 {
		pages = append(pages, PageEntry{Ellipsis: true}, PageEntry{Number: total})
	}

	return pages
}
