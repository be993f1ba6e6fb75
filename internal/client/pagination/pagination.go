// Package pagination computes the page selector shown under the listing: a
// window of pages around the current one, the first and last page always
// visible, and ellipsis markers where pages are elided.
package pagination

// windowDelta is how many pages are shown on each side of the current page.
const windowDelta = 2

// Item is one slot in the rendered page bar. When Ellipsis is true the slot
// is a gap marker and Page is zero.
type Item struct {
	Page     int
	Ellipsis bool
}

// Window returns the page bar for current within total pages. It is empty
// when there is at most one page. The first and last pages are always
// present exactly once, and pages inside the window are contiguous.
func Window(current, total int) []Item {
	if total <= 1 {
		return nil
	}

	lo := current - windowDelta
	if lo < 2 {
		lo = 2
	}
	hi := current + windowDelta
	if hi > total-1 {
		hi = total - 1
	}

	items := []Item{{Page: 1}}
	if lo > 2 {
		items = append(items, Item{Ellipsis: true})
	}
	for p := lo; p <= hi; p++ {
		items = append(items, Item{Page: p})
	}
	if hi < total-1 {
		items = append(items, Item{Ellipsis: true})
	}
	items = append(items, Item{Page: total})

	return items
}
