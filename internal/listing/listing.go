// Package listing applies in-memory filtering, price sorting and
// fixed-size pagination to a fetched location list.
package listing

import (
	"sort"
	"strings"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

// PageSize is the fixed client-side page size.
const PageSize = 6

// SortOrder controls the price sort step
type SortOrder int

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

// Filter holds the active filter criteria. Zero values mean "no
// constraint" for their field.
type Filter struct {
	Query    string // matched against name or address
	City     string // matched against address
	District string // matched against address
	MinPrice int64
	MaxPrice int64 // 0 means unbounded
	Sort     SortOrder
}

// Apply runs the filter pipeline and sort over the input. The filter
// steps commute; only the sort affects order. Ties keep fetch order
// (stable sort).
func (f *Filter) Apply(locations []domain.Location) []domain.Location {
	out := make([]domain.Location, 0, len(locations))
	for _, loc := range locations {
		if f.matches(&loc) {
			out = append(out, loc)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PricePerHour < out[j].PricePerHour
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PricePerHour > out[j].PricePerHour
		})
	}

	return out
}

func (f *Filter) matches(loc *domain.Location) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		name := strings.ToLower(loc.Name)
		addr := strings.ToLower(loc.Address)
		if !strings.Contains(name, q) && !strings.Contains(addr, q) {
			return false
		}
	}
	if f.City != "" && !strings.Contains(strings.ToLower(loc.Address), strings.ToLower(f.City)) {
		return false
	}
	if f.District != "" && !strings.Contains(strings.ToLower(loc.Address), strings.ToLower(f.District)) {
		return false
	}
	if loc.PricePerHour < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && loc.PricePerHour > f.MaxPrice {
		return false
	}
	return true
}

// Pager paginates a filtered list with the fixed page size.
type Pager struct {
	items []domain.Location
	page  int
}

// NewPager creates a pager positioned on page 1.
func NewPager(items []domain.Location) *Pager {
	return &Pager{items: items, page: 1}
}

// TotalPages returns ceil(len(items) / PageSize). An empty list has
// one (empty) page.
func (p *Pager) TotalPages() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + PageSize - 1) / PageSize
}

// Page returns the current page number.
func (p *Pager) Page() int {
	return p.page
}

// SetPage moves to the given page. Values outside [1, TotalPages] are
// a no-op: the current page stays unchanged.
func (p *Pager) SetPage(page int) {
	if page < 1 || page > p.TotalPages() {
		return
	}
	p.page = page
}

// Items returns the locations on the current page.
func (p *Pager) Items() []domain.Location {
	start := (p.page - 1) * PageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + PageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// Total returns the number of items across all pages.
func (p *Pager) Total() int {
	return len(p.items)
}
