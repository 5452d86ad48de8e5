package service

import (
	"sort"

	"nearme/internal/model"
)

// Rank returns a copy of places ordered by the given mode. Relevance keeps
// the provider's native order; all sorts are stable, so equal keys keep their
// original relative order.
func Rank(places []model.Place, mode model.SortMode) []model.Place {
	ranked := make([]model.Place, len(places))
	copy(ranked, places)

	switch mode {
	case model.SortDistance:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		})
	case model.SortRating:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Rating > ranked[j].Rating
		})
	case model.SortReviews:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].ReviewCount > ranked[j].ReviewCount
		})
	}

	return ranked
}

// Pager maintains the incremental display-count cursor over a ranked
// sequence. The cursor survives sort-mode changes and result refreshes.
type Pager struct {
	pageSize     int
	displayCount int
}

// NewPager creates a pager whose cursor starts at one page.
func NewPager(pageSize int) *Pager {
	return &Pager{
		pageSize:     pageSize,
		displayCount: pageSize,
	}
}

// DisplayCount returns the number of entries currently revealed, never more
// than total.
func (p *Pager) DisplayCount(total int) int {
	if p.displayCount > total {
		return total
	}
	return p.displayCount
}

// LoadMore advances the cursor by one page, capped at total, and returns the
// new display count.
func (p *Pager) LoadMore(total int) int {
	next := p.displayCount + p.pageSize
	if next > total {
		next = total
	}
	if next > p.displayCount {
		p.displayCount = next
	}
	return p.DisplayCount(total)
}
