// Pure ordering and pagination rules for content collections.
package service

import (
	"sort"

	"slm-marketing-be/internal/entity"
)

const defaultPageSize = 10

// sortFeatures orders features for display: entries with an explicit
// displayOrder come first (ascending), then the rest newest-first. Ties on
// displayOrder also fall back to newest-first. The sort is stable.
func sortFeatures(features []*entity.Feature) {
	sort.SliceStable(features, func(i, j int) bool {
		a, b := features[i], features[j]
		if (a.DisplayOrder != nil) != (b.DisplayOrder != nil) {
			return a.DisplayOrder != nil
		}
		if a.DisplayOrder != nil && b.DisplayOrder != nil && *a.DisplayOrder != *b.DisplayOrder {
			return *a.DisplayOrder < *b.DisplayOrder
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// sortHeroes orders heroes by displayOrder ascending; ties keep store order.
func sortHeroes(heroes []*entity.Hero) {
	sort.SliceStable(heroes, func(i, j int) bool {
		return heroes[i].DisplayOrder < heroes[j].DisplayOrder
	})
}

// paginate computes the [start:end) window and total page count for a page of
// pageSize items over total entries. Pages beyond range produce an empty
// window, never an error. Callers pass normalized page/pageSize (page >= 0,
// pageSize > 0).
func paginate(total, page, pageSize int) (start, end, totalPages int) {
	start = page * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	totalPages = (total + pageSize - 1) / pageSize
	return start, end, totalPages
}

// normalizePaging applies the list-endpoint defaults: negative page means
// first page, non-positive pageSize falls back to the default.
func normalizePaging(page, pageSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
