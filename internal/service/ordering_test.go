package service

import (
	"testing"
	"time"

	"slm-marketing-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func feature(title string, displayOrder *int, createdAt time.Time) *entity.Feature {
	return &entity.Feature{
		Title:        &title,
		DisplayOrder: displayOrder,
		CreatedAt:    createdAt,
	}
}

func intPtr(n int) *int { return &n }

func TestSortFeaturesOrderedFirstThenNewest(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	features := []*entity.Feature{
		feature("old-unordered", nil, base),
		feature("second", intPtr(2), base.Add(time.Hour)),
		feature("new-unordered", nil, base.Add(3*time.Hour)),
		feature("first", intPtr(1), base.Add(2*time.Hour)),
	}

	sortFeatures(features)

	titles := make([]string, 0, len(features))
	for _, f := range features {
		titles = append(titles, *f.Title)
	}
	assert.Equal(t, []string{"first", "second", "new-unordered", "old-unordered"}, titles)
}

func TestSortFeaturesTieBreaksNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	features := []*entity.Feature{
		feature("older", intPtr(1), base),
		feature("newer", intPtr(1), base.Add(time.Hour)),
	}

	sortFeatures(features)

	assert.Equal(t, "newer", *features[0].Title)
	assert.Equal(t, "older", *features[1].Title)
}

func TestSortHeroes(t *testing.T) {
	heroes := []*entity.Hero{
		{Title: "third", DisplayOrder: 3},
		{Title: "first", DisplayOrder: 1},
		{Title: "second", DisplayOrder: 2},
	}

	sortHeroes(heroes)

	assert.Equal(t, "first", heroes[0].Title)
	assert.Equal(t, "second", heroes[1].Title)
	assert.Equal(t, "third", heroes[2].Title)
}

func TestPaginate(t *testing.T) {
	start, end, totalPages := paginate(25, 0, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
	assert.Equal(t, 3, totalPages)

	start, end, totalPages = paginate(25, 2, 10)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)
	assert.Equal(t, 3, totalPages)

	// Page beyond range yields an empty window.
	start, end, _ = paginate(25, 5, 10)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)

	// Empty collection.
	start, end, totalPages = paginate(0, 0, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, 0, totalPages)
}

func TestNormalizePaging(t *testing.T) {
	page, pageSize := normalizePaging(-3, 0)
	assert.Equal(t, 0, page)
	assert.Equal(t, defaultPageSize, pageSize)

	page, pageSize = normalizePaging(2, 25)
	assert.Equal(t, 2, page)
	assert.Equal(t, 25, pageSize)
}
