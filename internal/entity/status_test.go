package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusPublished, ParseStatus("published"))
	assert.Equal(t, StatusPublished, ParseStatus("PUBLISHED"))
	assert.Equal(t, StatusPublished, ParseStatus("  Published "))
	assert.Equal(t, StatusArchived, ParseStatus("archived"))
	assert.Equal(t, StatusDraft, ParseStatus("draft"))

	// Blank and unrecognized input falls back to draft.
	assert.Equal(t, StatusDraft, ParseStatus(""))
	assert.Equal(t, StatusDraft, ParseStatus("banana"))
	assert.Equal(t, StatusDraft, ParseStatus("publish"))
}

func TestParseStatusFilter(t *testing.T) {
	status, ok := ParseStatusFilter("published")
	assert.True(t, ok)
	assert.Equal(t, StatusPublished, status)

	status, ok = ParseStatusFilter("DRAFT")
	assert.True(t, ok)
	assert.Equal(t, StatusDraft, status)

	// Blank, "all" and unknown values disable the filter.
	_, ok = ParseStatusFilter("")
	assert.False(t, ok)
	_, ok = ParseStatusFilter("all")
	assert.False(t, ok)
	_, ok = ParseStatusFilter("everything")
	assert.False(t, ok)
}

func TestStatusLower(t *testing.T) {
	assert.Equal(t, "published", StatusPublished.Lower())
	assert.Equal(t, "draft", StatusDraft.Lower())
	assert.Equal(t, "archived", StatusArchived.Lower())
}
