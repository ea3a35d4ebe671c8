// Publication status shared by Hero and Feature
package entity

import "strings"

// Status is the three-valued publication state of a content record.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// ParseStatus maps free-text client input to a Status. Blank or unrecognized
// input resolves to DRAFT; this function never fails.
func ParseStatus(s string) Status {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPublished:
		return StatusPublished
	case StatusArchived:
		return StatusArchived
	default:
		return StatusDraft
	}
}

// ParseStatusFilter maps a list-endpoint status query to a filter.
// Blank, "all" or unrecognized values disable filtering (ok=false).
func ParseStatusFilter(s string) (Status, bool) {
	v := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch v {
	case StatusDraft, StatusPublished, StatusArchived:
		return v, true
	}
	return "", false
}

// Lower returns the wire form of the status ("draft", "published", "archived").
func (s Status) Lower() string {
	return strings.ToLower(string(s))
}
