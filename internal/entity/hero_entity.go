// Domain entity for homepage hero banner slots
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hero is a homepage banner slot. At most five heroes may hold
// StatusPublished at the same time (enforced by the hero service).
type Hero struct {
	Id                uuid.UUID
	Title             string
	Subtitle          string
	Badge             string
	SocialProof       string
	DisplayOrder      int // lower sorts first, defaults to 0
	PrimaryCtaLabel   *string
	PrimaryCtaHref    *string
	SecondaryCtaLabel *string
	SecondaryCtaHref  *string
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
