// DTOs for Hero CRUD
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateHeroRequest creates a hero banner slot. Status accepts free text and
// falls back to draft.
type CreateHeroRequest struct {
	Title             string  `json:"title" validate:"required,max=255"`
	Subtitle          string  `json:"subtitle" validate:"required"`
	Badge             string  `json:"badge" validate:"required,max=100"`
	SocialProof       string  `json:"socialProof" validate:"required,max=500"`
	DisplayOrder      *int    `json:"displayOrder,omitempty"`
	PrimaryCtaLabel   *string `json:"primaryCtaLabel,omitempty" validate:"omitempty,max=100"`
	PrimaryCtaHref    *string `json:"primaryCtaHref,omitempty" validate:"omitempty,max=500"`
	SecondaryCtaLabel *string `json:"secondaryCtaLabel,omitempty" validate:"omitempty,max=100"`
	SecondaryCtaHref  *string `json:"secondaryCtaHref,omitempty" validate:"omitempty,max=500"`
	Status            string  `json:"status,omitempty"`
}

// UpdateHeroRequest is a partial update: nil fields leave the current value
// untouched.
type UpdateHeroRequest struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Subtitle          *string `json:"subtitle,omitempty"`
	Badge             *string `json:"badge,omitempty" validate:"omitempty,max=100"`
	SocialProof       *string `json:"socialProof,omitempty" validate:"omitempty,max=500"`
	DisplayOrder      *int    `json:"displayOrder,omitempty"`
	PrimaryCtaLabel   *string `json:"primaryCtaLabel,omitempty" validate:"omitempty,max=100"`
	PrimaryCtaHref    *string `json:"primaryCtaHref,omitempty" validate:"omitempty,max=500"`
	SecondaryCtaLabel *string `json:"secondaryCtaLabel,omitempty" validate:"omitempty,max=100"`
	SecondaryCtaHref  *string `json:"secondaryCtaHref,omitempty" validate:"omitempty,max=500"`
	Status            *string `json:"status,omitempty"`
}

type HeroResponse struct {
	Id                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Subtitle          string    `json:"subtitle"`
	Badge             string    `json:"badge"`
	SocialProof       string    `json:"socialProof"`
	DisplayOrder      int       `json:"displayOrder"`
	PrimaryCtaLabel   *string   `json:"primaryCtaLabel"`
	PrimaryCtaHref    *string   `json:"primaryCtaHref"`
	SecondaryCtaLabel *string   `json:"secondaryCtaLabel"`
	SecondaryCtaHref  *string   `json:"secondaryCtaHref"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PublishedCountResponse backs the X/5 indicator in the admin UI.
type PublishedCountResponse struct {
	Count int64 `json:"count"`
	Max   int   `json:"max"`
}
