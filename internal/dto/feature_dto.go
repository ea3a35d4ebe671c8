// DTOs for Feature CRUD and section settings
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeatureRequest struct {
	Icon         *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Title        *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// UpdateFeatureRequest is a partial update. A provided DisplayOrder <= 0
// clears the custom order back to default recency ordering.
type UpdateFeatureRequest struct {
	Icon         *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Title        *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type FeatureResponse struct {
	Id           uuid.UUID `json:"id"`
	Icon         *string   `json:"icon"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	DisplayOrder *int      `json:"displayOrder"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FeatureListResponse is the admin list envelope.
type FeatureListResponse struct {
	Features   []*FeatureResponse `json:"features"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// UpdateSectionSettingRequest upserts the singleton; each field is applied
// independently when present.
type UpdateSectionSettingRequest struct {
	SectionTitle       *string `json:"sectionTitle,omitempty" validate:"omitempty,max=255"`
	SectionDescription *string `json:"sectionDescription,omitempty"`
}

type SectionSettingResponse struct {
	Id                 *uuid.UUID `json:"id,omitempty"`
	SectionTitle       string     `json:"sectionTitle"`
	SectionDescription string     `json:"sectionDescription"`
}
