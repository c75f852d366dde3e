package dto

import (
	"time"

	"logistik_backend/internal/models"
)

type CreatePackageRequest struct {
	Name           string    `json:"name" validate:"required,min=2"`
	Description    *string   `json:"description" validate:"omitempty,min=2"`
	PrimaryEmail   string    `json:"primary_email" validate:"required,email"`
	SecondaryEmail *string   `json:"secondary_email" validate:"omitempty,email"`
	PickupDate     time.Time `json:"pickup_date" validate:"required,future"`
}

type PackagesPageQuery struct {
	Page int `form:"page" validate:"omitempty,min=1"`
}

// PackagesPage is the paginated listing payload.
type PackagesPage struct {
	CurrentPage int              `json:"current_page"`
	Limit       int              `json:"limit"`
	Data        []models.Package `json:"data"`
	TotalPages  int              `json:"total_pages"`
	TotalItems  int64            `json:"total_items"`
}
