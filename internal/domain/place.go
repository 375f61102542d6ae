package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxTitleLen = 100

type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	AmenityIDs  []string  `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateLatitude(latitude); err != nil {
		return nil, err
	}
	if err := validateLongitude(longitude); err != nil {
		return nil, err
	}
	if strings.TrimSpace(ownerID) == "" {
		return nil, NewValidationError("owner_id", "cannot be empty")
	}

	now := time.Now().UTC()
	return &Place{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *Place) Touch() { p.UpdatedAt = time.Now().UTC() }

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "cannot be empty")
	}
	if len(title) > maxTitleLen {
		return NewValidationError("title", "must be 100 characters or less")
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return NewValidationError("price", "cannot be negative")
	}
	return nil
}

func validateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return NewValidationError("latitude", "must be between -90 and 90")
	}
	return nil
}

func validateLongitude(lon float64) error {
	if lon < -180 || lon > 180 {
		return NewValidationError("longitude", "must be between -180 and 180")
	}
	return nil
}

// PlacePatch carries the patchable place fields. Amenities, when non-nil,
// replaces the full amenity set.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	Amenities   []string
}

func (p PlacePatch) Apply(pl *Place) error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
		pl.Title = *p.Title
	}
	if p.Description != nil {
		pl.Description = *p.Description
	}
	if p.Price != nil {
		if err := validatePrice(*p.Price); err != nil {
			return err
		}
		pl.Price = *p.Price
	}
	if p.Latitude != nil {
		if err := validateLatitude(*p.Latitude); err != nil {
			return err
		}
		pl.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		if err := validateLongitude(*p.Longitude); err != nil {
			return err
		}
		pl.Longitude = *p.Longitude
	}
	pl.Touch()
	return nil
}
