package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxAmenityNameLen = 50

// Amenity names are unique across the system; the repository enforces it.
type Amenity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAmenity(name string) (*Amenity, error) {
	if err := validateAmenityName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Amenity{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (a *Amenity) Touch() { a.UpdatedAt = time.Now().UTC() }

func validateAmenityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "cannot be empty")
	}
	if len(name) > maxAmenityNameLen {
		return NewValidationError("name", "must be 50 characters or less")
	}
	return nil
}

type AmenityPatch struct {
	Name *string
}

func (p AmenityPatch) Apply(a *Amenity) error {
	if p.Name != nil {
		if err := validateAmenityName(*p.Name); err != nil {
			return err
		}
		a.Name = *p.Name
	}
	a.Touch()
	return nil
}
