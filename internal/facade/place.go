package facade

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/repository"
)

type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// UserSummary is the owner projection embedded in place responses.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PlaceDetail is a place with its owner and amenities expanded.
type PlaceDetail struct {
	domain.Place
	Owner     *UserSummary     `json:"owner,omitempty"`
	Amenities []domain.Amenity `json:"amenities"`
}

// CreatePlace requires an existing owner and resolves every amenity id.
// A single unresolved amenity id fails the whole operation; nothing is
// partially applied.
func (f *Facade) CreatePlace(ctx context.Context, in CreatePlaceInput) (*PlaceDetail, error) {
	if _, err := f.users.Get(ctx, in.OwnerID); err != nil {
		return nil, err
	}

	p, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID)
	if err != nil {
		return nil, err
	}

	amenities, err := f.resolveAmenities(ctx, in.AmenityIDs)
	if err != nil {
		return nil, err
	}
	p.AmenityIDs = amenityIDs(amenities)

	if err := f.places.Add(ctx, p); err != nil {
		return nil, err
	}
	return f.expandPlace(ctx, p)
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*PlaceDetail, error) {
	p, err := f.places.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.expandPlace(ctx, p)
}

func (f *Facade) ListPlaces(ctx context.Context, page repository.Page) ([]PlaceDetail, int64, error) {
	places, total, err := f.places.GetAll(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	details := make([]PlaceDetail, 0, len(places))
	for i := range places {
		d, err := f.expandPlace(ctx, &places[i])
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *d)
	}
	return details, total, nil
}

// UpdatePlace patches the supplied fields and, when the patch carries an
// amenity list, replaces the full amenity set. Field patch and amenity
// replacement are persisted atomically by the repository.
func (f *Facade) UpdatePlace(ctx context.Context, id string, patch domain.PlacePatch) (*PlaceDetail, error) {
	p, err := f.places.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patch.Apply(p); err != nil {
		return nil, err
	}

	if patch.Amenities != nil {
		amenities, err := f.resolveAmenities(ctx, patch.Amenities)
		if err != nil {
			return nil, err
		}
		p.AmenityIDs = amenityIDs(amenities)
	}

	updated, err := f.places.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return f.expandPlace(ctx, updated)
}

func (f *Facade) DeletePlace(ctx context.Context, id string) (bool, error) {
	return f.places.Delete(ctx, id)
}

// resolveAmenities maps ids to amenities, failing fast on the first id that
// does not exist.
func (f *Facade) resolveAmenities(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	amenities := make([]domain.Amenity, 0, len(ids))
	for _, id := range ids {
		a, err := f.amenities.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		amenities = append(amenities, *a)
	}
	return amenities, nil
}

func amenityIDs(amenities []domain.Amenity) []string {
	ids := make([]string, 0, len(amenities))
	for _, a := range amenities {
		ids = append(ids, a.ID)
	}
	return ids
}

func (f *Facade) expandPlace(ctx context.Context, p *domain.Place) (*PlaceDetail, error) {
	d := &PlaceDetail{Place: *p, Amenities: []domain.Amenity{}}

	owner, err := f.users.Get(ctx, p.OwnerID)
	if err == nil {
		d.Owner = &UserSummary{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Email:     owner.Email,
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	for _, id := range p.AmenityIDs {
		a, err := f.amenities.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		d.Amenities = append(d.Amenities, *a)
	}
	return d, nil
}
