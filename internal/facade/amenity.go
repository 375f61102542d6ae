package facade

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/repository"
)

func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	a, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if _, err := f.amenities.GetByName(ctx, a.Name); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := f.amenities.Add(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return f.amenities.Get(ctx, id)
}

func (f *Facade) ListAmenities(ctx context.Context, p repository.Page) ([]domain.Amenity, int64, error) {
	return f.amenities.GetAll(ctx, p)
}

func (f *Facade) UpdateAmenity(ctx context.Context, id string, patch domain.AmenityPatch) (*domain.Amenity, error) {
	a, err := f.amenities.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		existing, err := f.amenities.GetByName(ctx, *patch.Name)
		if err == nil && existing.ID != id {
			return nil, domain.ErrConflict
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	if err := patch.Apply(a); err != nil {
		return nil, err
	}
	return f.amenities.Update(ctx, a)
}

func (f *Facade) DeleteAmenity(ctx context.Context, id string) (bool, error) {
	return f.amenities.Delete(ctx, id)
}
