package facade

import (
	"context"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/repository"
)

// Repository interfaces the facade depends on. Both the gorm-backed and the
// in-memory implementations in internal/repository satisfy them; which one is
// injected is decided at composition time.

type UserRepository interface {
	Add(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context, p repository.Page) ([]domain.User, int64, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByAttribute(ctx context.Context, name, value string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PlaceRepository interface {
	Add(ctx context.Context, p *domain.Place) error
	Get(ctx context.Context, id string) (*domain.Place, error)
	GetAll(ctx context.Context, p repository.Page) ([]domain.Place, int64, error)
	Update(ctx context.Context, p *domain.Place) (*domain.Place, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByAttribute(ctx context.Context, name, value string) (*domain.Place, error)
	GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error)
}

type AmenityRepository interface {
	Add(ctx context.Context, a *domain.Amenity) error
	Get(ctx context.Context, id string) (*domain.Amenity, error)
	GetAll(ctx context.Context, p repository.Page) ([]domain.Amenity, int64, error)
	Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByAttribute(ctx context.Context, name, value string) (*domain.Amenity, error)
	GetByName(ctx context.Context, name string) (*domain.Amenity, error)
}

type ReviewRepository interface {
	Add(ctx context.Context, rv *domain.Review) error
	Get(ctx context.Context, id string) (*domain.Review, error)
	GetAll(ctx context.Context, p repository.Page) ([]domain.Review, int64, error)
	Update(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByAttribute(ctx context.Context, name, value string) (*domain.Review, error)
	GetByPlace(ctx context.Context, placeID string, p repository.Page) ([]domain.Review, int64, error)
	GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error)
}
