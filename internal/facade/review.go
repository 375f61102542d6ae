package facade

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/repository"
)

type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  string
	PlaceID string
}

// CreateReview requires an existing author and place, rejects reviews of the
// author's own place and allows at most one review per (user, place) pair.
func (f *Facade) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	rv, err := domain.NewReview(in.Text, in.Rating, in.UserID, in.PlaceID)
	if err != nil {
		return nil, err
	}

	if _, err := f.users.Get(ctx, in.UserID); err != nil {
		return nil, err
	}
	place, err := f.places.Get(ctx, in.PlaceID)
	if err != nil {
		return nil, err
	}

	if place.OwnerID == in.UserID {
		return nil, domain.NewValidationError("user_id", "cannot review your own place")
	}

	if _, err := f.reviews.GetByUserAndPlace(ctx, in.UserID, in.PlaceID); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := f.reviews.Add(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return f.reviews.Get(ctx, id)
}

func (f *Facade) ListReviews(ctx context.Context, p repository.Page) ([]domain.Review, int64, error) {
	return f.reviews.GetAll(ctx, p)
}

// ListReviewsByPlace fails with ErrNotFound when the place itself is absent,
// which keeps "place has no reviews" distinguishable from "no such place".
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string, p repository.Page) ([]domain.Review, int64, error) {
	if _, err := f.places.Get(ctx, placeID); err != nil {
		return nil, 0, err
	}
	return f.reviews.GetByPlace(ctx, placeID, p)
}

func (f *Facade) UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error) {
	rv, err := f.reviews.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(rv); err != nil {
		return nil, err
	}
	return f.reviews.Update(ctx, rv)
}

func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	return f.reviews.Delete(ctx, id)
}
