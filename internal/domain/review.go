package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReview(text string, rating int, userID, placeID string) (*Review, error) {
	if err := validateReviewText(text); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, NewValidationError("user_id", "cannot be empty")
	}
	if strings.TrimSpace(placeID) == "" {
		return nil, NewValidationError("place_id", "cannot be empty")
	}

	now := time.Now().UTC()
	return &Review{
		ID:        uuid.NewString(),
		Text:      text,
		Rating:    rating,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *Review) Touch() { r.UpdatedAt = time.Now().UTC() }

func validateReviewText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("text", "cannot be empty")
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}

type ReviewPatch struct {
	Text   *string
	Rating *int
}

func (p ReviewPatch) Apply(r *Review) error {
	if p.Text != nil {
		if err := validateReviewText(*p.Text); err != nil {
			return err
		}
		r.Text = *p.Text
	}
	if p.Rating != nil {
		if err := validateRating(*p.Rating); err != nil {
			return err
		}
		r.Rating = *p.Rating
	}
	r.Touch()
	return nil
}
