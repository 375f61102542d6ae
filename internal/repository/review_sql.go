package repository

import (
	"context"
	"time"

	"github.com/hbnb/hbnb/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewRow struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	Text      string    `gorm:"column:text;not null"`
	Rating    int       `gorm:"column:rating;not null"`
	UserID    string    `gorm:"column:user_id;size:36;not null;uniqueIndex:idx_reviews_user_place"`
	PlaceID   string    `gorm:"column:place_id;size:36;not null;uniqueIndex:idx_reviews_user_place"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewRow) TableName() string { return "reviews" }

func toDomainReview(m reviewRow) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		Text:      m.Text,
		Rating:    m.Rating,
		UserID:    m.UserID,
		PlaceID:   m.PlaceID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toReviewRow(rv *domain.Review) reviewRow {
	return reviewRow{
		ID:        rv.ID,
		Text:      rv.Text,
		Rating:    rv.Rating,
		UserID:    rv.UserID,
		PlaceID:   rv.PlaceID,
		CreatedAt: rv.CreatedAt,
		UpdatedAt: rv.UpdatedAt,
	}
}

func (r *ReviewRepository) Add(ctx context.Context, rv *domain.Review) error {
	m := toReviewRow(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate("reviews.add", err)
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) Get(ctx context.Context, id string) (*domain.Review, error) {
	var m reviewRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, translate("reviews.get", err)
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) GetAll(ctx context.Context, p Page) ([]domain.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&reviewRow{}).Count(&total).Error; err != nil {
		return nil, 0, translate("reviews.count", err)
	}

	q := r.db.WithContext(ctx).Order("created_at, id")
	if p.Page > 0 && p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}

	var rows []reviewRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, translate("reviews.get_all", err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		reviews = append(reviews, *toDomainReview(m))
	}
	return reviews, total, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	m := toReviewRow(rv)
	tx := r.db.WithContext(ctx).Model(&reviewRow{}).Where("id = ?", rv.ID).
		Select("text", "rating", "updated_at").
		Updates(&m)
	if tx.Error != nil {
		return nil, translate("reviews.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, rv.ID)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&reviewRow{})
	if res.Error != nil {
		return false, translate("reviews.delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}

var reviewColumns = map[string]string{
	"user_id":  "user_id",
	"place_id": "place_id",
}

func (r *ReviewRepository) GetByAttribute(ctx context.Context, name, value string) (*domain.Review, error) {
	col, ok := reviewColumns[name]
	if !ok {
		return nil, domain.NewStorageError("reviews.get_by_attribute", errUnknownAttribute(name))
	}
	var m reviewRow
	err := r.db.WithContext(ctx).Where(col+" = ?", value).First(&m).Error
	if err != nil {
		return nil, translate("reviews.get_by_attribute", err)
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) GetByPlace(ctx context.Context, placeID string, p Page) ([]domain.Review, int64, error) {
	base := r.db.WithContext(ctx).Model(&reviewRow{}).Where("place_id = ?", placeID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate("reviews.count_by_place", err)
	}

	q := r.db.WithContext(ctx).Where("place_id = ?", placeID).Order("created_at, id")
	if p.Page > 0 && p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}

	var rows []reviewRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, translate("reviews.get_by_place", err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		reviews = append(reviews, *toDomainReview(m))
	}
	return reviews, total, nil
}

func (r *ReviewRepository) GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error) {
	var m reviewRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&m).Error
	if err != nil {
		return nil, translate("reviews.get_by_user_and_place", err)
	}
	return toDomainReview(m), nil
}
