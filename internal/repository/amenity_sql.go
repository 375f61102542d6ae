package repository

import (
	"context"
	"time"

	"github.com/hbnb/hbnb/internal/domain"

	"gorm.io/gorm"
)

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

type amenityRow struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	Name      string    `gorm:"column:name;size:50;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (amenityRow) TableName() string { return "amenities" }

func toDomainAmenity(m amenityRow) *domain.Amenity {
	return &domain.Amenity{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAmenityRow(a *domain.Amenity) amenityRow {
	return amenityRow{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *AmenityRepository) Add(ctx context.Context, a *domain.Amenity) error {
	m := toAmenityRow(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate("amenities.add", err)
	}
	*a = *toDomainAmenity(m)
	return nil
}

func (r *AmenityRepository) Get(ctx context.Context, id string) (*domain.Amenity, error) {
	var m amenityRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, translate("amenities.get", err)
	}
	return toDomainAmenity(m), nil
}

func (r *AmenityRepository) GetAll(ctx context.Context, p Page) ([]domain.Amenity, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&amenityRow{}).Count(&total).Error; err != nil {
		return nil, 0, translate("amenities.count", err)
	}

	q := r.db.WithContext(ctx).Order("created_at, id")
	if p.Page > 0 && p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}

	var rows []amenityRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, translate("amenities.get_all", err)
	}

	amenities := make([]domain.Amenity, 0, len(rows))
	for _, m := range rows {
		amenities = append(amenities, *toDomainAmenity(m))
	}
	return amenities, total, nil
}

func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	m := toAmenityRow(a)
	tx := r.db.WithContext(ctx).Model(&amenityRow{}).Where("id = ?", a.ID).
		Select("name", "updated_at").
		Updates(&m)
	if tx.Error != nil {
		return nil, translate("amenities.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, a.ID)
}

// Delete removes the amenity and its join rows; places keep their remaining
// amenities.
func (r *AmenityRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("amenity_id = ?", id).Delete(&placeAmenityRow{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&amenityRow{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translate("amenities.delete", err)
	}
	return deleted, nil
}

func (r *AmenityRepository) GetByAttribute(ctx context.Context, name, value string) (*domain.Amenity, error) {
	if name != "name" {
		return nil, domain.NewStorageError("amenities.get_by_attribute", errUnknownAttribute(name))
	}
	var m amenityRow
	err := r.db.WithContext(ctx).Where("name = ?", value).First(&m).Error
	if err != nil {
		return nil, translate("amenities.get_by_attribute", err)
	}
	return toDomainAmenity(m), nil
}

func (r *AmenityRepository) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	return r.GetByAttribute(ctx, "name", name)
}
