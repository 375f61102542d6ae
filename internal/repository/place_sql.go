package repository

import (
	"context"
	"time"

	"github.com/hbnb/hbnb/internal/domain"

	"gorm.io/gorm"
)

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

type placeRow struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Title       string    `gorm:"column:title;size:100;not null"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price;not null"`
	Latitude    float64   `gorm:"column:latitude"`
	Longitude   float64   `gorm:"column:longitude"`
	OwnerID     string    `gorm:"column:owner_id;size:36;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (placeRow) TableName() string { return "places" }

// placeAmenityRow is the Place↔Amenity join table; the composite primary key
// keeps (place_id, amenity_id) pairs unique.
type placeAmenityRow struct {
	PlaceID   string `gorm:"column:place_id;primaryKey;size:36"`
	AmenityID string `gorm:"column:amenity_id;primaryKey;size:36"`
}

func (placeAmenityRow) TableName() string { return "place_amenities" }

func toDomainPlace(m placeRow, amenityIDs []string) *domain.Place {
	return &domain.Place{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		OwnerID:     m.OwnerID,
		AmenityIDs:  amenityIDs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPlaceRow(p *domain.Place) placeRow {
	return placeRow{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *PlaceRepository) Add(ctx context.Context, p *domain.Place) error {
	m := toPlaceRow(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return replaceAmenityRows(tx, p.ID, p.AmenityIDs)
	})
	if err != nil {
		return translate("places.add", err)
	}
	return nil
}

func (r *PlaceRepository) Get(ctx context.Context, id string) (*domain.Place, error) {
	var m placeRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, translate("places.get", err)
	}

	amenityIDs, err := r.amenityIDsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomainPlace(m, amenityIDs), nil
}

func (r *PlaceRepository) GetAll(ctx context.Context, p Page) ([]domain.Place, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&placeRow{}).Count(&total).Error; err != nil {
		return nil, 0, translate("places.count", err)
	}

	q := r.db.WithContext(ctx).Order("created_at, id")
	if p.Page > 0 && p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}

	var rows []placeRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, translate("places.get_all", err)
	}

	places := make([]domain.Place, 0, len(rows))
	for _, m := range rows {
		amenityIDs, err := r.amenityIDsFor(ctx, m.ID)
		if err != nil {
			return nil, 0, err
		}
		places = append(places, *toDomainPlace(m, amenityIDs))
	}
	return places, total, nil
}

// Update persists the place fields and syncs the join table to
// place.AmenityIDs in the same transaction.
func (r *PlaceRepository) Update(ctx context.Context, p *domain.Place) (*domain.Place, error) {
	m := toPlaceRow(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&placeRow{}).Where("id = ?", p.ID).
			Select("title", "description", "price", "latitude", "longitude", "updated_at").
			Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return replaceAmenityRows(tx, p.ID, p.AmenityIDs)
	})
	if err != nil {
		return nil, translate("places.update", err)
	}
	return r.Get(ctx, p.ID)
}

// Delete removes the place, its reviews and its amenity links.
func (r *PlaceRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", id).Delete(&reviewRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", id).Delete(&placeAmenityRow{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&placeRow{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translate("places.delete", err)
	}
	return deleted, nil
}

var placeColumns = map[string]string{
	"title":    "title",
	"owner_id": "owner_id",
}

func (r *PlaceRepository) GetByAttribute(ctx context.Context, name, value string) (*domain.Place, error) {
	col, ok := placeColumns[name]
	if !ok {
		return nil, domain.NewStorageError("places.get_by_attribute", errUnknownAttribute(name))
	}
	var m placeRow
	err := r.db.WithContext(ctx).Where(col+" = ?", value).First(&m).Error
	if err != nil {
		return nil, translate("places.get_by_attribute", err)
	}
	amenityIDs, err := r.amenityIDsFor(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainPlace(m, amenityIDs), nil
}

func (r *PlaceRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	var rows []placeRow
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at, id").Find(&rows).Error
	if err != nil {
		return nil, translate("places.get_by_owner", err)
	}
	places := make([]domain.Place, 0, len(rows))
	for _, m := range rows {
		amenityIDs, err := r.amenityIDsFor(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		places = append(places, *toDomainPlace(m, amenityIDs))
	}
	return places, nil
}

func (r *PlaceRepository) amenityIDsFor(ctx context.Context, placeID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&placeAmenityRow{}).
		Where("place_id = ?", placeID).
		Order("amenity_id").
		Pluck("amenity_id", &ids).Error
	if err != nil {
		return nil, translate("places.amenities", err)
	}
	return ids, nil
}

func replaceAmenityRows(tx *gorm.DB, placeID string, amenityIDs []string) error {
	if err := tx.Where("place_id = ?", placeID).Delete(&placeAmenityRow{}).Error; err != nil {
		return err
	}
	for _, aid := range amenityIDs {
		if err := tx.Create(&placeAmenityRow{PlaceID: placeID, AmenityID: aid}).Error; err != nil {
			return err
		}
	}
	return nil
}
