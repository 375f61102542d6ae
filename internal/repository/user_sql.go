package repository

import (
	"context"
	"strings"
	"time"

	"github.com/hbnb/hbnb/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID           string    `gorm:"column:id;primaryKey;size:36"`
	FirstName    string    `gorm:"column:first_name;size:50;not null"`
	LastName     string    `gorm:"column:last_name;size:50;not null"`
	Email        string    `gorm:"column:email;size:120;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRow) TableName() string { return "users" }

func toDomainUser(m userRow) *domain.User {
	return &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserRow(u *domain.User) userRow {
	return userRow{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        strings.ToLower(strings.TrimSpace(u.Email)),
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Add(ctx context.Context, u *domain.User) error {
	m := toUserRow(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate("users.add", err)
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	var m userRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, translate("users.get", err)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetAll(ctx context.Context, p Page) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&userRow{}).Count(&total).Error; err != nil {
		return nil, 0, translate("users.count", err)
	}

	q := r.db.WithContext(ctx).Order("created_at, id")
	if p.Page > 0 && p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}

	var rows []userRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, translate("users.get_all", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, *toDomainUser(m))
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := toUserRow(u)
	tx := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", u.ID).
		Select("first_name", "last_name", "email", "password_hash", "is_admin", "updated_at").
		Updates(&m)
	if tx.Error != nil {
		return nil, translate("users.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, u.ID)
}

// Delete removes the user together with their places, the reviews they
// authored and the reviews attached to those places.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ownedPlaceIDs []string
		if err := tx.Model(&placeRow{}).Where("owner_id = ?", id).
			Pluck("id", &ownedPlaceIDs).Error; err != nil {
			return err
		}

		if len(ownedPlaceIDs) > 0 {
			if err := tx.Where("place_id IN ?", ownedPlaceIDs).Delete(&reviewRow{}).Error; err != nil {
				return err
			}
			if err := tx.Where("place_id IN ?", ownedPlaceIDs).Delete(&placeAmenityRow{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&reviewRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&placeRow{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&userRow{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translate("users.delete", err)
	}
	return deleted, nil
}

var userColumns = map[string]string{
	"email":      "email",
	"first_name": "first_name",
	"last_name":  "last_name",
}

func (r *UserRepository) GetByAttribute(ctx context.Context, name, value string) (*domain.User, error) {
	col, ok := userColumns[name]
	if !ok {
		return nil, domain.NewStorageError("users.get_by_attribute", errUnknownAttribute(name))
	}
	var m userRow
	err := r.db.WithContext(ctx).Where(col+" = ?", value).First(&m).Error
	if err != nil {
		return nil, translate("users.get_by_attribute", err)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userRow
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if err != nil {
		return nil, translate("users.get_by_email", err)
	}
	return toDomainUser(m), nil
}
