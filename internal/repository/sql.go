package repository

import (
	"errors"
	"strings"

	"github.com/hbnb/hbnb/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all entity tables, including the
// place_amenities join table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRow{},
		&placeRow{},
		&amenityRow{},
		&reviewRow{},
		&placeAmenityRow{},
	)
}

// translate maps gorm/driver errors into the domain taxonomy. Raw driver
// errors never leave this package unwrapped.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return domain.ErrConflict
	default:
		return domain.NewStorageError(op, err)
	}
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
