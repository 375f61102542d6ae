package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxNameLen     = 50
	minPasswordLen = 6
	maxEmailLen    = 120
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser validates the fields and returns a populated user. The password
// hash is set separately by the caller; plaintext never enters the entity.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	if err := validateName("first_name", firstName); err != nil {
		return nil, err
	}
	if err := validateName("last_name", lastName); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *User) Touch() { u.UpdatedAt = time.Now().UTC() }

func validateName(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return NewValidationError(field, "cannot be empty")
	}
	if len(v) > maxNameLen {
		return NewValidationError(field, "must be 50 characters or less")
	}
	return nil
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email", "cannot be empty")
	}
	if len(email) > maxEmailLen {
		return NewValidationError("email", "must be 120 characters or less")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("email", "invalid email format")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return NewValidationError("password", "must be at least 6 characters")
	}
	return nil
}

// UserPatch carries the fields a caller may change on an existing user.
// Nil means "leave untouched". ID and timestamps are not patchable.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsAdmin   *bool
}

// Apply validates and writes the supplied fields, refreshing UpdatedAt.
func (p UserPatch) Apply(u *User) error {
	if p.FirstName != nil {
		if err := validateName("first_name", *p.FirstName); err != nil {
			return err
		}
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		if err := validateName("last_name", *p.LastName); err != nil {
			return err
		}
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*p.Email))
		if err := ValidateEmail(email); err != nil {
			return err
		}
		u.Email = email
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	u.Touch()
	return nil
}
