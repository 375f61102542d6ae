package facade

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreateUser hashes the password and stores the user. The plaintext is never
// stored, returned or logged.
func (f *Facade) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	u, err := domain.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	if _, err := f.users.GetByEmail(ctx, u.Email); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)

	if err := f.users.Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks the credentials and returns the matching user. Any
// failure, unknown email or wrong password, yields ErrUnauthorized so the
// two cases are indistinguishable to the caller.
func (f *Facade) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := f.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return f.users.Get(ctx, id)
}

func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByEmail(ctx, email)
}

func (f *Facade) ListUsers(ctx context.Context, p repository.Page) ([]domain.User, int64, error) {
	return f.users.GetAll(ctx, p)
}

// UpdateUser applies the patch. An email change is re-checked for uniqueness
// before it reaches the repository.
func (f *Facade) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	u, err := f.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		existing, err := f.users.GetByEmail(ctx, *patch.Email)
		if err == nil && existing.ID != id {
			return nil, domain.ErrConflict
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	if err := patch.Apply(u); err != nil {
		return nil, err
	}
	return f.users.Update(ctx, u)
}

// DeleteUser removes the user; owned places and authored reviews go with it.
func (f *Facade) DeleteUser(ctx context.Context, id string) (bool, error) {
	return f.users.Delete(ctx, id)
}
