package facade

import (
	"context"
	"fmt"
	"testing"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestFacade() *Facade {
	store := repository.NewMemoryStore()
	return New(
		repository.NewMemoryUserRepository(store),
		repository.NewMemoryPlaceRepository(store),
		repository.NewMemoryAmenityRepository(store),
		repository.NewMemoryReviewRepository(store),
	)
}

func mustCreateUser(t *testing.T, f *Facade, email string) *domain.User {
	t.Helper()
	u, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     email,
		Password:  "secret123",
	})
	require.NoError(t, err)
	return u
}

func mustCreatePlace(t *testing.T, f *Facade, ownerID string, amenityIDs ...string) *PlaceDetail {
	t.Helper()
	p, err := f.CreatePlace(context.Background(), CreatePlaceInput{
		Title:      "Cozy loft",
		Price:      100,
		Latitude:   48.85,
		Longitude:  2.35,
		OwnerID:    ownerID,
		AmenityIDs: amenityIDs,
	})
	require.NoError(t, err)
	return p
}

func TestCreateUser_HashesPassword(t *testing.T) {
	f := newTestFacade()

	u := mustCreateUser(t, f, "a@b.com")
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newTestFacade()

	mustCreateUser(t, f, "a@b.com")
	_, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "a@b.com",
		Password:  "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateUser_InvalidInput(t *testing.T) {
	f := newTestFacade()

	_, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "not-an-email",
		Password:  "secret123",
	})
	assert.True(t, domain.IsValidation(err))

	_, err = f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "a@b.com",
		Password:  "short",
	})
	assert.True(t, domain.IsValidation(err))
}

func TestAuthenticate(t *testing.T) {
	f := newTestFacade()
	u := mustCreateUser(t, f, "a@b.com")

	got, err := f.Authenticate(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.Authenticate(context.Background(), "a@b.com", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.Authenticate(context.Background(), "nobody@b.com", "secret123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "unknown email indistinguishable from bad password")
}

func TestUpdateUser_EmailConflict(t *testing.T) {
	f := newTestFacade()
	mustCreateUser(t, f, "a@b.com")
	b := mustCreateUser(t, f, "b@b.com")

	taken := "a@b.com"
	_, err := f.UpdateUser(context.Background(), b.ID, domain.UserPatch{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Re-submitting your own email is not a conflict.
	own := "b@b.com"
	_, err = f.UpdateUser(context.Background(), b.ID, domain.UserPatch{Email: &own})
	assert.NoError(t, err)
}

func TestCreatePlace_OwnerMustExist(t *testing.T) {
	f := newTestFacade()

	_, err := f.CreatePlace(context.Background(), CreatePlaceInput{
		Title:   "Loft",
		OwnerID: "ghost",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePlace_ResolvesAmenities(t *testing.T) {
	f := newTestFacade()
	owner := mustCreateUser(t, f, "owner@b.com")

	wifi, err := f.CreateAmenity(context.Background(), "WiFi")
	require.NoError(t, err)

	place := mustCreatePlace(t, f, owner.ID, wifi.ID)
	require.Len(t, place.Amenities, 1)
	assert.Equal(t, "WiFi", place.Amenities[0].Name)

	fetched, err := f.GetPlace(context.Background(), place.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Amenities, 1)
	assert.Equal(t, "WiFi", fetched.Amenities[0].Name)
	require.NotNil(t, fetched.Owner)
	assert.Equal(t, owner.ID, fetched.Owner.ID)
}

func TestCreatePlace_UnresolvedAmenityFailsWholeOperation(t *testing.T) {
	f := newTestFacade()
	owner := mustCreateUser(t, f, "owner@b.com")

	wifi, err := f.CreateAmenity(context.Background(), "WiFi")
	require.NoError(t, err)

	_, err = f.CreatePlace(context.Background(), CreatePlaceInput{
		Title:      "Loft",
		OwnerID:    owner.ID,
		AmenityIDs: []string{wifi.ID, "ghost-amenity"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	places, total, err := f.ListPlaces(context.Background(), repository.Page{})
	require.NoError(t, err)
	assert.Empty(t, places, "nothing partially applied")
	assert.Zero(t, total)
}

func TestUpdatePlace_ReplacesAmenitySet(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()
	owner := mustCreateUser(t, f, "owner@b.com")

	wifi, err := f.CreateAmenity(ctx, "WiFi")
	require.NoError(t, err)
	pool, err := f.CreateAmenity(ctx, "Pool")
	require.NoError(t, err)

	place := mustCreatePlace(t, f, owner.ID, wifi.ID)

	updated, err := f.UpdatePlace(ctx, place.ID, domain.PlacePatch{
		Amenities: []string{pool.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Amenities, 1)
	assert.Equal(t, "Pool", updated.Amenities[0].Name)

	// Patch without an amenity list leaves the set alone.
	title := "Renamed"
	updated, err = f.UpdatePlace(ctx, place.ID, domain.PlacePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	require.Len(t, updated.Amenities, 1)
	assert.Equal(t, "Pool", updated.Amenities[0].Name)
}

func TestUpdatePlace_RevalidatesTouchedFields(t *testing.T) {
	f := newTestFacade()
	owner := mustCreateUser(t, f, "owner@b.com")
	place := mustCreatePlace(t, f, owner.ID)

	bad := -5.0
	_, err := f.UpdatePlace(context.Background(), place.ID, domain.PlacePatch{Price: &bad})
	assert.True(t, domain.IsValidation(err))
}

func TestCreateReview_Rules(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()
	owner := mustCreateUser(t, f, "owner@b.com")
	guest := mustCreateUser(t, f, "guest@b.com")
	place := mustCreatePlace(t, f, owner.ID)

	// Self-review is rejected.
	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "love my own place", Rating: 5, UserID: owner.ID, PlaceID: place.ID,
	})
	assert.True(t, domain.IsValidation(err))

	// First review by a guest is fine.
	rv, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "great", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, rv.UserID)

	// Second review for the same pair conflicts.
	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "again", Rating: 1, UserID: guest.ID, PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Unknown references fail with not-found.
	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "x", Rating: 3, UserID: "ghost", PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "x", Rating: 3, UserID: guest.ID, PlaceID: "ghost",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListReviewsByPlace(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()
	owner := mustCreateUser(t, f, "owner@b.com")
	place := mustCreatePlace(t, f, owner.ID)

	for i := 0; i < 3; i++ {
		guest := mustCreateUser(t, f, fmt.Sprintf("guest%d@b.com", i))
		_, err := f.CreateReview(ctx, CreateReviewInput{
			Text: "ok", Rating: 4, UserID: guest.ID, PlaceID: place.ID,
		})
		require.NoError(t, err)
	}

	reviews, total, err := f.ListReviewsByPlace(ctx, place.ID, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, reviews, 3)

	_, _, err = f.ListReviewsByPlace(ctx, "ghost", repository.Page{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser_Cascades(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()
	owner := mustCreateUser(t, f, "owner@b.com")
	guest := mustCreateUser(t, f, "guest@b.com")
	place := mustCreatePlace(t, f, owner.ID)

	rv, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "great", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	deleted, err := f.DeleteUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.GetPlace(ctx, place.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.GetReview(ctx, rv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Double delete reports false, not an error.
	deleted, err = f.DeleteUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListUsers_PaginationPassThrough(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		mustCreateUser(t, f, fmt.Sprintf("user%02d@b.com", i))
	}

	users, total, err := f.ListUsers(ctx, repository.Page{Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	require.Len(t, users, 5)
	assert.Equal(t, "user10@b.com", users[0].Email)
}

func TestAmenityLifecycle(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	wifi, err := f.CreateAmenity(ctx, "WiFi")
	require.NoError(t, err)

	_, err = f.CreateAmenity(ctx, "WiFi")
	assert.ErrorIs(t, err, domain.ErrConflict)

	name := "Wireless"
	updated, err := f.UpdateAmenity(ctx, wifi.ID, domain.AmenityPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Wireless", updated.Name)

	deleted, err := f.DeleteAmenity(ctx, wifi.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.GetAmenity(ctx, wifi.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
