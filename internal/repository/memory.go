package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/hbnb/hbnb/internal/domain"
)

// MemoryStore backs the in-memory repository variant used by tests and the
// demo composition. Entities keep insertion order; uniqueness rules match the
// relational schema (user email, amenity name, one review per user+place).
// A single store is shared by the four repositories so cascade deletes can
// reach across entity types, like foreign keys do in the SQL variant.
type MemoryStore struct {
	mu           sync.Mutex
	users        map[string]*domain.User
	userOrder    []string
	places       map[string]*domain.Place
	placeOrder   []string
	amenities    map[string]*domain.Amenity
	amenityOrder []string
	reviews      map[string]*domain.Review
	reviewOrder  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]*domain.User),
		places:    make(map[string]*domain.Place),
		amenities: make(map[string]*domain.Amenity),
		reviews:   make(map[string]*domain.Review),
	}
}

func paginate(n int, p Page) (int, int) {
	if !p.enabled() {
		return 0, n
	}
	lo := p.Offset()
	if lo > n {
		lo = n
	}
	hi := lo + p.PerPage
	if hi > n {
		hi = n
	}
	return lo, hi
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func copyPlace(p *domain.Place) *domain.Place {
	c := *p
	c.AmenityIDs = append([]string(nil), p.AmenityIDs...)
	return &c
}

func copyAmenity(a *domain.Amenity) *domain.Amenity {
	c := *a
	return &c
}

func copyReview(r *domain.Review) *domain.Review {
	c := *r
	return &c
}

type MemoryUserRepository struct {
	store *MemoryStore
}

func NewMemoryUserRepository(store *MemoryStore) *MemoryUserRepository {
	return &MemoryUserRepository{store: store}
}

func (r *MemoryUserRepository) Add(_ context.Context, u *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return domain.ErrConflict
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.ErrConflict
		}
	}
	s.users[u.ID] = copyUser(u)
	s.userOrder = append(s.userOrder, u.ID)
	return nil
}

func (r *MemoryUserRepository) Get(_ context.Context, id string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *MemoryUserRepository) GetAll(_ context.Context, p Page) ([]domain.User, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.userOrder))
	lo, hi := paginate(len(s.userOrder), p)
	users := make([]domain.User, 0, hi-lo)
	for _, id := range s.userOrder[lo:hi] {
		users = append(users, *copyUser(s.users[id]))
	}
	return users, total, nil
}

func (r *MemoryUserRepository) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	for id, existing := range s.users {
		if id != u.ID && existing.Email == u.Email {
			return nil, domain.ErrConflict
		}
	}
	s.users[u.ID] = copyUser(u)
	return copyUser(u), nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}

	// Cascade: owned places (and their reviews and amenity links), then
	// reviews authored elsewhere, then the user.
	for _, pid := range append([]string(nil), s.placeOrder...) {
		if s.places[pid].OwnerID == id {
			s.deletePlaceLocked(pid)
		}
	}
	for _, rid := range append([]string(nil), s.reviewOrder...) {
		if rv, ok := s.reviews[rid]; ok && rv.UserID == id {
			delete(s.reviews, rid)
			s.reviewOrder = removeID(s.reviewOrder, rid)
		}
	}
	delete(s.users, id)
	s.userOrder = removeID(s.userOrder, id)
	return true, nil
}

func (r *MemoryUserRepository) GetByAttribute(_ context.Context, name, value string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pick, ok := map[string]func(*domain.User) string{
		"email":      func(u *domain.User) string { return u.Email },
		"first_name": func(u *domain.User) string { return u.FirstName },
		"last_name":  func(u *domain.User) string { return u.LastName },
	}[name]
	if !ok {
		return nil, domain.NewStorageError("users.get_by_attribute", errUnknownAttribute(name))
	}
	for _, id := range s.userOrder {
		if pick(s.users[id]) == value {
			return copyUser(s.users[id]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.GetByAttribute(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

type MemoryPlaceRepository struct {
	store *MemoryStore
}

func NewMemoryPlaceRepository(store *MemoryStore) *MemoryPlaceRepository {
	return &MemoryPlaceRepository{store: store}
}

func (r *MemoryPlaceRepository) Add(_ context.Context, p *domain.Place) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[p.ID]; ok {
		return domain.ErrConflict
	}
	s.places[p.ID] = copyPlace(p)
	s.placeOrder = append(s.placeOrder, p.ID)
	return nil
}

func (r *MemoryPlaceRepository) Get(_ context.Context, id string) (*domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.places[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyPlace(p), nil
}

func (r *MemoryPlaceRepository) GetAll(_ context.Context, p Page) ([]domain.Place, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.placeOrder))
	lo, hi := paginate(len(s.placeOrder), p)
	places := make([]domain.Place, 0, hi-lo)
	for _, id := range s.placeOrder[lo:hi] {
		places = append(places, *copyPlace(s.places[id]))
	}
	return places, total, nil
}

func (r *MemoryPlaceRepository) Update(_ context.Context, p *domain.Place) (*domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[p.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	s.places[p.ID] = copyPlace(p)
	return copyPlace(p), nil
}

func (r *MemoryPlaceRepository) Delete(_ context.Context, id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return false, nil
	}
	s.deletePlaceLocked(id)
	return true, nil
}

func (s *MemoryStore) deletePlaceLocked(id string) {
	for _, rid := range append([]string(nil), s.reviewOrder...) {
		if rv, ok := s.reviews[rid]; ok && rv.PlaceID == id {
			delete(s.reviews, rid)
			s.reviewOrder = removeID(s.reviewOrder, rid)
		}
	}
	delete(s.places, id)
	s.placeOrder = removeID(s.placeOrder, id)
}

func (r *MemoryPlaceRepository) GetByAttribute(_ context.Context, name, value string) (*domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pick, ok := map[string]func(*domain.Place) string{
		"title":    func(p *domain.Place) string { return p.Title },
		"owner_id": func(p *domain.Place) string { return p.OwnerID },
	}[name]
	if !ok {
		return nil, domain.NewStorageError("places.get_by_attribute", errUnknownAttribute(name))
	}
	for _, id := range s.placeOrder {
		if pick(s.places[id]) == value {
			return copyPlace(s.places[id]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryPlaceRepository) GetByOwner(_ context.Context, ownerID string) ([]domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var places []domain.Place
	for _, id := range s.placeOrder {
		if s.places[id].OwnerID == ownerID {
			places = append(places, *copyPlace(s.places[id]))
		}
	}
	return places, nil
}

type MemoryAmenityRepository struct {
	store *MemoryStore
}

func NewMemoryAmenityRepository(store *MemoryStore) *MemoryAmenityRepository {
	return &MemoryAmenityRepository{store: store}
}

func (r *MemoryAmenityRepository) Add(_ context.Context, a *domain.Amenity) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[a.ID]; ok {
		return domain.ErrConflict
	}
	for _, existing := range s.amenities {
		if existing.Name == a.Name {
			return domain.ErrConflict
		}
	}
	s.amenities[a.ID] = copyAmenity(a)
	s.amenityOrder = append(s.amenityOrder, a.ID)
	return nil
}

func (r *MemoryAmenityRepository) Get(_ context.Context, id string) (*domain.Amenity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.amenities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyAmenity(a), nil
}

func (r *MemoryAmenityRepository) GetAll(_ context.Context, p Page) ([]domain.Amenity, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.amenityOrder))
	lo, hi := paginate(len(s.amenityOrder), p)
	amenities := make([]domain.Amenity, 0, hi-lo)
	for _, id := range s.amenityOrder[lo:hi] {
		amenities = append(amenities, *copyAmenity(s.amenities[id]))
	}
	return amenities, total, nil
}

func (r *MemoryAmenityRepository) Update(_ context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[a.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	for id, existing := range s.amenities {
		if id != a.ID && existing.Name == a.Name {
			return nil, domain.ErrConflict
		}
	}
	s.amenities[a.ID] = copyAmenity(a)
	return copyAmenity(a), nil
}

func (r *MemoryAmenityRepository) Delete(_ context.Context, id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[id]; !ok {
		return false, nil
	}
	for _, p := range s.places {
		p.AmenityIDs = removeID(p.AmenityIDs, id)
	}
	delete(s.amenities, id)
	s.amenityOrder = removeID(s.amenityOrder, id)
	return true, nil
}

func (r *MemoryAmenityRepository) GetByAttribute(_ context.Context, name, value string) (*domain.Amenity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if name != "name" {
		return nil, domain.NewStorageError("amenities.get_by_attribute", errUnknownAttribute(name))
	}
	for _, id := range s.amenityOrder {
		if s.amenities[id].Name == value {
			return copyAmenity(s.amenities[id]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryAmenityRepository) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	return r.GetByAttribute(ctx, "name", name)
}

type MemoryReviewRepository struct {
	store *MemoryStore
}

func NewMemoryReviewRepository(store *MemoryStore) *MemoryReviewRepository {
	return &MemoryReviewRepository{store: store}
}

func (r *MemoryReviewRepository) Add(_ context.Context, rv *domain.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[rv.ID]; ok {
		return domain.ErrConflict
	}
	for _, existing := range s.reviews {
		if existing.UserID == rv.UserID && existing.PlaceID == rv.PlaceID {
			return domain.ErrConflict
		}
	}
	s.reviews[rv.ID] = copyReview(rv)
	s.reviewOrder = append(s.reviewOrder, rv.ID)
	return nil
}

func (r *MemoryReviewRepository) Get(_ context.Context, id string) (*domain.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rv, ok := s.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyReview(rv), nil
}

func (r *MemoryReviewRepository) GetAll(_ context.Context, p Page) ([]domain.Review, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.reviewOrder))
	lo, hi := paginate(len(s.reviewOrder), p)
	reviews := make([]domain.Review, 0, hi-lo)
	for _, id := range s.reviewOrder[lo:hi] {
		reviews = append(reviews, *copyReview(s.reviews[id]))
	}
	return reviews, total, nil
}

func (r *MemoryReviewRepository) Update(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[rv.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	s.reviews[rv.ID] = copyReview(rv)
	return copyReview(rv), nil
}

func (r *MemoryReviewRepository) Delete(_ context.Context, id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return false, nil
	}
	delete(s.reviews, id)
	s.reviewOrder = removeID(s.reviewOrder, id)
	return true, nil
}

func (r *MemoryReviewRepository) GetByAttribute(_ context.Context, name, value string) (*domain.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pick, ok := map[string]func(*domain.Review) string{
		"user_id":  func(rv *domain.Review) string { return rv.UserID },
		"place_id": func(rv *domain.Review) string { return rv.PlaceID },
	}[name]
	if !ok {
		return nil, domain.NewStorageError("reviews.get_by_attribute", errUnknownAttribute(name))
	}
	for _, id := range s.reviewOrder {
		if pick(s.reviews[id]) == value {
			return copyReview(s.reviews[id]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryReviewRepository) GetByPlace(_ context.Context, placeID string, p Page) ([]domain.Review, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []string
	for _, id := range s.reviewOrder {
		if s.reviews[id].PlaceID == placeID {
			matched = append(matched, id)
		}
	}

	total := int64(len(matched))
	lo, hi := paginate(len(matched), p)
	reviews := make([]domain.Review, 0, hi-lo)
	for _, id := range matched[lo:hi] {
		reviews = append(reviews, *copyReview(s.reviews[id]))
	}
	return reviews, total, nil
}

func (r *MemoryReviewRepository) GetByUserAndPlace(_ context.Context, userID, placeID string) (*domain.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.reviewOrder {
		rv := s.reviews[id]
		if rv.UserID == userID && rv.PlaceID == placeID {
			return copyReview(rv), nil
		}
	}
	return nil, domain.ErrNotFound
}
