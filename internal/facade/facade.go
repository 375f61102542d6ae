// Package facade is the single entry point for every use case. It composes
// the four repositories and enforces the cross-entity rules the repositories
// cannot know about: email uniqueness, owner existence, amenity resolution,
// self-review and duplicate-review rejection.
package facade

type Facade struct {
	users     UserRepository
	places    PlaceRepository
	amenities AmenityRepository
	reviews   ReviewRepository
}

func New(users UserRepository, places PlaceRepository, amenities AmenityRepository, reviews ReviewRepository) *Facade {
	return &Facade{
		users:     users,
		places:    places,
		amenities: amenities,
		reviews:   reviews,
	}
}
