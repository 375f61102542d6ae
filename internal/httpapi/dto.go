package httpapi

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	IsAdmin   bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	IsAdmin   *bool   `json:"is_admin"`
}

type CreatePlaceRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Latitude    float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64  `json:"longitude" validate:"gte=-180,lte=180"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
}

type UpdatePlaceRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Amenities   []string `json:"amenities"`
}

type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

type CreateReviewRequest struct {
	Text    string `json:"text" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	PlaceID string `json:"place_id" validate:"required"`
	UserID  string `json:"user_id"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text" validate:"omitempty,min=1"`
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}
