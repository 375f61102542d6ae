package httpapi

import (
	"net/http"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type PlaceHandler struct {
	facade *facade.Facade
}

func NewPlaceHandler(f *facade.Facade) *PlaceHandler {
	return &PlaceHandler{facade: f}
}

func (h *PlaceHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/places", h.List)
	public.GET("/places/:id", h.Get)
	public.GET("/places/:id/reviews", h.ListReviews)
	protected.POST("/places", h.Create)
	protected.PUT("/places/:id", h.Update)
	protected.DELETE("/places/:id", h.Delete)
}

// Create makes a place owned by the caller. Admins may create on behalf of
// another user by supplying owner_id.
func (h *PlaceHandler) Create(c *gin.Context) {
	var req CreatePlaceRequest
	if !bindStrict(c, &req) {
		return
	}

	ownerID := callerID(c)
	if req.OwnerID != "" && req.OwnerID != ownerID {
		if !callerIsAdmin(c) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot create a place for another user")
			return
		}
		ownerID = req.OwnerID
	}

	place, err := h.facade.CreatePlace(c.Request.Context(), facade.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     ownerID,
		AmenityIDs:  req.Amenities,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, place)
}

func (h *PlaceHandler) List(c *gin.Context) {
	places, total, err := h.facade.ListPlaces(c.Request.Context(), parsePage(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, places, total)
}

func (h *PlaceHandler) Get(c *gin.Context) {
	place, err := h.facade.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, place)
}

func (h *PlaceHandler) ListReviews(c *gin.Context) {
	reviews, total, err := h.facade.ListReviewsByPlace(c.Request.Context(), c.Param("id"), parsePage(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, reviews, total)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	id := c.Param("id")
	place, err := h.facade.GetPlace(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !requireOwnerOrAdmin(c, place.OwnerID) {
		return
	}

	var req UpdatePlaceRequest
	if !bindStrict(c, &req) {
		return
	}

	updated, err := h.facade.UpdatePlace(c.Request.Context(), id, domain.PlacePatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Amenities:   req.Amenities,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	place, err := h.facade.GetPlace(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !requireOwnerOrAdmin(c, place.OwnerID) {
		return
	}

	deleted, err := h.facade.DeletePlace(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
