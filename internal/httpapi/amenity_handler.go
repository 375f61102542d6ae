package httpapi

import (
	"net/http"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AmenityHandler struct {
	facade *facade.Facade
}

func NewAmenityHandler(f *facade.Facade) *AmenityHandler {
	return &AmenityHandler{facade: f}
}

// RegisterRoutes: reads are public, mutations are admin-only.
func (h *AmenityHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/amenities", h.List)
	public.GET("/amenities/:id", h.Get)
	admin.POST("/amenities", h.Create)
	admin.PUT("/amenities/:id", h.Update)
	admin.DELETE("/amenities/:id", h.Delete)
}

func (h *AmenityHandler) Create(c *gin.Context) {
	var req CreateAmenityRequest
	if !bindStrict(c, &req) {
		return
	}

	amenity, err := h.facade.CreateAmenity(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, amenity)
}

func (h *AmenityHandler) List(c *gin.Context) {
	amenities, total, err := h.facade.ListAmenities(c.Request.Context(), parsePage(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, amenities, total)
}

func (h *AmenityHandler) Get(c *gin.Context) {
	amenity, err := h.facade.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, amenity)
}

func (h *AmenityHandler) Update(c *gin.Context) {
	var req UpdateAmenityRequest
	if !bindStrict(c, &req) {
		return
	}

	amenity, err := h.facade.UpdateAmenity(c.Request.Context(), c.Param("id"), domain.AmenityPatch{
		Name: req.Name,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, amenity)
}

func (h *AmenityHandler) Delete(c *gin.Context) {
	deleted, err := h.facade.DeleteAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Amenity not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
