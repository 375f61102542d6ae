package httpapi

import (
	"net/http"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	facade *facade.Facade
}

func NewReviewHandler(f *facade.Facade) *ReviewHandler {
	return &ReviewHandler{facade: f}
}

func (h *ReviewHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/reviews/:id", h.Get)
	protected.POST("/reviews", h.Create)
	protected.PUT("/reviews/:id", h.Update)
	protected.DELETE("/reviews/:id", h.Delete)
}

// Create authors a review as the caller. Admins may supply user_id to review
// on behalf of another user.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !bindStrict(c, &req) {
		return
	}

	userID := callerID(c)
	if req.UserID != "" && req.UserID != userID {
		if !callerIsAdmin(c) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot create a review for another user")
			return
		}
		userID = req.UserID
	}

	review, err := h.facade.CreateReview(c.Request.Context(), facade.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  userID,
		PlaceID: req.PlaceID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, review)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.facade.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id := c.Param("id")
	review, err := h.facade.GetReview(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !requireOwnerOrAdmin(c, review.UserID) {
		return
	}

	var req UpdateReviewRequest
	if !bindStrict(c, &req) {
		return
	}

	updated, err := h.facade.UpdateReview(c.Request.Context(), id, domain.ReviewPatch{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	review, err := h.facade.GetReview(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !requireOwnerOrAdmin(c, review.UserID) {
		return
	}

	deleted, err := h.facade.DeleteReview(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
