package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/middleware"
	"github.com/hbnb/hbnb/internal/pkg/response"
	"github.com/hbnb/hbnb/internal/pkg/validator"
	"github.com/hbnb/hbnb/internal/repository"

	"github.com/gin-gonic/gin"
)

// bindStrict decodes the JSON body into req, rejecting unknown fields, then
// runs struct-tag validation. It writes the 400 response itself and reports
// whether the caller may proceed.
func bindStrict(c *gin.Context, req any) bool {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return false
	}
	return true
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, gin.H{"field": ve.Field})
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Resource already exists")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	case errors.Is(err, domain.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

// parsePage reads the optional page/per_page query parameters. Absent or
// malformed values mean "no pagination", matching the facade contract.
func parsePage(c *gin.Context) repository.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	if page < 0 {
		page = 0
	}
	if perPage < 0 {
		perPage = 0
	}
	return repository.Page{Page: page, PerPage: perPage}
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

func callerIsAdmin(c *gin.Context) bool {
	return c.GetBool(middleware.CtxIsAdmin)
}

// requireOwnerOrAdmin enforces the mutation rule: the caller must own the
// resource or carry the admin claim.
func requireOwnerOrAdmin(c *gin.Context, ownerID string) bool {
	if callerIsAdmin(c) || callerID(c) == ownerID {
		return true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this resource")
	return false
}
