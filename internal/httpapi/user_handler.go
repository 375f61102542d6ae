package httpapi

import (
	"net/http"

	"github.com/hbnb/hbnb/internal/domain"
	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	facade            *facade.Facade
	allowPublicSignup bool
}

func NewUserHandler(f *facade.Facade, allowPublicSignup bool) *UserHandler {
	return &UserHandler{facade: f, allowPublicSignup: allowPublicSignup}
}

// RegisterRoutes wires the user endpoints. Creation sits on the optional-auth
// group so an admin token can elevate the request; reads and mutations sit on
// the authenticated group.
func (h *UserHandler) RegisterRoutes(optional, protected *gin.RouterGroup) {
	optional.POST("/users", h.Create)
	protected.GET("/users", h.List)
	protected.GET("/users/:id", h.Get)
	protected.PUT("/users/:id", h.Update)
	protected.DELETE("/users/:id", h.Delete)
}

// Create registers a user. Without ALLOW_PUBLIC_SIGNUP only admins may call
// it; public signups can never grant themselves the admin flag.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindStrict(c, &req) {
		return
	}

	isAdminCaller := callerIsAdmin(c)
	if !isAdminCaller {
		if !h.allowPublicSignup {
			if callerID(c) == "" {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			} else {
				response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin privileges required")
			}
			return
		}
		req.IsAdmin = false
	}

	user, err := h.facade.CreateUser(c.Request.Context(), facade.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, total, err := h.facade.ListUsers(c.Request.Context(), parsePage(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, users, total)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.facade.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Update patches a user. Owner or admin only; email and the admin flag are
// admin-only fields.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !requireOwnerOrAdmin(c, id) {
		return
	}

	var req UpdateUserRequest
	if !bindStrict(c, &req) {
		return
	}

	if !callerIsAdmin(c) && (req.Email != nil || req.IsAdmin != nil) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only admins may change email or admin flag")
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), id, domain.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !requireOwnerOrAdmin(c, id) {
		return
	}

	deleted, err := h.facade.DeleteUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
