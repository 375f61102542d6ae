package httpapi

import (
	"net/http"

	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/pkg/jwt"
	"github.com/hbnb/hbnb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	facade *facade.Facade
	jwt    *jwt.Service
}

func NewAuthHandler(f *facade.Facade, j *jwt.Service) *AuthHandler {
	return &AuthHandler{facade: f, jwt: j}
}

func (h *AuthHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/auth/login", h.Login)
}

// Login exchanges credentials for a bearer token carrying the user id and
// admin flag.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindStrict(c, &req) {
		return
	}

	user, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"user":         user,
	})
}
