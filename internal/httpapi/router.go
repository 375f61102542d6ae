// Package httpapi is the JSON-over-HTTP surface in front of the facade. It
// owns request decoding, claims-based authorization and the error-to-status
// mapping; every business rule lives one layer down.
package httpapi

import (
	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/middleware"
	"github.com/hbnb/hbnb/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type Options struct {
	AllowPublicSignup bool
}

// NewRouter assembles the gin engine with all resource routes under /api/v1.
func NewRouter(f *facade.Facade, j *jwt.Service, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")

	public := v1.Group("/")

	optional := v1.Group("/")
	optional.Use(middleware.OptionalJWT(j))

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))

	admin := v1.Group("/")
	admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())

	NewAuthHandler(f, j).RegisterRoutes(public)
	NewUserHandler(f, opts.AllowPublicSignup).RegisterRoutes(optional, protected)
	NewPlaceHandler(f).RegisterRoutes(public, protected)
	NewAmenityHandler(f).RegisterRoutes(public, admin)
	NewReviewHandler(f).RegisterRoutes(public, protected)

	return r
}
