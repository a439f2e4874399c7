package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/api/middleware"
	"github.com/martijn/trainhub/internal/core/repository"
	"github.com/martijn/trainhub/internal/core/service"
)

type AuthHandler struct {
	catalog *service.CatalogService
}

func NewAuthHandler(catalog *service.CatalogService) *AuthHandler {
	return &AuthHandler{
		catalog: catalog,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	token, user, err := h.catalog.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUser(user),
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	extra := repository.Record{}
	if req.Nom != nil {
		extra["nom"] = *req.Nom
	}
	if req.Prenom != nil {
		extra["prenom"] = *req.Prenom
	}

	token, user, err := h.catalog.Register(c.Request.Context(), req.Email, req.Password, extra)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUser(user),
	})
}

func toUser(rec repository.Record) *dto.User {
	if rec == nil {
		return nil
	}
	u := &dto.User{}
	u.ID, _ = rec["id"].(int64)
	u.Email, _ = rec["email"].(string)
	u.Nom = optString(rec, "nom")
	u.Prenom = optString(rec, "prenom")
	u.Role = optString(rec, "role")
	u.CreatedAt = optTime(rec, "created_at")
	u.UpdatedAt = optTime(rec, "updated_at")
	return u
}

func optString(rec repository.Record, key string) *string {
	s, ok := rec[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func optTime(rec repository.Record, key string) *time.Time {
	s, ok := rec[key].(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		respondError(c, service.NewServiceError(http.StatusUnauthorized, "not authenticated"))
		return
	}

	user, err := h.catalog.Get(c.Request.Context(), service.ResourceUsers, claims.UserID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUser(user))
}
