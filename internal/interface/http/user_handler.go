package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector/internal/application"
	"github.com/devconnector/devconnector/internal/interface/middleware"
	"github.com/devconnector/devconnector/pkg/response"
	"github.com/devconnector/devconnector/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func tokenMeta(pair application.TokenPair) map[string]any {
	return map[string]any{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	}
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, pair, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"user":          u,
		"token":         pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "registered", tokenMeta(pair))
}

// Login POST /api/auth
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, pair, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":          u,
		"token":         pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "login successful", tokenMeta(pair))
}

// Refresh POST /api/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pair, err := h.Svc.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token":         pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "token refreshed", tokenMeta(pair))
}

// Me GET /api/auth — the caller's identity record.
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.Me(uid)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "authenticated user", nil)
}

// UploadAvatar POST /api/users/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"avatar": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar": url}, "avatar updated", nil)
}

// Search GET /api/users/search?q=...
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
