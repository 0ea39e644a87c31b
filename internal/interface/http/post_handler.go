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

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(uid, req.Text)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "post created", nil)
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// Get GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

// Delete DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Param("id"), uid); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "post removed", nil)
}

// Like PUT /api/posts/like/:id
func (h *PostHandler) Like(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	likes, err := h.Svc.Like(c.Param("id"), uid)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, likes, "post liked", nil)
}

// Unlike PUT /api/posts/unlike/:id
func (h *PostHandler) Unlike(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	likes, err := h.Svc.Unlike(c.Param("id"), uid)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, likes, "post unliked", nil)
}

// AddComment POST /api/posts/comment/:id
func (h *PostHandler) AddComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	comments, err := h.Svc.AddComment(c.Param("id"), uid, req.Text)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, comments, "comment added", nil)
}

// RemoveComment DELETE /api/posts/comment/:id/:comment_id
func (h *PostHandler) RemoveComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	comments, err := h.Svc.RemoveComment(c.Param("id"), c.Param("comment_id"), uid)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comment removed", nil)
}
