package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector/internal/application"
	"github.com/devconnector/devconnector/internal/domain/entity"
	"github.com/devconnector/devconnector/internal/interface/middleware"
	"github.com/devconnector/devconnector/pkg/response"
	"github.com/devconnector/devconnector/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type upsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" binding:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Upsert POST /api/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Upsert(uid, application.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile saved", nil)
}

// Me GET /api/profile/me
func (h *ProfileHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Me(uid)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

// List GET /api/profile
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Svc.List()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, profiles, "profiles", nil)
}

// GetByUserID GET /api/profile/user/:id
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	p, err := h.Svc.GetByUserID(c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

// AddExperience PUT /api/profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.AddExperience(uid, entity.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "experience added", nil)
}

// RemoveExperience DELETE /api/profile/experience/:id
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.RemoveExperience(uid, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "experience removed", nil)
}

// AddEducation PUT /api/profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.AddEducation(uid, entity.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "education added", nil)
}

// RemoveEducation DELETE /api/profile/education/:id
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.RemoveEducation(uid, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "education removed", nil)
}

// GithubRepos GET /api/profile/github/:username
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.Svc.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, repos, "github repos", nil)
}

// DeleteAccount DELETE /api/profile — removes posts, profile and user.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteAccount(uid); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "account deleted", nil)
}
