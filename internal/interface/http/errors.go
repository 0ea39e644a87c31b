package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector/internal/application"
	"github.com/devconnector/devconnector/pkg/helpers"
	"github.com/devconnector/devconnector/pkg/response"
)

// respondError maps service errors onto HTTP statuses. Anything outside the
// taxonomy is a store failure: logged, surfaced as an opaque 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "not authorized", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrProfileNotFound):
		response.Error(c, http.StatusNotFound, "profile not found", nil)
	case errors.Is(err, application.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "post not found", nil)
	case errors.Is(err, application.ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "comment not found", nil)
	case errors.Is(err, helpers.ErrGithubUserNotFound):
		response.Error(c, http.StatusNotFound, "github user not found", nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusConflict, "email already registered", nil)
	case errors.Is(err, application.ErrAlreadyLiked):
		response.Error(c, http.StatusConflict, "post already liked", nil)
	case errors.Is(err, application.ErrNotLiked):
		response.Error(c, http.StatusConflict, "post has not been liked", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "server error", nil)
	}
}
