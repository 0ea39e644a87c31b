package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/devconnector/internal/container"
	handlers "github.com/devconnector/devconnector/internal/interface/http"
	"github.com/devconnector/devconnector/internal/interface/middleware"
	"github.com/devconnector/devconnector/pkg/helpers"
)

// ProfileModule wires developer profile routes. Listing and lookup are
// public; everything that mutates a profile requires a token.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/profile", publicLimiter, m.Handler.List)
	rg.GET("/profile/user/:id", publicLimiter, m.Handler.GetByUserID)
	rg.GET("/profile/github/:username", publicLimiter, m.Handler.GithubRepos)

	auth := rg.Group("/profile")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Upsert)
		auth.GET("/me", m.Handler.Me)
		auth.DELETE("", m.Handler.DeleteAccount)

		auth.PUT("/experience", m.Handler.AddExperience)
		auth.DELETE("/experience/:id", m.Handler.RemoveExperience)
		auth.PUT("/education", m.Handler.AddEducation)
		auth.DELETE("/education/:id", m.Handler.RemoveEducation)
	}
}
