package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/devconnector/internal/container"
	handlers "github.com/devconnector/devconnector/internal/interface/http"
	"github.com/devconnector/devconnector/internal/interface/middleware"
	"github.com/devconnector/devconnector/pkg/helpers"
)

// PostModule wires the feed routes. Every post route requires a token.
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/posts")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.DELETE("/:id", m.Handler.Delete)

		auth.PUT("/like/:id", m.Handler.Like)
		auth.PUT("/unlike/:id", m.Handler.Unlike)

		auth.POST("/comment/:id", m.Handler.AddComment)
		auth.DELETE("/comment/:id/:comment_id", m.Handler.RemoveComment)
	}
}
