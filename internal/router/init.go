package router

import (
	"github.com/devconnector/devconnector/internal/application"
	"github.com/devconnector/devconnector/internal/container"
	pginfra "github.com/devconnector/devconnector/internal/infrastructure/postgres"
	handlers "github.com/devconnector/devconnector/internal/interface/http"
	"github.com/devconnector/devconnector/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	profiles := pginfra.NewProfileRepository(pool)
	posts := pginfra.NewPostRepository(pool)

	userSvc := application.NewUserService(
		users,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		logger,
		container.GetES(),
		cfg.ESProfilesIndex,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	profileSvc := application.NewProfileService(
		profiles,
		users,
		posts,
		container.GetRedis(),
		container.GetGithub(),
		cfg.GithubCacheTTL,
		logger,
	)
	postSvc := application.NewPostService(posts, users, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), container.GetJWT()))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), container.GetJWT()))
}
