package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"github.com/FelixBrandt/SocialFox/app/repository"
	"github.com/FelixBrandt/SocialFox/internal/pkg/cache"
	"github.com/FelixBrandt/SocialFox/internal/pkg/database"
	"github.com/FelixBrandt/SocialFox/internal/pkg/env"
	"github.com/FelixBrandt/SocialFox/internal/pkg/oauth"
	"github.com/FelixBrandt/SocialFox/internal/pkg/router"
	"github.com/FelixBrandt/SocialFox/internal/pkg/session"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	err = app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "8000")))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, error) {
	env.SetupEnvFile()

	// Configuration problems abort startup here instead of surfacing as
	// broken redirects on the first login attempt.
	cfg, err := oauth.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect()
	if err != nil {
		return nil, err
	}

	cache.SetupCache()
	cacheClient := cache.GetClient()

	// App sessions in Redis DB 1, OAuth state in DB 2
	sessions := session.NewStore(session.NewRedisStorage(cacheClient, 1))
	oauth.Setup(cfg, session.NewRedisStorage(cacheClient, 2))

	repoFactory := repository.NewFactory(db)
	repos := repoFactory.GetRepositories()
	logIdentityStoreStatus(repoFactory.GetIdentityRepository())

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(recover.New(), logger.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cfg.SessionSecret,
	}))

	// fiber metrics
	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app, router.Deps{
		Repos:    repos,
		Sessions: sessions,
	})

	return app, nil
}

// logIdentityStoreStatus probes the auth_users table once at boot so a
// broken or missing table surfaces immediately instead of on the first
// callback.
func logIdentityStoreStatus(identities repository.IdentityRepository) {
	n, err := identities.Count()
	if err != nil {
		log.Printf("identity store check failed: %v", err)
		return
	}
	log.Printf("identity store ready, %d identities", n)
}
