package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/biosecret/go-todo/config"
	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/events"
	"github.com/biosecret/go-todo/handlers"
	"github.com/biosecret/go-todo/middleware"
	"github.com/biosecret/go-todo/router"
	"github.com/biosecret/go-todo/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// New builds the Fiber application over a store and an event publisher.
func New(store handlers.Repository, publisher events.Publisher) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "go-todo",
		Views:        web.Views(),
		ErrorHandler: handlers.ErrorHandler,
		// Form values outlive the request once they reach the store.
		Immutable: true,
	})

	middleware.Register(app)
	router.SetupRoutes(app, handlers.New(store, publisher))
	config.AddSwaggerRoutes(app)

	return app
}

// SetupAndRunApp loads configuration, prepares the store and serves until
// the process is asked to stop.
func SetupAndRunApp() error {
	if err := config.LoadENV(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, err := database.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	// Schema and seed data are prepared once, before any request is served.
	if err := store.Init(ctx, cfg.App.SeedFile); err != nil {
		return err
	}

	publisher, err := newPublisher(cfg.MQTT)
	if err != nil {
		return err
	}
	defer publisher.Close()

	return listen(New(store, publisher), cfg.App)
}

func newPublisher(cfg config.MQTTConfig) (events.Publisher, error) {
	if cfg.URL == "" {
		log.Info("MQTT_URL not set, change events disabled")
		return events.Nop{}, nil
	}
	return events.NewMQTTPublisher(cfg.URL, cfg.ClientID)
}

// listen serves until the listener fails or SIGINT/SIGTERM arrives, then
// drains in-flight requests within the shutdown timeout.
func listen(app *fiber.App, cfg config.AppConfig) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Infof("received %s, shutting down", sig)
	}

	return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
}
