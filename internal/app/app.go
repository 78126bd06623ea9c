package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MrityunjayMaharana/Vendor-App/config"
	"github.com/MrityunjayMaharana/Vendor-App/internal/controller"
	"github.com/MrityunjayMaharana/Vendor-App/internal/infrastructure/filestore"
	appmiddleware "github.com/MrityunjayMaharana/Vendor-App/internal/middleware"
	"github.com/MrityunjayMaharana/Vendor-App/internal/repository"
	"github.com/MrityunjayMaharana/Vendor-App/internal/service"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	e.Use(middleware.Recover())

	corsOrigin := app.Config.CORSOrigin
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{corsOrigin},
		AllowCredentials: true,
	}))

	e.Use(echoprometheus.NewMiddleware(""))
	e.GET("/metrics", echoprometheus.NewHandler())

	// Uploaded media is served read-only from the upload directory.
	e.Static("/uploads", app.Config.UploadDir)

	g := e.Group("/api")
	g.Use(appmiddleware.Logger)

	isLoggedIn := appmiddleware.JWTAuth(app.Config.JWTSecret)

	fileStore, err := filestore.CreateLocalFileStore(app.Config.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize upload directory")
	}

	userRepo := repository.CreateNewUserRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)

	userSvc := service.CreateNewUserService(userRepo, fileStore, *app.Config)
	productSvc := service.CreateNewProductService(productRepo, userRepo, fileStore)

	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
