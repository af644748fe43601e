package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pcourtois/media-vault-go/internal/config"
	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/handler/api"
	"github.com/pcourtois/media-vault-go/internal/logger"
	cMiddleware "github.com/pcourtois/media-vault-go/internal/middleware"
	"github.com/pcourtois/media-vault-go/internal/port"
	"github.com/pcourtois/media-vault-go/internal/preview"
	"github.com/pcourtois/media-vault-go/internal/repository/mariadb"
	"github.com/pcourtois/media-vault-go/internal/storage"
	"github.com/pcourtois/media-vault-go/internal/task"
	assetSvc "github.com/pcourtois/media-vault-go/internal/usecase/asset"
	userSvc "github.com/pcourtois/media-vault-go/internal/usecase/user"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)

	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis task queue enabled")
	} else {
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, webhook notifications are disabled")
	}

	assetRepo := mariadb.NewAssetRepository(database.DB)
	userRepo := mariadb.NewUserRepository(database.DB)
	thumb := preview.NewThumbnailer()
	limits := assetSvc.UploadLimits{
		AllowedImageTypes: cfg.AllowedImageTypes,
		AllowedVideoTypes: cfg.AllowedVideoTypes,
		MaxFileSizeBytes:  cfg.MaxFileSizeBytes,
	}

	r := initRouter(ctx)

	registerSvc := userSvc.NewRegisterer(userRepo, db.NewUUID, cfg.JWTSecret)
	r.Post("/auth/register", api.RegisterHandler(registerSvc))

	loginSvc := userSvc.NewAuthenticator(userRepo, cfg.JWTSecret)
	r.Post("/auth/login", api.LoginHandler(loginSvc))

	r.Route("/media", func(r chi.Router) {
		r.Use(cMiddleware.WithAuth(cfg.JWTSecret))

		uploaderSvc := assetSvc.NewAssetUploader(assetRepo, strg, thumb, dispatcher, db.NewUUID, limits)
		r.Post("/", api.UploadAssetHandler(uploaderSvc))

		listerSvc := assetSvc.NewAssetLister(assetRepo)
		r.Get("/", api.ListAssetsHandler(listerSvc))

		searcherSvc := assetSvc.NewAssetSearcher(assetRepo)
		r.Get("/search", api.SearchAssetsHandler(searcherSvc))

		getterSvc := assetSvc.NewAssetGetter(assetRepo)
		r.With(cMiddleware.WithAssetID()).
			Get("/{id}", api.GetAssetHandler(getterSvc))

		updaterSvc := assetSvc.NewAssetUpdater(assetRepo, dispatcher)
		r.With(cMiddleware.WithAssetID()).
			Put("/{id}", api.UpdateAssetHandler(updaterSvc))

		deleterSvc := assetSvc.NewAssetDeleter(assetRepo, strg, dispatcher)
		r.With(cMiddleware.WithAssetID()).
			Delete("/{id}", api.DeleteAssetHandler(deleterSvc))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
