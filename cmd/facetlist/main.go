package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/config"
	"github.com/kailas-cloud/facetlist/internal/db"
	dbRedis "github.com/kailas-cloud/facetlist/internal/db/redis"
	logpkg "github.com/kailas-cloud/facetlist/internal/logger"
	"github.com/kailas-cloud/facetlist/internal/metrics"
	bundlerepo "github.com/kailas-cloud/facetlist/internal/repository/bundle"
	"github.com/kailas-cloud/facetlist/internal/repository/formcache"
	itemrepo "github.com/kailas-cloud/facetlist/internal/repository/item"
	searchrepo "github.com/kailas-cloud/facetlist/internal/repository/search"
	chiTransport "github.com/kailas-cloud/facetlist/internal/transport/chi"
	gen "github.com/kailas-cloud/facetlist/internal/transport/generated"
	facetuc "github.com/kailas-cloud/facetlist/internal/usecase/facet"
	healthuc "github.com/kailas-cloud/facetlist/internal/usecase/health"
	itemuc "github.com/kailas-cloud/facetlist/internal/usecase/item"
	"github.com/kailas-cloud/facetlist/internal/usecase/listexec"
	"github.com/kailas-cloud/facetlist/internal/usecase/presetfilter"
	"github.com/kailas-cloud/facetlist/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting facetlist API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.Int("sources", len(cfg.Sources)),
	)

	// Redis and Valkey speak the same protocol and search commands.
	var store db.Store
	switch cfg.Database.Driver {
	case "redis", "valkey":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:       cfg.Database.Addrs,
			Username:    cfg.Database.Username,
			Password:    cfg.Database.Password,
			DB:          cfg.Database.DB,
			DialTimeout: time.Duration(cfg.Database.DialTimeoutSec) * time.Second,
		})
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register list metrics explicitly (no init())
	metrics.RegisterListMetrics()

	facets, err := facetuc.New(facetDefinitions(cfg.Sources))
	if err != nil {
		logger.Fatal("Invalid facet configuration", zap.Error(err))
	}

	// Create repositories
	searchRepo, err := searchrepo.New(store, sourceDefinitions(cfg.Sources))
	if err != nil {
		logger.Fatal("Invalid source configuration", zap.Error(err))
	}
	ensureIndexes := searchRepo.EnsureIndexes
	if cfg.Database.RebuildIndexes {
		ensureIndexes = searchRepo.RebuildIndexes
	}
	if err := ensureIndexes(ctx); err != nil {
		logger.Fatal("Failed to create search indexes", zap.Error(err))
	}
	itemRepo := itemrepo.New(store)
	bundleRepo := bundlerepo.New(store)
	forms := formcache.New(store,
		time.Duration(cfg.Forms.CacheTTLSec)*time.Second, metrics.FormCacheTotal, logger)

	// Create use case services
	itemSvc := itemuc.New(itemRepo, bundleRepo, searchRepo, facets)
	lists := listexec.New(searchRepo, bundleRepo,
		listexec.WithPageSize(cfg.List.PageSize),
		listexec.WithQueryAlterer(facets),
	)
	builder := presetfilter.New(facets, presetfilter.WithSampleSize(cfg.List.EditSampleSize))
	healthSvc := healthuc.New(store, store, searchRepo.IndexNames()...)

	// Create chi server
	server := chiTransport.NewServer(itemSvc, lists, facets, builder, forms, healthSvc, logger)
	handler := server.Handler(
		jsonRecoverer(logger),
		chiMiddleware.RequestID,
		wideEventMiddleware(logger),
		chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys),
		metrics.Middleware(),
		chiTransport.ExecutionMemoMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(gen.ErrorResponse{
						Code:    gen.ErrorResponseCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
