package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapterhandler "motoshop/internal/adapter/handler"
	"motoshop/internal/infrastructure/store"
	infratoken "motoshop/internal/infrastructure/token"
	"motoshop/internal/usecase"

	"motoshop/config"
	appmiddleware "motoshop/middleware"
	"motoshop/utils/logger"
	"motoshop/utils/otel"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// Initialize structured logger
	logger.Init(otelCfg.Enabled)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"port", cfg.Port,
		"token_ttl", cfg.SessionTokenTTL,
		"db_name", cfg.Database.DBName)

	// Storage
	pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
	if err != nil {
		slog.ErrorContext(ctx, "failed to create database pool", "error", err)
		os.Exit(1)
	}
	if err := pool.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ping database", "error", err)
		os.Exit(1)
	}
	repo := store.NewRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ensure schema", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "connected to database", "database", cfg.Database.DBName)

	// Infrastructure
	jwtManager := infratoken.NewJWTManager(cfg.SessionTokenSecret, cfg.SessionTokenTTL)
	appLogger := slog.Default()

	// Usecases
	issueUC := usecase.NewIssueSession(jwtManager, appLogger)
	listUC := usecase.NewListProducts(repo, appLogger)
	pageUC := usecase.NewPageProducts(repo, appLogger)
	countUC := usecase.NewCountProducts(repo, appLogger)
	getUC := usecase.NewGetProduct(repo, appLogger)
	upsertUC := usecase.NewUpsertProduct(repo, appLogger)
	createUC := usecase.NewCreateProduct(repo, appLogger)
	listCartUC := usecase.NewListCart(repo, appLogger)
	addCartUC := usecase.NewAddCartItem(repo, appLogger)
	removeCartUC := usecase.NewRemoveCartItem(repo, appLogger)

	// Handlers
	sessionHandler := adapterhandler.NewSessionHandler(issueUC)
	productHandler := adapterhandler.NewProductHandler(listUC, pageUC, countUC, getUC, upsertUC, createUC)
	cartHandler := adapterhandler.NewCartHandler(listCartUC, addCartUC, removeCartUC)
	healthHandler := adapterhandler.NewHealthHandler()

	// Session gate
	sessionAuth := appmiddleware.NewSessionAuth(jwtManager, appLogger)

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Security middleware
	e.Use(appmiddleware.SecurityHeaders())

	// OpenTelemetry tracing
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	// Credentialed CORS for the browser frontends
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// Request logging
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())

	// Rate limit the token-minting endpoints
	sessionRL := appmiddleware.NewRateLimiter(30.0/60.0, 5) // 30 req/min

	// Session routes
	e.POST("/jwt", sessionHandler.HandleIssue, sessionRL.Middleware())
	e.POST("/logOut", sessionHandler.HandleLogout, sessionRL.Middleware())

	// Catalog routes
	e.GET("/product", productHandler.HandleList)
	e.GET("/products", productHandler.HandleList)
	e.GET("/count", productHandler.HandleCount)
	e.GET("/allProducts", productHandler.HandlePage)
	e.GET("/product/:id", productHandler.HandleGet)
	e.PUT("/product/:id", productHandler.HandleUpsert)
	e.POST("/product", productHandler.HandleCreate)

	// Cart routes; only the read path is gated
	e.GET("/cart/:user", cartHandler.HandleList, sessionAuth.RequireSession())
	e.POST("/cart", cartHandler.HandleAdd)
	e.DELETE("/cart/:id", cartHandler.HandleRemove)

	e.GET("/health", healthHandler.Handle)

	// Start server with errgroup for graceful shutdown
	address := fmt.Sprintf(":%s", cfg.Port)
	slog.InfoContext(ctx, "starting motoshop server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := e.Shutdown(shutdownCtx)
		repo.Close()
		return err
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
