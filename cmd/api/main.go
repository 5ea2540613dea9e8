package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kigalivenues/venues-api/internal/config"
	"github.com/kigalivenues/venues-api/internal/domain/auth"
	"github.com/kigalivenues/venues-api/internal/domain/booking"
	"github.com/kigalivenues/venues-api/internal/domain/venue"
	"github.com/kigalivenues/venues-api/internal/middleware"
	"github.com/kigalivenues/venues-api/internal/pkg/email"
	"github.com/kigalivenues/venues-api/internal/pkg/jwt"
	pkgresponse "github.com/kigalivenues/venues-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Wedding Venues Kigali API")

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Email pipeline ----------
	renderer, err := email.NewRenderer(cfg.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse email templates")
	}

	var transport email.Transport
	if cfg.ResendAPIKey != "" {
		transport = email.NewResendClient(email.ResendConfig{
			APIKey:    cfg.ResendAPIKey,
			Endpoint:  cfg.ResendEndpoint,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		})
	} else {
		log.Warn().Msg("RESEND_API_KEY not set, emails will be logged only")
		transport = email.LogTransport{}
	}
	dispatcher := email.NewDispatcher(transport)

	// ---------- Repositories ----------
	catalog := venue.NewCatalog()
	bookingRepo := booking.NewMemoryRepository()
	if cfg.IsDevelopment() {
		bookingRepo.Seed(booking.DemoBookings())
	}

	// ---------- Services ----------
	notifier := booking.NewEmailNotifier(renderer, dispatcher)
	bookingService := booking.NewService(bookingRepo, catalog, notifier)
	authService := auth.NewService(auth.GoogleConfig{
		ClientID:    cfg.GoogleClientID,
		RedirectURI: cfg.GoogleRedirectURI,
	}, jwtService)

	// ---------- Handlers ----------
	venueHandler := venue.NewHandler(catalog)
	bookingHandler := booking.NewHandler(bookingService)
	authHandler := auth.NewHandler(authService)

	authMiddleware := middleware.Auth(jwtService)
	ownerMiddleware := middleware.RequireOwner()

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/venues", venueHandler.Routes())
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware, ownerMiddleware))
		r.Mount("/auth", authHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
