package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pizzachain/pizzachain-backend/internal/ai"
	"github.com/pizzachain/pizzachain-backend/internal/chatbot"
	"github.com/pizzachain/pizzachain-backend/internal/config"
	"github.com/pizzachain/pizzachain-backend/internal/customers"
	"github.com/pizzachain/pizzachain-backend/internal/feedback"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	// --- DB ---
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db open error")
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatal().Err(err).Msg("db ping error")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Chatbot module wiring ---
	aiClient := ai.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	limiter := chatbot.NewLimiter(cfg.Chatbot.MinInterval, cfg.Chatbot.Retention)
	fallbackEngine := chatbot.NewFallback(nil)
	chatService := chatbot.NewService(aiClient, limiter, fallbackEngine, cfg.Chatbot.FallbackOnly)
	chatbot.RegisterRoutes(r, chatbot.NewHandler(chatService))

	// --- Customers module wiring ---
	customerRepo := customers.NewRepo(db)
	customerService := customers.NewService(customerRepo)
	customers.RegisterRoutes(r, customers.NewHandler(customerService))

	// --- Feedback module wiring ---
	feedbackRepo := feedback.NewRepo(db)
	feedbackService := feedback.NewService(feedbackRepo, customerRepo)
	feedback.RegisterRoutes(r, feedback.NewHandler(feedbackService))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go limiter.Start(ctx, cfg.Chatbot.CleanupInterval)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("shutting down")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Bool("fallback_only", cfg.Chatbot.FallbackOnly).
		Msg("listening")

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
