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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"

	"ms-moviebooking/internal/booking"
	"ms-moviebooking/internal/booking/booking_api"
	booking_db "ms-moviebooking/internal/booking/db"
	"ms-moviebooking/internal/config"
	"ms-moviebooking/internal/database"
	"ms-moviebooking/internal/kafka"
	"ms-moviebooking/internal/logger"
	"ms-moviebooking/internal/movies"
	movie_db "ms-moviebooking/internal/movies/db"
	"ms-moviebooking/internal/movies/movie_api"
)

func setupStore(cfg *config.Config, logger *logger.Logger) *bun.DB {
	bunDB, err := database.Open(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to open SQLite store: %v", err))
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, bunDB); err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to create tables: %v", err))
	}
	if err := database.Seed(ctx, bunDB); err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to seed data: %v", err))
	}

	logger.Info("DATABASE", "✅ In-memory SQLite store created and seeded")
	return bunDB
}

func newRouter(movieHandler *movie_api.Handler, bookingHandler *booking_api.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "OK",
			"message": "Server is running",
		})
	})

	r.Get("/movies", movieHandler.ListMovies)
	r.Route("/movie/{movieID}", func(r chi.Router) {
		r.Get("/showtimes", movieHandler.Showtimes)
		r.Get("/seats", movieHandler.SeatMap)
	})
	r.Get("/food", movieHandler.FoodMenu)

	r.Post("/book", bookingHandler.CreateBooking)
	r.Get("/bookings/{userID}", bookingHandler.History)
	r.Get("/booking/{bookingID}/qr", bookingHandler.TicketQR)

	return r
}

func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting Movie Booking Service initialization")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	}
	cfg := config.Load()

	bunDB := setupStore(cfg, logger)
	defer bunDB.Close()

	var publisher booking.EventPublisher
	if cfg.Kafka.Enabled {
		if err := kafka.CreateTopicIfNotExists(cfg.Kafka.Brokers, cfg.Kafka.Topic); err != nil {
			logger.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		}
		publisher = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Info("KAFKA", fmt.Sprintf("Booking event producer initialized for topic %s", cfg.Kafka.Topic))
	}

	movieService := movies.NewMovieService(&movie_db.DB{Bun: bunDB})
	bookingService := booking.NewBookingService(&booking_db.DB{Bun: bunDB}, publisher)

	movieHandler := &movie_api.Handler{MovieService: movieService, Logger: logger}
	bookingHandler := &booking_api.Handler{BookingService: bookingService, Logger: logger}

	logger.Info("HTTP", "Setting up router and middleware")
	r := newRouter(movieHandler, bookingHandler)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("🚀 Movie Booking Service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "✅ Movie Booking Service shutdown complete")
	}
}
