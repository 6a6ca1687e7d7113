package movie_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ms-moviebooking/internal/logger"
	"ms-moviebooking/internal/models"
	"ms-moviebooking/internal/movies"
)

type MovieService interface {
	ListMovies(language, genre string) ([]models.Movie, error)
	Showtimes(movieID int64) ([]models.TheatreShowtimes, error)
	SeatMap(movieID int64) ([]models.SeatRow, error)
	FoodMenu() ([]models.FoodItem, error)
}

type Handler struct {
	MovieService MovieService
	Logger       *logger.Logger
}

// ListMovies handles GET /movies with optional language and genre
// filters. Filters are exact, case-sensitive matches combined with AND.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	genre := r.URL.Query().Get("genre")
	h.Logger.Info("API", fmt.Sprintf("ListMovies: language=%q genre=%q", language, genre))

	moviesList, err := h.MovieService.ListMovies(language, genre)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListMovies: query failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": moviesList})
}

// Showtimes handles GET /movie/{movieID}/showtimes.
func (h *Handler) Showtimes(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a movie.
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Movie not found"})
		return
	}
	h.Logger.Info("API", fmt.Sprintf("Showtimes: movieID=%d", movieID))

	showtimes, err := h.MovieService.Showtimes(movieID)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Movie not found"})
			return
		}
		h.Logger.Error("API", fmt.Sprintf("Showtimes: query failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": showtimes})
}

// SeatMap handles GET /movie/{movieID}/seats.
func (h *Handler) SeatMap(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Movie not found"})
		return
	}
	h.Logger.Info("API", fmt.Sprintf("SeatMap: movieID=%d", movieID))

	seatRows, err := h.MovieService.SeatMap(movieID)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Movie not found"})
			return
		}
		h.Logger.Error("API", fmt.Sprintf("SeatMap: query failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": seatRows})
}

// FoodMenu handles GET /food.
func (h *Handler) FoodMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.MovieService.FoodMenu()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("FoodMenu: query failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
