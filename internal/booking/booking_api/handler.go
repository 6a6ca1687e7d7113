package booking_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ms-moviebooking/internal/booking"
	"ms-moviebooking/internal/logger"
	"ms-moviebooking/internal/models"
)

type BookingService interface {
	CreateBooking(req models.BookingRequest) (*models.BookingResponse, error)
	History(userID string) ([]models.HistoryEntry, error)
	TicketQR(id int64) ([]byte, error)
}

type Handler struct {
	BookingService BookingService
	Logger         *logger.Logger
}

// CreateBooking handles POST /book.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: failed to decode request body: %v", err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}

	response, err := h.BookingService.CreateBooking(req)
	if err != nil {
		if errors.Is(err, booking.ErrMissingFields) {
			h.Logger.Warn("API", "CreateBooking: missing required booking fields")
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required booking fields."})
			return
		}
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: insert failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.Logger.LogBooking("CREATE", response.BookingID, "booking created")
	writeJSON(w, http.StatusOK, response)
}

// History handles GET /bookings/{userID}. The user id is a placeholder
// for a future per-user model and does not filter the result.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	h.Logger.Info("API", fmt.Sprintf("History: userID=%s", userID))

	entries, err := h.BookingService.History(userID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("History: query failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": entries})
}

// TicketQR handles GET /booking/{bookingID}/qr with a PNG response.
func (h *Handler) TicketQR(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Booking not found"})
		return
	}

	png, err := h.BookingService.TicketQR(bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Booking not found"})
			return
		}
		h.Logger.Error("API", fmt.Sprintf("TicketQR: failed to generate QR: %v", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
