package booking_api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-moviebooking/internal/booking"
	"ms-moviebooking/internal/booking/booking_api"
	"ms-moviebooking/internal/logger"
	"ms-moviebooking/internal/models"
)

// MockBookingService simulates the booking service behind the handler.
type MockBookingService struct {
	bookings []models.Booking
	history  []models.HistoryEntry
	nextID   int64
}

func NewMockBookingService() *MockBookingService {
	return &MockBookingService{nextID: 4}
}

func (m *MockBookingService) CreateBooking(req models.BookingRequest) (*models.BookingResponse, error) {
	if req.MovieID == 0 || req.TheatreID == 0 || req.ShowTime == "" || len(req.Seats) == 0 || req.TotalPrice == 0 {
		return nil, booking.ErrMissingFields
	}

	id := m.nextID
	m.nextID++
	m.bookings = append(m.bookings, models.Booking{
		ID:         id,
		MovieID:    req.MovieID,
		TheatreID:  req.TheatreID,
		ShowTime:   req.ShowTime,
		Seats:      req.Seats.String(),
		TotalPrice: req.TotalPrice,
	})

	return &models.BookingResponse{
		Message:   "Booking successful",
		BookingID: fmt.Sprintf("BKZWX%dDF", id),
		Details:   req,
	}, nil
}

func (m *MockBookingService) History(userID string) ([]models.HistoryEntry, error) {
	return m.history, nil
}

func (m *MockBookingService) TicketQR(id int64) ([]byte, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil
		}
	}
	return nil, booking.ErrBookingNotFound
}

func setupRouter(service booking_api.BookingService) *chi.Mux {
	handler := &booking_api.Handler{
		BookingService: service,
		Logger:         logger.NewLogger(),
	}

	r := chi.NewRouter()
	r.Post("/book", handler.CreateBooking)
	r.Get("/bookings/{userID}", handler.History)
	r.Get("/booking/{bookingID}/qr", handler.TicketQR)
	return r
}

func TestCreateBookingEndpoint(t *testing.T) {
	service := NewMockBookingService()
	router := setupRouter(service)

	body := `{"movie_id":1,"theatre_id":1,"show_time":"2025-01-10 20:30","seats":["D1","D2"],"total_price":600}`
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking successful", resp.Message)
	assert.Regexp(t, regexp.MustCompile(`^BKZWX\d+DF$`), resp.BookingID)
	assert.Equal(t, int64(1), resp.Details.MovieID)
	assert.Equal(t, models.SeatList{"D1", "D2"}, resp.Details.Seats)
}

func TestCreateBookingSeatsAsString(t *testing.T) {
	service := NewMockBookingService()
	router := setupRouter(service)

	body := `{"movie_id":1,"theatre_id":2,"show_time":"2025-01-10 17:30","seats":"G3,G4","total_price":400}`
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "G3,G4", service.bookings[0].Seats)
}

func TestCreateBookingMissingFieldReturns400(t *testing.T) {
	bodies := []string{
		`{"theatre_id":1,"show_time":"2025-01-10 20:30","seats":["D1"],"total_price":300}`,
		`{"movie_id":1,"show_time":"2025-01-10 20:30","seats":["D1"],"total_price":300}`,
		`{"movie_id":1,"theatre_id":1,"seats":["D1"],"total_price":300}`,
		`{"movie_id":1,"theatre_id":1,"show_time":"2025-01-10 20:30","total_price":300}`,
		`{"movie_id":1,"theatre_id":1,"show_time":"2025-01-10 20:30","seats":["D1"]}`,
		`{"movie_id":1,"theatre_id":1,"show_time":"2025-01-10 20:30","seats":["D1"],"total_price":0}`,
	}

	for _, body := range bodies {
		service := NewMockBookingService()
		router := setupRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Missing required booking fields.", resp["error"])

		// No booking record was created
		assert.Empty(t, service.bookings)
	}
}

func TestCreateBookingInvalidJSON(t *testing.T) {
	router := setupRouter(NewMockBookingService())

	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryEndpoint(t *testing.T) {
	service := NewMockBookingService()
	service.history = []models.HistoryEntry{
		{BookingID: 2, MovieTitle: "Mission Strike", TheatreName: "INOX Megaplex", Status: "Upcoming"},
		{BookingID: 1, MovieTitle: "The Dark Universe", TheatreName: "PVR Cinemas - Phoenix Mall", Status: "Past"},
	}
	router := setupRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.HistoryEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Upcoming", resp.Data[0].Status)
	assert.Equal(t, "Past", resp.Data[1].Status)
}

func TestTicketQREndpoint(t *testing.T) {
	service := NewMockBookingService()
	router := setupRouter(service)

	// Create a booking first
	body := `{"movie_id":1,"theatre_id":1,"show_time":"2025-01-10 20:30","seats":["D1"],"total_price":300}`
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/booking/4/qr", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestTicketQRNotFound(t *testing.T) {
	router := setupRouter(NewMockBookingService())

	req := httptest.NewRequest(http.MethodGet, "/booking/999/qr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
