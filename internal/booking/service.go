package booking

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/skip2/go-qrcode"

	"ms-moviebooking/internal/models"
	"ms-moviebooking/internal/utils"
)

var (
	ErrMissingFields   = errors.New("missing required booking fields")
	ErrBookingNotFound = errors.New("booking not found")
)

type DBLayer interface {
	CreateBooking(booking *models.Booking) error
	GetBookingByID(id int64) (*models.Booking, error)
	BookingHistory() ([]models.HistoryEntry, error)
}

type EventPublisher interface {
	PublishBookingCreated(booking models.Booking) error
}

type BookingService struct {
	DB     DBLayer
	Events EventPublisher // nil when event publishing is disabled

	// Now is the clock used for booking timestamps and the
	// Upcoming/Past split; tests substitute a fixed instant.
	Now func() time.Time

	validate *validator.Validate
}

func NewBookingService(db DBLayer, events EventPublisher) *BookingService {
	return &BookingService{
		DB:       db,
		Events:   events,
		Now:      time.Now,
		validate: validator.New(),
	}
}

// CreateBooking validates and inserts a booking. Every request field is
// required; a total price of zero fails validation the same way a
// missing one does. There is no seat-conflict or double-submission
// check: identical requests create distinct bookings.
func (s *BookingService) CreateBooking(req models.BookingRequest) (*models.BookingResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	booking := models.Booking{
		MovieID:     req.MovieID,
		TheatreID:   req.TheatreID,
		ShowTime:    req.ShowTime,
		Seats:       req.Seats.String(),
		TotalPrice:  req.TotalPrice,
		BookingDate: s.Now().UTC().Format(time.RFC3339),
	}

	if err := s.DB.CreateBooking(&booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Events != nil {
		if err := s.Events.PublishBookingCreated(booking); err != nil {
			// Best effort only; the booking is already committed.
			fmt.Printf("Kafka publish error (booking created): %v\n", err)
		}
	}

	return &models.BookingResponse{
		Message:   "Booking successful",
		BookingID: utils.BookingDisplayID(booking.ID),
		Details:   req,
	}, nil
}

// History returns every booking joined with its movie and theatre,
// classified as Upcoming or Past against the current instant. The user
// id is accepted but not used to filter; all bookings belong to the
// single implicit user.
func (s *BookingService) History(userID string) ([]models.HistoryEntry, error) {
	entries, err := s.DB.BookingHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}

	now := s.Now()
	for i := range entries {
		entries[i].Status = classify(entries[i].ShowTime, now)
	}
	return entries, nil
}

// classify marks a show strictly after now as Upcoming. Show times
// that fail to parse are treated as Past.
func classify(showTime string, now time.Time) string {
	t, err := time.ParseInLocation("2006-01-02 15:04", showTime, time.Local)
	if err == nil && t.After(now) {
		return "Upcoming"
	}
	return "Past"
}

// TicketQR renders the display booking id as a PNG QR code for the
// cinema entrance scan.
func (s *BookingService) TicketQR(id int64) ([]byte, error) {
	booking, err := s.DB.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to look up booking %d: %w", id, err)
	}

	return qrcode.Encode(utils.BookingDisplayID(booking.ID), qrcode.Medium, 256)
}
