package models

import (
	"encoding/json"
	"strings"

	"github.com/uptrace/bun"
)

type Booking struct {
	bun.BaseModel `bun:"table:bookings,alias:b"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	MovieID     int64   `bun:"movie_id" json:"movie_id"`
	TheatreID   int64   `bun:"theatre_id" json:"theatre_id"`
	ShowTime    string  `bun:"show_time" json:"show_time"`
	Seats       string  `bun:"seats" json:"seats"`
	TotalPrice  float64 `bun:"total_price" json:"total_price"`
	BookingDate string  `bun:"booking_date" json:"booking_date"`
}

// SeatList accepts either a JSON array of seat codes or a single
// comma-joined string, the two shapes clients send for "seats".
type SeatList []string

func (s *SeatList) UnmarshalJSON(data []byte) error {
	var codes []string
	if err := json.Unmarshal(data, &codes); err == nil {
		*s = codes
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	if joined == "" {
		*s = nil
		return nil
	}
	*s = strings.Split(joined, ",")
	return nil
}

func (s SeatList) String() string {
	return strings.Join(s, ",")
}

// BookingRequest is the POST /book payload. Every field is required;
// zero values (including a total price of 0) are rejected, matching
// the falsy-field check this contract was built against.
type BookingRequest struct {
	MovieID    int64    `json:"movie_id" validate:"required"`
	TheatreID  int64    `json:"theatre_id" validate:"required"`
	ShowTime   string   `json:"show_time" validate:"required"`
	Seats      SeatList `json:"seats" validate:"required"`
	TotalPrice float64  `json:"total_price" validate:"required"`
}

type BookingResponse struct {
	Message   string         `json:"message"`
	BookingID string         `json:"booking_id"`
	Details   BookingRequest `json:"details"`
}

// HistoryEntry is one row of the bookings x movies x theatres join,
// annotated with the Upcoming/Past status computed at query time.
type HistoryEntry struct {
	BookingID   int64   `bun:"booking_id" json:"booking_id"`
	ShowTime    string  `bun:"show_time" json:"show_time"`
	Seats       string  `bun:"seats" json:"seats"`
	TotalPrice  float64 `bun:"total_price" json:"total_price"`
	BookingDate string  `bun:"booking_date" json:"booking_date"`
	MovieTitle  string  `bun:"movie_title" json:"movie_title"`
	PosterURL   string  `bun:"poster_url" json:"poster_url"`
	Language    string  `bun:"language" json:"language"`
	TheatreName string  `bun:"theatre_name" json:"theatre_name"`
	Location    string  `bun:"location" json:"location"`
	Status      string  `bun:"-" json:"status"`
}
