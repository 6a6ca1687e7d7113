package db

import (
	"context"

	"github.com/uptrace/bun"

	"ms-moviebooking/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateBooking inserts the record and fills in the store-assigned id.
// Ids are monotonically increasing and never reused in-process.
func (d *DB) CreateBooking(booking *models.Booking) error {
	res, err := d.Bun.NewInsert().
		Model(booking).
		ExcludeColumn("id").
		Exec(context.Background())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	booking.ID = id
	return nil
}

func (d *DB) GetBookingByID(id int64) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingHistory joins bookings with their movie and theatre, newest
// show time first. All bookings belong to the single implicit user.
func (d *DB) BookingHistory() ([]models.HistoryEntry, error) {
	entries := make([]models.HistoryEntry, 0)
	err := d.Bun.NewSelect().
		Model((*models.Booking)(nil)).
		ColumnExpr("b.id AS booking_id").
		ColumnExpr("b.show_time, b.seats, b.total_price, b.booking_date").
		ColumnExpr("m.title AS movie_title, m.poster_url, m.language").
		ColumnExpr("t.name AS theatre_name, t.location").
		Join("JOIN movies AS m ON m.id = b.movie_id").
		Join("JOIN theatres AS t ON t.id = b.theatre_id").
		OrderExpr("b.show_time DESC").
		Scan(context.Background(), &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (d *DB) CountBookings() (int, error) {
	return d.Bun.NewSelect().
		Model((*models.Booking)(nil)).
		Count(context.Background())
}
