package database

import (
	"context"

	"github.com/uptrace/bun"

	"ms-moviebooking/internal/models"
)

// Seed loads the fixed initial records. Movies and theatres are never
// mutated afterwards; the three sample bookings give the history view
// something to show on a fresh store.
func Seed(ctx context.Context, db *bun.DB) error {
	movies := []models.Movie{
		{Title: "The Dark Universe", Language: "English", Genre: "Action/Thriller", Rating: 8.5, Duration: "2h 30m", PosterURL: "image_url_dark_universe"},
		{Title: "Mission Strike", Language: "Hindi", Genre: "Action/Drama", Rating: 7.8, Duration: "2h 15m", PosterURL: "image_url_mission_strike"},
		{Title: "Comedy Nights", Language: "English", Genre: "Comedy", Rating: 8.8, Duration: "1h 30m", PosterURL: "image_url_comedy"},
		{Title: "Interstellar", Language: "English", Genre: "Sci-Fi", Rating: 9.0, Duration: "2h 49m", PosterURL: "image_url_interstellar"},
	}
	if _, err := db.NewInsert().Model(&movies).ExcludeColumn("id").Exec(ctx); err != nil {
		return err
	}

	theatres := []models.Theatre{
		{Name: "PVR Cinemas - Phoenix Mall", Location: "Mumbai", Amenities: "4K, Dolby Atmos, Recliner, Parking"},
		{Name: "INOX Megaplex", Location: "Mumbai", Amenities: "IMAX, 4DX, Premium, Food Court"},
		{Name: "Cinepolis - Andheri", Location: "Mumbai", Amenities: "4K, VIP Lounge, Wheelchair Access"},
	}
	if _, err := db.NewInsert().Model(&theatres).ExcludeColumn("id").Exec(ctx); err != nil {
		return err
	}

	bookings := []models.Booking{
		{MovieID: 1, TheatreID: 1, ShowTime: "2024-12-09 20:30", Seats: "D5,D6", TotalPrice: 800.00, BookingDate: "2024-12-07 10:00"},
		{MovieID: 2, TheatreID: 2, ShowTime: "2024-12-12 17:30", Seats: "G3,G4,G5", TotalPrice: 900.00, BookingDate: "2024-12-06 09:00"},
		{MovieID: 3, TheatreID: 3, ShowTime: "2024-12-01 19:00", Seats: "E8,E9", TotalPrice: 600.00, BookingDate: "2024-11-20 15:00"},
	}
	if _, err := db.NewInsert().Model(&bookings).ExcludeColumn("id").Exec(ctx); err != nil {
		return err
	}

	foodItems := []models.FoodItem{
		{Name: "Classic Popcorn (L)", Description: "Large salted popcorn", Price: 200, ImageURL: "https://via.placeholder.com/100"},
		{Name: "Caramel Popcorn (L)", Description: "Sweet caramel popcorn", Price: 250, ImageURL: "https://via.placeholder.com/100"},
		{Name: "Coca Cola (L)", Description: "Chilled soft drink", Price: 150, ImageURL: "https://via.placeholder.com/100"},
		{Name: "Nachos with Cheese", Description: "Crispy nachos with cheese dip", Price: 180, ImageURL: "https://via.placeholder.com/100"},
		{Name: "Combo Meal", Description: "Popcorn + Drink + Nachos", Price: 450, ImageURL: "https://via.placeholder.com/100"},
	}
	if _, err := db.NewInsert().Model(&foodItems).ExcludeColumn("id").Exec(ctx); err != nil {
		return err
	}

	return nil
}
