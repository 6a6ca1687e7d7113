package movies

import (
	"database/sql"
	"errors"
	"fmt"

	"ms-moviebooking/internal/models"
	"ms-moviebooking/internal/pricing"
)

var ErrMovieNotFound = errors.New("movie not found")

type DBLayer interface {
	ListMovies(language, genre string) ([]models.Movie, error)
	GetMovieByID(id int64) (*models.Movie, error)
	ListTheatres() ([]models.Theatre, error)
	ListFoodItems() ([]models.FoodItem, error)
}

type MovieService struct {
	DB DBLayer
}

func NewMovieService(db DBLayer) *MovieService {
	return &MovieService{DB: db}
}

func (s *MovieService) ListMovies(language, genre string) ([]models.Movie, error) {
	return s.DB.ListMovies(language, genre)
}

// Showtimes joins every theatre with its mock schedule for the given
// movie. The movie must exist; the schedule itself does not depend on it.
func (s *MovieService) Showtimes(movieID int64) ([]models.TheatreShowtimes, error) {
	movie, err := s.DB.GetMovieByID(movieID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to look up movie %d: %w", movieID, err)
	}

	theatres, err := s.DB.ListTheatres()
	if err != nil {
		return nil, fmt.Errorf("failed to list theatres: %w", err)
	}

	result := make([]models.TheatreShowtimes, 0, len(theatres))
	for _, theatre := range theatres {
		slots := make([]models.ShowtimeSlot, 0)
		for i, t := range theatreSchedules[theatre.ID] {
			slots = append(slots, models.ShowtimeSlot{
				Time:   t,
				Status: slotStatus(i),
				Price:  slotPrice(theatre.ID),
			})
		}
		result = append(result, models.TheatreShowtimes{
			ID:         theatre.ID,
			Name:       theatre.Name,
			Location:   theatre.Location,
			Amenities:  theatre.Amenities,
			MovieTitle: movie.Title,
			ShowTimes:  slots,
		})
	}
	return result, nil
}

// SeatMap returns the fixed 10x10 auditorium grid with each seat
// priced by its row tier. No occupancy state is tracked; seat
// selections are never reconciled against this map.
func (s *MovieService) SeatMap(movieID int64) ([]models.SeatRow, error) {
	if _, err := s.DB.GetMovieByID(movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to look up movie %d: %w", movieID, err)
	}

	rows := make([]models.SeatRow, 0, len(pricing.Rows))
	for _, row := range pricing.Rows {
		seats := make([]models.Seat, 0, pricing.SeatsPerRow)
		for n := 1; n <= pricing.SeatsPerRow; n++ {
			id := fmt.Sprintf("%s%d", row, n)
			seats = append(seats, models.Seat{
				ID:    id,
				Row:   row,
				Tier:  pricing.TierName(row),
				Price: pricing.SeatPrice(id),
			})
		}
		rows = append(rows, models.SeatRow{Row: row, Seats: seats})
	}
	return rows, nil
}

func (s *MovieService) FoodMenu() ([]models.FoodItem, error) {
	return s.DB.ListFoodItems()
}
