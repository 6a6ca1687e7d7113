package db

import (
	"context"

	"github.com/uptrace/bun"

	"ms-moviebooking/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListMovies returns movies matching every supplied filter exactly.
// Empty filter values impose no constraint.
func (d *DB) ListMovies(language, genre string) ([]models.Movie, error) {
	movies := make([]models.Movie, 0)
	q := d.Bun.NewSelect().Model(&movies).Order("id ASC")
	if language != "" {
		q = q.Where("language = ?", language)
	}
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if err := q.Scan(context.Background()); err != nil {
		return nil, err
	}
	return movies, nil
}

func (d *DB) GetMovieByID(id int64) (*models.Movie, error) {
	var movie models.Movie
	err := d.Bun.NewSelect().
		Model(&movie).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (d *DB) ListTheatres() ([]models.Theatre, error) {
	theatres := make([]models.Theatre, 0)
	err := d.Bun.NewSelect().
		Model(&theatres).
		Order("id ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return theatres, nil
}

func (d *DB) ListFoodItems() ([]models.FoodItem, error) {
	items := make([]models.FoodItem, 0)
	err := d.Bun.NewSelect().
		Model(&items).
		Order("id ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return items, nil
}
