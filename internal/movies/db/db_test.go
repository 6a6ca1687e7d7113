package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-moviebooking/internal/database"
	"ms-moviebooking/internal/movies/db"
)

func setupTestDB(t *testing.T) *db.DB {
	bunDB, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { bunDB.Close() })

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, bunDB))
	require.NoError(t, database.Seed(ctx, bunDB))

	return &db.DB{Bun: bunDB}
}

func TestListMoviesNoFilter(t *testing.T) {
	movieDB := setupTestDB(t)

	movies, err := movieDB.ListMovies("", "")
	assert.NoError(t, err)
	assert.Len(t, movies, 4)
	assert.Equal(t, "The Dark Universe", movies[0].Title)
	assert.Equal(t, "Interstellar", movies[3].Title)
}

func TestListMoviesByLanguage(t *testing.T) {
	movieDB := setupTestDB(t)

	movies, err := movieDB.ListMovies("English", "")
	assert.NoError(t, err)
	assert.Len(t, movies, 3)

	movies, err = movieDB.ListMovies("Hindi", "")
	assert.NoError(t, err)
	assert.Len(t, movies, 1)
	assert.Equal(t, "Mission Strike", movies[0].Title)
}

func TestListMoviesFiltersAreConjunctive(t *testing.T) {
	movieDB := setupTestDB(t)

	movies, err := movieDB.ListMovies("English", "Comedy")
	assert.NoError(t, err)
	assert.Len(t, movies, 1)
	assert.Equal(t, "Comedy Nights", movies[0].Title)

	// Both filters must match
	movies, err = movieDB.ListMovies("Hindi", "Comedy")
	assert.NoError(t, err)
	assert.Empty(t, movies)
}

func TestListMoviesFilterIsCaseSensitive(t *testing.T) {
	movieDB := setupTestDB(t)

	movies, err := movieDB.ListMovies("", "comedy")
	assert.NoError(t, err)
	assert.Empty(t, movies)
}

func TestGetMovieByID(t *testing.T) {
	movieDB := setupTestDB(t)

	movie, err := movieDB.GetMovieByID(4)
	assert.NoError(t, err)
	assert.Equal(t, "Interstellar", movie.Title)
	assert.Equal(t, 9.0, movie.Rating)

	_, err = movieDB.GetMovieByID(999)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListTheatres(t *testing.T) {
	movieDB := setupTestDB(t)

	theatres, err := movieDB.ListTheatres()
	assert.NoError(t, err)
	assert.Len(t, theatres, 3)
	assert.Equal(t, "PVR Cinemas - Phoenix Mall", theatres[0].Name)
	assert.Equal(t, "Mumbai", theatres[0].Location)
}

func TestListFoodItems(t *testing.T) {
	movieDB := setupTestDB(t)

	items, err := movieDB.ListFoodItems()
	assert.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, "Classic Popcorn (L)", items[0].Name)
	assert.Equal(t, float64(450), items[4].Price)
}
