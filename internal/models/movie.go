package models

import (
	"github.com/uptrace/bun"
)

type Movie struct {
	bun.BaseModel `bun:"table:movies,alias:m"`

	ID        int64   `bun:"id,pk,autoincrement" json:"id"`
	Title     string  `bun:"title" json:"title"`
	Language  string  `bun:"language" json:"language"`
	Genre     string  `bun:"genre" json:"genre"`
	Rating    float64 `bun:"rating" json:"rating"`
	Duration  string  `bun:"duration" json:"duration"`
	PosterURL string  `bun:"poster_url" json:"poster_url"`
}

type Theatre struct {
	bun.BaseModel `bun:"table:theatres,alias:t"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	Name      string `bun:"name" json:"name"`
	Location  string `bun:"location" json:"location"`
	Amenities string `bun:"amenities" json:"amenities"`
}
