package models

import (
	"github.com/uptrace/bun"
)

type FoodItem struct {
	bun.BaseModel `bun:"table:food_items,alias:f"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	Name        string  `bun:"name" json:"name"`
	Description string  `bun:"description" json:"description"`
	Price       float64 `bun:"price" json:"price"`
	ImageURL    string  `bun:"image_url" json:"image"`
}
