// Package models содержит доменные модели приложения.
package models

// MenuItem описывает позицию меню.
type MenuItem struct {
	ItemID      int64    `json:"item_id"`
	Name        string   `json:"name" validate:"required,notblank"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required,notblank"`
	Cuisine     string   `json:"cuisine,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	IsAvailable bool     `json:"is_available"`
}
