package models

import "time"

type MenuItem struct {
	ID        int64     `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Category  string    `yaml:"category" json:"category"`
	Price     float64   `yaml:"price" json:"price"`
	Image     string    `yaml:"image" json:"image"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

// MenuSection groups items of one category, preserving insertion order.
type MenuSection struct {
	Category string
	Items    []MenuItem
}
