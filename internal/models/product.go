package models

import "gorm.io/datatypes"

// ProductOption is an option set on a product (e.g. "Size" -> S/M/L).
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is a catalog entity. Prices are integer minor currency units.
type Product struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int64  `gorm:"not null"`
	Stock       bool   `gorm:"not null;default:true"`
	Category    string `gorm:"not null;index"`
	ImageURL    string
	Options     datatypes.JSONType[[]ProductOption]
}
