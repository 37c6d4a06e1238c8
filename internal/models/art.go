package models

import (
	"time"
)

type Art struct {
	ID               int64      `json:"id"`
	UserEmail        string     `json:"user_email"`
	ItemName         string     `json:"item_name"`
	SubcategoryName  string     `json:"subcategory_name"`
	Image            string     `json:"image,omitempty"`
	ShortDescription string     `json:"short_description,omitempty"`
	Rating           float64    `json:"rating"`
	Customization    string     `json:"customization,omitempty"`
	ProcessingTime   string     `json:"processing_time,omitempty"`
	StockStatus      string     `json:"stock_status,omitempty"`
	Price            float64    `json:"price"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// ArtUpdate carries a partial update. Nil fields keep their stored value;
// only fields present in the request body are written through.
type ArtUpdate struct {
	Image            *string  `json:"image"`
	ItemName         *string  `json:"item_name"`
	SubcategoryName  *string  `json:"subcategory_name"`
	ShortDescription *string  `json:"short_description"`
	Rating           *float64 `json:"rating"`
	Customization    *string  `json:"customization"`
	ProcessingTime   *string  `json:"processing_time"`
	StockStatus      *string  `json:"stock_status"`
	Price            *float64 `json:"price"`
}

type ArtFilter struct {
	UserEmail     string
	Customization string
}
