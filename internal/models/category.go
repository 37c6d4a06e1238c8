package models

type Category struct {
	ID              int    `json:"id"`
	SubcategoryName string `json:"subcategory_name"`
	Image           string `json:"image,omitempty"`
	// ArtCount is a denormalized count of live arts in the category,
	// adjusted in place on art create and delete.
	ArtCount int `json:"art_count"`
}
