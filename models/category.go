package models

import "time"

// Category is a classification tag referenced by posts. Any authenticated
// user may create one; there is no per-category ownership.
type Category struct {
	// CategoryID is the unique identifier of the category.
	CategoryID int64 `json:"id"`

	// Name is the unique display name of the category.
	Name string `json:"name"`

	// Description is an optional free-form explanation of the category.
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
