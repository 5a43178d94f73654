package models

import "time"

// Post is the central blog entity. It is owned by a single author and
// classified under exactly one category.
//
// Invariants maintained across the application:
//   - AuthorID never changes after creation.
//   - Slug is unique across all posts and is derived from the title once,
//     at creation time; editing the title does not regenerate it, so
//     existing permalinks stay valid.
type Post struct {
	// PostID is the unique identifier of the post, assigned by the database.
	PostID int64 `json:"id"`

	// Title is the human-readable headline, 1 to 100 characters.
	Title string `json:"title"`

	// Content is the post body, at least 10 characters.
	Content string `json:"content"`

	// Slug is the unique URL-safe identifier derived from the title.
	Slug string `json:"slug"`

	// AuthorID references the user who created the post.
	AuthorID int64 `json:"author"`

	// CategoryID references the category the post is filed under.
	CategoryID int64 `json:"category"`

	// Tags is an ordered list of free-form labels. May be empty.
	Tags []string `json:"tags"`

	// FeaturedImage is the generated filename of the stored cover image,
	// empty when the post has none. The file itself lives in the image
	// store and is served by filename only.
	FeaturedImage string `json:"featuredImage,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate describes a partial update of a post. Nil fields are left
// untouched; present fields are re-validated with the same rules as
// creation before the update is applied.
type PostUpdate struct {
	PostID        int64
	Title         *string
	Content       *string
	CategoryID    *int64
	Tags          *[]string
	FeaturedImage *string
}

// Empty reports whether the update carries no fields at all.
func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.CategoryID == nil &&
		u.Tags == nil && u.FeaturedImage == nil
}

// PostFilter narrows a post listing. Zero values mean "no constraint".
type PostFilter struct {
	// CategoryID limits the listing to a single category when non-zero.
	CategoryID int64

	// Search is a case-insensitive substring matched against title and
	// content. Empty means no search constraint.
	Search string

	// Page is the 1-based page number.
	Page int

	// PageSize is the number of posts per page.
	PageSize int
}
