package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

var postRowColumns = []string{
	"post_id", "title", "content", "slug", "author_id", "category_id",
	"tags", "featured_image", "created_at", "updated_at",
}

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &postRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func postRow(id int64, title string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(postRowColumns).
		AddRow(id, title, "Some content long enough.", "some-slug", int64(1), int64(2),
			[]byte(`["go","web"]`), sql.NullString{}, now, now)
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	post := models.Post{
		Title:      "First Post",
		Content:    "Some content long enough.",
		Slug:       "first-post",
		AuthorID:   1,
		CategoryID: 2,
		Tags:       []string{"go", "web"},
	}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(post.Title, post.Content, post.Slug, post.AuthorID, post.CategoryID, []byte(`["go","web"]`), post.FeaturedImage).
		WillReturnRows(postRow(10, post.Title))

	created, err := repo.CreatePost(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostID != 10 {
		t.Errorf("expected PostID=10, got %d", created.PostID)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "go" {
		t.Errorf("expected tags unmarshalled, got %v", created.Tags)
	}
}

func TestCreatePost_SlugCollision(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO posts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreatePost(ctx, models.Post{Title: "x", Slug: "taken"})
	if !errors.Is(err, ErrDuplicateValue) {
		t.Fatalf("expected ErrDuplicateValue, got %v", err)
	}
}

func TestCreatePost_UnknownCategory(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO posts").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreatePost(ctx, models.Post{Title: "x", CategoryID: 777})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestGetPostByID_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPostByID(ctx, 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestGetPostBySlug_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs("some-slug").
		WillReturnRows(postRow(3, "By Slug"))

	post, err := repo.GetPostBySlug(ctx, "some-slug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.PostID != 3 {
		t.Errorf("expected PostID=3, got %d", post.PostID)
	}
}

func TestListPosts_ReturnsPageAndTotal(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	filter := models.PostFilter{Page: 1, PageSize: 6}

	now := time.Now()
	rows := sqlmock.NewRows(postRowColumns).
		AddRow(int64(2), "Second", "content content", "second", int64(1), int64(2), []byte(`[]`), sql.NullString{}, now, now).
		AddRow(int64(1), "First", "content content", "first", int64(1), int64(2), []byte(`[]`), sql.NullString{}, now, now)

	mock.ExpectQuery("SELECT (.+) FROM posts").WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))

	posts, total, err := repo.ListPosts(ctx, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if total != 8 {
		t.Errorf("expected total=8, got %d", total)
	}
	if posts[0].Tags == nil {
		t.Error("expected tags to be non-nil even when empty")
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "New Title"

	mock.ExpectQuery("UPDATE posts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePost(ctx, models.PostUpdate{PostID: 404, Title: &title})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestUpdatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "Renamed"

	mock.ExpectQuery("UPDATE posts").
		WillReturnRows(postRow(5, title))

	updated, err := repo.UpdatePost(ctx, models.PostUpdate{PostID: 5, Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePost(ctx, 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeletePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeletePost(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSlugExists(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("taken-slug").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SlugExists(ctx, "taken-slug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected slug to exist")
	}
}
