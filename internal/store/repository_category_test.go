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

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &categoryRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"category_id", "name", "description", "created_at"}).
		AddRow(1, "Go", "Posts about Go", now)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Go", "Posts about Go").
		WillReturnRows(rows)

	created, err := repo.CreateCategory(ctx, models.Category{Name: "Go", Description: "Posts about Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CategoryID != 1 {
		t.Errorf("expected CategoryID=1, got %d", created.CategoryID)
	}
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO categories").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCategory(ctx, models.Category{Name: "Go"})
	if !errors.Is(err, ErrDuplicateValue) {
		t.Fatalf("expected ErrDuplicateValue, got %v", err)
	}
}

func TestListCategories_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"category_id", "name", "description", "created_at"}).
		AddRow(1, "Go", "", now).
		AddRow(2, "Web", "", now)

	mock.ExpectQuery("SELECT (.+) FROM categories").WillReturnRows(rows)

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
}

func TestDeleteCategory_InUse(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := repo.DeleteCategory(ctx, 1)
	if !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCategory(ctx, 404)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCategory(ctx, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
