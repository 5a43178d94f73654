package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blogkeeper/internal/service"
	"blogkeeper/internal/store"
	"blogkeeper/models"
)

const testBearer = "Bearer valid.jwt"

// expectAuth makes the auth middleware admit requests carrying testBearer
// as user 1.
func expectAuth(mocks *testMocks) {
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.jwt").
		Return(models.Token{Identity: models.Identity{UserID: 1, Username: "gopher"}}, nil).
		AnyTimes()
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, "fake image bytes")
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestListPosts_QueryParsing(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.posts.EXPECT().
		ListPosts(gomock.Any(), models.PostFilter{CategoryID: 3, Search: "gopher", Page: 2, PageSize: 6}).
		Return(models.PostList{Posts: []models.Post{}, TotalPages: 0}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts?page=2&limit=6&search=gopher&category=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestListPosts_EmptySearchShortCircuits(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	// no ListPosts expectation: the service must not be called
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts?search=", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var list models.PostList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Posts)
	assert.Zero(t, list.TotalPages)
}

func TestGetPost_MalformedIDIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/not-a-number", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resource not found")
}

func TestGetPostBySlug(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.posts.EXPECT().
		GetPostBySlug(gomock.Any(), "my-first-post").
		Return(models.Post{PostID: 1, Slug: "my-first-post"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/slug/my-first-post", nil))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePost_RequiresToken(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	body, contentType := multipartBody(t, map[string]string{"title": "T"}, "", "")
	r := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	r.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")
}

func TestCreatePost_MultipartFields(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()
	expectAuth(mocks)

	mocks.posts.EXPECT().
		CreatePost(gomock.Any(), models.Identity{UserID: 1, Username: "gopher"}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ models.Identity, post models.Post, image *models.ImageUpload) (models.Post, error) {
			assert.Equal(t, "My Post", post.Title)
			assert.Equal(t, int64(2), post.CategoryID)
			assert.Equal(t, []string{"go", "web"}, post.Tags)
			require.NotNil(t, image)
			assert.Equal(t, "pic.png", image.OriginalName)
			post.PostID = 10
			return post, nil
		})

	body, contentType := multipartBody(t, map[string]string{
		"title":    "My Post",
		"content":  "Content long enough.",
		"category": "2",
		"tags":     "go, web",
	}, featuredImageField, "pic.png")

	r := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", testBearer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreatePost_WrongFileFieldRejected(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()
	expectAuth(mocks)

	body, contentType := multipartBody(t, map[string]string{"title": "T"}, "avatar", "pic.png")

	r := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", testBearer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Too many files or invalid field name")
}

func TestUpdatePost_PartialFieldsOnly(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()
	expectAuth(mocks)

	mocks.posts.EXPECT().
		UpdatePost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ models.Identity, update models.PostUpdate, _ *models.ImageUpload) (models.Post, error) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "Renamed", *update.Title)
			assert.Nil(t, update.Content, "absent fields stay nil")
			assert.Nil(t, update.CategoryID)
			assert.Nil(t, update.Tags)
			return models.Post{PostID: 5, Title: "Renamed"}, nil
		})

	body, contentType := multipartBody(t, map[string]string{"title": "Renamed"}, "", "")

	r := httptest.NewRequest(http.MethodPut, "/api/posts/5", body)
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", testBearer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdatePost_ForeignPostIsForbidden(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()
	expectAuth(mocks)

	mocks.posts.EXPECT().
		UpdatePost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Post{}, service.ErrNotPostAuthor)

	body, contentType := multipartBody(t, map[string]string{"title": "Hijack"}, "", "")

	r := httptest.NewRequest(http.MethodPut, "/api/posts/5", body)
	r.Header.Set("Content-Type", contentType)
	r.Header.Set("Authorization", testBearer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}

func TestDeletePost_StatusOrdering(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()
	expectAuth(mocks)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing post is 404", store.ErrPostNotFound, http.StatusNotFound},
		{"foreign post is 403", service.ErrNotPostAuthor, http.StatusForbidden},
		{"own post is 200", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks.posts.EXPECT().
				DeletePost(gomock.Any(), gomock.Any(), int64(5)).
				Return(tt.err)

			r := httptest.NewRequest(http.MethodDelete, "/api/posts/5", nil)
			r.Header.Set("Authorization", testBearer)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			require.Equal(t, tt.status, w.Code)
		})
	}
}
