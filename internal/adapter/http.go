package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/models"
)

const featuredImageField = "featuredImage"

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying resty client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account fields to
// POST /api/auth/register and stores the bearer token from the response
// body via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&login).
		Post("/api/auth/register")
	if err != nil {
		return models.LoginResponse{}, mapTransportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	return login, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the bearer token from the response body
// via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&login).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	return login, nil
}

// ListPosts implements [ServerAdapter]. Zero-valued filter fields are
// omitted from the query string, matching the server's "no constraint"
// defaults.
func (h *httpServerAdapter) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostList, error) {
	var list models.PostList

	req := h.client.R().SetContext(ctx).SetResult(&list)
	if filter.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.PageSize))
	}
	if filter.CategoryID > 0 {
		req.SetQueryParam("category", strconv.FormatInt(filter.CategoryID, 10))
	}
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	resp, err := req.Get("/api/posts")
	if err != nil {
		return models.PostList{}, mapTransportError("list posts request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostList{}, err
	}

	return list, nil
}

// GetPost implements [ServerAdapter].
func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&post).
		Get("/api/posts/" + strconv.FormatInt(postID, 10))
	if err != nil {
		return models.Post{}, mapTransportError("get post request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost implements [ServerAdapter]. The draft is sent as a multipart
// form so the optional cover image can travel in the same request.
func (h *httpServerAdapter) CreatePost(ctx context.Context, post models.Post, image *models.ImageUpload) (models.Post, error) {
	var created models.Post

	req := h.authedRequest(ctx).
		SetResult(&created).
		SetFormData(map[string]string{
			"title":    post.Title,
			"content":  post.Content,
			"category": strconv.FormatInt(post.CategoryID, 10),
			"tags":     strings.Join(post.Tags, ","),
		})
	if image != nil {
		req.SetFileReader(featuredImageField, image.OriginalName, image.Content)
	}

	resp, err := req.Post("/api/posts")
	if err != nil {
		return models.Post{}, mapTransportError("create post request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return created, nil
}

// UpdatePost implements [ServerAdapter]. Only non-nil fields of update are
// included in the form, preserving the server's partial-update semantics.
func (h *httpServerAdapter) UpdatePost(ctx context.Context, update models.PostUpdate, image *models.ImageUpload) (models.Post, error) {
	var updated models.Post

	fields := map[string]string{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.CategoryID != nil {
		fields["category"] = strconv.FormatInt(*update.CategoryID, 10)
	}
	if update.Tags != nil {
		fields["tags"] = strings.Join(*update.Tags, ",")
	}

	req := h.authedRequest(ctx).SetResult(&updated)
	if len(fields) > 0 {
		req.SetFormData(fields)
	}
	if image != nil {
		req.SetFileReader(featuredImageField, image.OriginalName, image.Content)
	}

	resp, err := req.Put("/api/posts/" + strconv.FormatInt(update.PostID, 10))
	if err != nil {
		return models.Post{}, mapTransportError("update post request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return updated, nil
}

// DeletePost implements [ServerAdapter].
func (h *httpServerAdapter) DeletePost(ctx context.Context, postID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/posts/" + strconv.FormatInt(postID, 10))
	if err != nil {
		return mapTransportError("delete post request", err)
	}

	return mapHTTPError(resp)
}

// CreateCategory implements [ServerAdapter].
func (h *httpServerAdapter) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var created models.Category

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(category).
		SetResult(&created).
		Post("/api/categories")
	if err != nil {
		return models.Category{}, mapTransportError("create category request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return created, nil
}

// ListCategories implements [ServerAdapter].
func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&categories).
		Get("/api/categories")
	if err != nil {
		return nil, mapTransportError("list categories request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return categories, nil
}

// DeleteCategory implements [ServerAdapter].
func (h *httpServerAdapter) DeleteCategory(ctx context.Context, categoryID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/categories/" + strconv.FormatInt(categoryID, 10))
	if err != nil {
		return mapTransportError("delete category request", err)
	}

	return mapHTTPError(resp)
}

// ShipLogs implements [ServerAdapter]. Batches are gzip-compressed; log
// lines are repetitive JSON and compress well.
func (h *httpServerAdapter) ShipLogs(ctx context.Context, batch models.ClientLogBatch) error {
	body, err := compressJSON(batch)
	if err != nil {
		return fmt.Errorf("encode log batch: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Content-Encoding", "gzip").
		SetBody(body).
		Post("/api/logs")
	if err != nil {
		return mapTransportError("ship logs request", err)
	}

	return mapHTTPError(resp)
}

func compressJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(zw).Encode(v); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
