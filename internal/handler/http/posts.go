package http

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

// featuredImageField is the only multipart field that may carry a file.
const featuredImageField = "featuredImage"

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()

	// A search box submitted empty means "match nothing", not "list
	// everything".
	if search, present := query["search"]; present && strings.TrimSpace(strings.Join(search, "")) == "" {
		if _, err := utils.WriteJSON(w, models.PostList{Posts: []models.Post{}, TotalPages: 0}, http.StatusOK); err != nil {
			log.Err(err).Msg("error writing post list response")
		}
		return
	}

	filter := models.PostFilter{
		Search:   strings.TrimSpace(query.Get("search")),
		Page:     parseIntOrDefault(query.Get("page"), 1),
		PageSize: parseIntOrDefault(query.Get("limit"), 0),
	}
	if category := query.Get("category"); category != "" {
		categoryID, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			h.writeError(w, r, ErrMalformedID)
			return
		}
		filter.CategoryID = categoryID
	}

	list, err := h.services.PostService.ListPosts(ctx, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, list, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing post list response")
	}
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, ErrMalformedID)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing post response")
	}
}

func (h *Handler) getPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	post, err := h.services.PostService.GetPostBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing post response")
	}
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeNoToken(w, r)
		return
	}

	form, image, err := h.parsePostForm(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if image != nil {
		defer image.file.Close()
	}

	post := models.Post{
		Title:   form.Get("title"),
		Content: form.Get("content"),
		Tags:    parseTags(form.Get("tags")),
	}
	if category := form.Get("category"); category != "" {
		post.CategoryID, _ = strconv.ParseInt(category, 10, 64)
	}

	created, err := h.services.PostService.CreatePost(ctx, identity, post, image.toUpload())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing post response")
	}
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeNoToken(w, r)
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, ErrMalformedID)
		return
	}

	form, image, err := h.parsePostForm(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if image != nil {
		defer image.file.Close()
	}

	// Only fields present in the form become part of the update.
	update := models.PostUpdate{PostID: postID}
	if title, present := formValue(form, "title"); present {
		update.Title = &title
	}
	if content, present := formValue(form, "content"); present {
		update.Content = &content
	}
	if category, present := formValue(form, "category"); present {
		categoryID, parseErr := strconv.ParseInt(category, 10, 64)
		if parseErr != nil {
			h.writeError(w, r, ErrMalformedID)
			return
		}
		update.CategoryID = &categoryID
	}
	if tags, present := formValue(form, "tags"); present {
		parsed := parseTags(tags)
		update.Tags = &parsed
	}

	updated, err := h.services.PostService.UpdatePost(ctx, identity, update, image.toUpload())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing post response")
	}
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeNoToken(w, r)
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, ErrMalformedID)
		return
	}

	if err = h.services.PostService.DeletePost(ctx, identity, postID); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing post response")
	}
}

// formImage pairs an open multipart file with its original filename.
type formImage struct {
	file     multipart.File
	filename string
}

func (i *formImage) toUpload() *models.ImageUpload {
	if i == nil {
		return nil
	}
	return &models.ImageUpload{OriginalName: i.filename, Content: i.file}
}

// parsePostForm reads the multipart body of a post create/update request.
// Exactly one file is allowed and only under the featuredImage field.
func (h *Handler) parsePostForm(r *http.Request) (url.Values, *formImage, error) {
	if err := r.ParseMultipartForm(h.maxUploadBytes + 1<<20); err != nil {
		return nil, nil, ErrUnexpectedUploadField
	}

	form := r.MultipartForm
	for field, files := range form.File {
		if field != featuredImageField || len(files) > 1 {
			return nil, nil, ErrUnexpectedUploadField
		}
	}

	files := form.File[featuredImageField]
	if len(files) == 0 {
		return url.Values(form.Value), nil, nil
	}

	file, err := files[0].Open()
	if err != nil {
		return nil, nil, err
	}

	return url.Values(form.Value), &formImage{file: file, filename: files[0].Filename}, nil
}

func formValue(form url.Values, key string) (string, bool) {
	values, present := form[key]
	if !present || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func parseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func parseIntOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
