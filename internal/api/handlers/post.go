package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DucTam2411/blog-server/internal/api/middleware"
	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/DucTam2411/blog-server/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PostHandler struct {
	postService *service.PostService
	logger      *slog.Logger
}

func NewPostHandler(postService *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type PostAuthor struct {
	Name      string `json:"name"`
	ProfileID string `json:"profileId,omitempty"`
}

type PostResponse struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"createdAt"`
	Author    *PostAuthor `json:"author,omitempty"`
	CanDelete bool        `json:"canDelete"`
}

func newPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID.String(),
		UserID:    post.UserID.String(),
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
	}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.postService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list posts", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]PostResponse, 0, len(items))
	for _, item := range items {
		pr := newPostResponse(item.Post)
		if item.AuthorName != "" {
			pr.Author = &PostAuthor{
				Name:      item.AuthorName,
				ProfileID: item.AuthorProfileID.String(),
			}
		}
		resp = append(resp, pr)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": resp})
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get post", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// The delete affordance is gated by the same ownership rule as the
	// delete itself.
	user, _ := middleware.GetUser(r.Context())
	resp := newPostResponse(post)
	resp.CanDelete = domain.CanMutatePost(user, post)

	writeJSON(w, http.StatusOK, resp)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fieldErrors := FieldErrors{}
	if msg := domain.ValidatePostTitle(req.Title); msg != "" {
		fieldErrors["title"] = msg
	}
	if msg := domain.ValidatePostBody(req.Body); msg != "" {
		fieldErrors["body"] = msg
	}
	if len(fieldErrors) > 0 {
		writeFieldErrors(w, fieldErrors)
		return
	}

	post, err := h.postService.Create(r.Context(), user, service.CreatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.logger.Error("failed to create post", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, newPostResponse(post))
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := h.postService.Delete(r.Context(), user, id); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, service.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error("failed to delete post", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
