package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DucTam2411/blog-server/internal/api/middleware"
	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/DucTam2411/blog-server/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *slog.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type ProfileResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type ProfileDetailResponse struct {
	Profile ProfileResponse `json:"profile"`
	Posts   []PostResponse  `json:"posts"`
	CanEdit bool            `json:"canEdit"`
}

func newProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              profile.ID.String(),
		UserID:          profile.UserID.String(),
		Name:            profile.Name,
		Email:           profile.Email,
		PhoneNumber:     profile.PhoneNumber,
		ProfileImageURL: profile.ProfileImageURL,
	}
}

// GetOwn returns the current user's profile.
func (h *ProfileHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.GetByUserID(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get profile", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newProfileResponse(profile))
}

// Get returns any profile by id, with that user's posts and whether the
// viewer may edit it.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetUser(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid profile ID", http.StatusBadRequest)
		return
	}

	detail, err := h.profileService.GetByID(r.Context(), viewer, id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get profile", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	posts := make([]PostResponse, 0, len(detail.Posts))
	for _, post := range detail.Posts {
		posts = append(posts, newPostResponse(post))
	}

	writeJSON(w, http.StatusOK, ProfileDetailResponse{
		Profile: newProfileResponse(detail.Profile),
		Posts:   posts,
		CanEdit: detail.CanEdit,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid profile ID", http.StatusBadRequest)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fieldErrors := FieldErrors{}
	if msg := domain.ValidateFullName(req.Name); msg != "" {
		fieldErrors["name"] = msg
	}
	if msg := domain.ValidateEmail(req.Email); msg != "" {
		fieldErrors["email"] = msg
	}
	if msg := domain.ValidatePhoneNumber(req.PhoneNumber); msg != "" {
		fieldErrors["phoneNumber"] = msg
	}
	if len(fieldErrors) > 0 {
		writeFieldErrors(w, fieldErrors)
		return
	}

	profile, err := h.profileService.Update(r.Context(), user, service.UpdateProfileInput{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, service.ErrForbidden) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error("failed to update profile", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newProfileResponse(profile))
}
