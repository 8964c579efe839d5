package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DucTam2411/blog-server/internal/api/middleware"
	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/DucTam2411/blog-server/internal/service"
	"github.com/DucTam2411/blog-server/internal/session"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
	logger      *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fieldErrors := FieldErrors{}
	if msg := domain.ValidateUsername(req.Username); msg != "" {
		fieldErrors["username"] = msg
	}
	if msg := domain.ValidatePassword(req.Password); msg != "" {
		fieldErrors["password"] = msg
	}
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

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			http.Error(w, "Username already exists", http.StatusConflict)
			return
		}
		h.logger.Error("registration failed", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Issue(w, user.ID); err != nil {
		h.logger.Error("failed to issue session", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fieldErrors := FieldErrors{}
	if msg := domain.ValidateUsername(req.Username); msg != "" {
		fieldErrors["username"] = msg
	}
	if msg := domain.ValidatePassword(req.Password); msg != "" {
		fieldErrors["password"] = msg
	}
	if len(fieldErrors) > 0 {
		writeFieldErrors(w, fieldErrors)
		return
	}

	user, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for both unknown-username and wrong-password.
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.Error("login failed", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Issue(w, user.ID); err != nil {
		h.logger.Error("failed to issue session", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	})
}

// Logout clears the session cookie. Idempotent; a request without a session
// gets the same answer.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	})
}
