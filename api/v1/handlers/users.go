package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/birthdaywisher/backend/api/v1/birthday"
	"github.com/birthdaywisher/backend/api/v1/database"
	"github.com/birthdaywisher/backend/api/v1/models"
)

// UserStore is the record-store surface the handlers depend on.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID uuid.UUID, user *models.User) error
	GetUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserHandler holds the record store
type UserHandler struct {
	Store UserStore

	// Now is overridable for tests; nil means time.Now
	Now func() time.Time
}

func (h *UserHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// CreateUser handles new user registrations
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		DateOfBirth string `json:"dateOfBirth"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	user, err := h.validateNewUser(req.Username, req.Email, req.DateOfBirth)
	if err != nil {
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.Store.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case database.IsEmailExistsError(err):
			SendError(w, "Email already exists", http.StatusConflict)
		case errors.Is(err, database.ErrDatabaseError):
			SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		default:
			SendError(w, "An unexpected error occurred", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// GetUsers lists all users, newest first
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	users, err := h.Store.GetUsers(r.Context())
	if err != nil {
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(users)
}

// GetUser retrieves a single user by ID
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		SendError(w, "User not found", http.StatusNotFound)
		return
	}

	var user models.User
	err = h.Store.GetUser(r.Context(), userID, &user)
	if err != nil {
		switch {
		case database.IsUserNotFoundError(err):
			SendError(w, "User not found", http.StatusNotFound)
		case errors.Is(err, database.ErrDatabaseError):
			SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		default:
			SendError(w, "An unexpected error occurred", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// DeleteUser removes a user by ID
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		SendError(w, "User not found", http.StatusNotFound)
		return
	}

	err = h.Store.DeleteUser(r.Context(), userID)
	if err != nil {
		switch {
		case database.IsUserNotFoundError(err):
			SendError(w, "User not found", http.StatusNotFound)
		case errors.Is(err, database.ErrDatabaseError):
			SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		default:
			SendError(w, "An unexpected error occurred", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}

// GetTodayUsers lists the users whose birthday is today
func (h *UserHandler) GetTodayUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	users, err := h.Store.GetUsers(r.Context())
	if err != nil {
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	matched := birthday.MatchDay(h.now(), users)
	if matched == nil {
		matched = []models.User{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(matched)
}

// sanitizeString sanitizes user input to prevent XSS
func sanitizeString(s string) string {
	s = html.EscapeString(s)
	return strings.TrimSpace(s)
}

// validateNewUser validates registration input and builds the record
func (h *UserHandler) validateNewUser(username, email, dateOfBirth string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("username is required")
	}

	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email is required")
	}

	if strings.TrimSpace(dateOfBirth) == "" {
		return nil, errors.New("dateOfBirth is required")
	}

	dob, err := time.Parse("2006-01-02", strings.TrimSpace(dateOfBirth))
	if err != nil {
		return nil, errors.New("dateOfBirth must be a valid YYYY-MM-DD date")
	}

	return &models.User{
		Username:    sanitizeString(username),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		DateOfBirth: dob,
	}, nil
}
