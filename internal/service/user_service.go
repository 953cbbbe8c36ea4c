package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/models"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/storage"
)

// UserService serves the user directory endpoints. Users are plain records
// for payer/participant references; there is no login.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

// Create handles POST /api/users.
func (s *UserService) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	user := &models.User{Name: req.Name, Email: req.Email}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email already exists")
			return
		}
		slog.Error("CreateUser failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("User created", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusCreated, userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// List handles GET /api/users: all users, sorted ascending by name.
func (s *UserService) List(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]userResponse, len(users))
	for i, user := range users {
		out[i] = userResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		}
	}

	slog.Info("ListUsers successful", "count", len(out))
	writeJSON(w, http.StatusOK, out)
}
