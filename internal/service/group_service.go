package service

import (
	"log/slog"
	"net/http"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/storage"
)

// GroupService serves the group endpoints.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

type groupResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// groupRef is the joined group representation embedded in expense responses.
type groupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List handles GET /api/groups: all groups, sorted ascending by name.
func (s *GroupService) List(w http.ResponseWriter, r *http.Request) {
	groups, err := s.store.ListGroups(r.Context())
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]groupResponse, len(groups))
	for i, group := range groups {
		out[i] = groupResponse{
			ID:        group.ID,
			Name:      group.Name,
			CreatedAt: group.CreatedAt,
		}
	}

	slog.Info("ListGroups successful", "count", len(out))
	writeJSON(w, http.StatusOK, out)
}
