package service

import (
	"net/http"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/storage"
)

// NewRouter builds the API routing table over the given store.
func NewRouter(store storage.Store) *http.ServeMux {
	mux := http.NewServeMux()

	groups := NewGroupService(store)
	expenses := NewExpenseService(store)
	users := NewUserService(store)

	mux.HandleFunc("GET /api/groups", groups.List)
	mux.HandleFunc("GET /api/expenses", expenses.List)
	mux.HandleFunc("POST /api/expenses", expenses.Create)
	mux.HandleFunc("GET /api/expenses/group/{groupId}", expenses.ListByGroup)
	mux.HandleFunc("POST /api/users", users.Create)
	mux.HandleFunc("GET /api/users", users.List)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}
