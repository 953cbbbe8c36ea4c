package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/models"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/storage"
)

// ExpenseService serves the expense endpoints.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// createExpenseRequest is the accepted POST body. Amount is a pointer so a
// missing field can be told apart from zero. "title" is accepted as an alias
// for "name" for clients using the older field name.
type createExpenseRequest struct {
	Name         string           `json:"name"`
	Title        string           `json:"title"`
	Amount       *decimal.Decimal `json:"amount"`
	Group        string           `json:"group"`
	PaidBy       string           `json:"paidBy"`
	Participants []string         `json:"participants"`
}

type userRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type expenseResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Group        *groupRef       `json:"group"`
	PaidBy       *userRef        `json:"paidBy,omitempty"`
	Participants []userRef       `json:"participants,omitempty"`
	CreatedAt    int64           `json:"createdAt"`
}

func toExpenseResponse(expense *models.Expense) expenseResponse {
	resp := expenseResponse{
		ID:        expense.ID,
		Name:      expense.Name,
		Amount:    expense.Amount,
		CreatedAt: expense.CreatedAt,
	}
	if expense.Group != nil {
		resp.Group = &groupRef{ID: expense.Group.ID, Name: expense.Group.Name}
	}
	if expense.PaidBy != nil {
		resp.PaidBy = &userRef{ID: expense.PaidBy.ID, Name: expense.PaidBy.Name, Email: expense.PaidBy.Email}
	}
	for _, p := range expense.Participants {
		resp.Participants = append(resp.Participants, userRef{ID: p.ID, Name: p.Name, Email: p.Email})
	}
	return resp
}

// Create handles POST /api/expenses. The owning group must exist; its
// existence is checked before the insert so a dangling reference cannot be
// stored. Payer and participant user references are accepted unchecked.
func (s *ExpenseService) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	name := req.Name
	if name == "" {
		name = req.Title
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Amount == nil || req.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, http.StatusBadRequest, "amount must be greater than 0")
		return
	}
	if req.Group == "" {
		writeError(w, http.StatusBadRequest, "group is required")
		return
	}

	ctx := r.Context()
	if _, err := s.store.GetGroup(ctx, req.Group); err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			writeError(w, http.StatusBadRequest, "group not found")
			return
		}
		slog.Error("CreateExpense failed", "group_id", req.Group, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	expense := &models.Expense{
		Name:           name,
		Amount:         *req.Amount,
		GroupID:        req.Group,
		PaidByID:       req.PaidBy,
		ParticipantIDs: req.Participants,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Re-read so the response carries the populated group and user refs.
	created, err := s.store.GetExpense(ctx, expense.ID)
	if err != nil {
		slog.Error("Failed to fetch created expense", "expense_id", expense.ID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Expense created", "expense_id", created.ID, "group_id", created.GroupID)
	writeJSON(w, http.StatusCreated, toExpenseResponse(created))
}

// List handles GET /api/expenses: every expense, newest first.
func (s *ExpenseService) List(w http.ResponseWriter, r *http.Request) {
	s.list(w, r, storage.ExpenseFilter{})
}

// ListByGroup handles GET /api/expenses/group/{groupId}.
func (s *ExpenseService) ListByGroup(w http.ResponseWriter, r *http.Request) {
	s.list(w, r, storage.ExpenseFilter{GroupID: r.PathValue("groupId")})
}

func (s *ExpenseService) list(w http.ResponseWriter, r *http.Request, filter storage.ExpenseFilter) {
	expenses, err := s.store.ListExpenses(r.Context(), filter)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", filter.GroupID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i := range expenses {
		out[i] = toExpenseResponse(&expenses[i])
	}

	slog.Info("ListExpenses successful", "count", len(out))
	writeJSON(w, http.StatusOK, out)
}
