package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/models"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/storage"
)

// CreateExpense persists a new expense to the database.
// The expense row and its participant rows are written in one transaction.
// There is no separate write linking the expense into its group: the group's
// expense list is derived on read via the group_id filter.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate IDs if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().UnixMilli()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	paidBy := sql.NullString{String: expense.PaidByID, Valid: expense.PaidByID != ""}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (id, name, amount, group_id, paid_by, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, expense.Name, expense.Amount.String(), expense.GroupID, paidBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	// Insert participants, preserving submission order
	for i, userID := range expense.ParticipantIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, position, user_id) VALUES (?, ?, ?)",
			expense.ID, i, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// expenseColumns are the columns selected for every expense read, with the
// owning group's name joined in.
const expenseColumns = "e.id, e.name, e.amount, e.group_id, e.paid_by, e.created_at, g.name"

const expenseFrom = " FROM expenses e LEFT JOIN groups g ON g.id = e.group_id"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	var (
		expense   models.Expense
		amount    string
		paidBy    sql.NullString
		groupName sql.NullString
	)
	if err := row.Scan(&expense.ID, &expense.Name, &amount, &expense.GroupID, &paidBy, &expense.CreatedAt, &groupName); err != nil {
		return nil, err
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", amount, err)
	}
	expense.Amount = amt
	expense.PaidByID = paidBy.String
	if groupName.Valid {
		expense.Group = &models.GroupRef{ID: expense.GroupID, Name: groupName.String}
	}

	return &expense, nil
}

// GetExpense retrieves a single expense by ID with group and users populated.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+expenseFrom+" WHERE e.id = ?",
		id,
	)
	expense, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrExpenseNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := s.loadParticipants(ctx, expense); err != nil {
		return nil, err
	}
	if err := s.populateUsers(ctx, []*models.Expense{expense}); err != nil {
		return nil, err
	}

	return expense, nil
}

// ListExpenses returns expenses matching the filter, newest first, with
// group and user references populated.
func (s *SQLiteStore) ListExpenses(ctx context.Context, filter storage.ExpenseFilter) ([]models.Expense, error) {
	query := "SELECT " + expenseColumns + expenseFrom
	var args []any
	if filter.GroupID != "" {
		query += " WHERE e.group_id = ?"
		args = append(args, filter.GroupID)
	}
	query += " ORDER BY e.created_at DESC, e.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		if err := s.loadParticipants(ctx, expense); err != nil {
			return nil, err
		}
	}
	if err := s.populateUsers(ctx, expenses); err != nil {
		return nil, err
	}

	out := make([]models.Expense, len(expenses))
	for i, expense := range expenses {
		out[i] = *expense
	}
	return out, nil
}

// loadParticipants fills in an expense's participant IDs in stored order.
func (s *SQLiteStore) loadParticipants(ctx context.Context, expense *models.Expense) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM expense_participants WHERE expense_id = ? ORDER BY position",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		expense.ParticipantIDs = append(expense.ParticipantIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}

	return nil
}

// populateUsers resolves payer and participant references across the given
// expenses with a single batched lookup. References to users that do not
// exist are omitted rather than failing the read.
func (s *SQLiteStore) populateUsers(ctx context.Context, expenses []*models.Expense) error {
	var ids []string
	seen := make(map[string]bool)
	collect := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, expense := range expenses {
		collect(expense.PaidByID)
		for _, id := range expense.ParticipantIDs {
			collect(id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	users, err := s.GetUsersByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, expense := range expenses {
		if user, ok := users[expense.PaidByID]; ok {
			expense.PaidBy = &models.UserRef{ID: user.ID, Name: user.Name, Email: user.Email}
		}
		for _, id := range expense.ParticipantIDs {
			if user, ok := users[id]; ok {
				expense.Participants = append(expense.Participants, models.UserRef{ID: user.ID, Name: user.Name, Email: user.Email})
			}
		}
	}

	return nil
}
