package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/models"
)

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func TestCreateExpenseRoundTrip(t *testing.T) {
	server, store := setupTestServer(t)
	ctx := context.Background()

	group := &models.Group{Name: "Trip"}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	body := fmt.Sprintf(`{"name":"Lunch","amount":12.5,"group":%q}`, group.ID)
	resp := postJSON(t, server.URL+"/api/expenses", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created expenseResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("expected non-empty expense ID")
	}
	if created.Name != "Lunch" {
		t.Errorf("name: expected 'Lunch', got %q", created.Name)
	}
	if !created.Amount.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("amount: expected 12.5, got %s", created.Amount)
	}
	if created.Group == nil || created.Group.Name != "Trip" {
		t.Errorf("expected group resolved to 'Trip', got %+v", created.Group)
	}
	if created.CreatedAt == 0 {
		t.Error("expected non-zero createdAt")
	}

	// The expense is discoverable from its group
	listResp, err := http.Get(server.URL + "/api/expenses/group/" + group.ID)
	if err != nil {
		t.Fatalf("GET group expenses failed: %v", err)
	}
	defer listResp.Body.Close()

	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResp.StatusCode)
	}
	var listed []expenseResponse
	if err := json.NewDecoder(listResp.Body).Decode(&listed); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected exactly 1 expense for group, got %d", len(listed))
	}
	if listed[0].ID != created.ID || listed[0].Name != "Lunch" {
		t.Errorf("unexpected listed expense: %+v", listed[0])
	}
}

func TestCreateExpenseTitleAlias(t *testing.T) {
	server, store := setupTestServer(t)

	group := &models.Group{Name: "Outing"}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	body := fmt.Sprintf(`{"title":"Movie Night","amount":40,"group":%q}`, group.ID)
	resp := postJSON(t, server.URL+"/api/expenses", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created expenseResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Name != "Movie Night" {
		t.Errorf("expected title accepted as name, got %q", created.Name)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	server, store := setupTestServer(t)

	group := &models.Group{Name: "Savings"}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"missing name", fmt.Sprintf(`{"amount":10,"group":%q}`, group.ID)},
		{"missing amount", fmt.Sprintf(`{"name":"Lunch","group":%q}`, group.ID)},
		{"zero amount", fmt.Sprintf(`{"name":"Lunch","amount":0,"group":%q}`, group.ID)},
		{"negative amount", fmt.Sprintf(`{"name":"Lunch","amount":-5,"group":%q}`, group.ID)},
		{"missing group", `{"name":"Lunch","amount":10}`},
		{"unknown group", `{"name":"Lunch","amount":10,"group":"no-such-group"}`},
		{"malformed body", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/expenses", tt.body)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}

	// Nothing was persisted by the rejected requests
	resp, err := http.Get(server.URL + "/api/expenses")
	if err != nil {
		t.Fatalf("GET /api/expenses failed: %v", err)
	}
	defer resp.Body.Close()

	var expenses []expenseResponse
	if err := json.NewDecoder(resp.Body).Decode(&expenses); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expected no persisted expenses, got %d", len(expenses))
	}
}

func TestCreateExpenseWithPayerAndParticipants(t *testing.T) {
	server, store := setupTestServer(t)
	ctx := context.Background()

	group := &models.Group{Name: "Household"}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	alice := &models.User{Name: "Alice", Email: "alice@example.com"}
	bob := &models.User{Name: "Bob", Email: "bob@example.com"}
	for _, u := range []*models.User{alice, bob} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	body := fmt.Sprintf(`{"name":"Groceries","amount":85.2,"group":%q,"paidBy":%q,"participants":[%q,%q]}`,
		group.ID, alice.ID, bob.ID, alice.ID)
	resp := postJSON(t, server.URL+"/api/expenses", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created expenseResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if created.PaidBy == nil || created.PaidBy.Name != "Alice" || created.PaidBy.Email != "alice@example.com" {
		t.Errorf("expected payer resolved to Alice, got %+v", created.PaidBy)
	}
	if len(created.Participants) != 2 ||
		created.Participants[0].Name != "Bob" ||
		created.Participants[1].Name != "Alice" {
		t.Errorf("expected participants [Bob Alice], got %+v", created.Participants)
	}
}

func TestListExpensesNewestFirst(t *testing.T) {
	server, store := setupTestServer(t)
	ctx := context.Background()

	group := &models.Group{Name: "Trip"}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	for _, e := range []struct {
		name string
		at   int64
	}{
		{"first", 1000},
		{"third", 3000},
		{"second", 2000},
	} {
		expense := &models.Expense{
			Name:      e.name,
			Amount:    decimal.NewFromFloat(1),
			GroupID:   group.ID,
			CreatedAt: e.at,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense(%s) failed: %v", e.name, err)
		}
	}

	resp, err := http.Get(server.URL + "/api/expenses")
	if err != nil {
		t.Fatalf("GET /api/expenses failed: %v", err)
	}
	defer resp.Body.Close()

	var expenses []expenseResponse
	if err := json.NewDecoder(resp.Body).Decode(&expenses); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(expenses))
	}
	want := []string{"third", "second", "first"}
	for i, name := range want {
		if expenses[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, expenses[i].Name, name)
		}
	}
}
