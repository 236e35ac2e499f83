package testutil

import (
	"testing"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/schema"
)

// MustNewTable builds a table and fails the test on a construction error
func MustNewTable(t *testing.T, name string, columns []string, rows []data.Row) *schema.Table {
	t.Helper()
	table, err := schema.NewTable(name, columns, rows)
	if err != nil {
		t.Fatalf("building table %s: %v", name, err)
	}
	return table
}

// CreateUsersTable creates a users table with sample data for testing
func CreateUsersTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustNewTable(t, "users",
		[]string{"id", "username", "email"},
		[]data.Row{
			{"id": int64(1), "username": "alice", "email": "alice@example.com"},
			{"id": int64(2), "username": "bob", "email": "bob@example.com"},
			{"id": int64(3), "username": "charlie", "email": "charlie@example.com"},
		})
}

// CreateOrdersTable creates an orders table with sample data for testing
func CreateOrdersTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustNewTable(t, "orders",
		[]string{"order_id", "user_id", "product", "amount"},
		[]data.Row{
			{"order_id": int64(1), "user_id": int64(1), "product": "Laptop", "amount": 999.99},
			{"order_id": int64(2), "user_id": int64(1), "product": "Mouse", "amount": 25.50},
			{"order_id": int64(3), "user_id": int64(2), "product": "Keyboard", "amount": 75.00},
			// Note: user id 3 (charlie) has no orders
		})
}
