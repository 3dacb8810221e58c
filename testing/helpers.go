// Package testing provides test utilities for dynsql.
package testing

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql"
)

// TestInstance creates a schema-validated dynsql instance for testing.
// Includes users, posts, and orders tables.
func TestInstance(t *testing.T) *dynsql.Instance {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	instance, err := dynsql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}
	return instance
}

// AssertSQL compares expected and actual SQL, reporting differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRender renders stmt with extrapolation and compares the SQL.
func AssertRender(t *testing.T, stmt *dynsql.SelectStmt, d dynsql.Dialect, args dynsql.Args, expected string) {
	t.Helper()
	result, err := stmt.Render(d, args)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	AssertSQL(t, expected, result.SQL)
}
