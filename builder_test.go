package dynsql_test

import (
	"testing"

	"github.com/zoobzio/dynsql"
	"github.com/zoobzio/dynsql/postgres"
)

func TestBuilder_Build(t *testing.T) {
	stmt, err := dynsql.Select(dynsql.T("users", "u")).
		Columns(dynsql.F("id").WithTable("u")).
		Where(dynsql.C(dynsql.F("email"), dynsql.EQ, dynsql.P("email"))).
		OrderBy(dynsql.F("id"), dynsql.ASC).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	result, err := stmt.Render(postgres.New(), dynsql.Args{"email": "a@b.c"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := "SELECT u.\"id\"\nFROM \"users\" u\nWHERE \"email\" = 'a@b.c'\nORDER BY \"id\" ASC"
	if result.SQL != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, result.SQL)
	}
}

func TestBuilder_EmptyStatementIsRejected(t *testing.T) {
	if _, err := dynsql.Select().Build(); err == nil {
		t.Fatal("Expected an error for an empty statement")
	}
}

func TestBuilder_HavingCombinesWithAnd(t *testing.T) {
	result, err := dynsql.Select(dynsql.T("orders")).
		Columns(dynsql.F("status")).
		GroupBy(dynsql.F("status")).
		Having(dynsql.C(dynsql.Fn("COUNT", dynsql.F("id")), dynsql.GT, dynsql.V(1))).
		Having(dynsql.C(dynsql.Fn("SUM", dynsql.F("total")), dynsql.LT, dynsql.V(100))).
		Render(postgres.New(), nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := "SELECT \"status\"\nFROM \"orders\"\nGROUP BY \"status\"\nHAVING COUNT(\"id\") > 1 AND SUM(\"total\") < 100"
	if result.SQL != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, result.SQL)
	}
}

func TestBuilder_RenderShortcut(t *testing.T) {
	result, err := dynsql.Select(dynsql.T("t")).
		Columns(dynsql.F("a")).
		LimitCount(5).
		OffsetCount(10).
		Render(postgres.New(), nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := "SELECT \"a\"\nFROM \"t\"\nLIMIT 10, 5"
	if result.SQL != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, result.SQL)
	}
}

func TestBuilder_InvalidTableNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid table name")
		}
	}()
	dynsql.T(`users"; DROP TABLE users; --`)
}

func TestBuilder_InvalidAliasPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for multi-letter alias")
		}
	}()
	dynsql.T("users", "uu")
}
