package integration

import (
	"database/sql"
	"testing"

	"github.com/zoobzio/dynsql"
	mssqldialect "github.com/zoobzio/dynsql/mssql"
)

func setupMSSQLSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	mustExec(t, db, `IF OBJECT_ID('users', 'U') IS NOT NULL DROP TABLE users`)
	mustExec(t, db, `
		CREATE TABLE users (
			id BIGINT IDENTITY(1,1) PRIMARY KEY,
			username NVARCHAR(255) NOT NULL,
			age INT,
			active BIT DEFAULT 1
		)
	`)
	mustExec(t, db, `INSERT INTO users (username, age, active) VALUES ('alice', 30, 1)`)
	mustExec(t, db, `INSERT INTO users (username, age, active) VALUES ('bob', 25, 0)`)
	mustExec(t, db, `INSERT INTO users (username, age) VALUES ('carol', NULL)`)
}

func TestMSSQL_ConditionalRendering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	mc := getMSSQLContainer(t)
	setupMSSQLSchema(t, mc.db)

	stmt := dynsql.Select(dynsql.T("users")).
		Columns(dynsql.F("id"), dynsql.F("username")).
		Where(dynsql.And(
			dynsql.C(dynsql.F("active"), dynsql.EQ, dynsql.P("active")),
			dynsql.C(dynsql.F("age"), dynsql.GE, dynsql.P("min_age")),
		)).
		MustBuild()

	// All parameters supplied. The dialect renders bools as BIT literals.
	result, err := stmt.Render(mssqldialect.New(), dynsql.Args{"active": true, "min_age": 18})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := countRows(t, mc.db, result.SQL); got != 1 {
		t.Errorf("Expected 1 row, got %d\nSQL: %s", got, result.SQL)
	}

	// Age filter pruned.
	result, err = stmt.Render(mssqldialect.New(), dynsql.Args{"active": false})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := countRows(t, mc.db, result.SQL); got != 1 {
		t.Errorf("Expected 1 row, got %d\nSQL: %s", got, result.SQL)
	}
}

func TestMSSQL_NullDegradation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	mc := getMSSQLContainer(t)
	setupMSSQLSchema(t, mc.db)

	stmt := dynsql.Select(dynsql.T("users")).
		Columns(dynsql.F("id")).
		Where(dynsql.C(dynsql.F("age"), dynsql.EQ, dynsql.P("age"))).
		MustBuild()

	result, err := stmt.Render(mssqldialect.New(), dynsql.Args{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// [age] IS NULL matches carol.
	if got := countRows(t, mc.db, result.SQL); got != 1 {
		t.Errorf("Expected 1 row, got %d\nSQL: %s", got, result.SQL)
	}
}

func TestMSSQL_PreparedPath(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	mc := getMSSQLContainer(t)
	setupMSSQLSchema(t, mc.db)

	stmt := dynsql.Select(dynsql.T("users")).
		Columns(dynsql.F("id")).
		Where(dynsql.C(dynsql.F("username"), dynsql.EQ, dynsql.P("name"))).
		MustBuild()

	result, err := stmt.Prepare(mssqldialect.New(), dynsql.Args{"name": "alice"})
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if len(result.Params) != 1 || result.Params[0] != "name" {
		t.Fatalf("Expected params [name], got %v", result.Params)
	}

	// go-mssqldb understands @name markers directly.
	var id int64
	if err := mc.db.QueryRow(result.SQL, sql.Named("name", "alice")).Scan(&id); err != nil {
		t.Fatalf("Query failed: %v\nSQL: %s", err, result.SQL)
	}
	if id == 0 {
		t.Error("Expected a non-zero id")
	}
}
