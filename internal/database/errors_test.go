package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(sql.ErrNoRows) {
		t.Error("sql.ErrNoRows must match")
	}
	if !IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)) {
		t.Error("wrapped sql.ErrNoRows must match")
	}
	if IsNoRows(errors.New("no rows")) {
		t.Error("unrelated error must not match")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	if !IsUniqueViolation(unique) {
		t.Error("unique violation must match")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", unique)) {
		t.Error("wrapped unique violation must match")
	}

	other := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	if IsUniqueViolation(other) {
		t.Error("other pg errors must not match")
	}
	if IsUniqueViolation(errors.New("duplicate")) {
		t.Error("unrelated error must not match")
	}
}
