// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose сам ходит в DB; первый же запрос падает
	mock.ExpectExec(".*").WillReturnError(errors.New("disk I/O error"))

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "books.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}
	// повторный запуск ничего не делает
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate error: %v", err)
	}

	for _, table := range []string{"books", "session"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}

	// partial unique index lets several unpushed books coexist
	for i := 0; i < 2; i++ {
		if _, err := db.Exec(`INSERT INTO books (title) VALUES ('draft')`); err != nil {
			t.Fatalf("insert unpushed book: %v", err)
		}
	}
	if _, err := db.Exec(`INSERT INTO books (id, title) VALUES (7, 'a')`); err != nil {
		t.Fatalf("insert pushed book: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO books (id, title) VALUES (7, 'b')`); err == nil {
		t.Fatal("expected unique violation for duplicate server id")
	}
}
