// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-keeper/models"
)

const (
	booksTable   = "books"
	sessionTable = "session"

	// the session table holds a single row
	sessionSlot = 1
)

var bookColumns = []string{
	"local_id", "id", "title", "author", "description", "isbn", "saga",
	"saga_volume", "status", "wishlist_status", "rating", "created_at", "updated_at",
}

// bookDataColumns are the columns written on insert; local_id is assigned by
// SQLite unless the caller replaces a known row.
var bookDataColumns = bookColumns[1:]

var sessionColumns = []string{
	"user_id", "username", "email", "role", "user_created_at", "is_active", "sealed_token", "saved_at",
}

func selectAllBooksQuery() (string, []any, error) {
	return sq.Select(bookColumns...).
		From(booksTable).
		OrderBy("local_id").
		ToSql()
}

func countBooksQuery() (string, []any, error) {
	return sq.Select("COUNT(*)").From(booksTable).ToSql()
}

func deleteAllBooksQuery() (string, []any, error) {
	return sq.Delete(booksTable).ToSql()
}

func bookValues(b models.Book) []any {
	return []any{
		b.ID, b.Title, b.Author, b.Description, b.ISBN, b.Saga,
		b.SagaVolume, string(b.Status), string(b.WishlistStatus), b.Rating,
		b.CreatedAt, b.UpdatedAt,
	}
}

// upsertBookQuery builds an INSERT that returns the local_id of the written
// row. Known rows are matched by local_id first, then by server id.
func upsertBookQuery(b models.Book) (string, []any, error) {
	q := sq.Insert(booksTable)

	switch {
	case b.LocalID != 0:
		q = q.Columns(bookColumns...).
			Values(append([]any{b.LocalID}, bookValues(b)...)...).
			Suffix("ON CONFLICT(local_id) DO UPDATE SET " + excludedAssignments(bookDataColumns) + " RETURNING local_id")
	case b.ID != 0:
		q = q.Columns(bookDataColumns...).
			Values(bookValues(b)...).
			Suffix("ON CONFLICT(id) WHERE id <> 0 DO UPDATE SET " + excludedAssignments(bookDataColumns[1:]) + " RETURNING local_id")
	default:
		q = q.Columns(bookDataColumns...).
			Values(bookValues(b)...).
			Suffix("RETURNING local_id")
	}

	return q.ToSql()
}

func excludedAssignments(columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = fmt.Sprintf("%s = excluded.%s", c, c)
	}
	return strings.Join(parts, ", ")
}

func selectSessionQuery(columns ...string) (string, []any, error) {
	return sq.Select(columns...).
		From(sessionTable).
		Where(sq.Eq{"slot": sessionSlot}).
		Limit(1).
		ToSql()
}

func saveSessionQuery(values ...any) (string, []any, error) {
	return sq.Insert(sessionTable).
		Columns(append([]string{"slot"}, sessionColumns...)...).
		Values(append([]any{sessionSlot}, values...)...).
		Suffix("ON CONFLICT(slot) DO UPDATE SET " + excludedAssignments(sessionColumns)).
		ToSql()
}

func deleteSessionQuery() (string, []any, error) {
	return sq.Delete(sessionTable).ToSql()
}
