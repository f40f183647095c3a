// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/broadcast"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/workers"
	"github.com/MKhiriev/go-book-keeper/models"
)

type syncOrchestrator struct {
	auth       AuthStateManager
	connection ConnectionStateManager
	adapter    adapter.ServerAdapter
	books      store.LocalBookRepository

	result *broadcast.Value[models.SyncResult]
	scope  *workers.Scope

	logger *logger.Logger
}

func NewSyncOrchestrator(auth AuthStateManager, connection ConnectionStateManager, serverAdapter adapter.ServerAdapter, books store.LocalBookRepository, logger *logger.Logger) SyncOrchestrator {
	return &syncOrchestrator{
		auth:       auth,
		connection: connection,
		adapter:    serverAdapter,
		books:      books,
		result:     broadcast.NewValue[models.SyncResult](nil),
		scope:      workers.NewScope(),
		logger:     logger.WithComponent("sync"),
	}
}

func (s *syncOrchestrator) Start(ctx context.Context) {
	s.scope.Start(ctx)
}

func (s *syncOrchestrator) Stop() {
	s.scope.Stop()
	s.result.Close()
}

func (s *syncOrchestrator) Pull(ctx context.Context) models.SyncResult {
	if !s.auth.IsAuthenticated() {
		return s.publish(notAuthenticated())
	}
	return s.publish(s.pull(ctx))
}

func (s *syncOrchestrator) pull(ctx context.Context) models.SyncResult {
	s.connection.SetSyncing()

	remote, err := s.adapter.ListItems(ctx)
	if err != nil {
		return s.failed(err, "syncOrchestrator.pull", "error listing books on server")
	}

	books := make([]models.Book, 0, len(remote))
	for _, r := range remote {
		books = append(books, r.ToLocal())
	}

	if err = s.books.ReplaceAll(ctx, books); err != nil {
		return s.failed(err, "syncOrchestrator.pull", "error replacing local books")
	}

	s.connection.SetOnline()
	s.logger.Info().Int("books", len(books)).Str("func", "syncOrchestrator.pull").Msg("pulled books from server")

	return models.SyncSuccess{}
}

func (s *syncOrchestrator) Push(ctx context.Context) models.SyncResult {
	if !s.auth.IsAuthenticated() {
		return s.publish(notAuthenticated())
	}
	return s.publish(s.push(ctx))
}

func (s *syncOrchestrator) push(ctx context.Context) models.SyncResult {
	s.connection.SetSyncing()

	books, err := s.books.ListAll(ctx)
	if err != nil {
		return s.failed(err, "syncOrchestrator.push", "error reading local books")
	}
	if len(books) == 0 {
		s.connection.SetOnline()
		return models.SyncSuccess{}
	}

	var (
		successful int
		errs       []string
	)
	for _, book := range books {
		if err = s.pushBook(ctx, book); err != nil {
			s.logger.Warn().Err(err).
				Int64("local_id", book.LocalID).
				Int64("id", book.ID).
				Str("func", "syncOrchestrator.push").
				Msg("book was not pushed")
			errs = append(errs, fmt.Sprintf("%s: %s", book.Title, errorMessage(err)))
			continue
		}
		successful++
	}

	s.connection.SetOnline()
	s.logger.Info().Int("successful", successful).Int("failed", len(errs)).Str("func", "syncOrchestrator.push").Msg("pushed books to server")

	if len(errs) == 0 {
		return models.SyncSuccess{}
	}
	return models.NewSyncPartial(successful, len(errs), errs)
}

// pushBook creates or updates book on the server and stores the server's
// copy under the same LocalID, so a new book gets its server ID without a
// second row appearing.
func (s *syncOrchestrator) pushBook(ctx context.Context, book models.Book) error {
	remote := models.RemoteBookFromLocal(book)

	var (
		saved models.RemoteBook
		err   error
	)
	if book.IsNew() {
		saved, err = s.adapter.CreateItem(ctx, remote)
	} else {
		saved, err = s.adapter.UpdateItem(ctx, book.ID, remote)
	}
	if err != nil {
		return err
	}

	local := saved.ToLocal()
	local.LocalID = book.LocalID
	if local.CreatedAt.IsZero() {
		local.CreatedAt = book.CreatedAt
	}

	if _, err = s.books.Upsert(ctx, local); err != nil {
		return fmt.Errorf("store pushed book: %w", err)
	}
	return nil
}

func (s *syncOrchestrator) FullSync(ctx context.Context) models.SyncResult {
	if !s.auth.IsAuthenticated() {
		return s.publish(notAuthenticated())
	}

	pulled := s.publish(s.pull(ctx))
	if _, failed := pulled.(models.SyncError); failed {
		return pulled
	}

	return s.publish(s.push(ctx))
}

func (s *syncOrchestrator) SyncSingleItem(ctx context.Context, book models.Book) bool {
	if !s.auth.IsAuthenticated() {
		return false
	}

	if err := s.pushBook(ctx, book); err != nil {
		s.logger.Err(err).Int64("local_id", book.LocalID).Str("func", "syncOrchestrator.SyncSingleItem").Msg("book was not synced")
		return false
	}
	return true
}

func (s *syncOrchestrator) TriggerBackgroundSync() {
	if !s.auth.IsAuthenticated() || !s.connection.IsOnline() {
		return
	}

	s.scope.Go(func(ctx context.Context) {
		if result, ok := s.Pull(ctx).(models.SyncError); ok {
			s.logger.Warn().Str("reason", result.Message).Str("func", "syncOrchestrator.TriggerBackgroundSync").Msg("background sync failed")
		}
	})
}

func (s *syncOrchestrator) LastResult() models.SyncResult {
	return s.result.Get()
}

func (s *syncOrchestrator) Subscribe(ctx context.Context) <-chan models.SyncResult {
	return s.result.Subscribe(ctx)
}

func (s *syncOrchestrator) publish(result models.SyncResult) models.SyncResult {
	s.result.Set(result)
	return result
}

func (s *syncOrchestrator) failed(err error, fn, msg string) models.SyncResult {
	s.logger.Err(err).Str("func", fn).Msg(msg)

	message := errorMessage(err)
	s.connection.SetError(message)
	return models.SyncError{Message: message}
}

func notAuthenticated() models.SyncResult {
	return models.SyncError{Message: MsgNotAuthenticated}
}
