// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// SyncResult is the outcome of a pull, push or full sync. Sync operations
// report failures through SyncResult rather than through an error return.
// The set of implementations is closed: SyncSuccess, SyncError and
// SyncPartial.
type SyncResult interface {
	isSyncResult()
	String() string
}

// SyncSuccess means every attempted item was synchronized.
type SyncSuccess struct{}

// SyncError means the operation failed as a whole and no item was processed.
type SyncError struct {
	Message string
}

// SyncPartial means some items of a batch failed. Successful+Failed equals
// the number of attempted items; Errors holds one "<title>: <error>" entry
// per failed item in processing order.
type SyncPartial struct {
	Message    string
	Successful int
	Failed     int
	Errors     []string
}

func (SyncSuccess) isSyncResult() {}
func (SyncError) isSyncResult()   {}
func (SyncPartial) isSyncResult() {}

func (SyncSuccess) String() string   { return "sync completed" }
func (s SyncError) String() string   { return "sync failed: " + s.Message }
func (s SyncPartial) String() string { return s.Message }

// NewSyncPartial builds a [SyncPartial] with the standard summary message.
func NewSyncPartial(successful, failed int, errs []string) SyncPartial {
	return SyncPartial{
		Message:    fmt.Sprintf("Partial sync: %d successful, %d failed", successful, failed),
		Successful: successful,
		Failed:     failed,
		Errors:     errs,
	}
}
