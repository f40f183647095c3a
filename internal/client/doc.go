// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It starts the auth, connection and background sync workers, then either
// runs a single command given on the command line or hands control to the
// terminal UI. Workers are stopped exactly once when the process leaves.
package client
