// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal reader application runtime.
//
// It builds the reader session from the configured credentials, checks the
// remote key once on start and runs the terminal UI until the user quits.
package client
