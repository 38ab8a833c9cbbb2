// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the accounts API.
//
// It maps positional commands onto [adapter.AccountsAdapter] calls and prints
// each result as JSON.
package client
