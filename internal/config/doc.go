// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

// Package config loads the go-wine-cellar configuration from environment
// variables, command-line flags, and an optional JSON file, merging the three
// sources in that order (later sources fill in fields the earlier ones left
// zero).
//
// Two views are derived from the merged [StructuredConfig]:
// [GetServerConfig] for the server process and [GetClientConfig] for the
// offline-first client. Each view applies its own defaults and validation.
package config
