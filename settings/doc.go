// Copyright (C) 2025-2026 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package settings provides cached, validated application settings.
//
// # Storage Model
//
// Settings are stored in PostgreSQL keyed by (section_path, setting_name),
// with JSONB value, default value, and optional JSON Schema columns. The
// settingsdb package owns all SQL; this package owns the in-process view.
//
// # Caching
//
// Reads are served exclusively from an in-process cache hydrated by the
// Loader. There is no TTL or eviction: settings change rarely and must be
// deterministically available to every reader. A reload fully replaces the
// cache; a failed reload leaves the previous contents untouched.
//
// # Visibility
//
// Every read applies two filters: environment scoping ("all" is a wildcard
// on both sides) and confidentiality (confidential settings are excluded
// unless the caller asserts access; authorization happens upstream).
//
// # Writes
//
// UpdateService is the only runtime write path: resolve, validate against
// the setting's schema, persist in a transaction, then refresh the cache
// with the row the database returned. Other processes see the change at
// their next reload; there is no cross-process invalidation channel.
package settings
