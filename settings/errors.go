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

package settings

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a setting is absent from both the cache and
// the store, or disappeared between resolve and persist.
var ErrNotFound = errors.New("setting not found")

// ValidationError reports that a candidate value failed its setting's
// schema. SchemaInvalid marks the case where the schema itself would not
// compile; such a setting rejects every write until its schema is fixed.
type ValidationError struct {
	Violations    []string
	SchemaInvalid bool
}

func (e *ValidationError) Error() string {
	if e.SchemaInvalid {
		return "setting schema is invalid: " + strings.Join(e.Violations, "; ")
	}
	return "value validation failed: " + strings.Join(e.Violations, "; ")
}

// StoreError wraps any I/O or transaction failure against the backing store.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "settings store error: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
