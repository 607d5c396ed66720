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
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// UpdateService is the only runtime path by which a setting's value
// changes: resolve, validate, persist in a transaction, refresh the cache
// with the row the database returned, notify.
type UpdateService struct {
	store     SettingStore
	cache     *Cache
	validator *Validator
	notifier  ChangeNotifier
}

// NewUpdateService creates an UpdateService. notifier may be nil.
func NewUpdateService(store SettingStore, cache *Cache, validator *Validator, notifier ChangeNotifier) *UpdateService {
	return &UpdateService{
		store:     store,
		cache:     cache,
		validator: validator,
		notifier:  notifier,
	}
}

// UpdateValue applies a new value to the setting identified by
// (section, name). Failures are one of ErrNotFound, *ValidationError, or
// *StoreError; a failure before the transaction leaves both store and cache
// unchanged. The returned setting carries the store's authoritative
// updated_at.
func (s *UpdateService) UpdateValue(ctx context.Context, section, name string, newValue json.RawMessage) (settingsdb.AppSetting, error) {
	// Resolve: cache first, store on miss. The store fallback covers
	// settings created since the last reload.
	current, ok := s.cache.Get(section, name)
	if !ok {
		row, err := s.store.GetAppSetting(ctx, settingsdb.GetAppSettingParams{
			SectionPath: section,
			SettingName: name,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				recordUpdate(ctx, "not_found")
				return settingsdb.AppSetting{}, ErrNotFound
			}
			recordUpdate(ctx, "store_error")
			return settingsdb.AppSetting{}, &StoreError{Err: fmt.Errorf("resolving setting %s/%s: %w", section, name, err)}
		}
		current = row
	}

	// Validate before touching the store.
	if err := s.validator.ValidateOrFail(current, newValue); err != nil {
		recordUpdate(ctx, "validation_error")
		return settingsdb.AppSetting{}, err
	}

	// Persist and commit. Zero rows affected means the row disappeared
	// between resolve and persist; that race is a legitimate not-found.
	updated, err := s.store.UpdateAppSettingValueTx(ctx, settingsdb.UpdateAppSettingValueParams{
		SectionPath: section,
		SettingName: name,
		Value:       newValue,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			recordUpdate(ctx, "not_found")
			return settingsdb.AppSetting{}, ErrNotFound
		}
		recordUpdate(ctx, "store_error")
		return settingsdb.AppSetting{}, &StoreError{Err: fmt.Errorf("updating setting %s/%s: %w", section, name, err)}
	}

	// Refresh with the returned row as ground truth; under a write-write
	// race the database row lock already decided the winner.
	s.cache.Put(updated)

	if s.notifier != nil {
		s.notifier.SettingChanged(ctx, current, updated)
	}

	recordUpdate(ctx, "success")
	return updated, nil
}
