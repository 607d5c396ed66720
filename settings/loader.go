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
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// Loader hydrates the cache from the store.
type Loader struct {
	store SettingStore
	cache *Cache
}

func NewLoader(store SettingStore, cache *Cache) *Loader {
	return &Loader{
		store: store,
		cache: cache,
	}
}

// LoadAll reads every setting from the store and replaces the cache
// contents. It returns the number of settings loaded. On any store error
// the previous cache contents are left untouched.
func (l *Loader) LoadAll(ctx context.Context) (int, error) {
	rows, err := l.store.GetAllAppSettings(ctx)
	if err != nil {
		recordReload(ctx, "store_error")
		return 0, &StoreError{Err: fmt.Errorf("loading settings: %w", err)}
	}

	if err := checkRows(rows); err != nil {
		recordReload(ctx, "bad_rows")
		return 0, &StoreError{Err: fmt.Errorf("settings store returned unusable rows: %w", err)}
	}

	if len(rows) == 0 {
		slog.Warn("settings store returned no rows, cache cleared")
	}

	l.cache.ReplaceAll(rows)
	recordReload(ctx, "success")
	slog.Info("settings cache loaded", slog.Int("count", len(rows)))
	return len(rows), nil
}

// Reload re-runs LoadAll on demand.
func (l *Loader) Reload(ctx context.Context) (int, error) {
	return l.LoadAll(ctx)
}

// Start begins periodic background reloads at the given interval. A
// non-positive interval disables periodic reloading. Reload failures are
// logged and the previous cache is kept. Stops when ctx is done.
func (l *Loader) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := l.Reload(ctx); err != nil {
					slog.Error("periodic settings reload failed", slog.Any("error", err))
				}
			}
		}
	}()
}

// checkRows rejects a load whose rows could not have come from a healthy
// store: duplicate composite keys or environments outside the enum.
func checkRows(rows []settingsdb.AppSetting) error {
	var errs *multierror.Error
	seen := make(map[Key]struct{}, len(rows))

	for _, row := range rows {
		k := Key{Section: row.SectionPath, Name: row.SettingName}
		if _, dup := seen[k]; dup {
			errs = multierror.Append(errs, fmt.Errorf("duplicate setting %s/%s", row.SectionPath, row.SettingName))
		}
		seen[k] = struct{}{}

		if !validEnvironment(row.Environment) {
			errs = multierror.Append(errs, fmt.Errorf("setting %s/%s has unknown environment %q", row.SectionPath, row.SettingName, row.Environment))
		}
	}

	return errs.ErrorOrNil()
}
