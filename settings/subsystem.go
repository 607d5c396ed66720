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
	"time"

	"github.com/cardinalhq/settingshub/config"
	"github.com/cardinalhq/settingshub/settingsdb"
)

// SettingStore defines the minimal store interface required by the
// subsystem. *settingsdb.Store satisfies it.
type SettingStore interface {
	GetAllAppSettings(ctx context.Context) ([]settingsdb.AppSetting, error)
	GetAppSetting(ctx context.Context, arg settingsdb.GetAppSettingParams) (settingsdb.AppSetting, error)
	UpdateAppSettingValueTx(ctx context.Context, arg settingsdb.UpdateAppSettingValueParams) (settingsdb.AppSetting, error)
}

var _ SettingStore = (*settingsdb.Store)(nil)

// Subsystem bundles one process's settings components around a shared
// cache. The host application constructs one and keeps it for the process
// lifetime.
type Subsystem struct {
	Cache   *Cache
	Loader  *Loader
	Queries *QueryService
	Updates *UpdateService

	validator      *Validator
	reloadInterval time.Duration
}

// New wires a Subsystem against the given store. notifier may be nil.
func New(store SettingStore, cfg config.Config, notifier ChangeNotifier) *Subsystem {
	cache := NewCache()
	validator := NewValidator(cfg.SchemaCacheTTL)

	return &Subsystem{
		Cache:          cache,
		Loader:         NewLoader(store, cache),
		Queries:        NewQueryService(cache),
		Updates:        NewUpdateService(store, cache, validator, notifier),
		validator:      validator,
		reloadInterval: cfg.ReloadInterval,
	}
}

// Start hydrates the cache and, when configured, begins periodic reloads
// that run until ctx is done. It returns the number of settings loaded.
func (s *Subsystem) Start(ctx context.Context) (int, error) {
	count, err := s.Loader.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	s.Loader.Start(ctx, s.reloadInterval)
	return count, nil
}

// Close releases the subsystem's background resources.
func (s *Subsystem) Close() {
	s.validator.Close()
}
