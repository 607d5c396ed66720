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
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// mockStore is a test double for SettingStore backed by a map.
type mockStore struct {
	mu   sync.Mutex
	rows map[Key]settingsdb.AppSetting

	getAllErr error
	getErr    error
	updateErr error

	getAllCalls atomic.Int32
	getCalls    atomic.Int32
	updateCalls atomic.Int32
}

func newMockStore(rows ...settingsdb.AppSetting) *mockStore {
	m := &mockStore{
		rows: make(map[Key]settingsdb.AppSetting),
	}
	for _, row := range rows {
		m.rows[Key{Section: row.SectionPath, Name: row.SettingName}] = row
	}
	return m
}

func (m *mockStore) GetAllAppSettings(ctx context.Context) ([]settingsdb.AppSetting, error) {
	m.getAllCalls.Add(1)
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]settingsdb.AppSetting, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	return out, nil
}

func (m *mockStore) GetAppSetting(ctx context.Context, arg settingsdb.GetAppSettingParams) (settingsdb.AppSetting, error) {
	m.getCalls.Add(1)
	if m.getErr != nil {
		return settingsdb.AppSetting{}, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[Key{Section: arg.SectionPath, Name: arg.SettingName}]
	if !ok {
		return settingsdb.AppSetting{}, pgx.ErrNoRows
	}
	return row, nil
}

func (m *mockStore) UpdateAppSettingValueTx(ctx context.Context, arg settingsdb.UpdateAppSettingValueParams) (settingsdb.AppSetting, error) {
	m.updateCalls.Add(1)
	if m.updateErr != nil {
		return settingsdb.AppSetting{}, m.updateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	k := Key{Section: arg.SectionPath, Name: arg.SettingName}
	row, ok := m.rows[k]
	if !ok {
		return settingsdb.AppSetting{}, pgx.ErrNoRows
	}
	row.Value = arg.Value
	row.UpdatedAt = time.Now().UTC()
	m.rows[k] = row
	return row, nil
}
