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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/settingshub/settingsdb"
)

type recordingNotifier struct {
	calls atomic.Int32
	last  settingsdb.AppSetting
}

func (n *recordingNotifier) SettingChanged(_ context.Context, _, updated settingsdb.AppSetting) {
	n.calls.Add(1)
	n.last = updated
}

func newUpdateFixture(t *testing.T, rows ...settingsdb.AppSetting) (*UpdateService, *mockStore, *Cache, *recordingNotifier) {
	t.Helper()
	store := newMockStore(rows...)
	cache := NewCache()
	cache.ReplaceAll(rows)
	validator := NewValidator(time.Minute)
	t.Cleanup(validator.Close)
	notifier := &recordingNotifier{}
	return NewUpdateService(store, cache, validator, notifier), store, cache, notifier
}

func TestUpdateService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	seed := testSetting("Application.RegionalSettings", "fallback.language", `"english"`)
	seed.ValidationSchema = json.RawMessage(`{"enum": ["english", "russian"]}`)
	svc, _, cache, notifier := newUpdateFixture(t, seed)

	updated, err := svc.UpdateValue(ctx, "Application.RegionalSettings", "fallback.language", json.RawMessage(`"russian"`))
	require.NoError(t, err)
	assert.Equal(t, `"russian"`, string(updated.Value))
	assert.False(t, updated.UpdatedAt.IsZero())

	// An immediate read must observe the new value.
	got, ok := NewQueryService(cache).GetByName("Application.RegionalSettings", "fallback.language", settingsdb.SettingEnvironmentAll, false)
	require.True(t, ok)
	assert.Equal(t, `"russian"`, string(got.Value))
	assert.Equal(t, updated.UpdatedAt, got.UpdatedAt)

	assert.Equal(t, int32(1), notifier.calls.Load())
	assert.Equal(t, `"russian"`, string(notifier.last.Value))
}

func TestUpdateService_ValidationGate(t *testing.T) {
	ctx := context.Background()
	seed := testSetting("Application.RegionalSettings", "fallback.language", `"english"`)
	seed.ValidationSchema = json.RawMessage(`{"enum": ["english", "russian"]}`)
	before := seed.UpdatedAt
	svc, store, cache, notifier := newUpdateFixture(t, seed)

	_, err := svc.UpdateValue(ctx, "Application.RegionalSettings", "fallback.language", json.RawMessage(`"french"`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, verr.SchemaInvalid)

	// No store mutation was attempted and both sides are unchanged.
	assert.Zero(t, store.updateCalls.Load())
	got, ok := cache.Get("Application.RegionalSettings", "fallback.language")
	require.True(t, ok)
	assert.Equal(t, `"english"`, string(got.Value))
	assert.Equal(t, before, got.UpdatedAt)
	assert.Zero(t, notifier.calls.Load())
}

func TestUpdateService_BooleanSchemaGate(t *testing.T) {
	ctx := context.Background()
	seed := testSetting("App", "feature.enabled", `false`)
	seed.ValidationSchema = json.RawMessage(`{"type": "boolean"}`)
	svc, store, _, _ := newUpdateFixture(t, seed)

	_, err := svc.UpdateValue(ctx, "App", "feature.enabled", json.RawMessage(`"not-a-bool"`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, store.updateCalls.Load())

	_, err = svc.UpdateValue(ctx, "App", "feature.enabled", json.RawMessage(`true`))
	require.NoError(t, err)
}

func TestUpdateService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newUpdateFixture(t)

	_, err := svc.UpdateValue(ctx, "No.Section", "no.name", json.RawMessage(`1`))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateService_ResolvesFromStoreOnCacheMiss(t *testing.T) {
	ctx := context.Background()
	store := newMockStore(testSetting("App", "uncached", `1`))
	cache := NewCache() // deliberately not hydrated
	validator := NewValidator(time.Minute)
	t.Cleanup(validator.Close)
	svc := NewUpdateService(store, cache, validator, nil)

	updated, err := svc.UpdateValue(ctx, "App", "uncached", json.RawMessage(`2`))
	require.NoError(t, err)
	assert.Equal(t, `2`, string(updated.Value))
	assert.Equal(t, int32(1), store.getCalls.Load())

	// The refresh step populates the cache.
	got, ok := cache.Get("App", "uncached")
	require.True(t, ok)
	assert.Equal(t, `2`, string(got.Value))
}

func TestUpdateService_RowDisappearsBetweenResolveAndPersist(t *testing.T) {
	ctx := context.Background()
	seed := testSetting("App", "vanishing", `1`)
	svc, store, _, _ := newUpdateFixture(t, seed)

	// Simulate the race: the row is gone by the time the write runs, but
	// still present in the cache for the resolve step.
	store.mu.Lock()
	delete(store.rows, Key{Section: "App", Name: "vanishing"})
	store.mu.Unlock()

	_, err := svc.UpdateValue(ctx, "App", "vanishing", json.RawMessage(`2`))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateService_StoreErrorIsDistinct(t *testing.T) {
	ctx := context.Background()
	seed := testSetting("App", "flaky", `1`)
	svc, store, cache, _ := newUpdateFixture(t, seed)
	store.updateErr = errors.New("deadlock detected")

	_, err := svc.UpdateValue(ctx, "App", "flaky", json.RawMessage(`2`))
	require.Error(t, err)

	var serr *StoreError
	require.ErrorAs(t, err, &serr)
	assert.NotErrorIs(t, err, ErrNotFound)

	// Cache keeps the pre-update value on a failed persist.
	got, ok := cache.Get("App", "flaky")
	require.True(t, ok)
	assert.Equal(t, `1`, string(got.Value))
}

func TestUpdateService_SchemaInvalidRejectsWrites(t *testing.T) {
	ctx := context.Background()
	seed := testSetting("App", "broken.schema", `1`)
	seed.ValidationSchema = json.RawMessage(`{"type": 42}`)
	svc, store, _, _ := newUpdateFixture(t, seed)

	_, err := svc.UpdateValue(ctx, "App", "broken.schema", json.RawMessage(`2`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.SchemaInvalid)
	assert.Zero(t, store.updateCalls.Load())
}
