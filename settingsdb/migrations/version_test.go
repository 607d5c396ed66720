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

package migrations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rootmigrations "github.com/cardinalhq/settingshub/migrations"
)

func TestExtractLatestMigrationVersion(t *testing.T) {
	version, err := extractLatestMigrationVersion(migrationFiles)
	require.NoError(t, err)
	assert.Equal(t, uint(1724300000), version)
}

func TestOptionsFromEnv_Defaults(t *testing.T) {
	t.Setenv("SETTINGSDB_MIGRATION_CHECK_ENABLED", "")
	t.Setenv("MIGRATION_CHECK_TIMEOUT", "")
	t.Setenv("MIGRATION_CHECK_RETRY_INTERVAL", "")
	t.Setenv("MIGRATION_CHECK_ALLOW_DIRTY", "")

	options := optionsFromEnv()
	assert.Equal(t, rootmigrations.CheckModeWait, options.Mode)
	assert.Equal(t, 120*time.Second, options.Timeout)
	assert.Equal(t, 5*time.Second, options.RetryInterval)
	assert.False(t, options.AllowDirty)
}

func TestOptionsFromEnv_Overrides(t *testing.T) {
	t.Setenv("SETTINGSDB_MIGRATION_CHECK_ENABLED", "false")
	t.Setenv("MIGRATION_CHECK_TIMEOUT", "30s")
	t.Setenv("MIGRATION_CHECK_RETRY_INTERVAL", "1s")
	t.Setenv("MIGRATION_CHECK_ALLOW_DIRTY", "true")

	options := optionsFromEnv()
	assert.Equal(t, rootmigrations.CheckModeSkip, options.Mode)
	assert.Equal(t, 30*time.Second, options.Timeout)
	assert.Equal(t, time.Second, options.RetryInterval)
	assert.True(t, options.AllowDirty)
}
