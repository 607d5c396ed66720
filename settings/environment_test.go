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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/settingshub/settingsdb"
)

func TestParseEnvironment(t *testing.T) {
	cases := map[string]settingsdb.SettingEnvironment{
		"":            settingsdb.SettingEnvironmentAll,
		"all":         settingsdb.SettingEnvironmentAll,
		"ALL":         settingsdb.SettingEnvironmentAll,
		"development": settingsdb.SettingEnvironmentDevelopment,
		"Production":  settingsdb.SettingEnvironmentProduction,
		" test ":      settingsdb.SettingEnvironmentTest,
	}
	for in, want := range cases {
		got, err := ParseEnvironment(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseEnvironment("staging")
	assert.Error(t, err)
}

func TestEnvironmentMatches(t *testing.T) {
	all := settingsdb.SettingEnvironmentAll
	dev := settingsdb.SettingEnvironmentDevelopment
	prod := settingsdb.SettingEnvironmentProduction

	assert.True(t, environmentMatches(all, prod))
	assert.True(t, environmentMatches("", prod))
	assert.True(t, environmentMatches(dev, all))
	assert.True(t, environmentMatches(prod, prod))
	assert.False(t, environmentMatches(dev, prod))
	assert.False(t, environmentMatches(prod, dev))
}
