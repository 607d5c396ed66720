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
	"fmt"
	"strings"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// ParseEnvironment maps a request-supplied environment string to the typed
// enum. Empty input means "all".
func ParseEnvironment(s string) (settingsdb.SettingEnvironment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return settingsdb.SettingEnvironmentAll, nil
	case "development":
		return settingsdb.SettingEnvironmentDevelopment, nil
	case "production":
		return settingsdb.SettingEnvironmentProduction, nil
	case "test":
		return settingsdb.SettingEnvironmentTest, nil
	default:
		return "", fmt.Errorf("unknown environment %q", s)
	}
}

func validEnvironment(e settingsdb.SettingEnvironment) bool {
	switch e {
	case settingsdb.SettingEnvironmentAll,
		settingsdb.SettingEnvironmentDevelopment,
		settingsdb.SettingEnvironmentProduction,
		settingsdb.SettingEnvironmentTest:
		return true
	default:
		return false
	}
}

// environmentMatches reports whether a setting scoped to have is visible to
// a request scoped to requested. "all" is a wildcard on both sides; an
// empty requested environment is equivalent to "all".
func environmentMatches(requested, have settingsdb.SettingEnvironment) bool {
	return requested == "" ||
		requested == settingsdb.SettingEnvironmentAll ||
		have == settingsdb.SettingEnvironmentAll ||
		requested == have
}
