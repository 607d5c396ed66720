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
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// QueryService serves reads strictly from the cache. Absence is never an
// error. includeConfidential must be asserted by the caller; authorization
// happens upstream.
type QueryService struct {
	cache *Cache
}

func NewQueryService(cache *Cache) *QueryService {
	return &QueryService{cache: cache}
}

// GetByName returns the setting for (section, name) if it exists and passes
// the environment and confidentiality filters.
func (s *QueryService) GetByName(section, name string, env settingsdb.SettingEnvironment, includeConfidential bool) (settingsdb.AppSetting, bool) {
	row, ok := s.cache.Get(section, name)
	if !ok || !visible(row, env, includeConfidential) {
		return settingsdb.AppSetting{}, false
	}
	return row, true
}

// GetBySection returns every visible setting whose section path starts with
// sectionPrefix. Ordering is stable only within a single cache snapshot.
func (s *QueryService) GetBySection(sectionPrefix string, env settingsdb.SettingEnvironment, includeConfidential bool) []settingsdb.AppSetting {
	var out []settingsdb.AppSetting
	for _, row := range s.cache.All() {
		if !strings.HasPrefix(row.SectionPath, sectionPrefix) {
			continue
		}
		if visible(row, env, includeConfidential) {
			out = append(out, row)
		}
	}
	return out
}

// GetAll returns every visible setting.
func (s *QueryService) GetAll(env settingsdb.SettingEnvironment, includeConfidential bool) []settingsdb.AppSetting {
	var out []settingsdb.AppSetting
	for _, row := range s.cache.All() {
		if visible(row, env, includeConfidential) {
			out = append(out, row)
		}
	}
	return out
}

// GetValue returns the setting's value if non-null, else its default value,
// else the fallback. A missing setting yields the fallback; GetValue never
// fails. This is the primary read API for in-process consumers, which see
// their own configuration regardless of scoping.
func (s *QueryService) GetValue(section, name string, fallback json.RawMessage) json.RawMessage {
	row, ok := s.cache.Get(section, name)
	if !ok {
		return fallback
	}
	if !isJSONNull(row.Value) {
		return row.Value
	}
	if !isJSONNull(row.DefaultValue) {
		return row.DefaultValue
	}
	return fallback
}

// GetString is GetValue for settings holding a JSON string.
func (s *QueryService) GetString(section, name, fallback string) string {
	raw := s.GetValue(section, name, nil)
	if raw == nil {
		return fallback
	}
	var out string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback
	}
	return out
}

// GetBool is GetValue for settings holding a JSON boolean.
func (s *QueryService) GetBool(section, name string, fallback bool) bool {
	raw := s.GetValue(section, name, nil)
	if raw == nil {
		return fallback
	}
	var out bool
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback
	}
	return out
}

func visible(row settingsdb.AppSetting, env settingsdb.SettingEnvironment, includeConfidential bool) bool {
	if row.Confidential && !includeConfidential {
		return false
	}
	return environmentMatches(env, row.Environment)
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
