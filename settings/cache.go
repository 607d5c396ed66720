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
	"sync"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// Key identifies a setting. The composite struct cannot collide regardless
// of the characters appearing in either component.
type Key struct {
	Section string
	Name    string
}

// Cache holds the authoritative in-process view of all settings. Entries
// live for the process lifetime or until explicitly replaced; there is no
// TTL or eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]settingsdb.AppSetting
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[Key]settingsdb.AppSetting),
	}
}

// ReplaceAll swaps the entire backing map in one step. Concurrent readers
// see either the old contents or the new, never a partially-populated map.
func (c *Cache) ReplaceAll(rows []settingsdb.AppSetting) {
	fresh := make(map[Key]settingsdb.AppSetting, len(rows))
	for _, row := range rows {
		fresh[Key{Section: row.SectionPath, Name: row.SettingName}] = cloneSetting(row)
	}

	c.mu.Lock()
	c.entries = fresh
	c.mu.Unlock()
}

// Get returns the setting for (section, name), if present. The returned
// record is a copy; mutating it cannot corrupt the cache.
func (c *Cache) Get(section, name string) (settingsdb.AppSetting, bool) {
	c.mu.RLock()
	row, ok := c.entries[Key{Section: section, Name: name}]
	c.mu.RUnlock()
	if !ok {
		return settingsdb.AppSetting{}, false
	}
	return cloneSetting(row), true
}

// Put upserts a single entry.
func (c *Cache) Put(row settingsdb.AppSetting) {
	c.mu.Lock()
	c.entries[Key{Section: row.SectionPath, Name: row.SettingName}] = cloneSetting(row)
	c.mu.Unlock()
}

// All returns a snapshot of the current entries.
func (c *Cache) All() []settingsdb.AppSetting {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]settingsdb.AppSetting, 0, len(c.entries))
	for _, row := range c.entries {
		out = append(out, cloneSetting(row))
	}
	return out
}

// Len returns the number of cached settings.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cloneSetting copies the reference-typed fields so neither side can mutate
// the other's bytes.
func cloneSetting(row settingsdb.AppSetting) settingsdb.AppSetting {
	row.Value = cloneRaw(row.Value)
	row.DefaultValue = cloneRaw(row.DefaultValue)
	row.ValidationSchema = cloneRaw(row.ValidationSchema)
	if row.Description != nil {
		d := *row.Description
		row.Description = &d
	}
	return row
}

func cloneRaw(m json.RawMessage) json.RawMessage {
	if m == nil {
		return nil
	}
	return json.RawMessage(bytes.Clone(m))
}
