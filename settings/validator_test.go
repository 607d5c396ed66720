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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/settingshub/settingsdb"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator(time.Minute)
	t.Cleanup(v.Close)
	return v
}

func schemaSetting(schema string) settingsdb.AppSetting {
	return settingsdb.AppSetting{
		SectionPath:      "App",
		SettingName:      "flag",
		Environment:      settingsdb.SettingEnvironmentAll,
		ValidationSchema: json.RawMessage(schema),
	}
}

func TestValidator_NoSchemaAcceptsAnything(t *testing.T) {
	v := newTestValidator(t)
	setting := settingsdb.AppSetting{SectionPath: "App", SettingName: "free"}

	for _, candidate := range []string{`true`, `"text"`, `{"nested": [1, 2]}`, `null`} {
		res := v.Validate(setting, json.RawMessage(candidate))
		assert.True(t, res.OK, "candidate %s", candidate)
	}
}

func TestValidator_BooleanSchema(t *testing.T) {
	v := newTestValidator(t)
	setting := schemaSetting(`{"type": "boolean"}`)

	res := v.Validate(setting, json.RawMessage(`true`))
	assert.True(t, res.OK)

	res = v.Validate(setting, json.RawMessage(`"not-a-bool"`))
	require.False(t, res.OK)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "$ ")
	assert.False(t, res.SchemaInvalid)
}

func TestValidator_CollectsAllViolations(t *testing.T) {
	v := newTestValidator(t)
	setting := schemaSetting(`{
		"type": "object",
		"properties": {
			"limit": {"type": "integer"},
			"label": {"type": "string"}
		},
		"required": ["limit", "label"]
	}`)

	res := v.Validate(setting, json.RawMessage(`{"limit": "high", "label": 7}`))
	require.False(t, res.OK)
	assert.Len(t, res.Violations, 2)
}

func TestValidator_EnumSchema(t *testing.T) {
	v := newTestValidator(t)
	setting := schemaSetting(`{"enum": ["english", "russian"]}`)

	assert.True(t, v.Validate(setting, json.RawMessage(`"english"`)).OK)
	assert.True(t, v.Validate(setting, json.RawMessage(`"russian"`)).OK)
	assert.False(t, v.Validate(setting, json.RawMessage(`"french"`)).OK)
}

func TestValidator_MalformedSchemaRejectsAllWrites(t *testing.T) {
	v := newTestValidator(t)
	setting := schemaSetting(`{"type": 42}`)

	res := v.Validate(setting, json.RawMessage(`true`))
	require.False(t, res.OK)
	assert.True(t, res.SchemaInvalid)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "schema does not compile")
}

func TestValidator_InvalidJSONCandidate(t *testing.T) {
	v := newTestValidator(t)
	setting := schemaSetting(`{"type": "boolean"}`)

	res := v.Validate(setting, json.RawMessage(`{not json`))
	require.False(t, res.OK)
	assert.False(t, res.SchemaInvalid)
}

func TestValidator_ValidateOrFail(t *testing.T) {
	v := newTestValidator(t)
	setting := schemaSetting(`{"type": "boolean"}`)

	require.NoError(t, v.ValidateOrFail(setting, json.RawMessage(`false`)))

	err := v.ValidateOrFail(setting, json.RawMessage(`"nope"`))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Violations)
}

func TestValidator_RecompilesWhenSchemaChanges(t *testing.T) {
	v := newTestValidator(t)

	setting := schemaSetting(`{"type": "boolean"}`)
	assert.True(t, v.Validate(setting, json.RawMessage(`true`)).OK)

	// Same key, new schema text: the cached compilation must not be reused.
	setting.ValidationSchema = json.RawMessage(`{"type": "string"}`)
	assert.False(t, v.Validate(setting, json.RawMessage(`true`)).OK)
	assert.True(t, v.Validate(setting, json.RawMessage(`"ok"`)).OK)
}
