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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// schemaResource is the synthetic URL schemas are compiled under.
const schemaResource = "setting.schema.json"

// compiledSchema caches the outcome of compiling one setting's schema,
// including a compile failure. raw is kept so a schema changed by an
// out-of-band reload invalidates the entry.
type compiledSchema struct {
	raw        string
	schema     *jsonschema.Schema
	compileErr error
}

// Validator decides whether a candidate value is acceptable for a setting.
// Compiled schemas are memoized per setting.
type Validator struct {
	schemas *ttlcache.Cache[Key, compiledSchema]
}

// NewValidator creates a Validator. ttl bounds how long a compiled schema
// is kept; non-positive means no expiration.
func NewValidator(ttl time.Duration) *Validator {
	var opts []ttlcache.Option[Key, compiledSchema]
	if ttl > 0 {
		opts = append(opts, ttlcache.WithTTL[Key, compiledSchema](ttl))
	}
	cache := ttlcache.New(opts...)
	go cache.Start()
	return &Validator{schemas: cache}
}

// Close stops the cache background goroutine and releases resources.
func (v *Validator) Close() {
	v.schemas.Stop()
}

// Result is the outcome of validating a candidate value.
type Result struct {
	OK            bool
	Violations    []string
	SchemaInvalid bool
}

// Validate checks candidate against the setting's schema. Settings without
// a schema accept any shape. All violations are collected, each rendered as
// "<path> <message>". A schema that fails to compile rejects every
// candidate and is reported with SchemaInvalid set.
func (v *Validator) Validate(setting settingsdb.AppSetting, candidate json.RawMessage) Result {
	if len(setting.ValidationSchema) == 0 {
		return Result{OK: true}
	}

	cs := v.compiled(setting)
	if cs.compileErr != nil {
		return Result{
			Violations:    []string{fmt.Sprintf("$ schema does not compile: %v", cs.compileErr)},
			SchemaInvalid: true,
		}
	}

	var instance any
	if err := json.Unmarshal(candidate, &instance); err != nil {
		return Result{Violations: []string{fmt.Sprintf("$ candidate is not valid JSON: %v", err)}}
	}

	if err := cs.schema.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return Result{Violations: renderViolations(ve)}
		}
		return Result{Violations: []string{fmt.Sprintf("$ %v", err)}}
	}

	return Result{OK: true}
}

// ValidateOrFail wraps Validate, returning a *ValidationError on failure.
func (v *Validator) ValidateOrFail(setting settingsdb.AppSetting, candidate json.RawMessage) error {
	res := v.Validate(setting, candidate)
	if res.OK {
		return nil
	}
	return &ValidationError{
		Violations:    res.Violations,
		SchemaInvalid: res.SchemaInvalid,
	}
}

func (v *Validator) compiled(setting settingsdb.AppSetting) compiledSchema {
	key := Key{Section: setting.SectionPath, Name: setting.SettingName}
	raw := string(setting.ValidationSchema)

	if item := v.schemas.Get(key); item != nil {
		if cs := item.Value(); cs.raw == raw {
			return cs
		}
	}

	cs := compileSchema(raw)
	v.schemas.Set(key, cs, ttlcache.DefaultTTL)
	return cs
}

func compileSchema(raw string) compiledSchema {
	cs := compiledSchema{raw: raw}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, strings.NewReader(raw)); err != nil {
		cs.compileErr = err
		return cs
	}

	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		cs.compileErr = err
		return cs
	}

	cs.schema = schema
	return cs
}

// renderViolations flattens the cause tree into leaf messages.
func renderViolations(ve *jsonschema.ValidationError) []string {
	var out []string
	flattenViolations(ve, &out)
	return out
}

func flattenViolations(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "$"
		}
		*out = append(*out, loc+" "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		flattenViolations(cause, out)
	}
}
