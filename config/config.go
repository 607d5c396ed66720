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

package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates configuration for the settings subsystem.
type Config struct {
	// SchemaCacheTTL bounds how long a compiled validation schema is
	// memoized. Non-positive keeps compiled schemas forever.
	SchemaCacheTTL time.Duration `mapstructure:"schema_cache_ttl"`

	// ReloadInterval enables periodic cache reloads when positive. The
	// default (0) keeps the cache authoritative until an explicit reload,
	// accepting cross-process staleness.
	ReloadInterval time.Duration `mapstructure:"reload_interval"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		SchemaCacheTTL: 10 * time.Minute,
		ReloadInterval: 0,
	}
}

// Load reads configuration from files and environment variables.
// Environment variables use the prefix "SETTINGSHUB" and the dot character
// in keys is replaced by an underscore. For example, "reload_interval"
// becomes "SETTINGSHUB_RELOAD_INTERVAL".
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SETTINGSHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, &cfg)
	_ = v.ReadInConfig()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindEnvs registers all keys within cfg so that viper will look up
// corresponding environment variables when unmarshalling.
func bindEnvs(v *viper.Viper, cfg any, parts ...string) {
	val := reflect.ValueOf(cfg)
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		key := append(parts, tag)
		if f.Type.Kind() == reflect.Struct {
			bindEnvs(v, val.Field(i).Interface(), key...)
			continue
		}
		_ = v.BindEnv(strings.Join(key, "."))
	}
}
