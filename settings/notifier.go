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
	"log/slog"

	"github.com/cardinalhq/settingshub/settingsdb"
)

// ChangeNotifier observes committed setting changes. It is fire-and-forget:
// there is no error return, and implementations must not block the caller.
type ChangeNotifier interface {
	SettingChanged(ctx context.Context, previous, updated settingsdb.AppSetting)
}

// SlogNotifier logs committed changes. Confidential settings are logged
// without values.
type SlogNotifier struct{}

func (SlogNotifier) SettingChanged(ctx context.Context, previous, updated settingsdb.AppSetting) {
	attrs := []any{
		slog.String("section", updated.SectionPath),
		slog.String("name", updated.SettingName),
		slog.Time("updated_at", updated.UpdatedAt),
	}
	if !updated.Confidential {
		attrs = append(attrs,
			slog.String("previous_value", string(previous.Value)),
			slog.String("new_value", string(updated.Value)),
		)
	}
	slog.InfoContext(ctx, "setting changed", attrs...)
}
