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
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	reloadCounter metric.Int64Counter
	updateCounter metric.Int64Counter
)

func init() {
	meter := otel.Meter("github.com/cardinalhq/settingshub/settings")

	var err error

	reloadCounter, err = meter.Int64Counter(
		"settingshub.settings.reloads",
		metric.WithDescription("Number of cache load attempts by outcome"),
	)
	if err != nil {
		log.Fatalf("failed to create settings.reloads counter: %v", err)
	}

	updateCounter, err = meter.Int64Counter(
		"settingshub.settings.updates",
		metric.WithDescription("Number of setting update attempts by outcome"),
	)
	if err != nil {
		log.Fatalf("failed to create settings.updates counter: %v", err)
	}
}

func recordReload(ctx context.Context, outcome string) {
	reloadCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func recordUpdate(ctx context.Context, outcome string) {
	updateCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
