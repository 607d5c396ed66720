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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/settingshub/internal/dbopen"
	"github.com/cardinalhq/settingshub/migrations"
	"github.com/cardinalhq/settingshub/settingsdb"
	settingsdbmigrations "github.com/cardinalhq/settingshub/settingsdb/migrations"
)

func init() {
	rootCmd.AddCommand(MigrateCmd)
}

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run settings database migrations",
	Long:  "Apply all pending schema migrations to the settings database",
	RunE:  runMigrate,
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(5*time.Minute))
	defer cancel()

	slog.Info("Running settings database migrations")

	// Skip the version gate: a fresh database is behind by definition.
	pool, err := settingsdb.ConnectToSettingsDB(ctx, settingsdb.Options{
		MigrationCheckOptions: []migrations.CheckOption{
			migrations.WithCheckMode(migrations.CheckModeSkip),
		},
	})
	if err != nil {
		if errors.Is(err, dbopen.ErrDatabaseNotConfigured) {
			return fmt.Errorf("settings database is not configured: %w", err)
		}
		return err
	}
	defer pool.Close()

	if err := settingsdbmigrations.RunMigrationsUp(ctx, pool); err != nil {
		return fmt.Errorf("failed to migrate settings database: %w", err)
	}

	slog.Info("Settings database migrations completed successfully")
	return nil
}
