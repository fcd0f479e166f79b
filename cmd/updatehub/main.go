// Copyright (C) 2023 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/updatehub/accesscontrol"
	"github.com/l3montree-dev/updatehub/cmd/updatehub/api"
	"github.com/l3montree-dev/updatehub/controllers"
	"github.com/l3montree-dev/updatehub/database"
	"github.com/l3montree-dev/updatehub/database/repositories"
	"github.com/l3montree-dev/updatehub/integrations"
	"github.com/l3montree-dev/updatehub/router"
	"github.com/l3montree-dev/updatehub/services"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection pool"))
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		repositories.Module,
		controllers.ControllerModule,
		services.ServiceModule,
		router.RouterModule,
		accesscontrol.Module,
		integrations.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(UpdateRouter router.UpdateRouter) {}),
		fx.Invoke(func(ReleaseRouter router.ReleaseRouter) {}),
		fx.Invoke(func(PackageRouter router.PackageRouter) {}),
		fx.Invoke(func(server *echo.Echo) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		AttachStacktrace: true,

		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init error tracking", "err", err)
	}
}
