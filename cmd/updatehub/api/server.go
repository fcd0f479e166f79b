// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/l3montree-dev/updatehub/internal/echohttp"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func listenAddr() string {
	if addr := os.Getenv("UPDATEHUB_LISTEN"); addr != "" {
		return addr
	}
	return ":8080"
}

// NewServer provides the echo instance and ties its lifetime to the fx app.
func NewServer(lc fx.Lifecycle) *echo.Echo {
	e := echohttp.Server()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(listenAddr()); err != nil && err != http.ErrServerClosed {
					slog.Error("failed to start server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
	return e
}
