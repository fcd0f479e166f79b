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

package router

import (
	"runtime"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/labstack/echo/v4"
)

type APIV1Router struct {
	*echo.Group
}

type healthResponse struct {
	Status        string `json:"status"`
	GoVersion     string `json:"goVersion"`
	NumGoroutines int    `json:"numGoroutines"`
	DBTotalConns  int    `json:"dbTotalConns"`
	DBIdleConns   int    `json:"dbIdleConns"`
}

func NewAPIV1Router(e *echo.Echo, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	apiV1Router := e.Group("/api/v1")

	apiV1Router.GET("/health/", func(c echo.Context) error {
		resp := healthResponse{
			Status:        "healthy",
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
		}
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			resp.Status = "unhealthy"
		}
		if pool != nil {
			stats := pool.Stat()
			resp.DBTotalConns = int(stats.TotalConns())
			resp.DBIdleConns = int(stats.IdleConns())
		}
		return c.JSON(200, resp)
	})

	return APIV1Router{Group: apiV1Router}
}
