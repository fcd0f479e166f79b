// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package router

import (
	"github.com/l3montree-dev/updatehub/controllers"
	"github.com/labstack/echo/v4"
)

type UpdateRouter struct {
	*echo.Group
}

func NewUpdateRouter(apiV1Router APIV1Router, updateController *controllers.UpdateController) UpdateRouter {
	updateRouter := apiV1Router.Group.Group("/updates")

	updateRouter.POST("/", updateController.Create)
	updateRouter.GET("/pending-requests/", updateController.PendingRequests)
	updateRouter.GET("/:updateID/", updateController.Read)
	updateRouter.POST("/:updateID/request/", updateController.SubmitRequest)
	updateRouter.POST("/:updateID/comments/", updateController.CreateComment)
	updateRouter.PUT("/:updateID/bugs/", updateController.UpdateBugs)
	updateRouter.PUT("/:updateID/cves/", updateController.UpdateCVEs)

	return UpdateRouter{Group: updateRouter}
}
