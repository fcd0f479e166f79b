package router

import (
	"github.com/l3montree-dev/updatehub/controllers"
	"github.com/labstack/echo/v4"
)

type ReleaseRouter struct {
	*echo.Group
}

func NewReleaseRouter(apiV1Router APIV1Router, releaseController *controllers.ReleaseController) ReleaseRouter {
	releaseRouter := apiV1Router.Group.Group("/releases")

	releaseRouter.POST("/", releaseController.Create)
	releaseRouter.GET("/", releaseController.List)
	releaseRouter.GET("/:releaseName/", releaseController.Read)

	return ReleaseRouter{Group: releaseRouter}
}
