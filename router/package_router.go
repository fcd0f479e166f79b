package router

import (
	"github.com/l3montree-dev/updatehub/controllers"
	"github.com/labstack/echo/v4"
)

type PackageRouter struct {
	*echo.Group
}

func NewPackageRouter(apiV1Router APIV1Router, packageController *controllers.PackageController) PackageRouter {
	packageRouter := apiV1Router.Group.Group("/packages")

	packageRouter.POST("/", packageController.Create)
	packageRouter.GET("/:packageName/", packageController.Read)

	return PackageRouter{Group: packageRouter}
}
