package controllers

import (
	"net/http"

	"github.com/l3montree-dev/updatehub/database"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
)

type PackageController struct {
	packageRepository shared.PackageRepository
}

func NewPackageController(packageRepository shared.PackageRepository) *PackageController {
	return &PackageController{
		packageRepository: packageRepository,
	}
}

func (c *PackageController) Create(ctx shared.Context) error {
	var req dtos.CreatePackageRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	pkg := models.Package{
		Name:          req.Name,
		Committers:    pq.StringArray(req.Committers),
		StableKarma:   req.StableKarma,
		UnstableKarma: req.UnstableKarma,
	}
	if err := c.packageRepository.Create(nil, &pkg); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "package already exists").WithInternal(err)
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, pkg)
}

func (c *PackageController) Read(ctx shared.Context) error {
	pkg, err := c.packageRepository.FindByName(shared.GetParam(ctx, "packageName"))
	if err != nil {
		return echo.NewHTTPError(404, "package not found").WithInternal(err)
	}
	return ctx.JSON(200, pkg)
}
