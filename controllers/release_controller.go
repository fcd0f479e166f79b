package controllers

import (
	"net/http"

	"github.com/l3montree-dev/updatehub/database"
	"github.com/l3montree-dev/updatehub/database/models"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/labstack/echo/v4"
)

type ReleaseController struct {
	releaseRepository shared.ReleaseRepository
}

func NewReleaseController(releaseRepository shared.ReleaseRepository) *ReleaseController {
	return &ReleaseController{
		releaseRepository: releaseRepository,
	}
}

func (c *ReleaseController) Create(ctx shared.Context) error {
	var req dtos.CreateReleaseRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	release := models.NewRelease(req)
	if err := c.releaseRepository.Create(nil, &release); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "release already exists").WithInternal(err)
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, release)
}

func (c *ReleaseController) List(ctx shared.Context) error {
	releases, err := c.releaseRepository.All()
	if err != nil {
		return err
	}
	return ctx.JSON(200, releases)
}

func (c *ReleaseController) Read(ctx shared.Context) error {
	release, err := c.releaseRepository.FindByName(shared.GetParam(ctx, "releaseName"))
	if err != nil {
		return echo.NewHTTPError(404, "release not found").WithInternal(err)
	}
	return ctx.JSON(200, release)
}
