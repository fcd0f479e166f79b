package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/updatehub/dtos"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/l3montree-dev/updatehub/utils"
	"github.com/labstack/echo/v4"
)

type UpdateController struct {
	updateService shared.UpdateService
}

func NewUpdateController(updateService shared.UpdateService) *UpdateController {
	return &UpdateController{
		updateService: updateService,
	}
}

func (c *UpdateController) updateID(ctx shared.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(shared.GetParam(ctx, "updateID"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid update id").WithInternal(err)
	}
	return id, nil
}

func (c *UpdateController) Create(ctx shared.Context) error {
	actor := shared.GetActor(ctx)
	if actor == "" {
		return echo.NewHTTPError(401, "missing user identity")
	}

	var req dtos.CreateUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	update, err := c.updateService.Create(req, actor)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, update)
}

func (c *UpdateController) Read(ctx shared.Context) error {
	id, err := c.updateID(ctx)
	if err != nil {
		return err
	}
	update, err := c.updateService.Read(id)
	if err != nil {
		return err
	}
	return ctx.JSON(200, update)
}

func (c *UpdateController) PendingRequests(ctx shared.Context) error {
	updates, err := c.updateService.PendingRequests()
	if err != nil {
		return err
	}
	return ctx.JSON(200, updates)
}

func (c *UpdateController) SubmitRequest(ctx shared.Context) error {
	actor := shared.GetActor(ctx)
	if actor == "" {
		return echo.NewHTTPError(401, "missing user identity")
	}
	id, err := c.updateID(ctx)
	if err != nil {
		return err
	}

	var req dtos.SubmitRequestRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	update, err := c.updateService.SubmitRequest(ctx.Request().Context(), id, dtos.RequestAction(req.Action), actor, utils.OrDefault(req.PathCheck, true))
	if err != nil {
		return err
	}
	return ctx.JSON(200, update)
}

func (c *UpdateController) CreateComment(ctx shared.Context) error {
	actor := shared.GetActor(ctx)
	id, err := c.updateID(ctx)
	if err != nil {
		return err
	}

	var req dtos.CreateCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}
	if actor == "" && !req.Anonymous {
		return echo.NewHTTPError(401, "missing user identity")
	}

	update, err := c.updateService.RecordComment(ctx.Request().Context(), id, req.Text, req.Karma, actor, req.Anonymous)
	if err != nil {
		return err
	}
	return ctx.JSON(200, update)
}

func (c *UpdateController) UpdateBugs(ctx shared.Context) error {
	id, err := c.updateID(ctx)
	if err != nil {
		return err
	}

	var req dtos.UpdateBugsRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	update, err := c.updateService.UpdateBugs(ctx.Request().Context(), id, req.Bugs)
	if err != nil {
		return err
	}
	return ctx.JSON(200, update)
}

func (c *UpdateController) UpdateCVEs(ctx shared.Context) error {
	id, err := c.updateID(ctx)
	if err != nil {
		return err
	}

	var req dtos.UpdateCVEsRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	update, err := c.updateService.UpdateCVEs(ctx.Request().Context(), id, req.CVEs)
	if err != nil {
		return err
	}
	return ctx.JSON(200, update)
}
