package controllers

import (
	"net/http"
	"strconv"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/services"
	apperrors "engagement-tracker/pkg/errors"
	"engagement-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WebsiteController struct {
	websiteService services.WebsiteServiceInterface
	logger         *zap.Logger
}

func NewWebsiteController(websiteService services.WebsiteServiceInterface, logger *zap.Logger) *WebsiteController {
	return &WebsiteController{websiteService: websiteService, logger: logger}
}

func (ctrl *WebsiteController) GetWebsites(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	websites, err := ctrl.websiteService.GetWebsites(c.Request().Context(), subject)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, websites)
}

func (ctrl *WebsiteController) CreateWebsite(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateWebsiteDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	website, err := ctrl.websiteService.CreateWebsite(c.Request().Context(), subject, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, website)
}

func (ctrl *WebsiteController) UpdateWebsite(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateWebsiteDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	website, err := ctrl.websiteService.UpdateWebsite(c.Request().Context(), subject, id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, website)
}

func (ctrl *WebsiteController) DeleteWebsite(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.websiteService.DeleteWebsite(c.Request().Context(), subject, id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.MessageResponse(c, http.StatusOK, "website deleted successfully")
}

func parseIDParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("invalid %s", name)
	}
	return id, nil
}
