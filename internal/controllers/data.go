package controllers

import (
	"net/http"
	"strconv"

	"engagement-tracker/internal/entities"
	"engagement-tracker/internal/services"
	apperrors "engagement-tracker/pkg/errors"
	"engagement-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DataController struct {
	geoService services.GeoServiceInterface
	logger     *zap.Logger
}

func NewDataController(geoService services.GeoServiceInterface, logger *zap.Logger) *DataController {
	return &DataController{geoService: geoService, logger: logger}
}

func (ctrl *DataController) CreateStates(c echo.Context) error {
	var payload []entities.State
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("expected an array of states"), ctrl.logger)
	}

	records, err := ctrl.geoService.BulkInsertStates(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, records)
}

func (ctrl *DataController) CreateDistricts(c echo.Context) error {
	var payload []entities.District
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("expected an array of districts"), ctrl.logger)
	}

	records, err := ctrl.geoService.BulkInsertDistricts(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, records)
}

func (ctrl *DataController) CreatePalikas(c echo.Context) error {
	var payload []entities.Palika
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("expected an array of palikas"), ctrl.logger)
	}

	records, err := ctrl.geoService.BulkInsertPalikas(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, records)
}

func (ctrl *DataController) GetStates(c echo.Context) error {
	records, err := ctrl.geoService.GetStates(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, records)
}

// GetDistricts lists all districts, or only those of one state when a
// state id path segment is present.
func (ctrl *DataController) GetDistricts(c echo.Context) error {
	stateID, err := optionalIDParam(c, "stateId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	records, err := ctrl.geoService.GetDistricts(c.Request().Context(), stateID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, records)
}

func (ctrl *DataController) GetPalikas(c echo.Context) error {
	districtID, err := optionalIDParam(c, "districtId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	records, err := ctrl.geoService.GetPalikas(c.Request().Context(), districtID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, records)
}

func optionalIDParam(c echo.Context, name string) (*int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid %s", name)
	}
	return &id, nil
}
