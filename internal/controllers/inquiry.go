package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/entities"
	"engagement-tracker/internal/services"
	apperrors "engagement-tracker/pkg/errors"
	"engagement-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type InquiryController struct {
	inquiryService services.InquiryServiceInterface
	logger         *zap.Logger
}

func NewInquiryController(inquiryService services.InquiryServiceInterface, logger *zap.Logger) *InquiryController {
	return &InquiryController{inquiryService: inquiryService, logger: logger}
}

func (ctrl *InquiryController) GetInquiries(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	statusFilter := c.QueryParam("status")
	if statusFilter != "" && !entities.IsValidInquiryStatus(statusFilter) {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid status filter"), ctrl.logger)
	}

	inquiries, err := ctrl.inquiryService.GetInquiries(c.Request().Context(), subject, statusFilter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, inquiries)
}

func (ctrl *InquiryController) CreateInquiry(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateInquiryDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inquiry, err := ctrl.inquiryService.CreateInquiry(c.Request().Context(), subject, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, inquiry)
}

func (ctrl *InquiryController) UpdateInquiry(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateInquiryDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inquiry, err := ctrl.inquiryService.UpdateInquiry(c.Request().Context(), subject, id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, inquiry)
}

func (ctrl *InquiryController) DeleteInquiry(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.inquiryService.DeleteInquiry(c.Request().Context(), subject, id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.MessageResponse(c, http.StatusOK, "inquiry deleted successfully")
}

// GetSoftwareSuggestions backs the software autocomplete field.
func (ctrl *InquiryController) GetSoftwareSuggestions(c echo.Context) error {
	suggestions, err := ctrl.inquiryService.GetSoftwareSuggestions(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, suggestions)
}

func (ctrl *InquiryController) CreateAction(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inquiryID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateActionDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actions, err := ctrl.inquiryService.AppendAction(c.Request().Context(), subject, inquiryID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, actions)
}

func (ctrl *InquiryController) GetActions(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inquiryID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actions, err := ctrl.inquiryService.GetActions(c.Request().Context(), subject, inquiryID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, actions)
}

// ExportInquiries streams the full inquiry set as an XLSX workbook.
// Admin only.
func (ctrl *InquiryController) ExportInquiries(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inquiries, err := ctrl.inquiryService.ExportInquiries(c.Request().Context(), subject)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return ctrl.respondWithXLSX(c, inquiries)
}

var inquiryExportHeaders = []string{
	"ID", "Inquirer", "Contact Person", "Contact Email", "Phone", "Address",
	"Date", "Software", "Status", "Activities", "Comments", "Owner", "Owner Email",
}

func inquiryToRow(item entities.Inquiry) []interface{} {
	var ownerName, ownerEmail string
	if item.Owner != nil {
		ownerName = item.Owner.FullName
		ownerEmail = item.Owner.Email
	}
	return []interface{}{
		item.ID, item.InquirerName, item.ContactPerson, item.ContactPersonEmail,
		item.PhoneNumber, item.Address, item.Date.Format("2006-01-02"), item.Software,
		item.Status, strings.Join(item.Activities, ", "), item.Comments, ownerName, ownerEmail,
	}
}

func (ctrl *InquiryController) respondWithXLSX(c echo.Context, data []entities.Inquiry) error {
	f := excelize.NewFile()
	sheet := "Inquiries"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inquiryExportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inquiryToRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "F", 22)
	f.SetColWidth(sheet, "J", "K", 35)
	f.SetColWidth(sheet, "L", "M", 25)

	fileName := fmt.Sprintf("inquiries_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
