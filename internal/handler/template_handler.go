package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/case_upload_template/internal/casetemplate"
	"github.com/locvowork/case_upload_template/internal/logger"
	"github.com/locvowork/case_upload_template/internal/service"
	"github.com/locvowork/case_upload_template/internal/service/serviceutils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TemplateHandler struct {
	svc service.TemplateService
}

func NewTemplateHandler(svc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// ListHandler returns the names of the downloadable templates.
func (h *TemplateHandler) ListHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "templates", casetemplate.Names())
}

// DownloadHandler streams the preset named by the :preset path parameter
// as an xlsx attachment.
func (h *TemplateHandler) DownloadHandler(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("preset")

	p, err := casetemplate.Lookup(name)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Template not found", err)
	}

	excelBytes, err := h.svc.Bytes(ctx, name)
	if err != nil {
		logger.ErrorLog(ctx, "failed to render template %s: %v", name, err)
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}

	logger.InfoLog(ctx, "serving template %s (%d bytes)", name, len(excelBytes))
	return serviceutils.ResponseFile(c, xlsxContentType, p.OutputPath, excelBytes)
}
