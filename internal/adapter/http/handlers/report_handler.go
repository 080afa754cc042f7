package handlers

import (
	"bytes"
	"net/http"

	response "assettrack/internal/adapter/http/dto/response"
	"assettrack/internal/adapter/export"
	"assettrack/internal/usecase"
	"assettrack/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the per-room asset report and its CSV/PDF downloads.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.usecase.Build(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func (h *ReportHandler) ExportReport(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "pdf" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REPORT_FORMAT", "Format must be csv or pdf", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.Build(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	switch format {
	case "csv":
		err = export.WriteReportCSV(&buf, report)
	case "pdf":
		err = export.WriteReportPDF(&buf, report)
	}
	if err != nil {
		appErr := pkg.NewDomainError("REPORT_RENDER_FAILED", "Failed to render report", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contentType := "text/csv"
	if format == "pdf" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="assets-report.`+format+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
