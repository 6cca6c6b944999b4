package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/internal/app/service"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
	"github.com/dsev/locknlock-bff/internal/middleware"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Handle dispatches an admin console call. The export download is the one
// endpoint the BFF answers itself, everything else is relayed.
// ANY /api/admin/*path
func (ctrl *AdminController) Handle(c *gin.Context) {
	if c.Request.Method == http.MethodGet && isExportPath(c.Param("path")) {
		ctrl.ExportProducts(c)
		return
	}
	ctrl.relay(c)
}

// relay forwards the call to the matching backend admin endpoint with the
// caller's credentials attached.
func (ctrl *AdminController) relay(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	token := middleware.GetToken(c)

	path := "/api/v1/admin" + c.Param("path")

	var payload json.RawMessage
	if c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
			return
		}
		if len(body) > 0 {
			payload = json.RawMessage(body)
		}
	}

	env, err := ctrl.adminService.Forward(c.Request.Context(), token, c.Request.Method, path, c.Request.URL.Query(), payload)
	if err != nil {
		log.Error("Admin relay failed", err, map[string]interface{}{
			"method": c.Request.Method,
			"path":   path,
		})
		apperrors.RespondGatewayError(c, err, apperrors.InternalGatewayError, "Thao tác thất bại")
		return
	}
	respondEnvelope(c, env)
}

// ExportProducts downloads the catalog as an XLSX workbook
// GET /api/admin/products/export
func (ctrl *AdminController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	token := middleware.GetToken(c)

	data, filename, err := ctrl.adminService.ExportProducts(c.Request.Context(), token)
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Xuất danh sách sản phẩm thất bại")
		return
	}

	log.Info("Product export downloaded", map[string]interface{}{
		"filename": filename,
		"bytes":    len(data),
	})
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// isExportPath tells the relay route apart from the export download.
func isExportPath(path string) bool {
	return strings.TrimSuffix(path, "/") == "/products/export"
}
