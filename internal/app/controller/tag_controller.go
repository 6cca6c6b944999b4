package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/internal/app/service"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
)

type TagController struct {
	catalogService service.CatalogService
}

func NewTagController(catalogService service.CatalogService) *TagController {
	return &TagController{
		catalogService: catalogService,
	}
}

// GetTags lists every tag
// GET /api/tags
func (ctrl *TagController) GetTags(c *gin.Context) {
	env, err := ctrl.catalogService.Tags(c.Request.Context())
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Không tải được danh sách nhãn")
		return
	}
	respondEnvelope(c, env)
}

// GetTag returns one tag
// GET /api/tags/:id
func (ctrl *TagController) GetTag(c *gin.Context) {
	env, err := ctrl.catalogService.TagByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Không tìm thấy nhãn")
		return
	}
	respondEnvelope(c, env)
}
