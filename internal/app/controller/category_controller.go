package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/internal/app/service"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
)

type CategoryController struct {
	catalogService service.CatalogService
}

func NewCategoryController(catalogService service.CatalogService) *CategoryController {
	return &CategoryController{
		catalogService: catalogService,
	}
}

// GetCategories lists every category
// GET /api/categories
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	env, err := ctrl.catalogService.Categories(c.Request.Context())
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Không tải được danh mục sản phẩm")
		return
	}
	respondEnvelope(c, env)
}
