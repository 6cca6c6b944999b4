package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/internal/app/service"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
	"github.com/dsev/locknlock-bff/internal/middleware"
)

type ProductController struct {
	catalogService service.CatalogService
}

func NewProductController(catalogService service.CatalogService) *ProductController {
	return &ProductController{
		catalogService: catalogService,
	}
}

// GetActiveProducts returns the storefront catalog
// GET /api/products/active
func (ctrl *ProductController) GetActiveProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.catalogService.ActiveProducts(c.Request.Context())
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Không tải được danh sách sản phẩm")
		return
	}

	log.Debug("Active products served", map[string]interface{}{
		"count": len(products),
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// GetProduct returns one product's detail
// GET /api/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	env, err := ctrl.catalogService.ProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Không tìm thấy sản phẩm")
		return
	}
	respondEnvelope(c, env)
}

// SearchProducts searches the catalog by keyword
// GET /api/products/search?q=
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Vui lòng nhập từ khóa tìm kiếm")
		return
	}

	env, err := ctrl.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Tìm kiếm thất bại")
		return
	}
	respondEnvelope(c, env)
}

// GetProductsByCategory lists products of one category
// GET /api/products/category/:id
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	env, err := ctrl.catalogService.ByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Không tải được danh mục sản phẩm")
		return
	}
	respondEnvelope(c, env)
}

// GetProductsByTag lists products carrying one tag
// GET /api/products/tag/:id
func (ctrl *ProductController) GetProductsByTag(c *gin.Context) {
	env, err := ctrl.catalogService.ByTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ResourceNotFound, "Không tải được sản phẩm theo nhãn")
		return
	}
	respondEnvelope(c, env)
}
