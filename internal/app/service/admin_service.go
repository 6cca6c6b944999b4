package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/xuri/excelize/v2"

	appGateway "github.com/dsev/locknlock-bff/internal/app/gateway"
	"github.com/dsev/locknlock-bff/pkg/gateway"
	"github.com/dsev/locknlock-bff/pkg/logger"
)

// AdminService relays admin console calls to the backend and renders the
// product export spreadsheet.
type AdminService interface {
	Forward(ctx context.Context, token, method, path string, query url.Values, payload json.RawMessage) (*gateway.Envelope, error)
	ExportProducts(ctx context.Context, token string) ([]byte, string, error)
}

type adminService struct {
	adminGateway   appGateway.AdminGateway
	catalogService CatalogService
}

func NewAdminService(adminGateway appGateway.AdminGateway, catalogService CatalogService) AdminService {
	return &adminService{
		adminGateway:   adminGateway,
		catalogService: catalogService,
	}
}

func (s *adminService) Forward(ctx context.Context, token, method, path string, query url.Values, payload json.RawMessage) (*gateway.Envelope, error) {
	env, err := s.adminGateway.Forward(ctx, token, method, path, query, payload)
	if err != nil {
		logger.Error("Admin relay failed", err, map[string]interface{}{
			"method": method,
			"path":   path,
		})
		return nil, err
	}
	return env, nil
}

var productExportHeader = []string{"Mã sản phẩm", "Tên sản phẩm", "Phân loại", "Giá (VND)", "Tồn kho", "Đang bán"}

// ExportProducts writes the active catalog into an XLSX workbook, one row
// per variant, and returns the file bytes with a dated filename.
func (s *adminService) ExportProducts(ctx context.Context, token string) ([]byte, string, error) {
	products, err := s.catalogService.ActiveProducts(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range productExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for i := range products {
		product := products[i]
		for j := range product.Variants {
			variant := product.Variants[j]
			name := product.Name
			if variant.Name != "" {
				name = fmt.Sprintf("%s - %s", product.Name, variant.Name)
			}
			values := []interface{}{product.ID, name, product.CategoryID, variant.Price, variant.Stock, product.Active}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return nil, "", fmt.Errorf("failed to write row: %w", err)
				}
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("san-pham-%s.xlsx", time.Now().Format("2006-01-02"))
	logger.Info("Product export generated", map[string]interface{}{
		"rows":     row - 2,
		"filename": filename,
	})
	return buf.Bytes(), filename, nil
}
