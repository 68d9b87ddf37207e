package mapping

import (
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	"github.com/hqtran/shop_inventory_app/internal/models"
)

// ToModelProduct converts a domain.Product for DB storage.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:  d.ProductID,
		Code:       d.Code,
		Name:       d.Name,
		Unit:       d.Unit,
		CostPrice:  d.CostPrice,
		SellPrice:  d.SellPrice,
		StockQty:   d.StockQty,
		AlertLevel: d.AlertLevel,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainProduct converts a DB row back to the domain type.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:  m.ProductID,
		Code:       m.Code,
		Name:       m.Name,
		Unit:       m.Unit,
		CostPrice:  m.CostPrice,
		SellPrice:  m.SellPrice,
		StockQty:   m.StockQty,
		AlertLevel: m.AlertLevel,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainProductSlice converts a slice of rows.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
