package mapping

import (
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	"github.com/hqtran/shop_inventory_app/internal/models"
)

// ToModelSale converts a domain.Sale header for DB storage.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		SaleDate:      d.SaleDate,
		TotalAmount:   d.TotalAmount,
		TotalProfit:   d.TotalProfit,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainSale converts a sale header row back to the domain type.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:      m.SaleID,
		SaleDate:    m.SaleDate,
		TotalAmount: m.TotalAmount,
		TotalProfit: m.TotalProfit,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
		LineCount: m.LineCount,
	}
}

// ToModelSaleLine converts a domain.SaleLine for DB storage.
func ToModelSaleLine(d domain.SaleLine) models.SaleLine {
	return models.SaleLine{
		LineID:    d.LineID,
		SaleID:    d.SaleID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		SellPrice: d.SellPrice,
		Profit:    d.Profit,
	}
}

// ToDomainSaleLine converts a joined line row back to the domain type,
// including the product display snapshot when the join columns are present.
func ToDomainSaleLine(m models.SaleLine) domain.SaleLine {
	d := domain.SaleLine{
		LineID:    m.LineID,
		SaleID:    m.SaleID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		SellPrice: m.SellPrice,
		Profit:    m.Profit,
	}
	if m.ProductCode != "" || m.ProductName != "" {
		d.Product = &domain.ProductRef{
			ProductID: m.ProductID,
			Code:      m.ProductCode,
			Name:      m.ProductName,
			Unit:      m.ProductUnit,
		}
	}
	return d
}

// ToDomainSaleLineSlice converts a slice of joined line rows.
func ToDomainSaleLineSlice(ms []models.SaleLine) []domain.SaleLine {
	ds := make([]domain.SaleLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleLine(m)
	}
	return ds
}
