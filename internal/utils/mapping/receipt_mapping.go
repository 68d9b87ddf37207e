package mapping

import (
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	"github.com/hqtran/shop_inventory_app/internal/models"
)

// ToModelReceipt converts a domain.StockReceipt for DB storage.
func ToModelReceipt(d domain.StockReceipt) models.StockReceipt {
	return models.StockReceipt{
		ReceiptID:   d.ReceiptID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		CostPrice:   d.CostPrice,
		ReceiptDate: d.ReceiptDate,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainReceipt converts a joined DB row back to the domain type, including
// the product display snapshot when the join columns are present.
func ToDomainReceipt(m models.StockReceipt) domain.StockReceipt {
	d := domain.StockReceipt{
		ReceiptID:   m.ReceiptID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		CostPrice:   m.CostPrice,
		ReceiptDate: m.ReceiptDate,
		CreatedAt:   m.CreatedAt,
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

// ToDomainReceiptSlice converts a slice of joined rows.
func ToDomainReceiptSlice(ms []models.StockReceipt) []domain.StockReceipt {
	ds := make([]domain.StockReceipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}
