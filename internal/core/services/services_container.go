package services

import (
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/hqtran/shop_inventory_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Receipt = NewReceiptService(repos.ReceiptRepo, repos.ProductRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.ProductRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
