package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portssvc "github.com/hqtran/shop_inventory_app/internal/core/ports/services"
	"github.com/hqtran/shop_inventory_app/internal/core/services"
	"github.com/hqtran/shop_inventory_app/internal/dto"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	service         portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockProductRepo)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Code:      "SP001",
		Name:      "Nuoc mam 500ml",
		Unit:      "chai",
		CostPrice: decimal.NewFromInt(80000),
		SellPrice: decimal.NewFromInt(150000),
	}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ProductID)
	suite.Equal("SP001", created.Code)
	suite.Equal(int64(0), created.StockQty, "stock defaults to zero")
	suite.Equal(int64(10), created.AlertLevel, "alert level defaults to 10")
	suite.True(created.CostPrice.Equal(decimal.NewFromInt(80000)))
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_ExplicitStockAndAlert() {
	ctx := context.Background()
	stock := int64(25)
	alert := int64(5)
	req := dto.CreateProductRequest{
		Code:       "SP002",
		Name:       "Banh quy",
		Unit:       "box",
		CostPrice:  decimal.NewFromInt(10000),
		SellPrice:  decimal.NewFromInt(15000),
		StockQty:   &stock,
		AlertLevel: &alert,
	}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(25), created.StockQty)
	suite.Equal(int64(5), created.AlertLevel)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePriceRejected() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Code:      "SP003",
		Name:      "Bad price",
		Unit:      "kg",
		CostPrice: decimal.NewFromInt(-1),
		SellPrice: decimal.NewFromInt(100),
	}

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct")
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Code:      "SP001",
		Name:      "Duplicate",
		Unit:      "chai",
		CostPrice: decimal.NewFromInt(100),
		SellPrice: decimal.NewFromInt(200),
	}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_PartialMerge() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := domain.Product{
		ProductID:  productID,
		Code:       "SP001",
		Name:       "Old name",
		Unit:       "chai",
		CostPrice:  decimal.NewFromInt(80000),
		SellPrice:  decimal.NewFromInt(150000),
		StockQty:   12,
		AlertLevel: 10,
	}
	newName := "New name"
	newSell := decimal.NewFromInt(160000)
	req := dto.UpdateProductRequest{Name: &newName, SellPrice: &newSell}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(&existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "New name" &&
			p.SellPrice.Equal(decimal.NewFromInt(160000)) &&
			p.Code == "SP001" &&
			p.StockQty == 12
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, productID, req)

	suite.Require().NoError(err)
	suite.Equal("New name", updated.Name)
	suite.True(updated.SellPrice.Equal(decimal.NewFromInt(160000)))
	suite.Equal(int64(12), updated.StockQty, "untouched fields survive the merge")
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateProduct(ctx, productID, dto.UpdateProductRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_BlockedByHistory() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("DeleteProduct", ctx, productID).Return(apperrors.ErrDependencyExists).Once()

	err := suite.service.DeleteProduct(ctx, productID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDependencyExists)
}

func (suite *ProductServiceTestSuite) TestListLowStockProducts() {
	ctx := context.Background()
	low := []domain.Product{
		{ProductID: uuid.NewString(), Code: "SP009", StockQty: 0, AlertLevel: 10},
		{ProductID: uuid.NewString(), Code: "SP004", StockQty: 3, AlertLevel: 5},
	}

	suite.mockProductRepo.On("ListLowStockProducts", ctx).Return(low, nil).Once()

	products, err := suite.service.ListLowStockProducts(ctx)

	suite.Require().NoError(err)
	suite.Len(products, 2)
	suite.Equal("SP009", products[0].Code, "most depleted first")
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
