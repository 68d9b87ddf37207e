package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo *MockReceiptRepository
	mockProductRepo *MockProductRepository
	service         portssvc.ReceiptSvcFacade

	product domain.Product
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewReceiptService(suite.mockReceiptRepo, suite.mockProductRepo)

	suite.product = domain.Product{
		ProductID:  uuid.NewString(),
		Code:       "SP001",
		Name:       "Nuoc mam 500ml",
		Unit:       "chai",
		CostPrice:  decimal.NewFromInt(80000),
		SellPrice:  decimal.NewFromInt(150000),
		StockQty:   5,
		AlertLevel: 10,
	}
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_Success() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		ProductID: suite.product.ProductID,
		Quantity:  20,
		CostPrice: decimal.NewFromInt(78000),
	}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockReceiptRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockReceiptRepo.On("SaveReceiptInTx", ctx, mock.Anything, mock.MatchedBy(func(r domain.StockReceipt) bool {
		return r.ProductID == suite.product.ProductID &&
			r.Quantity == 20 &&
			r.CostPrice.Equal(decimal.NewFromInt(78000))
	})).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, mock.Anything, suite.product.ProductID, int64(20)).Return(nil).Once()
	suite.mockReceiptRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockReceiptRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.NotEmpty(receipt.ReceiptID)
	suite.True(receipt.CostPrice.Equal(decimal.NewFromInt(78000)), "receipt keeps its own cost snapshot")
	suite.Require().NotNil(receipt.Product)
	suite.Equal("SP001", receipt.Product.Code)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_BackdatedDate() {
	ctx := context.Background()
	backdated := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	req := dto.CreateReceiptRequest{
		ProductID:   suite.product.ProductID,
		Quantity:    5,
		CostPrice:   decimal.NewFromInt(80000),
		ReceiptDate: &backdated,
	}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockReceiptRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockReceiptRepo.On("SaveReceiptInTx", ctx, mock.Anything, mock.AnythingOfType("domain.StockReceipt")).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, mock.Anything, suite.product.ProductID, int64(5)).Return(nil).Once()
	suite.mockReceiptRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockReceiptRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.True(receipt.ReceiptDate.Equal(backdated))
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_ProductNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	req := dto.CreateReceiptRequest{
		ProductID: unknownID,
		Quantity:  10,
		CostPrice: decimal.NewFromInt(80000),
	}

	suite.mockProductRepo.On("FindProductByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "Begin")
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_NonPositiveQuantityRejected() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		ProductID: suite.product.ProductID,
		Quantity:  0,
		CostPrice: decimal.NewFromInt(80000),
	}

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductByID")
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_NonPositiveCostPriceRejected() {
	ctx := context.Background()

	for _, costPrice := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		req := dto.CreateReceiptRequest{
			ProductID: suite.product.ProductID,
			Quantity:  5,
			CostPrice: costPrice,
		}

		receipt, err := suite.service.CreateReceipt(ctx, req)

		suite.Require().Error(err)
		suite.Nil(receipt)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductByID")
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_RollbackOnStockFailure() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		ProductID: suite.product.ProductID,
		Quantity:  10,
		CostPrice: decimal.NewFromInt(80000),
	}
	boom := errors.New("db gone")

	suite.mockProductRepo.On("FindProductByID", ctx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockReceiptRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockReceiptRepo.On("SaveReceiptInTx", ctx, mock.Anything, mock.AnythingOfType("domain.StockReceipt")).Return(nil).Once()
	suite.mockProductRepo.On("AdjustStockInTx", ctx, mock.Anything, suite.product.ProductID, int64(10)).Return(boom).Once()
	suite.mockReceiptRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "Commit")
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_UnknownProductFilter() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	params := dto.ListReceiptsParams{ProductID: &unknownID, Limit: 10}

	suite.mockProductRepo.On("FindProductByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ListReceipts(ctx, params)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "ListReceipts")
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
