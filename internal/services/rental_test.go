package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	appErrors "github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/repositories/mocks"
	service "github.com/frozz/storefront/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func newRentalService() (*mocks.RentalRepository, *mocks.ProductRepository, service.RentalService) {
	rentals := new(mocks.RentalRepository)
	products := new(mocks.ProductRepository)

	return rentals, products, service.NewRentalService(rentals, service.NewProductService(products, new(mocks.CategoryRepository), 5))
}

func rentalProduct() *models.Product {
	return &models.Product{
		ID: 11, Name: "Congelador horizontal", ProductType: models.ProductTypeRental,
		Price: decimal.NewFromInt(40000), Available: true,
	}
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	validRequest := func() *models.CreateRentalRequest {
		return &models.CreateRentalRequest{
			ProductID:       11,
			StartDate:       futureDate(2),
			EndDate:         futureDate(11),
			ContactName:     "Ana Torres",
			ContactPhone:    "3005550000",
			DeliveryAddress: "Cll 50 # 40-20",
			DeliveryCity:    "Medellín",
		}
	}

	t.Run("Success - Weekly bracket", func(t *testing.T) {
		rentals, products, rentalService := newRentalService()

		products.On("GetProductByID", ctx, int64(11)).Return(rentalProduct(), nil).Once()
		rentals.On("CreateRental", ctx, mock.AnythingOfType("*models.Rental")).Return(nil).Once()

		rental, err := rentalService.CreateRental(ctx, userID, validRequest())

		require.NoError(t, err)
		assert.Equal(t, models.RentalStatusPending, rental.Status)
		// 10 days -> 2 started weeks at 15% off
		assert.Equal(t, models.DurationWeekly, rental.DurationType)
		assert.Equal(t, 2, rental.DurationQuantity)
		assert.True(t, decimal.NewFromInt(476000).Equal(rental.TotalPrice))

		rentals.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	t.Run("Failure - Start in the past", func(t *testing.T) {
		_, _, rentalService := newRentalService()

		req := validRequest()
		req.StartDate = futureDate(-1)

		rental, err := rentalService.CreateRental(ctx, userID, req)

		assert.Nil(t, rental)
		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - End not after start", func(t *testing.T) {
		_, _, rentalService := newRentalService()

		req := validRequest()
		req.EndDate = req.StartDate

		_, err := rentalService.CreateRental(ctx, userID, req)

		assertAppErrorCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Not a rental product", func(t *testing.T) {
		_, products, rentalService := newRentalService()

		product := rentalProduct()
		product.ProductType = models.ProductTypeSale
		products.On("GetProductByID", ctx, int64(11)).Return(product, nil).Once()

		_, err := rentalService.CreateRental(ctx, userID, validRequest())

		assertAppErrorCode(t, err, appErrors.ErrCodeBadRequest)
	})
}

func TestRentalService_Quote(t *testing.T) {
	ctx := context.Background()
	_, products, rentalService := newRentalService()

	products.On("GetProductByID", ctx, int64(11)).Return(rentalProduct(), nil).Once()

	pricing, err := rentalService.Quote(ctx, 11, futureDate(1), futureDate(3))

	require.NoError(t, err)
	assert.Equal(t, models.DurationDaily, pricing.DurationType)
	assert.Equal(t, 3, pricing.Days)
	assert.True(t, decimal.NewFromInt(120000).Equal(pricing.Total))
}

func TestRentalService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentals, _, rentalService := newRentalService()

		rentals.On("UpdateRentalStatus", ctx, int64(4), models.RentalStatusConfirmed).Return(nil).Once()
		rentals.On("GetRental", ctx, int64(4)).Return(&models.Rental{ID: 4, Status: models.RentalStatusConfirmed}, nil).Once()

		rental, err := rentalService.UpdateStatus(ctx, 4, models.RentalStatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, models.RentalStatusConfirmed, rental.Status)
		rentals.AssertExpectations(t)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		rentals, _, rentalService := newRentalService()

		rentals.On("UpdateRentalStatus", ctx, int64(4), models.RentalStatusActive).Return(sql.ErrNoRows).Once()

		_, err := rentalService.UpdateStatus(ctx, 4, models.RentalStatusActive)

		assertAppErrorCode(t, err, appErrors.ErrCodeNotFound)
	})
}
