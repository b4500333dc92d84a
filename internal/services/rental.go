package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"log/slog"
	"time"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RentalService interface {
	Quote(ctx context.Context, productID int64, start, end string) (*models.RentalPricing, error)
	CreateRental(ctx context.Context, userID uuid.UUID, req *models.CreateRentalRequest) (*models.Rental, error)
	ListRentals(ctx context.Context, userID *uuid.UUID) ([]models.Rental, error)
	UpdateStatus(ctx context.Context, id int64, status models.RentalStatus) (*models.Rental, error)
}

type rentalService struct {
	repo     repository.RentalRepository
	products ProductService
	now      func() time.Time
}

func NewRentalService(repo repository.RentalRepository, products ProductService) RentalService {
	return &rentalService{repo: repo, products: products, now: time.Now}
}

// period parses and checks a booking window: start no earlier than today,
// end strictly after start.
func (s *rentalService) period(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.AddValidationError("start_date", "must be a date like 2006-01-02")
	}

	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, errors.AddValidationError("end_date", "must be a date like 2006-01-02")
	}

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	if startDate.Before(today) {
		return time.Time{}, time.Time{}, errors.AddValidationError("start_date", "cannot be in the past")
	}

	if !endDate.After(startDate) {
		return time.Time{}, time.Time{}, errors.AddValidationError("end_date", "must be after the start date")
	}

	return startDate, endDate, nil
}

func (s *rentalService) rentable(ctx context.Context, productID int64) (*models.Product, error) {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.ProductType != models.ProductTypeRental || !product.Available {
		return nil, errors.BadRequestError("Product is not available for rental")
	}

	return product, nil
}

func (s *rentalService) Quote(ctx context.Context, productID int64, start, end string) (*models.RentalPricing, error) {
	startDate, endDate, err := s.period(start, end)
	if err != nil {
		return nil, err
	}

	product, err := s.rentable(ctx, productID)
	if err != nil {
		return nil, err
	}

	pricing := models.PriceRental(product.SellingPrice(), startDate, endDate)

	return &pricing, nil
}

func (s *rentalService) CreateRental(ctx context.Context, userID uuid.UUID, req *models.CreateRentalRequest) (*models.Rental, error) {
	logger := middleware.LoggerFromContext(ctx)

	startDate, endDate, err := s.period(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	product, err := s.rentable(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	rental := &models.Rental{
		UserID:              userID,
		ProductID:           product.ID,
		ProductName:         product.Name,
		Status:              models.RentalStatusPending,
		StartDate:           startDate,
		EndDate:             endDate,
		ContactName:         utils.SanitizeText(req.ContactName),
		ContactPhone:        utils.SanitizeText(req.ContactPhone),
		DeliveryAddress:     utils.SanitizeText(req.DeliveryAddress),
		DeliveryCity:        utils.SanitizeText(req.DeliveryCity),
		SpecialRequirements: utils.SanitizeText(req.SpecialRequirements),
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"contact_name", rental.ContactName},
		{"contact_phone", rental.ContactPhone},
		{"delivery_address", rental.DeliveryAddress},
		{"delivery_city", rental.DeliveryCity},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return nil, errors.MissingFieldsError(missing)
	}

	pricing := models.PriceRental(product.SellingPrice(), startDate, endDate)
	rental.DailyPrice = pricing.DailyPrice
	rental.TotalPrice = pricing.Total
	rental.DurationType = pricing.DurationType
	rental.DurationQuantity = pricing.DurationQuantity

	if err := s.repo.CreateRental(ctx, rental); err != nil {
		return nil, errors.DatabaseError("Failed to create rental").WithError(err)
	}

	logger.Info("Rental booked",
		slog.Int64("rentalId", rental.ID),
		slog.Int64("productId", product.ID),
		slog.String("durationType", string(rental.DurationType)),
	)

	return rental, nil
}

// ListRentals returns every rental when userID is nil.
func (s *rentalService) ListRentals(ctx context.Context, userID *uuid.UUID) ([]models.Rental, error) {
	rentals, err := s.repo.ListRentals(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list rentals").WithError(err)
	}

	return rentals, nil
}

func (s *rentalService) UpdateStatus(ctx context.Context, id int64, status models.RentalStatus) (*models.Rental, error) {
	if err := s.repo.UpdateRentalStatus(ctx, id, status); err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Rental not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to update rental").WithError(err)
	}

	rental, err := s.repo.GetRental(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch rental").WithError(err)
	}

	return rental, nil
}
