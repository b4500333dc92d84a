package service

import (
	"context"
	"database/sql"
	goErrors "errors"

	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.ShippingAddress, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.ShippingAddress, error)
	SetDefault(ctx context.Context, userID uuid.UUID, id int64) error
	DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.ShippingAddress, error) {
	address := &models.ShippingAddress{
		UserID:       userID,
		Departamento: utils.SanitizeText(req.Departamento),
		City:         utils.SanitizeText(req.City),
		Address:      utils.SanitizeText(req.Address),
		Reference:    utils.SanitizeText(req.Reference),
		MapURL:       req.MapURL,
		Phone:        utils.SanitizeText(req.Phone),
		IsDefault:    req.IsDefault,
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to save address").WithError(err)
	}

	return address, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.ShippingAddress, error) {
	addresses, err := s.repo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list addresses").WithError(err)
	}

	return addresses, nil
}

func (s *addressService) SetDefault(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.repo.SetDefaultAddress(ctx, userID, id); err != nil {
		return addressError(err, "Failed to update default address")
	}

	return nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.repo.DeleteAddress(ctx, userID, id); err != nil {
		return addressError(err, "Failed to delete address")
	}

	return nil
}

func addressError(err error, msg string) error {
	if goErrors.Is(err, sql.ErrNoRows) {
		return errors.NotFoundError("Address not found").WithError(err)
	}

	return errors.DatabaseError(msg).WithError(err)
}
