package service

import (
	"context"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
)

type AddressService interface {
	GetAddresses(ctx context.Context) (*models.DepositAddresses, error)
}

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

func (s *addressService) GetAddresses(ctx context.Context) (*models.DepositAddresses, error) {
	addresses, err := s.addressRepo.GetAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if addresses == nil {
		return nil, ErrAddressesMissing
	}
	return addresses, nil
}
