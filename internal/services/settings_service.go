package services

import (
	"context"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/request_models"
	"refurbmart/internal/repositories"
	"refurbmart/pkg/utils"
)

type SettingsServiceInterface interface {
	GetSettings(ctx context.Context) (*db_models.StoreSettings, error)
	UpdateSettings(ctx context.Context, req request_models.UpdateSettingsRequest) (*db_models.StoreSettings, error)
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepositoryInterface
}

func NewSettingsService(settingsRepo repositories.SettingsRepositoryInterface) SettingsServiceInterface {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

func (s *SettingsService) GetSettings(ctx context.Context) (*db_models.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, req request_models.UpdateSettingsRequest) (*db_models.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if req.GSTEnabled != nil {
		settings.GSTEnabled = *req.GSTEnabled
	}
	if req.GSTRate != nil {
		settings.GSTRate = *req.GSTRate
	}
	if req.ShippingEnabled != nil {
		settings.ShippingEnabled = *req.ShippingEnabled
	}
	if req.ShippingAmount != nil {
		settings.ShippingAmountMinor = *req.ShippingAmount
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}
