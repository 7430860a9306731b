package service

import (
	"context"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
)

// SettingsService manages the current property's profile
type SettingsService struct {
	propertyRepo repository.PropertyRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(propertyRepo repository.PropertyRepository) *SettingsService {
	return &SettingsService{propertyRepo: propertyRepo}
}

// GetProperty returns the property of the current session
func (s *SettingsService) GetProperty(ctx context.Context) (*entity.Property, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.GetByID(ctx, sess.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewNotFoundError("Property")
	}
	return property, nil
}

// UpdateSettingsInput carries the fields to change; nil leaves a field as is
type UpdateSettingsInput struct {
	Name           *string
	Address        *string
	Phone          *string
	Email          *string
	GSTIN          *string
	CurrencySymbol *string
	Timezone       *string
	CheckInTime    *string
	CheckOutTime   *string
	BookingPrefix  *string
	ReceiptFooter  *string
}

// UpdateProperty applies input to the current property. Admin only.
func (s *SettingsService) UpdateProperty(ctx context.Context, input *UpdateSettingsInput) (*entity.Property, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	property, err := s.GetProperty(ctx)
	if err != nil {
		return nil, err
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&property.Name, input.Name)
	set(&property.Address, input.Address)
	set(&property.Phone, input.Phone)
	set(&property.Email, input.Email)
	set(&property.GSTIN, input.GSTIN)
	set(&property.Settings.CurrencySymbol, input.CurrencySymbol)
	set(&property.Settings.Timezone, input.Timezone)
	set(&property.Settings.CheckInTime, input.CheckInTime)
	set(&property.Settings.CheckOutTime, input.CheckOutTime)
	set(&property.Settings.BookingPrefix, input.BookingPrefix)
	set(&property.Settings.ReceiptFooter, input.ReceiptFooter)

	if property.Name == "" {
		return nil, apperror.NewFieldError("name", "is required")
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}
