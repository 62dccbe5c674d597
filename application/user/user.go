package user

import (
	"context"

	"github.com/muhammadheryan/resource-matcher/constant"
	"github.com/muhammadheryan/resource-matcher/model"
	"github.com/muhammadheryan/resource-matcher/repository/store"
	"github.com/muhammadheryan/resource-matcher/utils/errors"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	validatorx "github.com/muhammadheryan/resource-matcher/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error)
	UpdateLocation(ctx context.Context, phoneNumber string, req *model.LocationRequest) (*model.UserEntity, error)
	SetContactEnabled(ctx context.Context, phoneNumber string, enabled bool) (*model.UserEntity, error)
	SetReminderDays(ctx context.Context, phoneNumber string, days []string) (*model.UserEntity, error)
}

type UserAppImpl struct {
	store store.Store
}

func NewUserApp(store store.Store) UserApp {
	return &UserAppImpl{store: store}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error) {
	phone := validatorx.NormalizePhone(req.PhoneNumber)
	if phone == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	// coordinates come as a pair or not at all
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	existingUser, err := s.store.GetUserByPhone(ctx, phone)
	if err != nil {
		logger.Error("[Register] err store.GetUserByPhone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStore)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	userEntity := &model.UserEntity{
		Name:           req.Name,
		PhoneNumber:    phone,
		Organization:   req.Organization,
		ContactEnabled: true,
	}
	if req.Latitude != nil {
		userEntity.Location = &model.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	id, err := s.store.Create(ctx, model.UserRecord(userEntity))
	if err != nil {
		logger.Error("[Register] err store.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStore)
	}
	userEntity.ID = id

	return userEntity, nil
}

func (s *UserAppImpl) UpdateLocation(ctx context.Context, phoneNumber string, req *model.LocationRequest) (*model.UserEntity, error) {
	return s.modify(ctx, "UpdateLocation", phoneNumber, func(u *model.UserEntity) {
		u.Location = &model.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude}
	})
}

func (s *UserAppImpl) SetContactEnabled(ctx context.Context, phoneNumber string, enabled bool) (*model.UserEntity, error) {
	return s.modify(ctx, "SetContactEnabled", phoneNumber, func(u *model.UserEntity) {
		u.ContactEnabled = enabled
	})
}

// SetReminderDays stores the selected days as a comma separated list in
// week order.
func (s *UserAppImpl) SetReminderDays(ctx context.Context, phoneNumber string, days []string) (*model.UserEntity, error) {
	frequency, ok := constant.FormatReminderDays(days)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.modify(ctx, "SetReminderDays", phoneNumber, func(u *model.UserEntity) {
		u.ReminderFrequency = frequency
	})
}

func (s *UserAppImpl) modify(ctx context.Context, op, phoneNumber string, apply func(*model.UserEntity)) (*model.UserEntity, error) {
	phone := validatorx.NormalizePhone(phoneNumber)
	if phone == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.store.GetUserByPhone(ctx, phone)
	if err != nil {
		logger.Error("["+op+"] err store.GetUserByPhone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStore)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	apply(user)

	ok, err := s.store.Update(ctx, model.UserRecord(user))
	if err != nil {
		logger.Error("["+op+"] err store.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStore)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}
