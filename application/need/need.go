package need

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

type NeedApp interface {
	// Upsert creates, updates or (quantity 0) deletes the organization's
	// need for the category/name pair.
	Upsert(ctx context.Context, req *model.NeedRequest) (*model.NeedResponse, error)
}

type needAppImpl struct {
	catalog *model.Catalog
	store   store.Store
}

func NewNeedApp(catalog *model.Catalog, store store.Store) NeedApp {
	return &needAppImpl{catalog: catalog, store: store}
}

func (s *needAppImpl) Upsert(ctx context.Context, req *model.NeedRequest) (*model.NeedResponse, error) {
	if req.Quantity < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	category := s.catalog.Category(req.Category)
	if category == nil || !category.HasResource(req.Name) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	phone := validatorx.NormalizePhone(req.PhoneNumber)
	if phone == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	org, err := s.store.GetUserByPhone(ctx, phone)
	if err != nil {
		logger.Error("[UpsertNeed] err store.GetUserByPhone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStore)
	}
	if org == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.store.GetNeedForUser(ctx, org.ID, req.Category, req.Name)
	if err != nil {
		logger.Error("[UpsertNeed] err store.GetNeedForUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStore)
	}

	if req.Quantity == 0 {
		if existing == nil {
			return &model.NeedResponse{Outcome: constant.OutcomeNoOp}, nil
		}
		if _, err := s.store.Delete(ctx, model.NeedRecord(existing)); err != nil {
			logger.Error("[UpsertNeed] err store.Delete", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrStore)
		}
		return &model.NeedResponse{Outcome: constant.OutcomeDeleted}, nil
	}

	if existing != nil {
		existing.Quantity = req.Quantity
		existing.UnopenedOnly = req.UnopenedOnly
		existing.Instructions = req.Instructions
		ok, err := s.store.Update(ctx, model.NeedRecord(existing))
		if err != nil {
			logger.Error("[UpsertNeed] err store.Update", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrStore)
		}
		if ok {
			return &model.NeedResponse{Outcome: constant.OutcomeUpdated, Need: existing}, nil
		}
	}

	need := &model.NeedEntity{
		CreatedByID:  org.ID,
		Category:     req.Category,
		Name:         req.Name,
		Quantity:     req.Quantity,
		UnopenedOnly: req.UnopenedOnly,
		Instructions: req.Instructions,
	}
	id, err := s.store.Create(ctx, model.NeedRecord(need))
	if err != nil {
		logger.Error("[UpsertNeed] err store.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStore)
	}
	need.ID = id

	return &model.NeedResponse{Outcome: constant.OutcomeCreated, Need: need}, nil
}
