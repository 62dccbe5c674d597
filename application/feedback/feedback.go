package feedback

import (
	"context"
	"strings"

	"github.com/muhammadheryan/resource-matcher/constant"
	"github.com/muhammadheryan/resource-matcher/model"
	"github.com/muhammadheryan/resource-matcher/repository/store"
	"github.com/muhammadheryan/resource-matcher/utils/errors"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	validatorx "github.com/muhammadheryan/resource-matcher/utils/validator"
	"go.uber.org/zap"
)

type FeedbackApp interface {
	Submit(ctx context.Context, req *model.FeedbackRequest) error
}

type feedbackAppImpl struct {
	store store.Store
}

func NewFeedbackApp(store store.Store) FeedbackApp {
	return &feedbackAppImpl{store: store}
}

func (s *feedbackAppImpl) Submit(ctx context.Context, req *model.FeedbackRequest) error {
	text := strings.TrimSpace(req.Text)
	phone := validatorx.NormalizePhone(req.PhoneNumber)
	if text == "" || phone == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.store.GetUserByPhone(ctx, phone)
	if err != nil {
		logger.Error("[SubmitFeedback] err store.GetUserByPhone", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStore)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if _, err := s.store.Create(ctx, model.FeedbackRecord(&model.FeedbackEntity{CreatedByID: user.ID, Text: text})); err != nil {
		logger.Error("[SubmitFeedback] err store.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStore)
	}
	return nil
}
