package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/muhammadheryan/resource-matcher/constant"
	"github.com/muhammadheryan/resource-matcher/model"
	feedbackrepo "github.com/muhammadheryan/resource-matcher/repository/feedback"
	needrepo "github.com/muhammadheryan/resource-matcher/repository/need"
	resourcerepo "github.com/muhammadheryan/resource-matcher/repository/resource"
	userrepo "github.com/muhammadheryan/resource-matcher/repository/user"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	validatorx "github.com/muhammadheryan/resource-matcher/utils/validator"
	"go.uber.org/zap"
)

var (
	// ErrUnknownRecord means a record kind has no collection wired.
	ErrUnknownRecord = errors.New("unknown record kind")
	ErrInvalidRecord = errors.New("invalid record")
)

// Store is the single persistence facade used by the application layer.
// Queries return empty slices or nil entities when nothing matches.
type Store interface {
	Create(ctx context.Context, record model.Record) (string, error)
	Update(ctx context.Context, record model.Record) (bool, error)
	Delete(ctx context.Context, record model.Record) (bool, error)

	GetUser(ctx context.Context, id string) (*model.UserEntity, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (*model.UserEntity, error)
	GetUsersWithinDistance(ctx context.Context, point model.Coordinates, distanceMeters float64) ([]model.UserEntity, error)

	GetResourceForUser(ctx context.Context, userID, category, name string) (*model.ResourceEntity, error)
	GetNeedForUser(ctx context.Context, userID, category, name string) (*model.NeedEntity, error)
	GetNeedByID(ctx context.Context, id string) (*model.NeedEntity, error)
	GetNeeds(ctx context.Context, category, name string) ([]model.NeedEntity, error)
}

type facade struct {
	users     userrepo.UserRepository
	resources resourcerepo.ResourceRepository
	needs     needrepo.NeedRepository
	feedback  feedbackrepo.FeedbackRepository
}

func NewStore(users userrepo.UserRepository, resources resourcerepo.ResourceRepository, needs needrepo.NeedRepository, feedback feedbackrepo.FeedbackRepository) Store {
	return &facade{users: users, resources: resources, needs: needs, feedback: feedback}
}

// Create assigns an ID when the record has none and returns it.
func (s *facade) Create(ctx context.Context, record model.Record) (string, error) {
	if err := check(record); err != nil {
		return "", err
	}
	switch record.Kind {
	case constant.CollectionUsers:
		if err := prepare(record.User, &record.User.ID); err != nil {
			return "", err
		}
		return record.User.ID, s.users.Create(ctx, record.User)
	case constant.CollectionResources:
		if err := prepare(record.Resource, &record.Resource.ID); err != nil {
			return "", err
		}
		return record.Resource.ID, s.resources.Create(ctx, record.Resource)
	case constant.CollectionNeeds:
		if err := prepare(record.Need, &record.Need.ID); err != nil {
			return "", err
		}
		return record.Need.ID, s.needs.Create(ctx, record.Need)
	case constant.CollectionFeedback:
		if err := prepare(record.Feedback, &record.Feedback.ID); err != nil {
			return "", err
		}
		return record.Feedback.ID, s.feedback.Create(ctx, record.Feedback)
	}
	return "", fmt.Errorf("create %q: %w", record.Kind, ErrUnknownRecord)
}

// Update reports false when the record no longer exists.
func (s *facade) Update(ctx context.Context, record model.Record) (bool, error) {
	if err := check(record); err != nil {
		return false, err
	}
	var (
		ok  bool
		err error
	)
	switch record.Kind {
	case constant.CollectionUsers:
		if err = validate(record.User); err == nil {
			ok, err = s.users.Update(ctx, record.User)
		}
	case constant.CollectionResources:
		if err = validate(record.Resource); err == nil {
			ok, err = s.resources.Update(ctx, record.Resource)
		}
	case constant.CollectionNeeds:
		if err = validate(record.Need); err == nil {
			ok, err = s.needs.Update(ctx, record.Need)
		}
	default:
		// feedback is immutable
		return false, fmt.Errorf("update %q: %w", record.Kind, ErrUnknownRecord)
	}
	if err == nil && !ok {
		logger.Debug("[Store.Update] record not found", zap.String("collection", string(record.Kind)))
	}
	return ok, err
}

// Delete of a missing record is a no-op reported as false.
func (s *facade) Delete(ctx context.Context, record model.Record) (bool, error) {
	if err := check(record); err != nil {
		return false, err
	}
	id := recordID(record)

	var (
		ok  bool
		err error
	)
	switch record.Kind {
	case constant.CollectionUsers:
		ok, err = s.users.Delete(ctx, id)
	case constant.CollectionResources:
		ok, err = s.resources.Delete(ctx, id)
	case constant.CollectionNeeds:
		ok, err = s.needs.Delete(ctx, id)
	case constant.CollectionFeedback:
		ok, err = s.feedback.Delete(ctx, id)
	}
	if err == nil && !ok {
		logger.Debug("[Store.Delete] record not found", zap.String("collection", string(record.Kind)), zap.String("id", id))
	}
	return ok, err
}

func (s *facade) GetUser(ctx context.Context, id string) (*model.UserEntity, error) {
	return s.users.Get(ctx, &model.UserFilter{ID: id})
}

func (s *facade) GetUserByPhone(ctx context.Context, phoneNumber string) (*model.UserEntity, error) {
	if phoneNumber == "" {
		return nil, nil
	}
	return s.users.Get(ctx, &model.UserFilter{PhoneNumber: phoneNumber})
}

func (s *facade) GetUsersWithinDistance(ctx context.Context, point model.Coordinates, distanceMeters float64) ([]model.UserEntity, error) {
	return s.users.ListWithinDistance(ctx, point, distanceMeters)
}

func (s *facade) GetResourceForUser(ctx context.Context, userID, category, name string) (*model.ResourceEntity, error) {
	return s.resources.GetForUser(ctx, userID, category, name)
}

func (s *facade) GetNeedForUser(ctx context.Context, userID, category, name string) (*model.NeedEntity, error) {
	return s.needs.GetForUser(ctx, userID, category, name)
}

func (s *facade) GetNeedByID(ctx context.Context, id string) (*model.NeedEntity, error) {
	return s.needs.GetByID(ctx, id)
}

func (s *facade) GetNeeds(ctx context.Context, category, name string) ([]model.NeedEntity, error) {
	return s.needs.ListByCategoryAndName(ctx, category, name)
}

func prepare(entity any, id *string) error {
	if err := validate(entity); err != nil {
		return err
	}
	if *id == "" {
		*id = uuid.NewString()
	}
	return nil
}

func validate(entity any) error {
	if err := validatorx.ValidateStruct(entity); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, err.Error())
	}
	return nil
}

// check rejects records whose kind is unknown or whose entity is missing.
func check(record model.Record) error {
	var missing bool
	switch record.Kind {
	case constant.CollectionUsers:
		missing = record.User == nil
	case constant.CollectionResources:
		missing = record.Resource == nil
	case constant.CollectionNeeds:
		missing = record.Need == nil
	case constant.CollectionFeedback:
		missing = record.Feedback == nil
	default:
		return fmt.Errorf("%q: %w", record.Kind, ErrUnknownRecord)
	}
	if missing {
		return fmt.Errorf("%w: no %s entity", ErrInvalidRecord, record.Kind)
	}
	return nil
}

func recordID(record model.Record) string {
	switch record.Kind {
	case constant.CollectionUsers:
		return record.User.ID
	case constant.CollectionResources:
		return record.Resource.ID
	case constant.CollectionNeeds:
		return record.Need.ID
	case constant.CollectionFeedback:
		return record.Feedback.ID
	}
	return ""
}
