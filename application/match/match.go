package match

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/muhammadheryan/resource-matcher/cmd/config"
	"github.com/muhammadheryan/resource-matcher/constant"
	"github.com/muhammadheryan/resource-matcher/model"
	"github.com/muhammadheryan/resource-matcher/repository/store"
	"github.com/muhammadheryan/resource-matcher/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/resource-matcher/utils/errors"
	"github.com/muhammadheryan/resource-matcher/utils/geo"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MatchApp interface {
	// FindMatches lists the unmet needs near owner that resource can
	// satisfy, nearest first.
	FindMatches(ctx context.Context, resource *model.ResourceEntity, owner *model.UserEntity) ([]model.Match, error)
	// FindResourcesForNeed lists offered resources near the need's owner
	// that satisfy it, nearest first.
	FindResourcesForNeed(ctx context.Context, needID string) (*model.ResourceMatchResponse, error)
	// NotifyMatches publishes one notification per match. Failures are
	// logged, never returned.
	NotifyMatches(ctx context.Context, matches []model.Match)
}

type matchAppImpl struct {
	config    *config.Config
	store     store.Store
	publisher rabbitmq.MatchPublisher
}

func NewMatchApp(config *config.Config, store store.Store, publisher rabbitmq.MatchPublisher) MatchApp {
	return &matchAppImpl{config: config, store: store, publisher: publisher}
}

func (s *matchAppImpl) radius() float64 {
	if s.config == nil || s.config.Match.RadiusMeters <= 0 {
		return constant.DefaultMatchRadiusMeters
	}
	return s.config.Match.RadiusMeters
}

func (s *matchAppImpl) parallelism() int {
	if s.config == nil || s.config.Match.MaxParallelLookups <= 0 {
		return 8
	}
	return s.config.Match.MaxParallelLookups
}

func (s *matchAppImpl) FindMatches(ctx context.Context, resource *model.ResourceEntity, owner *model.UserEntity) ([]model.Match, error) {
	if resource == nil || resource.Quantity <= 0 {
		return nil, nil
	}
	if !owner.HasLocation() {
		logger.Debug("[FindMatches] owner has no location", zap.String("resource_id", resource.ID))
		return nil, nil
	}

	needs, err := s.store.GetNeeds(ctx, resource.Category, resource.Name)
	if err != nil {
		logger.Error("[FindMatches] err store.GetNeeds", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}

	// cheap filters first so only plausible candidates cost an owner lookup
	candidates := make([]model.NeedEntity, 0, len(needs))
	for _, need := range needs {
		if need.Quantity <= 0 || !need.AcceptsCondition(resource.IsUnopened) {
			continue
		}
		candidates = append(candidates, need)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	owners, err := s.lookupOwners(ctx, candidates)
	if err != nil {
		logger.Error("[FindMatches] err lookupOwners", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}

	radius := s.radius()
	matches := make([]model.Match, 0, len(candidates))
	for i := range candidates {
		needOwner := owners[candidates[i].CreatedByID]
		if !needOwner.HasLocation() {
			continue
		}
		distance := geo.Distance(*owner.Location, *needOwner.Location)
		if distance > radius {
			continue
		}
		matches = append(matches, model.Match{
			Resource:       resource,
			Need:           &candidates[i],
			NeedOwner:      needOwner,
			DistanceMeters: distance,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})
	return matches, nil
}

// lookupOwners fetches each distinct need owner once, in parallel.
func (s *matchAppImpl) lookupOwners(ctx context.Context, needs []model.NeedEntity) (map[string]*model.UserEntity, error) {
	var (
		mu     sync.Mutex
		owners = make(map[string]*model.UserEntity, len(needs))
	)

	ids := make([]string, 0, len(needs))
	seen := make(map[string]bool, len(needs))
	for _, need := range needs {
		if !seen[need.CreatedByID] {
			seen[need.CreatedByID] = true
			ids = append(ids, need.CreatedByID)
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.parallelism())
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			user, err := s.store.GetUser(egCtx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			owners[id] = user
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return owners, nil
}

func (s *matchAppImpl) FindResourcesForNeed(ctx context.Context, needID string) (*model.ResourceMatchResponse, error) {
	need, err := s.store.GetNeedByID(ctx, needID)
	if err != nil {
		logger.Error("[FindResourcesForNeed] err store.GetNeedByID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}
	if need == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	org, err := s.store.GetUser(ctx, need.CreatedByID)
	if err != nil {
		logger.Error("[FindResourcesForNeed] err store.GetUser", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}
	if org == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	if !org.HasLocation() {
		return nil, cerr.SetCustomError(constant.ErrLocationNotSet)
	}

	res := &model.ResourceMatchResponse{NeedID: need.ID, Matches: make([]model.ResourceMatch, 0)}
	if need.Quantity <= 0 {
		return res, nil
	}

	radius := s.radius()
	donors, err := s.store.GetUsersWithinDistance(ctx, *org.Location, radius)
	if err != nil {
		logger.Error("[FindResourcesForNeed] err store.GetUsersWithinDistance", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}

	for i := range donors {
		donor := &donors[i]
		if donor.ID == org.ID || !donor.HasLocation() {
			continue
		}
		// the store's spatial predicate is approximate; recheck with ours
		distance := geo.Distance(*org.Location, *donor.Location)
		if distance > radius {
			continue
		}
		resource, err := s.store.GetResourceForUser(ctx, donor.ID, need.Category, need.Name)
		if err != nil {
			logger.Error("[FindResourcesForNeed] err store.GetResourceForUser", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrStore)
		}
		if resource == nil || resource.Quantity <= 0 || !need.AcceptsCondition(resource.IsUnopened) {
			continue
		}
		res.Matches = append(res.Matches, model.ResourceMatch{
			Resource:       resource,
			Owner:          donor,
			DistanceMeters: distance,
		})
	}

	sort.SliceStable(res.Matches, func(i, j int) bool {
		return res.Matches[i].DistanceMeters < res.Matches[j].DistanceMeters
	})
	return res, nil
}

func (s *matchAppImpl) NotifyMatches(ctx context.Context, matches []model.Match) {
	if s.publisher == nil || len(matches) == 0 {
		return
	}
	if s.config != nil && !s.config.Match.PublishNotification {
		return
	}

	now := time.Now().UTC()
	for _, m := range matches {
		// owners who turned contact off are still matched, just not notified
		if m.NeedOwner != nil && !m.NeedOwner.ContactEnabled {
			continue
		}
		msg := rabbitmq.MatchNotification{
			NeedID:         m.Need.ID,
			NeedOwnerID:    m.Need.CreatedByID,
			ResourceID:     m.Resource.ID,
			DonorID:        m.Resource.CreatedByID,
			Category:       m.Resource.Category,
			Name:           m.Resource.Name,
			Quantity:       m.Resource.Quantity,
			IsUnopened:     m.Resource.IsUnopened,
			DistanceMeters: m.DistanceMeters,
			CreatedAt:      now,
		}
		if err := s.publisher.PublishMatchNotification(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("[NotifyMatches] publish match notification",
				zap.String("need_id", m.Need.ID),
				zap.String("error", err.Error()))
		}
	}
}
