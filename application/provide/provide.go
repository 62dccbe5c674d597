package provide

import (
	"context"
	"strconv"
	"strings"

	"github.com/muhammadheryan/resource-matcher/application/match"
	"github.com/muhammadheryan/resource-matcher/cmd/config"
	"github.com/muhammadheryan/resource-matcher/constant"
	"github.com/muhammadheryan/resource-matcher/model"
	redisrepo "github.com/muhammadheryan/resource-matcher/repository/redis"
	"github.com/muhammadheryan/resource-matcher/repository/store"
	utilsContext "github.com/muhammadheryan/resource-matcher/utils/context"
	cerr "github.com/muhammadheryan/resource-matcher/utils/errors"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	validatorx "github.com/muhammadheryan/resource-matcher/utils/validator"
	"go.uber.org/zap"
)

type ProvideApp interface {
	// Advance consumes one user reply. A nil state starts a new
	// conversation and ignores the input.
	Advance(ctx context.Context, user *model.UserEntity, state *model.ProvideState, input string) (*model.ProvideResult, error)
	// HandleTurn resolves the user, loads their saved state, advances it
	// and saves the result.
	HandleTurn(ctx context.Context, req *model.ProvideTurnRequest) (*model.ProvideTurnResponse, error)
}

type provideAppImpl struct {
	config           *config.Config
	catalog          *model.Catalog
	store            store.Store
	matchApp         match.MatchApp
	conversationRepo redisrepo.ConversationRepository
}

func NewProvideApp(config *config.Config, catalog *model.Catalog, store store.Store, matchApp match.MatchApp, conversationRepo redisrepo.ConversationRepository) ProvideApp {
	return &provideAppImpl{
		config:           config,
		catalog:          catalog,
		store:            store,
		matchApp:         matchApp,
		conversationRepo: conversationRepo,
	}
}

func (s *provideAppImpl) Advance(ctx context.Context, user *model.UserEntity, state *model.ProvideState, input string) (*model.ProvideResult, error) {
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	if state == nil {
		return s.begin(), nil
	}

	next := *state
	next.Pending = append([]model.PendingMatch(nil), state.Pending...)

	switch state.Stage {
	case constant.StageStart:
		return s.begin(), nil
	case constant.StageCategory:
		return s.onCategory(&next, input), nil
	case constant.StageResource:
		return s.onResource(&next, input)
	case constant.StageQuantity:
		return s.onQuantity(ctx, user, &next, input)
	case constant.StageCondition:
		return s.onCondition(ctx, user, &next, input)
	case constant.StageNextMatch:
		return s.onNextMatch(ctx, &next, input)
	case constant.StageAnother:
		return s.onAnother(&next, input), nil
	}

	logger.Error("[Advance] unknown stage", zap.Int("stage", int(state.Stage)))
	return nil, cerr.SetCustomError(constant.ErrConfiguration)
}

// begin skips category selection when the catalog has a single category.
func (s *provideAppImpl) begin() *model.ProvideResult {
	state := &model.ProvideState{}
	if len(s.catalog.Categories) == 1 {
		category := &s.catalog.Categories[0]
		state.Category = category.Name
		state.Stage = constant.StageResource
		return reply(state, constant.PhraseGetResource(category.Name, category.ResourceNames()))
	}

	state.Stage = constant.StageCategory
	return reply(state, constant.PhraseGetCategory(s.catalog.CategoryNames()))
}

func (s *provideAppImpl) onCategory(state *model.ProvideState, input string) *model.ProvideResult {
	names := s.catalog.CategoryNames()
	name, ok := choose(input, names)
	if !ok {
		return reply(state, constant.PhraseGetCategoryRetry(names))
	}

	category := s.catalog.Category(name)
	state.Category = name
	state.Stage = constant.StageResource
	return reply(state, constant.PhraseGetResource(name, category.ResourceNames()))
}

func (s *provideAppImpl) onResource(state *model.ProvideState, input string) (*model.ProvideResult, error) {
	category := s.catalog.Category(state.Category)
	if category == nil {
		logger.Error("[Advance] category missing from catalog", zap.String("category", state.Category))
		return nil, cerr.SetCustomError(constant.ErrConfiguration)
	}

	if isNone(input) {
		return finish(constant.OutcomeCancelled), nil
	}

	names := category.ResourceNames()
	name, ok := choose(input, names)
	if !ok {
		return reply(state, constant.PhraseGetResourceRetry(category.Name, names)), nil
	}

	state.Resource = name
	state.Stage = constant.StageQuantity
	return reply(state, constant.PhraseGetQuantity(name)), nil
}

func (s *provideAppImpl) onQuantity(ctx context.Context, user *model.UserEntity, state *model.ProvideState, input string) (*model.ProvideResult, error) {
	quantity, ok := parseQuantity(input)
	if !ok {
		return reply(state, constant.PhraseGetQuantityRetry(state.Resource)), nil
	}

	existing, err := s.store.GetResourceForUser(ctx, user.ID, state.Category, state.Resource)
	if err != nil {
		logger.Error("[Advance] err store.GetResourceForUser", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}

	if quantity == 0 {
		if existing == nil {
			return finish(constant.OutcomeNoOp, constant.PhraseCompleteUpdate), nil
		}
		deleted, err := s.store.Delete(ctx, model.ResourceRecord(existing))
		if err != nil {
			logger.Error("[Advance] err store.Delete", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrStore)
		}
		if !deleted {
			return finish(constant.OutcomeNoOp, constant.PhraseCompleteUpdate), nil
		}
		return finish(constant.OutcomeDeleted, constant.PhraseCompleteDelete), nil
	}

	state.Quantity = quantity
	state.Stage = constant.StageCondition
	return reply(state, constant.PhraseGetIsUnopened), nil
}

func (s *provideAppImpl) onCondition(ctx context.Context, user *model.UserEntity, state *model.ProvideState, input string) (*model.ProvideResult, error) {
	isUnopened, ok := parseBool(input)
	if !ok {
		return reply(state, constant.PhraseGetIsUnopenedRetry), nil
	}

	existing, err := s.store.GetResourceForUser(ctx, user.ID, state.Category, state.Resource)
	if err != nil {
		logger.Error("[Advance] err store.GetResourceForUser", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}

	if existing != nil {
		existing.Quantity = state.Quantity
		existing.IsUnopened = isUnopened
		updated, err := s.store.Update(ctx, model.ResourceRecord(existing))
		if err != nil {
			logger.Error("[Advance] err store.Update", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrStore)
		}
		if updated {
			return finish(constant.OutcomeUpdated, constant.PhraseCompleteUpdate), nil
		}
		// deleted since it was read; fall through and create it again
		logger.Warn("[Advance] resource vanished before update", zap.String("resource_id", existing.ID))
	}

	resource := &model.ResourceEntity{
		CreatedByID: user.ID,
		Category:    state.Category,
		Name:        state.Resource,
		Quantity:    state.Quantity,
		IsUnopened:  isUnopened,
	}
	id, err := s.store.Create(ctx, model.ResourceRecord(resource))
	if err != nil {
		logger.Error("[Advance] err store.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}
	resource.ID = id

	matches, err := s.matchApp.FindMatches(ctx, resource, user)
	if err != nil {
		return nil, err
	}
	s.matchApp.NotifyMatches(ctx, matches)

	next := &model.ProvideState{
		Category:   state.Category,
		Resource:   state.Resource,
		Quantity:   state.Quantity,
		ResourceID: id,
	}
	result := reply(next, constant.PhraseCompleteCreate)
	result.Outcome = constant.OutcomeCreated
	result.Matches = matches

	if len(matches) == 0 {
		return s.offerAnother(result), nil
	}

	first := matches[0]
	for _, m := range matches[1:] {
		next.Pending = append(next.Pending, model.PendingMatch{NeedID: m.Need.ID, DistanceMeters: m.DistanceMeters})
	}
	result.Messages = append(result.Messages, renderMatch(first.Need, first.DistanceMeters))
	return s.afterMatch(result), nil
}

func (s *provideAppImpl) onNextMatch(ctx context.Context, state *model.ProvideState, input string) (*model.ProvideResult, error) {
	more, ok := parseBool(input)
	if !ok {
		return reply(state, constant.PhraseShowNextMatchRetry), nil
	}

	result := reply(state)
	if !more {
		state.Pending = nil
		return s.offerAnother(result), nil
	}

	for len(state.Pending) > 0 {
		pending := state.Pending[0]
		state.Pending = state.Pending[1:]

		need, err := s.store.GetNeedByID(ctx, pending.NeedID)
		if err != nil {
			logger.Error("[Advance] err store.GetNeedByID", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrStore)
		}
		// removed or filled since the match was found
		if need == nil || need.Quantity <= 0 {
			continue
		}
		result.Messages = append(result.Messages, renderMatch(need, pending.DistanceMeters))
		return s.afterMatch(result), nil
	}

	return s.offerAnother(result), nil
}

func (s *provideAppImpl) onAnother(state *model.ProvideState, input string) *model.ProvideResult {
	again, ok := parseBool(input)
	if !ok {
		return reply(state, constant.PhraseProvideAnotherRetry)
	}
	if again {
		return s.begin()
	}
	return finish(constant.OutcomeFinished, constant.PhraseGoodbye)
}

// afterMatch asks about the next match, or moves on when none remain.
func (s *provideAppImpl) afterMatch(result *model.ProvideResult) *model.ProvideResult {
	if len(result.State.Pending) > 0 {
		result.State.Stage = constant.StageNextMatch
		result.Messages = append(result.Messages, constant.PhraseShowNextMatch)
		return result
	}
	return s.offerAnother(result)
}

func (s *provideAppImpl) offerAnother(result *model.ProvideResult) *model.ProvideResult {
	result.State.Pending = nil
	result.State.Stage = constant.StageAnother
	result.Messages = append(result.Messages, constant.PhraseProvideAnother)
	return result
}

func (s *provideAppImpl) HandleTurn(ctx context.Context, req *model.ProvideTurnRequest) (*model.ProvideTurnResponse, error) {
	phone := validatorx.NormalizePhone(req.PhoneNumber)
	if phone == "" {
		return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.store.GetUserByPhone(ctx, phone)
	if err != nil {
		logger.Error("[HandleTurn] err store.GetUserByPhone", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStore)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	ctx = utilsContext.WithUserID(ctx, user.ID)

	state, err := s.conversationRepo.GetProvideState(ctx, user.ID)
	if err != nil {
		logger.Error("[HandleTurn] err conversationRepo.GetProvideState", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	result, err := s.Advance(ctx, user, state, req.Text)
	if err != nil {
		return nil, err
	}

	if result.Done() {
		if err := s.conversationRepo.DeleteProvideState(ctx, user.ID); err != nil {
			logger.Warn("[HandleTurn] err conversationRepo.DeleteProvideState", zap.String("error", err.Error()))
		}
	} else if err := s.conversationRepo.SetProvideState(ctx, user.ID, result.State, s.config.Conversation.StateTTL); err != nil {
		logger.Error("[HandleTurn] err conversationRepo.SetProvideState", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	logger.FromContext(ctx).Debug("provide turn",
		zap.String("stage", stageOf(result)),
		zap.String("outcome", string(result.Outcome)))

	return &model.ProvideTurnResponse{
		Messages: result.Messages,
		Outcome:  result.Outcome,
		Done:     result.Done(),
	}, nil
}

func reply(state *model.ProvideState, messages ...string) *model.ProvideResult {
	return &model.ProvideResult{State: state, Messages: append(make([]string, 0, len(messages)+2), messages...)}
}

func finish(outcome constant.Outcome, messages ...string) *model.ProvideResult {
	return &model.ProvideResult{Outcome: outcome, Messages: append(make([]string, 0, len(messages)), messages...)}
}

func stageOf(result *model.ProvideResult) string {
	if result.State == nil {
		return "done"
	}
	return result.State.Stage.String()
}

func renderMatch(need *model.NeedEntity, distanceMeters float64) string {
	return constant.PhraseMatch(need.Category, need.Name, need.Quantity, need.Instructions, distanceMeters)
}

// choose accepts an exact option or its 1-based number.
func choose(input string, options []string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, option := range options {
		if option == input {
			return option, true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}

func isNone(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), constant.NoneToken)
}

func parseQuantity(input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseBool(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y", "true", "1":
		return true, true
	case "no", "n", "false", "0":
		return false, true
	}
	return false, false
}
