package provide_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appmatch "github.com/muhammadheryan/resource-matcher/application/match"
	appprovide "github.com/muhammadheryan/resource-matcher/application/provide"
	"github.com/muhammadheryan/resource-matcher/cmd/config"
	"github.com/muhammadheryan/resource-matcher/constant"
	matchmocks "github.com/muhammadheryan/resource-matcher/mocks/application/match"
	redismocks "github.com/muhammadheryan/resource-matcher/mocks/repository/redis"
	storemocks "github.com/muhammadheryan/resource-matcher/mocks/repository/store"
	"github.com/muhammadheryan/resource-matcher/model"
	cerr "github.com/muhammadheryan/resource-matcher/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	seattle = model.Coordinates{Latitude: 47.6062, Longitude: -122.3321}

	donor = &model.UserEntity{ID: "donor", PhoneNumber: "+12065550100", Location: &seattle}

	food = model.CatalogCategory{Name: "Food", Resources: []model.CatalogResource{{Name: "Canned Beans"}, {Name: "Rice"}}}

	hygiene = model.CatalogCategory{Name: "Hygiene", Resources: []model.CatalogResource{{Name: "Soap"}}}

	twoCategories = &model.Catalog{Categories: []model.CatalogCategory{food, hygiene}}

	oneCategory = &model.Catalog{Categories: []model.CatalogCategory{food}}

	cfg = &config.Config{
		Match:        config.MatchConfig{RadiusMeters: constant.DefaultMatchRadiusMeters},
		Conversation: config.ConversationConfig{StateTTL: 30 * time.Minute},
	}
)

func beans(quantity int, isUnopened bool) *model.ResourceEntity {
	return &model.ResourceEntity{ID: "r1", CreatedByID: "donor", Category: "Food", Name: "Canned Beans", Quantity: quantity, IsUnopened: isUnopened}
}

func need(id string, quantity int, instructions string) *model.NeedEntity {
	return &model.NeedEntity{ID: id, CreatedByID: "org-" + id, Category: "Food", Name: "Canned Beans", Quantity: quantity, Instructions: instructions}
}

func TestProvideApp_Advance(t *testing.T) {
	type fields struct {
		catalog  *model.Catalog
		store    *storemocks.Store
		matchApp *matchmocks.MatchApp
	}
	type args struct {
		state *model.ProvideState
		input string
	}
	tests := []struct {
		name         string
		fields       fields
		args         args
		mockCall     func(f fields)
		wantState    *model.ProvideState
		wantOutcome  constant.Outcome
		wantMessages []string
		wantErr      bool
		errCode      constant.ErrorType
	}{
		{
			name:         "start: asks for a category",
			fields:       fields{catalog: twoCategories},
			args:         args{state: nil, input: "hi"},
			wantState:    &model.ProvideState{Stage: constant.StageCategory},
			wantMessages: []string{constant.PhraseGetCategory([]string{"Food", "Hygiene"})},
		},
		{
			name:         "start: a single category is chosen automatically",
			fields:       fields{catalog: oneCategory},
			args:         args{state: nil},
			wantState:    &model.ProvideState{Stage: constant.StageResource, Category: "Food"},
			wantMessages: []string{constant.PhraseGetResource("Food", []string{"Canned Beans", "Rice"})},
		},
		{
			name:         "category: chosen by name",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageCategory}, input: " Hygiene "},
			wantState:    &model.ProvideState{Stage: constant.StageResource, Category: "Hygiene"},
			wantMessages: []string{constant.PhraseGetResource("Hygiene", []string{"Soap"})},
		},
		{
			name:         "category: chosen by option number",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageCategory}, input: "1"},
			wantState:    &model.ProvideState{Stage: constant.StageResource, Category: "Food"},
			wantMessages: []string{constant.PhraseGetResource("Food", []string{"Canned Beans", "Rice"})},
		},
		{
			name:         "category: unknown reply retries in place",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageCategory}, input: "Toys"},
			wantState:    &model.ProvideState{Stage: constant.StageCategory},
			wantMessages: []string{constant.PhraseGetCategoryRetry([]string{"Food", "Hygiene"})},
		},
		{
			name:         "resource: none ends the conversation without writing",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageResource, Category: "Food"}, input: "None"},
			wantOutcome:  constant.OutcomeCancelled,
			wantMessages: []string{},
		},
		{
			name:         "resource: case must match",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageResource, Category: "Food"}, input: "rice"},
			wantState:    &model.ProvideState{Stage: constant.StageResource, Category: "Food"},
			wantMessages: []string{constant.PhraseGetResourceRetry("Food", []string{"Canned Beans", "Rice"})},
		},
		{
			name:         "resource: chosen",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageResource, Category: "Food"}, input: "Canned Beans"},
			wantState:    &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Canned Beans"},
			wantMessages: []string{constant.PhraseGetQuantity("Canned Beans")},
		},
		{
			name:    "resource: category no longer in catalog",
			fields:  fields{catalog: twoCategories},
			args:    args{state: &model.ProvideState{Stage: constant.StageResource, Category: "Toys"}, input: "Ball"},
			wantErr: true,
			errCode: constant.ErrConfiguration,
		},
		{
			name:         "quantity: negative retries in place",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Rice"}, input: "-1"},
			wantState:    &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Rice"},
			wantMessages: []string{constant.PhraseGetQuantityRetry("Rice")},
		},
		{
			name:         "quantity: not a number retries in place",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Rice"}, input: "a few"},
			wantState:    &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Rice"},
			wantMessages: []string{constant.PhraseGetQuantityRetry("Rice")},
		},
		{
			name:   "quantity: zero without a record is a no-op",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Canned Beans"}, input: "0"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(nil, nil).Once()
			},
			wantOutcome:  constant.OutcomeNoOp,
			wantMessages: []string{constant.PhraseCompleteUpdate},
		},
		{
			name:   "quantity: zero deletes the existing record",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Canned Beans"}, input: "0"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(beans(4, true), nil).Once()
				f.store.On("Delete", mock.Anything, model.ResourceRecord(beans(4, true))).Return(true, nil).Once()
			},
			wantOutcome:  constant.OutcomeDeleted,
			wantMessages: []string{constant.PhraseCompleteDelete},
		},
		{
			name:   "quantity: zero when the record vanished before delete is a no-op",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Canned Beans"}, input: "0"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(beans(4, true), nil).Once()
				f.store.On("Delete", mock.Anything, model.ResourceRecord(beans(4, true))).Return(false, nil).Once()
			},
			wantOutcome:  constant.OutcomeNoOp,
			wantMessages: []string{constant.PhraseCompleteUpdate},
		},
		{
			name:   "quantity: positive asks about condition",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Canned Beans"}, input: "3"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(nil, nil).Once()
			},
			wantState:    &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 3},
			wantMessages: []string{constant.PhraseGetIsUnopened},
		},
		{
			name:   "quantity: store failure",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageQuantity, Category: "Food", Resource: "Canned Beans"}, input: "3"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrStore,
		},
		{
			name:         "condition: not a yes or no retries in place",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 3}, input: "maybe"},
			wantState:    &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 3},
			wantMessages: []string{constant.PhraseGetIsUnopenedRetry},
		},
		{
			name:   "condition: existing record is updated without matching",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 7}, input: "yes"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(beans(4, false), nil).Once()
				f.store.On("Update", mock.Anything, model.ResourceRecord(beans(7, true))).Return(true, nil).Once()
			},
			wantOutcome:  constant.OutcomeUpdated,
			wantMessages: []string{constant.PhraseCompleteUpdate},
		},
		{
			name:   "condition: record vanished before update is created again and matched",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 7}, input: "yes"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(beans(4, false), nil).Once()
				f.store.On("Update", mock.Anything, model.ResourceRecord(beans(7, true))).Return(false, nil).Once()
				f.store.
					On("Create", mock.Anything, mock.MatchedBy(func(r model.Record) bool {
						return r.Kind == constant.CollectionResources && r.Resource.ID == "" && r.Resource.Quantity == 7 && r.Resource.IsUnopened
					})).
					Return("r-again", nil).
					Once()
				f.matchApp.
					On("FindMatches", mock.Anything, mock.MatchedBy(func(r *model.ResourceEntity) bool { return r.ID == "r-again" }), donor).
					Return([]model.Match{}, nil).
					Once()
				f.matchApp.On("NotifyMatches", mock.Anything, []model.Match{}).Once()
			},
			wantState:    &model.ProvideState{Stage: constant.StageAnother, Category: "Food", Resource: "Canned Beans", Quantity: 7, ResourceID: "r-again"},
			wantOutcome:  constant.OutcomeCreated,
			wantMessages: []string{constant.PhraseCompleteCreate, constant.PhraseProvideAnother},
		},
		{
			name:   "condition: created without matches offers another",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 3}, input: "No"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(nil, nil).Once()
				f.store.
					On("Create", mock.Anything, mock.MatchedBy(func(r model.Record) bool {
						return r.Kind == constant.CollectionResources && r.Resource.Quantity == 3 && !r.Resource.IsUnopened && r.Resource.CreatedByID == "donor"
					})).
					Return("r-new", nil).
					Once()
				f.matchApp.
					On("FindMatches", mock.Anything, mock.MatchedBy(func(r *model.ResourceEntity) bool { return r.ID == "r-new" }), donor).
					Return([]model.Match{}, nil).
					Once()
				f.matchApp.On("NotifyMatches", mock.Anything, []model.Match{}).Once()
			},
			wantState:    &model.ProvideState{Stage: constant.StageAnother, Category: "Food", Resource: "Canned Beans", Quantity: 3, ResourceID: "r-new"},
			wantOutcome:  constant.OutcomeCreated,
			wantMessages: []string{constant.PhraseCompleteCreate, constant.PhraseProvideAnother},
		},
		{
			name:   "condition: created with matches shows the first one",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 3}, input: "y"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(nil, nil).Once()
				f.store.On("Create", mock.Anything, mock.Anything).Return("r-new", nil).Once()
				matches := []model.Match{
					{Need: need("n1", 2, "Drop off at the side door"), DistanceMeters: 100},
					{Need: need("n2", 5, ""), DistanceMeters: 900},
				}
				f.matchApp.On("FindMatches", mock.Anything, mock.Anything, donor).Return(matches, nil).Once()
				f.matchApp.On("NotifyMatches", mock.Anything, matches).Once()
			},
			wantState: &model.ProvideState{
				Stage:      constant.StageNextMatch,
				Category:   "Food",
				Resource:   "Canned Beans",
				Quantity:   3,
				ResourceID: "r-new",
				Pending:    []model.PendingMatch{{NeedID: "n2", DistanceMeters: 900}},
			},
			wantOutcome: constant.OutcomeCreated,
			wantMessages: []string{
				constant.PhraseCompleteCreate,
				constant.PhraseMatch("Food", "Canned Beans", 2, "Drop off at the side door", 100),
				constant.PhraseShowNextMatch,
			},
		},
		{
			name:   "condition: matching failure fails the turn",
			fields: fields{catalog: twoCategories},
			args:   args{state: &model.ProvideState{Stage: constant.StageCondition, Category: "Food", Resource: "Canned Beans", Quantity: 3}, input: "yes"},
			mockCall: func(f fields) {
				f.store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(nil, nil).Once()
				f.store.On("Create", mock.Anything, mock.Anything).Return("r-new", nil).Once()
				f.matchApp.On("FindMatches", mock.Anything, mock.Anything, donor).Return(nil, cerr.SetCustomError(constant.ErrStore)).Once()
			},
			wantErr: true,
			errCode: constant.ErrStore,
		},
		{
			name:   "next match: declining moves on",
			fields: fields{catalog: twoCategories},
			args: args{
				state: &model.ProvideState{Stage: constant.StageNextMatch, Category: "Food", Resource: "Canned Beans", Pending: []model.PendingMatch{{NeedID: "n2"}}},
				input: "no",
			},
			wantState:    &model.ProvideState{Stage: constant.StageAnother, Category: "Food", Resource: "Canned Beans"},
			wantMessages: []string{constant.PhraseProvideAnother},
		},
		{
			name:   "next match: skips needs that are gone and shows the next",
			fields: fields{catalog: twoCategories},
			args: args{
				state: &model.ProvideState{Stage: constant.StageNextMatch, Category: "Food", Resource: "Canned Beans", Pending: []model.PendingMatch{
					{NeedID: "gone", DistanceMeters: 10},
					{NeedID: "filled", DistanceMeters: 20},
					{NeedID: "n3", DistanceMeters: 30},
					{NeedID: "n4", DistanceMeters: 40},
				}},
				input: "yes",
			},
			mockCall: func(f fields) {
				f.store.On("GetNeedByID", mock.Anything, "gone").Return(nil, nil).Once()
				f.store.On("GetNeedByID", mock.Anything, "filled").Return(need("filled", 0, ""), nil).Once()
				f.store.On("GetNeedByID", mock.Anything, "n3").Return(need("n3", 1, "Call first"), nil).Once()
			},
			wantState: &model.ProvideState{Stage: constant.StageNextMatch, Category: "Food", Resource: "Canned Beans", Pending: []model.PendingMatch{
				{NeedID: "n4", DistanceMeters: 40},
			}},
			wantMessages: []string{constant.PhraseMatch("Food", "Canned Beans", 1, "Call first", 30), constant.PhraseShowNextMatch},
		},
		{
			name:   "next match: last match offers another",
			fields: fields{catalog: twoCategories},
			args: args{
				state: &model.ProvideState{Stage: constant.StageNextMatch, Pending: []model.PendingMatch{{NeedID: "n2", DistanceMeters: 50}}},
				input: "yes",
			},
			mockCall: func(f fields) {
				f.store.On("GetNeedByID", mock.Anything, "n2").Return(need("n2", 5, ""), nil).Once()
			},
			wantState:    &model.ProvideState{Stage: constant.StageAnother},
			wantMessages: []string{constant.PhraseMatch("Food", "Canned Beans", 5, "", 50), constant.PhraseProvideAnother},
		},
		{
			name:         "next match: not a yes or no retries in place",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageNextMatch, Pending: []model.PendingMatch{{NeedID: "n2"}}}, input: "?"},
			wantState:    &model.ProvideState{Stage: constant.StageNextMatch, Pending: []model.PendingMatch{{NeedID: "n2"}}},
			wantMessages: []string{constant.PhraseShowNextMatchRetry},
		},
		{
			name:         "another: yes starts over",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageAnother, Category: "Food", Resource: "Rice", Quantity: 2, ResourceID: "r1"}, input: "YES"},
			wantState:    &model.ProvideState{Stage: constant.StageCategory},
			wantMessages: []string{constant.PhraseGetCategory([]string{"Food", "Hygiene"})},
		},
		{
			name:         "another: no finishes",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageAnother}, input: "n"},
			wantOutcome:  constant.OutcomeFinished,
			wantMessages: []string{constant.PhraseGoodbye},
		},
		{
			name:         "another: not a yes or no retries in place",
			fields:       fields{catalog: twoCategories},
			args:         args{state: &model.ProvideState{Stage: constant.StageAnother}, input: "later"},
			wantState:    &model.ProvideState{Stage: constant.StageAnother},
			wantMessages: []string{constant.PhraseProvideAnotherRetry},
		},
		{
			name:    "unknown stage",
			fields:  fields{catalog: twoCategories},
			args:    args{state: &model.ProvideState{Stage: constant.Stage(42)}, input: "yes"},
			wantErr: true,
			errCode: constant.ErrConfiguration,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.fields.store = storemocks.NewStore(t)
			tt.fields.matchApp = matchmocks.NewMatchApp(t)
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appprovide.NewProvideApp(cfg, tt.fields.catalog, tt.fields.store, tt.fields.matchApp, redismocks.NewConversationRepository(t))

			got, err := app.Advance(context.Background(), donor, tt.args.state, tt.args.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Advance() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantState == nil, got.Done())
			assert.Equal(t, tt.wantOutcome, got.Outcome)
			assert.Equal(t, tt.wantMessages, got.Messages)
		})
	}
}

func TestProvideApp_Advance_DoesNotMutateInput(t *testing.T) {
	app := appprovide.NewProvideApp(cfg, twoCategories, storemocks.NewStore(t), matchmocks.NewMatchApp(t), redismocks.NewConversationRepository(t))
	state := &model.ProvideState{Stage: constant.StageNextMatch, Pending: []model.PendingMatch{{NeedID: "n2"}}}

	_, err := app.Advance(context.Background(), donor, state, "no")
	require.NoError(t, err)
	assert.Equal(t, constant.StageNextMatch, state.Stage)
	assert.Len(t, state.Pending, 1)
}

func TestProvideApp_Advance_RequiresUser(t *testing.T) {
	app := appprovide.NewProvideApp(cfg, twoCategories, storemocks.NewStore(t), matchmocks.NewMatchApp(t), redismocks.NewConversationRepository(t))

	_, err := app.Advance(context.Background(), nil, nil, "")
	assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest))
}

// A Seattle donor offers unopened canned beans while a Seattle organization
// needs two of them; the single match is shown and the flow moves straight
// to "add another?".
func TestProvideApp_Conversation_SeattleMatch(t *testing.T) {
	store := storemocks.NewStore(t)
	org := &model.UserEntity{ID: "org", PhoneNumber: "+12065550199", Location: &model.Coordinates{Latitude: 47.6097, Longitude: -122.3422}}
	orgNeed := model.NeedEntity{ID: "n1", CreatedByID: "org", Category: "Food", Name: "Canned Beans", Quantity: 2, Instructions: "Ask for Sam"}

	store.On("GetResourceForUser", mock.Anything, "donor", "Food", "Canned Beans").Return(nil, nil).Twice()
	store.
		On("Create", mock.Anything, mock.MatchedBy(func(r model.Record) bool {
			return r.Resource != nil && r.Resource.Quantity == 3 && r.Resource.IsUnopened
		})).
		Return("r1", nil).
		Once()
	store.On("GetNeeds", mock.Anything, "Food", "Canned Beans").Return([]model.NeedEntity{orgNeed}, nil).Once()
	store.On("GetUser", mock.Anything, "org").Return(org, nil).Once()

	app := appprovide.NewProvideApp(cfg, oneCategory, store, appmatch.NewMatchApp(cfg, store, nil), redismocks.NewConversationRepository(t))
	ctx := context.Background()

	got, err := app.Advance(ctx, donor, nil, "")
	require.NoError(t, err)
	require.Equal(t, constant.StageResource, got.State.Stage)

	got, err = app.Advance(ctx, donor, got.State, "Canned Beans")
	require.NoError(t, err)
	require.Equal(t, constant.StageQuantity, got.State.Stage)

	got, err = app.Advance(ctx, donor, got.State, "3")
	require.NoError(t, err)
	require.Equal(t, constant.StageCondition, got.State.Stage)

	got, err = app.Advance(ctx, donor, got.State, "yes")
	require.NoError(t, err)
	assert.Equal(t, constant.OutcomeCreated, got.Outcome)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "n1", got.Matches[0].Need.ID)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, constant.PhraseCompleteCreate, got.Messages[0])
	assert.Contains(t, got.Messages[1], "Ask for Sam")
	assert.Contains(t, got.Messages[1], "needs 2 Canned Beans")
	assert.Equal(t, constant.PhraseProvideAnother, got.Messages[2])
	assert.Equal(t, constant.StageAnother, got.State.Stage)

	got, err = app.Advance(ctx, donor, got.State, "no")
	require.NoError(t, err)
	assert.True(t, got.Done())
	assert.Equal(t, constant.OutcomeFinished, got.Outcome)
}

func TestProvideApp_HandleTurn(t *testing.T) {
	type fields struct {
		store *storemocks.Store
		repo  *redismocks.ConversationRepository
	}
	tests := []struct {
		name     string
		req      *model.ProvideTurnRequest
		mockCall func(f fields)
		want     *model.ProvideTurnResponse
		errCode  constant.ErrorType
	}{
		{
			name: "success: first turn saves the new state",
			req:  &model.ProvideTurnRequest{PhoneNumber: "+1 (206) 555-0100", Text: "hello"},
			mockCall: func(f fields) {
				f.store.On("GetUserByPhone", mock.Anything, "+12065550100").Return(donor, nil).Once()
				f.repo.On("GetProvideState", mock.Anything, "donor").Return(nil, nil).Once()
				f.repo.On("SetProvideState", mock.Anything, "donor", &model.ProvideState{Stage: constant.StageCategory}, 30*time.Minute).Return(nil).Once()
			},
			want: &model.ProvideTurnResponse{Messages: []string{constant.PhraseGetCategory([]string{"Food", "Hygiene"})}},
		},
		{
			name: "success: terminal turn clears the state",
			req:  &model.ProvideTurnRequest{PhoneNumber: "+12065550100", Text: "none"},
			mockCall: func(f fields) {
				f.store.On("GetUserByPhone", mock.Anything, "+12065550100").Return(donor, nil).Once()
				f.repo.On("GetProvideState", mock.Anything, "donor").Return(&model.ProvideState{Stage: constant.StageResource, Category: "Food"}, nil).Once()
				f.repo.On("DeleteProvideState", mock.Anything, "donor").Return(nil).Once()
			},
			want: &model.ProvideTurnResponse{Messages: []string{}, Outcome: constant.OutcomeCancelled, Done: true},
		},
		{
			name: "success: failing to clear the state is not fatal",
			req:  &model.ProvideTurnRequest{PhoneNumber: "+12065550100", Text: "no"},
			mockCall: func(f fields) {
				f.store.On("GetUserByPhone", mock.Anything, "+12065550100").Return(donor, nil).Once()
				f.repo.On("GetProvideState", mock.Anything, "donor").Return(&model.ProvideState{Stage: constant.StageAnother}, nil).Once()
				f.repo.On("DeleteProvideState", mock.Anything, "donor").Return(errors.New("redis down")).Once()
			},
			want: &model.ProvideTurnResponse{Messages: []string{constant.PhraseGoodbye}, Outcome: constant.OutcomeFinished, Done: true},
		},
		{
			name:    "error: malformed phone number",
			req:     &model.ProvideTurnRequest{PhoneNumber: "call me", Text: "hi"},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown user",
			req:  &model.ProvideTurnRequest{PhoneNumber: "+12065550100", Text: "hi"},
			mockCall: func(f fields) {
				f.store.On("GetUserByPhone", mock.Anything, "+12065550100").Return(nil, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: state cannot be saved",
			req:  &model.ProvideTurnRequest{PhoneNumber: "+12065550100", Text: "hi"},
			mockCall: func(f fields) {
				f.store.On("GetUserByPhone", mock.Anything, "+12065550100").Return(donor, nil).Once()
				f.repo.On("GetProvideState", mock.Anything, "donor").Return(nil, nil).Once()
				f.repo.On("SetProvideState", mock.Anything, "donor", mock.Anything, 30*time.Minute).Return(errors.New("redis down")).Once()
			},
			errCode: constant.ErrInternal,
		},
		{
			name: "error: store unavailable",
			req:  &model.ProvideTurnRequest{PhoneNumber: "+12065550100", Text: "hi"},
			mockCall: func(f fields) {
				f.store.On("GetUserByPhone", mock.Anything, "+12065550100").Return(nil, errors.New("db down")).Once()
			},
			errCode: constant.ErrStore,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{store: storemocks.NewStore(t), repo: redismocks.NewConversationRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appprovide.NewProvideApp(cfg, twoCategories, f.store, matchmocks.NewMatchApp(t), f.repo)

			got, err := app.HandleTurn(context.Background(), tt.req)
			if tt.errCode != constant.Successful {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
