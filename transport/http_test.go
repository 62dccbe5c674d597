package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/resource-matcher/constant"
	feedbackmocks "github.com/muhammadheryan/resource-matcher/mocks/application/feedback"
	matchmocks "github.com/muhammadheryan/resource-matcher/mocks/application/match"
	needmocks "github.com/muhammadheryan/resource-matcher/mocks/application/need"
	providemocks "github.com/muhammadheryan/resource-matcher/mocks/application/provide"
	usermocks "github.com/muhammadheryan/resource-matcher/mocks/application/user"
	"github.com/muhammadheryan/resource-matcher/model"
	"github.com/muhammadheryan/resource-matcher/transport"
	cerr "github.com/muhammadheryan/resource-matcher/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiKey = "secret"

type handlers struct {
	provide  *providemocks.ProvideApp
	match    *matchmocks.MatchApp
	user     *usermocks.UserApp
	need     *needmocks.NeedApp
	feedback *feedbackmocks.FeedbackApp
}

func newServer(t *testing.T) (http.Handler, handlers) {
	h := handlers{
		provide:  providemocks.NewProvideApp(t),
		match:    matchmocks.NewMatchApp(t),
		user:     usermocks.NewUserApp(t),
		need:     needmocks.NewNeedApp(t),
		feedback: feedbackmocks.NewFeedbackApp(t),
	}
	catalog := &model.Catalog{Categories: []model.CatalogCategory{
		{Name: "Food", Resources: []model.CatalogResource{{Name: "Rice"}}},
	}}
	return transport.NewTransport(&transport.RestHandler{
		Catalog:     catalog,
		ProvideApp:  h.provide,
		MatchApp:    h.match,
		UserApp:     h.user,
		NeedApp:     h.need,
		FeedbackApp: h.feedback,
	}, apiKey), h
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, handler http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestTransport_Catalog(t *testing.T) {
	handler, _ := newServer(t)

	rec, env := do(t, handler, http.MethodGet, "/catalog", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.Successful], env.Code)

	var catalog model.Catalog
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	assert.Equal(t, []string{"Food"}, catalog.CategoryNames())
}

func TestTransport_ProvideTurn(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mockCall func(h handlers)
		wantCode int
		wantErr  constant.ErrorType
	}{
		{
			name: "success",
			body: `{"phone_number":"+12065550100","text":"hi"}`,
			mockCall: func(h handlers) {
				h.provide.
					On("HandleTurn", mock.Anything, &model.ProvideTurnRequest{PhoneNumber: "+12065550100", Text: "hi"}).
					Return(&model.ProvideTurnResponse{Messages: []string{"Which category?"}}, nil).
					Once()
			},
			wantCode: http.StatusOK,
			wantErr:  constant.Successful,
		},
		{
			name:     "error: missing phone number",
			body:     `{"text":"hi"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: malformed body",
			body:     `{"phone_number":`,
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown user",
			body: `{"phone_number":"+12065550100","text":"hi"}`,
			mockCall: func(h handlers) {
				h.provide.On("HandleTurn", mock.Anything, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantCode: http.StatusNotFound,
			wantErr:  constant.ErrNotFound,
		},
		{
			name: "error: store unavailable",
			body: `{"phone_number":"+12065550100","text":"hi"}`,
			mockCall: func(h handlers) {
				h.provide.On("HandleTurn", mock.Anything, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrStore)).Once()
			},
			wantCode: http.StatusServiceUnavailable,
			wantErr:  constant.ErrStore,
		},
		{
			name: "error: plain errors become internal",
			body: `{"phone_number":"+12065550100","text":"hi"}`,
			mockCall: func(h handlers) {
				h.provide.On("HandleTurn", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler, h := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(h)
			}

			rec, env := do(t, handler, http.MethodPost, "/conversation/provide", tt.body, nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[tt.wantErr], env.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestTransport_Users(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		handler, h := newServer(t)
		h.user.
			On("Register", mock.Anything, mock.MatchedBy(func(r *model.RegisterRequest) bool {
				return r.PhoneNumber == "+12065550100" && r.Latitude != nil && *r.Latitude == 47.6
			})).
			Return(&model.UserEntity{ID: "u1", PhoneNumber: "+12065550100"}, nil).
			Once()

		rec, _ := do(t, handler, http.MethodPost, "/users", `{"phone_number":"+12065550100","latitude":47.6,"longitude":-122.3}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("register rejects an invalid phone before the app", func(t *testing.T) {
		handler, _ := newServer(t)

		rec, env := do(t, handler, http.MethodPost, "/users", `{"phone_number":"abc"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)
	})

	t.Run("update location", func(t *testing.T) {
		handler, h := newServer(t)
		h.user.
			On("UpdateLocation", mock.Anything, "+12065550100", &model.LocationRequest{Latitude: 47.6, Longitude: -122.3}).
			Return(&model.UserEntity{ID: "u1"}, nil).
			Once()

		rec, _ := do(t, handler, http.MethodPut, "/users/+12065550100/location", `{"latitude":47.6,"longitude":-122.3}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update location rejects out of range coordinates", func(t *testing.T) {
		handler, _ := newServer(t)

		rec, _ := do(t, handler, http.MethodPut, "/users/+12065550100/location", `{"latitude":91,"longitude":0}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("contact preference", func(t *testing.T) {
		handler, h := newServer(t)
		h.user.
			On("SetContactEnabled", mock.Anything, "+12065550100", false).
			Return(nil, cerr.SetCustomError(constant.ErrNotFound)).
			Once()

		rec, _ := do(t, handler, http.MethodPut, "/users/+12065550100/contact", `{"enabled":false}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("reminder days", func(t *testing.T) {
		handler, h := newServer(t)
		h.user.
			On("SetReminderDays", mock.Anything, "+12065550100", []string{"Monday", "Thursday"}).
			Return(&model.UserEntity{ID: "u1", ReminderFrequency: "Monday,Thursday"}, nil).
			Once()

		rec, _ := do(t, handler, http.MethodPut, "/users/+12065550100/reminder", `{"days":["Monday","Thursday"]}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reminder days rejects an unknown day before the app", func(t *testing.T) {
		handler, _ := newServer(t)

		rec, env := do(t, handler, http.MethodPut, "/users/+12065550100/reminder", `{"days":["Funday"]}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)
	})
}

func TestTransport_Feedback(t *testing.T) {
	handler, h := newServer(t)
	h.feedback.
		On("Submit", mock.Anything, &model.FeedbackRequest{PhoneNumber: "+12065550100", Text: "thanks"}).
		Return(nil).
		Once()

	rec, env := do(t, handler, http.MethodPost, "/feedback", `{"phone_number":"+12065550100","text":"thanks"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.Successful], env.Code)
}

func TestTransport_Internal(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		header   map[string]string
		mockCall func(h handlers)
		wantCode int
	}{
		{
			name:     "missing key",
			method:   http.MethodGet,
			path:     "/internal/needs/n1/matches",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong key",
			method:   http.MethodPost,
			path:     "/internal/needs",
			body:     `{}`,
			header:   map[string]string{"Authorization": "Bearer nope"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "need matches",
			method: http.MethodGet,
			path:   "/internal/needs/n1/matches",
			header: map[string]string{"Authorization": "Bearer " + apiKey},
			mockCall: func(h handlers) {
				h.match.
					On("FindResourcesForNeed", mock.Anything, "n1").
					Return(&model.ResourceMatchResponse{NeedID: "n1", Matches: []model.ResourceMatch{}}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "need matches without organization location",
			method: http.MethodGet,
			path:   "/internal/needs/n1/matches",
			header: map[string]string{"Authorization": "Bearer " + apiKey},
			mockCall: func(h handlers) {
				h.match.
					On("FindResourcesForNeed", mock.Anything, "n1").
					Return(nil, cerr.SetCustomError(constant.ErrLocationNotSet)).
					Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "upsert need",
			method: http.MethodPost,
			path:   "/internal/needs",
			body:   `{"phone_number":"+12065550199","category":"Food","name":"Rice","quantity":4}`,
			header: map[string]string{"Authorization": "Bearer " + apiKey},
			mockCall: func(h handlers) {
				h.need.
					On("Upsert", mock.Anything, &model.NeedRequest{PhoneNumber: "+12065550199", Category: "Food", Name: "Rice", Quantity: 4}).
					Return(&model.NeedResponse{Outcome: constant.OutcomeCreated}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler, h := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(h)
			}

			rec, _ := do(t, handler, tt.method, tt.path, tt.body, tt.header)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestTransport_RequestIDIsPropagated(t *testing.T) {
	handler, _ := newServer(t)

	rec, _ := do(t, handler, http.MethodGet, "/catalog", "", map[string]string{"X-Request-ID": "req-123"})
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
