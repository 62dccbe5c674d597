package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	feedbackapp "github.com/muhammadheryan/resource-matcher/application/feedback"
	matchapp "github.com/muhammadheryan/resource-matcher/application/match"
	needapp "github.com/muhammadheryan/resource-matcher/application/need"
	provideapp "github.com/muhammadheryan/resource-matcher/application/provide"
	userapp "github.com/muhammadheryan/resource-matcher/application/user"
	"github.com/muhammadheryan/resource-matcher/constant"
	"github.com/muhammadheryan/resource-matcher/model"
	"github.com/muhammadheryan/resource-matcher/utils/errors"
	validatorx "github.com/muhammadheryan/resource-matcher/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Catalog     *model.Catalog
	ProvideApp  provideapp.ProvideApp
	MatchApp    matchapp.MatchApp
	UserApp     userapp.UserApp
	NeedApp     needapp.NeedApp
	FeedbackApp feedbackapp.FeedbackApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/catalog", rh.GetCatalog).Methods(http.MethodGet)
	router.HandleFunc("/conversation/provide", rh.ProvideTurn).Methods(http.MethodPost)
	router.HandleFunc("/users", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/users/{phone}/location", rh.UpdateLocation).Methods(http.MethodPut)
	router.HandleFunc("/users/{phone}/contact", rh.SetContact).Methods(http.MethodPut)
	router.HandleFunc("/users/{phone}/reminder", rh.SetReminder).Methods(http.MethodPut)
	router.HandleFunc("/feedback", rh.SubmitFeedback).Methods(http.MethodPost)

	// service-to-service routes
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/needs", rh.UpsertNeed).Methods(http.MethodPost)
	internal.HandleFunc("/needs/{id}/matches", rh.NeedMatches).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())

	return router
}

// decode reads and validates a JSON body
func decode(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// GetCatalog handler
// @Summary Get catalog
// @Description List the categories and resources that can be offered
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.Catalog
// @Router /catalog [get]
func (s *RestHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if s.Catalog == nil {
		writeError(w, errors.SetCustomError(constant.ErrConfiguration))
		return
	}
	writeSuccess(w, s.Catalog)
}

// ProvideTurn handler
// @Summary Advance the provide conversation
// @Description Consume one user reply and return the messages to show
// @Tags Conversation
// @Accept json
// @Produce json
// @Param request body model.ProvideTurnRequest true "Turn Request"
// @Success 200 {object} model.ProvideTurnResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /conversation/provide [post]
func (s *RestHandler) ProvideTurn(w http.ResponseWriter, r *http.Request) {
	var req model.ProvideTurnRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProvideApp.HandleTurn(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Register handler
// @Summary Register user
// @Description Register a user by phone number with optional coordinates
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} Response
// @Router /users [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateLocation handler
// @Summary Set user location
// @Tags Users
// @Accept json
// @Produce json
// @Param phone path string true "Phone number"
// @Param request body model.LocationRequest true "Location Request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /users/{phone}/location [put]
func (s *RestHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req model.LocationRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateLocation(r.Context(), mux.Vars(r)["phone"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetContact handler
// @Summary Enable or disable contact
// @Tags Users
// @Accept json
// @Produce json
// @Param phone path string true "Phone number"
// @Param request body model.ContactRequest true "Contact Request"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} Response
// @Router /users/{phone}/contact [put]
func (s *RestHandler) SetContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.SetContactEnabled(r.Context(), mux.Vars(r)["phone"], req.Enabled)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetReminder handler
// @Summary Set reminder days
// @Tags Users
// @Accept json
// @Produce json
// @Param phone path string true "Phone number"
// @Param request body model.ReminderRequest true "Reminder Request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /users/{phone}/reminder [put]
func (s *RestHandler) SetReminder(w http.ResponseWriter, r *http.Request) {
	var req model.ReminderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.SetReminderDays(r.Context(), mux.Vars(r)["phone"], req.Days)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitFeedback handler
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body model.FeedbackRequest true "Feedback Request"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /feedback [post]
func (s *RestHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req model.FeedbackRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.FeedbackApp.Submit(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// UpsertNeed handler
// @Summary Create, update or remove an organization need
// @Tags Internal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.NeedRequest true "Need Request"
// @Success 200 {object} model.NeedResponse
// @Failure 400 {object} Response
// @Router /internal/needs [post]
func (s *RestHandler) UpsertNeed(w http.ResponseWriter, r *http.Request) {
	var req model.NeedRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.NeedApp.Upsert(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// NeedMatches handler
// @Summary Nearby resources for a need
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param id path string true "Need ID"
// @Success 200 {object} model.ResourceMatchResponse
// @Failure 404 {object} Response
// @Router /internal/needs/{id}/matches [get]
func (s *RestHandler) NeedMatches(w http.ResponseWriter, r *http.Request) {
	res, err := s.MatchApp.FindResourcesForNeed(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
