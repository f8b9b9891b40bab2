package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bloodlink/internal/auth"
	"bloodlink/internal/http/middleware"
	"bloodlink/internal/model"
	"bloodlink/internal/service"
	serviceMocks "bloodlink/internal/service/mocks"
)

func TestListDonors(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := newApp()
	app.Get("/api/donors", ListDonors(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.DonorQuery{BloodType: "O-", City: "pune", AvailableOnly: true}).
			Return([]model.Donor{{ID: donorID}}, nil).Once()

		resp := doJSON(t, app, http.MethodGet, "/api/donors?blood_type=O-&city=pune&available=true", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[map[string][]model.Donor](t, resp)
		assert.Len(t, body["donors"], 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.DonorQuery{}).Return(nil, errors.New("db down")).Once()

		resp := doJSON(t, app, http.MethodGet, "/api/donors", nil)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestRegisterDonor(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := newApp()
	app.Post("/api/donors", middleware.RequireAuth(stubVerifier{}), RegisterDonor(mockSvc))
	identity := auth.Identity{AuthID: "auth-1", Email: "asha@example.com", FullName: "Asha Rao"}

	t.Run("created", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, identity, service.RegisterDonorInput{BloodType: "A+", City: "Pune"}).
			Return(&model.Donor{ID: donorID, BloodType: "A+"}, nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/donors", map[string]any{"blood_type": "A+", "city": "Pune"}, bearer...)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, donorID, decode[map[string]model.Donor](t, resp)["donor"].ID)
	})

	t.Run("conflict", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, identity, mock.Anything).
			Return(nil, service.ErrAlreadyExists).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/donors", map[string]any{"blood_type": "A+"}, bearer...)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/donors", "{", bearer...)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestMatchDonors(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := newApp()
	app.Post("/api/donors/match", MatchDonors(mockSvc))

	t.Run("success", func(t *testing.T) {
		km := 1.5
		mockSvc.On("Match", mock.Anything, mock.MatchedBy(func(in service.MatchInput) bool {
			return in.BloodType == "B+" && in.Latitude != nil && *in.Latitude == 18.5 &&
				in.Longitude != nil && in.RadiusKm == nil
		})).Return(&service.MatchResult{
			Matches:         []service.DonorMatchView{{Donor: model.Donor{ID: donorID}, DistanceKm: &km}},
			Total:           1,
			CompatibleTypes: []string{"B+", "B-", "O+", "O-"},
		}, nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/donors/match",
			map[string]any{"blood_type": "B+", "latitude": 18.5, "longitude": 73.8})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		res := decode[service.MatchResult](t, resp)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, 1.5, *res.Matches[0].DistanceKm)
		assert.Len(t, res.CompatibleTypes, 4)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.On("Match", mock.Anything, service.MatchInput{}).
			Return(nil, fmt.Errorf("%w: blood_type is required", service.ErrInvalidInput)).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/donors/match", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestContactDonor(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := newApp()
	app.Post("/api/donors/contact", middleware.OptionalAuth(stubVerifier{}), ContactDonor(mockSvc))

	t.Run("requester name from session", func(t *testing.T) {
		mockSvc.On("Contact", mock.Anything, service.ContactInput{DonorID: donorID, RequestID: bloodRequestID, RequesterName: "Asha Rao"}).
			Return(nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/donors/contact",
			map[string]any{"donor_id": donorID, "request_id": bloodRequestID}, bearer...)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decode[map[string]bool](t, resp)["success"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("anonymous keeps given name", func(t *testing.T) {
		mockSvc.On("Contact", mock.Anything, service.ContactInput{DonorID: donorID, RequesterName: "Ravi"}).
			Return(nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/donors/contact",
			map[string]any{"donor_id": donorID, "requester_name": "Ravi"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown donor", func(t *testing.T) {
		mockSvc.On("Contact", mock.Anything, service.ContactInput{DonorID: unknownID}).
			Return(service.ErrNotFound).Once()

		resp := doJSON(t, app, http.MethodPost, "/api/donors/contact", map[string]any{"donor_id": unknownID})

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
