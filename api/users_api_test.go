package api

import (
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	model2 "github.com/pawprint-hq/pawprint/api/model"
	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/internal/request"
	"github.com/pawprint-hq/pawprint/model"
)

func TestCreateUserAPI(t *testing.T) {
	router, mockDS, err := setupRouter()
	if err != nil {
		t.Fatalf("Failed to setup router: %v", err)
	}

	mockDS.On("CreateUser", mock.Anything).
		Return(model.User{ID: 1, Name: "Jane", Email: "jane@example.com"}, nil)

	tests := []struct {
		name         string
		payload      model2.CreateUser
		expectedCode int
	}{
		{
			name: "Valid user",
			payload: model2.CreateUser{
				Name:  gofakeit.Name(),
				Email: gofakeit.Email(),
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing name",
			payload:      model2.CreateUser{Email: gofakeit.Email()},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payloadBytes, _ := request.ToJsonReq(&tt.payload)
			var response model.User
			resp, err := SetUpTestRequest(TestRequest{
				Payload:  payloadBytes,
				Response: &response,
				Method:   "POST",
				Route:    "/users",
				Router:   router,
			})
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, tt.expectedCode, resp.Code)

			if tt.expectedCode == http.StatusCreated {
				assert.NotZero(t, response.ID)
			}
		})
	}
}

func TestGetUserAPI(t *testing.T) {
	router, mockDS, err := setupRouter()
	if err != nil {
		t.Fatalf("Failed to setup router: %v", err)
	}

	mockDS.On("GetUserByID", mock.Anything, int64(12)).
		Return(&model.User{ID: 12, Name: "Jane"}, nil)
	mockDS.On("GetUserByID", mock.Anything, int64(500)).
		Return(nil, apierror.NewAPIError(apierror.ErrNotFound, "user with id 500 not found", nil))

	t.Run("Valid user ID", func(t *testing.T) {
		var response model.User
		resp, err := SetUpTestRequest(TestRequest{
			Response: &response,
			Method:   "GET",
			Route:    "/users/12",
			Router:   router,
		})
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, int64(12), response.ID)
	})

	t.Run("Unknown user ID", func(t *testing.T) {
		var response map[string]interface{}
		resp, err := SetUpTestRequest(TestRequest{
			Response: &response,
			Method:   "GET",
			Route:    "/users/500",
			Router:   router,
		})
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestCreateOrganizationAPI(t *testing.T) {
	router, mockDS, err := setupRouter()
	if err != nil {
		t.Fatalf("Failed to setup router: %v", err)
	}

	mockDS.On("CreateOrganization", mock.Anything).
		Return(model.Organization{ID: 7, Name: "Happy Tails"}, nil)

	payload := model2.CreateOrganization{
		Name:  gofakeit.Company(),
		Email: gofakeit.Email(),
		City:  gofakeit.City(),
	}
	payloadBytes, _ := request.ToJsonReq(&payload)

	var response model.Organization
	resp, err := SetUpTestRequest(TestRequest{
		Payload:  payloadBytes,
		Response: &response,
		Method:   "POST",
		Route:    "/organizations",
		Router:   router,
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NotZero(t, response.ID)
}

func TestCreateAnimalAPI(t *testing.T) {
	router, mockDS, err := setupRouter()
	if err != nil {
		t.Fatalf("Failed to setup router: %v", err)
	}

	mockDS.On("CreateAnimal", mock.Anything).
		Return(model.Animal{ID: 3, OrganizationID: 7, Name: "Bella", Type: "Dog", Status: "adoptable"}, nil)

	t.Run("Valid animal", func(t *testing.T) {
		payload := model2.CreateAnimal{
			OrganizationID: 7,
			Name:           "Bella",
			Type:           "Dog",
			Breed:          "Labrador",
		}
		payloadBytes, _ := request.ToJsonReq(&payload)

		var response model.Animal
		resp, err := SetUpTestRequest(TestRequest{
			Payload:  payloadBytes,
			Response: &response,
			Method:   "POST",
			Route:    "/animals",
			Router:   router,
		})
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, "adoptable", response.Status)
	})

	t.Run("Missing type", func(t *testing.T) {
		payload := model2.CreateAnimal{OrganizationID: 7, Name: "Bella"}
		payloadBytes, _ := request.ToJsonReq(&payload)

		var response map[string]interface{}
		resp, err := SetUpTestRequest(TestRequest{
			Payload:  payloadBytes,
			Response: &response,
			Method:   "POST",
			Route:    "/animals",
			Router:   router,
		})
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
