package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
	"foodbridge/internal/service"
	serviceMocks "foodbridge/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateDonor(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := fiber.New()
	app.Post("/api/donor/add", CreateDonor(mockSvc))

	t.Run("json body", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Donor) bool {
			return d.Email == "asha@example.com"
		})).Return(&model.Donor{ID: 1, Email: "asha@example.com", Status: "pending"}, nil).Once()

		body, _ := json.Marshal(model.Donor{Name: "Asha", Email: "asha@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/donor/add", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Donor
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, "pending", result.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, &repository.DuplicateError{Field: "email"}).Once()

		body, _ := json.Marshal(model.Donor{Email: "taken@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/donor/add", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "DUPLICATE_EMAIL", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing user reference", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrMissingReference).Once()

		body, _ := json.Marshal(model.Donor{UserID: 99})
		req := httptest.NewRequest(http.MethodPost, "/api/donor/add", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "MISSING_REFERENCE", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed multipart persists nothing", func(t *testing.T) {
		freshSvc := new(serviceMocks.MockDonorService)
		freshApp := fiber.New()
		freshApp.Post("/api/donor/add", CreateDonor(freshSvc))

		req := httptest.NewRequest(http.MethodPost, "/api/donor/add", bytes.NewReader([]byte("not a multipart body")))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
		resp, _ := freshApp.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FILE_OPEN_ERROR", res.Error.Code)
		freshSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("multipart with photo", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Donor) bool {
			return d.Name == "Asha" && d.UserID == 7
		})).Return(&model.Donor{ID: 2, UserID: 7}, nil).Once()
		mockSvc.On("AttachFiles", mock.Anything, int64(2), mock.Anything, (*service.Upload)(nil), (*service.Upload)(nil)).
			Return(&model.Donor{ID: 2, UserID: 7, Photo: "/uploads/donors/7/photo_1.jpg"}, nil).Once()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("name", "Asha")
		writer.WriteField("user_id", "7")
		part, _ := writer.CreateFormFile("photo", "me.jpg")
		part.Write([]byte("jpegbytes"))
		writer.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/donor/add", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Donor
		json.NewDecoder(resp.Body).Decode(&result)
		assert.NotEmpty(t, result.Photo)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetDonor(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := fiber.New()
	app.Get("/api/donor/:id", GetEntity[model.Donor](mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("GetByID", mock.Anything, int64(5)).
			Return(&model.Donor{ID: 5, Name: "Asha"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/donor/5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Donor
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(5), result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("GetByID", mock.Anything, int64(404)).
			Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/donor/404", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/donor/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})
}

func TestDeleteDonor(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := fiber.New()
	app.Delete("/api/donor/delete/:id", DeleteEntity[model.Donor](mockSvc))
	app.Get("/api/donor/:id", GetEntity[model.Donor](mockSvc))

	t.Run("delete then read back", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
		mockSvc.On("GetByID", mock.Anything, int64(5)).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/donor/delete/5", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/api/donor/5", nil)
		resp, _ = app.Test(req)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown donor", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(404)).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/donor/delete/404", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/donor/delete/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})
}

func TestUpdateDonorStatus(t *testing.T) {
	mockSvc := new(serviceMocks.MockDonorService)
	app := fiber.New()
	app.Patch("/api/donor/:id/status", UpdateEntityStatus[model.Donor](mockSvc))

	t.Run("via query parameters", func(t *testing.T) {
		mockSvc.On("UpdateStatus", mock.Anything, int64(5), "verified", "ok").
			Return(&model.Donor{ID: 5, Status: "verified"}, nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/api/donor/5/status?status=verified&remarks=ok", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid status value", func(t *testing.T) {
		mockSvc.On("UpdateStatus", mock.Anything, int64(5), "approved", "").
			Return(nil, service.ErrInvalidStatus).Once()

		req := httptest.NewRequest(http.MethodPatch, "/api/donor/5/status?status=approved", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_STATUS", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestSignupAndLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/api/auth/user/signup", Signup(mockSvc))
	app.Post("/api/auth/user/login", Login(mockSvc))

	t.Run("signup", func(t *testing.T) {
		mockSvc.On("Signup", mock.Anything, "asha", "asha@example.com", "s3cret").
			Return(&model.User{ID: 1, Username: "asha"}, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"username": "asha", "email": "asha@example.com", "password": "s3cret",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/user/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.User
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(1), result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("signup duplicate username", func(t *testing.T) {
		mockSvc.On("Signup", mock.Anything, "asha", "other@example.com", "pw").
			Return(nil, &repository.DuplicateError{Field: "username"}).Once()

		body, _ := json.Marshal(map[string]string{
			"username": "asha", "email": "other@example.com", "password": "pw",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/user/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "DUPLICATE_USERNAME", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("login bad credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "asha", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		body, _ := json.Marshal(map[string]string{"username": "asha", "password": "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/user/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_CREDENTIALS", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestAdminRoutes(t *testing.T) {
	mockDonors := new(serviceMocks.MockDonorService)
	app := fiber.New()
	RegisterAdminRoutes(app.Group("/api/admin"), AdminServices{Donors: mockDonors})

	t.Run("listing uses the plural segment", func(t *testing.T) {
		mockDonors.On("GetAll", mock.Anything).Return([]model.Donor{{ID: 1}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/donors", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockDonors.AssertExpectations(t)
	})

	t.Run("status moderation uses the plural segment", func(t *testing.T) {
		mockDonors.On("UpdateStatus", mock.Anything, int64(5), "verified", "").
			Return(&model.Donor{ID: 5, Status: "verified"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/admin/donors/5/status?status=verified", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockDonors.AssertExpectations(t)
	})
}

func TestFeedbackAverage(t *testing.T) {
	mockSvc := new(serviceMocks.MockFeedbackService)
	app := fiber.New()
	app.Get("/api/feedback/average", FeedbackAverage(mockSvc))

	mockSvc.On("AverageStar", mock.Anything).Return(4.2, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/feedback/average", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]float64
	json.NewDecoder(resp.Body).Decode(&body)
	assert.InDelta(t, 4.2, body["average"], 0.001)
	mockSvc.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil, Services{
		Users:      new(serviceMocks.MockUserService),
		Donors:     new(serviceMocks.MockDonorService),
		Feedback:   new(serviceMocks.MockFeedbackService),
		Recipients: nil,
		Volunteers: nil,
		Requests:   nil,
		Donations:  nil,
		Admin:      nil,
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
