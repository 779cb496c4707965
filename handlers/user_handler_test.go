package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/middleware"
	"github.com/postboard/postboard-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

const testUserID = "0b6f1a4e-2c3d-4e5f-8a9b-0c1d2e3f4a5b"

func setupUserRouter(svc *MockUserService) *gin.Engine {
	h := NewUserHandler(svc)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/users", h.ListUsers)
	r.POST("/users", h.CreateUser)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleUser() *types.User {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return &types.User{ID: testUserID, Email: "ada@example.com", CreatedAt: ts, UpdatedAt: ts}
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("List", mock.Anything, 0, 10).Return([]*types.User{sampleUser()}, int64(1), nil).Once()

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success    bool                 `json:"success"`
			Data       []types.User         `json:"data"`
			Pagination types.PaginationInfo `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Len(t, body.Data, 1)
		assert.Equal(t, types.PaginationInfo{Page: 1, Limit: 10, Total: 1, TotalPages: 1}, body.Pagination)
		svc.AssertExpectations(t)
	})

	t.Run("page window", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("List", mock.Anything, 20, 10).Return([]*types.User{}, int64(25), nil).Once()

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users?page=3&limit=10", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"pagination":{"page":3,"limit":10,"total":25,"totalPages":3,"hasNext":false,"hasPrev":true}`)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("List", mock.Anything, 0, 10).Return(nil, int64(0), nil).Once()

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
		assert.Contains(t, w.Body.String(), `"totalPages":0`)
	})

	t.Run("invalid pagination", func(t *testing.T) {
		svc := new(MockUserService)

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users?page=0&limit=101", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{
			"success": false,
			"message": "Invalid pagination parameters",
			"details": {
				"page": ["Number must be greater than or equal to 1"],
				"limit": ["Number must be less than or equal to 100"]
			}
		}`, w.Body.String())
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("database error", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("List", mock.Anything, 0, 10).
			Return(nil, int64(0), apperrors.NewDatabaseError("Too many database connections", "53300", nil)).Once()

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Too many database connections","code":"53300"}`, w.Body.String())
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Create", mock.Anything, types.UserCreate{Email: "ada@example.com"}).Return(sampleUser(), nil).Once()

		w := doRequest(setupUserRouter(svc), http.MethodPost, "/users", `{"email":"ada@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "User created successfully", body["message"])
		assert.Equal(t, testUserID, body["data"].(map[string]any)["id"])
		assert.NotContains(t, body, "pagination")
	})

	t.Run("validation failure does not reach the service", func(t *testing.T) {
		svc := new(MockUserService)

		w := doRequest(setupUserRouter(svc), http.MethodPost, "/users", `{"email":"not-an-email","name":"A"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{
			"success": false,
			"message": "Invalid user data",
			"details": {
				"email": ["Invalid email address"],
				"name": ["String must contain at least 2 character(s)"]
			}
		}`, w.Body.String())
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := new(MockUserService)

		w := doRequest(setupUserRouter(svc), http.MethodPost, "/users", `{"email":`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body apperrors.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid user data", body.Message)
		assert.Equal(t, []string{""}, body.Details.Keys())
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewDatabaseError("Unique constraint failed on fields: email", "23505", nil)).Once()

		w := doRequest(setupUserRouter(svc), http.MethodPost, "/users", `{"email":"ada@example.com"}`)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Unique constraint failed on fields: email","code":"23505"}`, w.Body.String())
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetByID", mock.Anything, testUserID).Return(sampleUser(), nil).Once()

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users/"+testUserID, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"ada@example.com"`)
		assert.NotContains(t, w.Body.String(), `"message"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := new(MockUserService)

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users/42", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid user ID"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetByID", mock.Anything, testUserID).Return(nil, store.ErrNotFound).Once()

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users/"+testUserID, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"User not found"}`, w.Body.String())
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetByID", mock.Anything, testUserID).Return(nil, errors.New("kaboom")).Once()

		w := doRequest(setupUserRouter(svc), http.MethodGet, "/users/"+testUserID, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Unknown error"}`, w.Body.String())
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	name := "Ada Lovelace"

	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		updated := sampleUser()
		updated.Name = &name
		svc.On("GetByID", mock.Anything, testUserID).Return(sampleUser(), nil).Once()
		svc.On("Update", mock.Anything, testUserID, types.UserUpdate{Name: &name}).Return(updated, nil).Once()

		w := doRequest(setupUserRouter(svc), http.MethodPut, "/users/"+testUserID, `{"name":"Ada Lovelace"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"User updated successfully"`)
		assert.Contains(t, w.Body.String(), `"name":"Ada Lovelace"`)
		svc.AssertExpectations(t)
	})

	t.Run("empty update", func(t *testing.T) {
		svc := new(MockUserService)

		w := doRequest(setupUserRouter(svc), http.MethodPut, "/users/"+testUserID, `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body apperrors.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid user data", body.Message)
		assert.Len(t, body.Details.Get(""), 1)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetByID", mock.Anything, testUserID).Return(nil, store.ErrNotFound).Once()

		w := doRequest(setupUserRouter(svc), http.MethodPut, "/users/"+testUserID, `{"name":"Ada Lovelace"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetByID", mock.Anything, testUserID).Return(sampleUser(), nil).Once()
		svc.On("Delete", mock.Anything, testUserID).Return(sampleUser(), nil).Once()

		w := doRequest(setupUserRouter(svc), http.MethodDelete, "/users/"+testUserID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetByID", mock.Anything, testUserID).Return(nil, store.ErrNotFound).Once()

		w := doRequest(setupUserRouter(svc), http.MethodDelete, "/users/"+testUserID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
