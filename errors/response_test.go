package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	details := NewDetails()
	details.Add("email", "Invalid email address")

	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{
			name:     "validation with details",
			err:      ValidationFailed("Invalid user data", details),
			status:   http.StatusBadRequest,
			expected: `{"success":false,"message":"Invalid user data","details":{"email":["Invalid email address"]}}`,
		},
		{
			name:     "validation without details",
			err:      ValidationFailed("Invalid post ID", nil),
			status:   http.StatusBadRequest,
			expected: `{"success":false,"message":"Invalid post ID"}`,
		},
		{
			name:     "validation with empty details",
			err:      ValidationFailed("Invalid post ID", NewDetails()),
			status:   http.StatusBadRequest,
			expected: `{"success":false,"message":"Invalid post ID"}`,
		},
		{
			name:     "not found",
			err:      NotFound("Post"),
			status:   http.StatusNotFound,
			expected: `{"success":false,"message":"Post not found"}`,
		},
		{
			name:     "database with code",
			err:      NewDatabaseError("Unique constraint failed on fields: email", "23505", nil),
			status:   http.StatusInternalServerError,
			expected: `{"success":false,"message":"Unique constraint failed on fields: email","code":"23505"}`,
		},
		{
			name:     "database without code",
			err:      NewDatabaseError("Unknown database error", "", nil),
			status:   http.StatusInternalServerError,
			expected: `{"success":false,"message":"Unknown database error"}`,
		},
		{
			name:     "wrapped app error",
			err:      fmt.Errorf("handler: %w", NotFound("User")),
			status:   http.StatusNotFound,
			expected: `{"success":false,"message":"User not found"}`,
		},
		{
			name:     "unknown error",
			err:      fmt.Errorf("pq: something exploded"),
			status:   http.StatusInternalServerError,
			expected: `{"success":false,"message":"Unknown error"}`,
		},
		{
			name:     "nil error",
			err:      nil,
			status:   http.StatusInternalServerError,
			expected: `{"success":false,"message":"Unknown error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTPResponse(tt.err, tt.status)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)

			b, err := json.Marshal(body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(b))
		})
	}
}

func TestToHTTPResponse_KeepsCallerStatus(t *testing.T) {
	status, body := ToHTTPResponse(NotFound("User"), http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, status)
	assert.Equal(t, "User not found", body.Message)
}
