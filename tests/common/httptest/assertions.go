//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

// AssertSuccessResponse checks the status and decodes the envelope's data into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
		return
	}
	assert.True(t, env.Success, "success flag should be true")
	assert.Nil(t, env.Error)

	if targetStruct != nil {
		err := json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response data: %s", string(env.Data)))
	}
}

// AssertErrorResponse checks the status and, when expectedCode is set, the envelope's error code.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	if !assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String())) {
		return
	}
	assert.False(t, env.Success)
	assert.Equal(t, "null", string(env.Data))

	if expectedCode != "" && assert.NotNil(t, env.Error) {
		assert.Equal(t, expectedCode, *env.Error)
	}
}
