package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakhq/fielddex/internal/apperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, map[string]string{"id": "abc"}, "created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])
}

func TestError_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.Error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperr.NotFound("Location with ID x not found"), http.StatusNotFound, apperr.CodeNotFound},
		{"service", apperr.Service("Trainer with ID t1 not found."), http.StatusInternalServerError, apperr.CodeService},
		{"repository", apperr.Repository("store exploded"), http.StatusInternalServerError, apperr.CodeRepository},
		{"authentication", apperr.Authentication("Unauthorized: No token provided", apperr.CodeTokenNotFound), http.StatusUnauthorized, apperr.CodeTokenNotFound},
		{"authorization", apperr.Authorization("Forbidden: Insufficient role", apperr.CodeInsufficientRole), http.StatusForbidden, apperr.CodeInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, nil, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, "error", body["status"])
			errObj := body["error"].(map[string]any)
			assert.Equal(t, tt.wantCode, errObj["code"])
			assert.Equal(t, tt.err.Message, errObj["message"])
		})
	}
}

func TestError_ValidationKeepsFlatBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, nil, apperr.Validation("name is required; age must be a positive number"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "name is required; age must be a positive number", body["error"])
}

func TestError_UnknownErrorsCoercedTo500(t *testing.T) {
	for _, err := range []error{errors.New("kaboom"), nil} {
		rec := httptest.NewRecorder()
		Error(rec, nil, err)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, apperr.CodeUnknown, errObj["code"])
		assert.Equal(t, "An unexpected error occurred.", errObj["message"])
	}
}

func TestError_WrappedDomainErrorUnwraps(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := errorsJoin(apperr.NotFound("Trainer with ID t9 not found"))
	Error(rec, nil, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func errorsJoin(err error) error {
	return errors.Join(errors.New("outer context"), err)
}
