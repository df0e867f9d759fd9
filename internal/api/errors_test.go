package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperror.NewFieldError(apperror.ErrMissingField, "name"), http.StatusBadRequest},
		{apperror.NewFieldError(apperror.ErrInvalidFormat, "contact"), http.StatusBadRequest},
		{apperror.NewFieldError(apperror.ErrInvalidNumeric, "price"), http.StatusBadRequest},
		{apperror.ErrPasswordMismatch, http.StatusBadRequest},
		{apperror.ErrDuplicateUsername, http.StatusConflict},
		{apperror.NewFieldError(apperror.ErrDuplicateContact, "contact"), http.StatusConflict},
		{fmt.Errorf("client x: %w", apperror.ErrNotFound), http.StatusNotFound},
		{apperror.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperror.Storage("list client", errors.New("disk I/O error")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestError_HidesDriverDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperror.Storage("list client", errors.New("disk I/O error at /var/lib/x")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/var/lib/x")

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.ErrStorageUnavailable.Error(), body.Detail)
}

func TestError_IncludesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperror.NewFieldError(apperror.ErrMissingField, "name", "address"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"name", "address"}, body.Fields)
}
