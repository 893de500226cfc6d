package records

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records/details"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: recorded_by is required", ErrInvalidInput), http.StatusBadRequest},
		{&details.ValidationError{Kind: details.TypeWeight, Field: "value", Reason: "must be positive"}, http.StatusBadRequest},
		{details.ErrUnknownRecordType, http.StatusBadRequest},
		{details.ErrUnknownAction, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrNoChanges, http.StatusConflict},
		{ErrSuperseded, http.StatusConflict},
		{ErrConflict, http.StatusConflict},
		{&details.TransitionError{Kind: details.TypeSurgery, From: details.StatusActive, Action: details.ActionActivate}, http.StatusConflict},
		{fmt.Errorf("%w: weight", details.ErrUnsupportedOperation), http.StatusUnprocessableEntity},
		{details.ErrTypeMismatch, http.StatusInternalServerError},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestParseListFilter(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/pets/p/records?types=weight,%20VACCINE,&limit=10&include_superseded=true", nil)
	f, err := parseListFilter(r)
	require.NoError(t, err)
	assert.Equal(t, []details.MedicalRecordType{details.TypeWeight, details.TypeVaccine}, f.Types)
	assert.Equal(t, 10, f.Limit)
	assert.True(t, f.IncludeSuperseded)

	r = httptest.NewRequest(http.MethodGet, "/pets/p/records?limit=5000", nil)
	f, err = parseListFilter(r)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, f.Limit)
	assert.False(t, f.IncludeSuperseded)

	r = httptest.NewRequest(http.MethodGet, "/pets/p/records?types=GROOMING", nil)
	_, err = parseListFilter(r)
	require.Error(t, err)

	r = httptest.NewRequest(http.MethodGet, "/pets/p/records?include_superseded=maybe", nil)
	_, err = parseListFilter(r)
	require.Error(t, err)
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	svc, _, _ := newTestService(t)

	rec := httptest.NewRecorder()
	writeError(rec, svc, errors.New("pq: password authentication failed"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = httptest.NewRecorder()
	writeError(rec, svc, &details.ValidationError{Kind: details.TypeWeight, Field: "value", Reason: "must be positive"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "WEIGHT detail: value must be positive")
}
