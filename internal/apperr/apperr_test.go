package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validationf("bad input"), want: http.StatusBadRequest},
		{name: "not found", err: NotFoundf("Plan not found: %s", "Unknown"), want: http.StatusNotFound},
		{name: "auth", err: Authf("invalid credentials"), want: http.StatusUnauthorized},
		{name: "conflict", err: Conflictf("duplicate"), want: http.StatusConflict},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("recharge: %w", NotFoundf("gone")), want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("x")))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	err := NotFoundf("Plan not found: %s", "Unknown")
	assert.Equal(t, "Plan not found: Unknown", err.Error())
}
