package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func requestWithIDParam(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/tasks/"+value, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(taskIDParam, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathTaskID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "valid", value: "42", want: 42},
		{name: "negative parses", value: "-1", want: -1},
		{name: "empty", value: "", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "float", value: "1.5", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := getPathTaskID(requestWithIDParam(tc.value))

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				assert.Zero(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
