package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAuthorizationRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "start google",
			method:         http.MethodPost,
			path:           "/authorizations",
			body:           `{"channel":"google"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"channel":"google"`,
		},
		{
			name:           "unknown channel",
			method:         http.MethodPost,
			path:           "/authorizations",
			body:           `{"channel":"fax"}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeUnknownChannel,
		},
		{
			name:           "verify without code",
			method:         http.MethodPost,
			path:           "/authorizations/" + uuid.NewString() + "/verify",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidRequestBody,
		},
		{
			name:           "verify unknown id",
			method:         http.MethodPost,
			path:           "/authorizations/" + uuid.NewString() + "/verify",
			body:           `{"code":1}`,
			expectedStatus: http.StatusNotFound,
			expectedSubstr: codeAuthorizationNotFound,
		},
		{
			name:           "status malformed id",
			method:         http.MethodGet,
			path:           "/authorizations/abc",
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}
