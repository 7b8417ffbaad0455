package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/credstore/internal/service"
	"github.com/MKhiriev/credstore/internal/utils"
	"github.com/MKhiriev/credstore/models"
)

func TestHandler_Auth_MissingHeader(t *testing.T) {
	handler := newTestHandler(&service.Services{})

	recorder := httptest.NewRecorder()
	handler.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler should not be reached")
	})).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/credentials", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestHandler_Auth_MalformedHeader(t *testing.T) {
	handler := newTestHandler(&service.Services{})

	request := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	request.Header.Set("Authorization", "Bearer")
	recorder := httptest.NewRecorder()

	handler.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler should not be reached")
	})).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_Auth_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})

	request := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	request.Header.Set("Authorization", "Bearer expired-token")
	recorder := httptest.NewRecorder()

	handler.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler should not be reached")
	})).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_Auth_ValidTokenInjectsUserID(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid-token", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})

	request := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	request.Header.Set("Authorization", "Bearer valid-token")
	recorder := httptest.NewRecorder()

	var nextCalled bool
	handler.auth(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		nextCalled = true

		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)
	})).ServeHTTP(recorder, request)

	assert.True(t, nextCalled)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
