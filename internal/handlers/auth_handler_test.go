package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"logistik_backend/internal/services/dto"
	"logistik_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_SuccessEnvelope(t *testing.T) {
	t.Parallel()

	authSvc := &fakeAuthService{user: &dto.UserResponse{ID: "user-1", Email: "ada@example.com"}}
	router := newTestRouter(t, testServices{auth: authSvc}, "")

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "ada@example.com",
		"password":         "s3cret-password",
		"confirm_password": "s3cret-password",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "account created", env.Message)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "user-1", user.ID)
}

func TestRegister_ValidationEnvelope(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testServices{}, "")

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "not-an-email",
		"password":         "s3cret-password",
		"confirm_password": "mismatch",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "validation errors", env.Message)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))

	byField := make(map[string]string)
	for _, f := range fields {
		byField[f["field"]] = f["message"]
	}
	assert.Equal(t, "Must be a valid email address", byField["email"])
	assert.Equal(t, "Fields do not match", byField["confirm_password"])
}

func TestRegister_ConflictEnvelope(t *testing.T) {
	t.Parallel()

	authSvc := &fakeAuthService{err: apperrors.NewConflictError("an account exists with this email")}
	router := newTestRouter(t, testServices{auth: authSvc}, "")

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "ada@example.com",
		"password":         "s3cret-password",
		"confirm_password": "s3cret-password",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "an account exists with this email", env.Message)
	assert.Equal(t, "null", string(env.Error))
}

func TestLogin_Envelopes(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		authSvc := &fakeAuthService{login: &dto.LoginResponse{
			ID: "user-1", AccessToken: "access", RefreshToken: "refresh",
		}}
		router := newTestRouter(t, testServices{auth: authSvc}, "")

		rec, env := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "ada@example.com",
			"password": "s3cret-password",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "account logged in", env.Message)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, "access", resp.AccessToken)
		assert.Equal(t, "refresh", resp.RefreshToken)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()
		authSvc := &fakeAuthService{err: apperrors.ErrInvalidCredentials}
		router := newTestRouter(t, testServices{auth: authSvc}, "")

		rec, env := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "ada@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "invalid login credentials", env.Message)
	})
}

func TestResetPassword_TokenFromQueryParam(t *testing.T) {
	t.Parallel()

	authSvc := &fakeAuthService{}
	router := newTestRouter(t, testServices{auth: authSvc}, "")

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/reset-password?t=query-token", map[string]string{
		"new_password":     "new-password-1",
		"confirm_password": "new-password-1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "password reset", env.Message)
	assert.Equal(t, "query-token", authSvc.lastResetCode)
}

func TestResetPassword_BodyTokenWinsOverQuery(t *testing.T) {
	t.Parallel()

	authSvc := &fakeAuthService{}
	router := newTestRouter(t, testServices{auth: authSvc}, "")

	rec, _ := doJSON(t, router, http.MethodPost, "/api/auth/reset-password?t=query-token", map[string]string{
		"reset_token":      "body-token",
		"new_password":     "new-password-1",
		"confirm_password": "new-password-1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body-token", authSvc.lastResetCode)
}

func TestResetPassword_MissingTokenRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testServices{}, "")

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"new_password":     "new-password-1",
		"confirm_password": "new-password-1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "reset_token", fields[0]["field"])
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	authSvc := &fakeAuthService{accessToken: "fresh-access"}
	router := newTestRouter(t, testServices{auth: authSvc}, "")

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/generate-token", map[string]string{
		"refresh_token": "stored-refresh",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "access token generated", env.Message)

	var resp dto.GenerateTokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "fresh-access", resp.AccessToken)
}

func TestInternalErrorsAreNotEchoed(t *testing.T) {
	t.Parallel()

	authSvc := &fakeAuthService{err: apperrors.InternalError(assert.AnError)}
	router := newTestRouter(t, testServices{auth: authSvc}, "")

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "ada@example.com",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "internal server error", env.Message)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestNoRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testServices{}, "")

	rec, env := doJSON(t, router, http.MethodGet, "/api/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "endpoint does not exist", env.Message)
}
