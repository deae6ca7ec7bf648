package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlinkhq/devlink-api/internal/model"
	"github.com/devlinkhq/devlink-api/internal/usecase"
)

func TestRegisterReturnsToken(t *testing.T) {
	env := newTestEnv(t)
	env.auth.registerToken = "issued-token"

	w := env.do(t, http.MethodPost, "/api/register",
		`{"name":"John","email":"john@example.com","password":"secret123"}`, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"issued-token"}`, w.Body.String())
}

func TestRegisterValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register",
		`{"name":"","email":"not-an-email","password":"abc"}`, false)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors []struct {
			Param string `json:"param"`
			Msg   string `json:"msg"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 3)

	params := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		params = append(params, fe.Param)
	}
	assert.ElementsMatch(t, []string{"name", "email", "password"}, params)
}

func TestRegisterAccountExists(t *testing.T) {
	env := newTestEnv(t)
	env.auth.registerErr = usecase.ErrAccountExists

	w := env.do(t, http.MethodPost, "/api/register",
		`{"name":"John","email":"john@example.com","password":"secret123"}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":[{"msg":"account already exists"}]}`, w.Body.String())
}

func TestLoginReturnsToken(t *testing.T) {
	env := newTestEnv(t)
	env.auth.loginToken = "issued-token"

	w := env.do(t, http.MethodPost, "/api/login",
		`{"email":"john@example.com","password":"secret123"}`, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"issued-token"}`, w.Body.String())
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.auth.loginErr = usecase.ErrInvalidCredentials

	w := env.do(t, http.MethodPost, "/api/login",
		`{"email":"john@example.com","password":"wrong"}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":[{"msg":"invalid credentials"}]}`, w.Body.String())
}

func TestLoginUpstreamFailureIsGeneric(t *testing.T) {
	env := newTestEnv(t)
	env.auth.loginErr = assert.AnError

	w := env.do(t, http.MethodPost, "/api/login",
		`{"email":"john@example.com","password":"secret123"}`, false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":[{"msg":"server error"}]}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestIdentityReturnsAccountWithoutHash(t *testing.T) {
	env := newTestEnv(t)
	env.auth.account = &model.User{
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "super-secret-hash",
		Avatar:       "https://www.gravatar.com/avatar/x",
	}

	w := env.do(t, http.MethodGet, "/api/identity", "", true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"john@example.com"`)
	assert.NotContains(t, w.Body.String(), "super-secret-hash")
}

func TestIdentityRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/identity", "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":[{"msg":"no token, authorization denied"}]}`, w.Body.String())
}
