package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(newTestService(newMemRepo()), zap.NewNop().Sugar())
}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, body string, header http.Header) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandler_RegisterLoginValidateScenario(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	// register
	rec, env := doJSON(t, h.Register, http.MethodPost, "/user/register",
		`{"username":"alice1","password":"Pass123!","confirmPassword":"Pass123!","email":"a@b.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, "alice1", created["username"])
	_, hasPassword := created["password"]
	require.False(t, hasPassword, "register response must not carry a password field")

	// login
	rec, env = doJSON(t, h.Login, http.MethodPost, "/user/login",
		`{"username":"alice1","password":"Pass123!"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var tok string
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	require.NotEmpty(t, tok)

	// validate
	hdr := http.Header{}
	hdr.Set("Authorization", "Bearer "+tok)
	rec, env = doJSON(t, h.Validate, http.MethodGet, "/user/validate", "", hdr)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var fetched map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	require.Equal(t, "alice1", fetched["username"])
	_, hasPassword = fetched["password"]
	require.False(t, hasPassword, "validate response must not carry a password field")
}

func TestHandler_RegisterValidationScenario(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec, env := doJSON(t, h.Register, http.MethodPost, "/user/register",
		`{"username":"bob","password":"x","confirmPassword":"x","email":"not-an-email"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.False(t, env.Success)
	require.Contains(t, env.Errors, "email")
	require.Contains(t, env.Errors, "username")
}

func TestHandler_RegisterDuplicate(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	body := `{"username":"alice1","password":"Pass123!","confirmPassword":"Pass123!","email":"a@b.com"}`
	rec, _ := doJSON(t, h.Register, http.MethodPost, "/user/register", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, h.Register, http.MethodPost, "/user/register", body, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, ErrDuplicateUsername.Error(), env.Message)
}

func TestHandler_RegisterBadPayload(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec, env := doJSON(t, h.Register, http.MethodPost, "/user/register", `{not json`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
}

func TestHandler_LoginFailureDoesNotLeakCause(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	rec, _ := doJSON(t, h.Register, http.MethodPost, "/user/register",
		`{"username":"alice1","password":"Pass123!","confirmPassword":"Pass123!","email":"a@b.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	recWrong, envWrong := doJSON(t, h.Login, http.MethodPost, "/user/login",
		`{"username":"alice1","password":"nope"}`, nil)
	recMissing, envMissing := doJSON(t, h.Login, http.MethodPost, "/user/login",
		`{"username":"missing1","password":"nope"}`, nil)

	require.Equal(t, http.StatusUnauthorized, recWrong.Code)
	require.Equal(t, recWrong.Code, recMissing.Code)
	require.Equal(t, envWrong.Message, envMissing.Message)
}

func TestHandler_ValidateUnauthorized(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	// every failure kind surfaces as 401
	cases := map[string]string{
		"no header":     "",
		"no token":      "Bearer",
		"invalid token": "Bearer not.a.jwt",
	}
	for name, auth := range cases {
		hdr := http.Header{}
		if auth != "" {
			hdr.Set("Authorization", auth)
		}
		rec, env := doJSON(t, h.Validate, http.MethodGet, "/user/validate", "", hdr)
		require.Equalf(t, http.StatusUnauthorized, rec.Code, "case %q", name)
		require.Falsef(t, env.Success, "case %q", name)
	}
}
