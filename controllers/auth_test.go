package controllers

import (
	"net/http"
	"testing"

	"smartcloset/models"
	"smartcloset/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginProfileLogout(t *testing.T) {
	e, _ := newTestServer(t, offlineStylist(t))

	rec := test.Serve(e, test.NewJSONRequest("POST", "/auth/login", LoginIn{EmailOrPhone: "jane@example.com", Password: "secret"}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var user models.User
	decodeBody(t, rec, &user)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.EmailOrPhone)

	rec = test.Serve(e, test.NewJSONRequest("GET", "/auth/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = test.Serve(e, test.NewJSONRequest("PATCH", "/auth/profile", models.UserUpdate{
		Name:   test.NewRefString("Jane"),
		Height: test.NewRefFloat(168),
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeBody(t, rec, &user)
	assert.Equal(t, "Jane", user.Name)
	require.NotNil(t, user.Height)
	assert.Equal(t, 168.0, *user.Height)
	assert.Equal(t, "jane@example.com", user.EmailOrPhone)

	rec = test.Serve(e, test.NewJSONRequest("POST", "/auth/logout", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = test.Serve(e, test.NewJSONRequest("GET", "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestLoginEmptyCredentials(t *testing.T) {
	e, deps := newTestServer(t, offlineStylist(t))

	rec := test.Serve(e, test.NewJSONRequest("POST", "/auth/login", LoginIn{EmailOrPhone: "jane@example.com"}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, signedIn := deps.Session.Current()
	assert.False(t, signedIn)

	rec = test.Serve(e, test.NewJSONRequest("POST", "/auth/login", LoginIn{EmailOrPhone: "   ", Password: "secret"}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, signedIn = deps.Session.Current()
	assert.False(t, signedIn)

	rec = test.Serve(e, test.NewJSONRequestRaw("POST", "/auth/login", "{"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister(t *testing.T) {
	e, deps := newTestServer(t, offlineStylist(t))

	rec := test.Serve(e, test.NewJSONRequest("POST", "/auth/register", RegisterIn{Name: "Lin", EmailOrPhone: "13800000000", Password: "pw"}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var user models.User
	decodeBody(t, rec, &user)
	assert.Equal(t, "Lin", user.Name)
	assert.NotEmpty(t, user.ID)

	current, ok := deps.Session.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestRegisterMissingName(t *testing.T) {
	e, deps := newTestServer(t, offlineStylist(t))

	rec := test.Serve(e, test.NewJSONRequest("POST", "/auth/register", RegisterIn{EmailOrPhone: "13800000000", Password: "pw"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	_, signedIn := deps.Session.Current()
	assert.False(t, signedIn)
}

func TestUpdateProfileSignedOut(t *testing.T) {
	e, _ := newTestServer(t, offlineStylist(t))

	rec := test.Serve(e, test.NewJSONRequest("PATCH", "/auth/profile", models.UserUpdate{Name: test.NewRefString("Jane")}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
