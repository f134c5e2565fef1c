package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_FlowGrantsBearerAccess(t *testing.T) {
	e := newTestApp(t)

	w := doJSON(t, e, http.MethodPost, "/api/public/token", map[string]string{
		"username": testUser, "password": testPass,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expiresIn"`
	}](t, w)
	require.NotEmpty(t, out.Token)
	assert.Positive(t, out.ExpiresIn)

	w = doJSON(t, e, http.MethodGet, "/user", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+out.Token)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestToken_WrongPassword(t *testing.T) {
	e := newTestApp(t)

	w := doJSON(t, e, http.MethodPost, "/api/public/token", map[string]string{
		"username": testUser, "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFormLogin_SessionCookieFlow(t *testing.T) {
	e := newTestApp(t)

	w := postForm(t, e, "/api/public/login", url.Values{
		"username": {testUser}, "password": {testPass},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var sid *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "SESSION" {
			sid = c
		}
	}
	require.NotNil(t, sid, "login must set SESSION cookie")
	require.NotEmpty(t, sid.Value)

	// 带会话 cookie 访问受保护路由
	w = doJSON(t, e, http.MethodGet, "/user", nil, func(r *http.Request) {
		r.AddCookie(sid)
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// 注销后会话失效
	w = postForm(t, e, "/api/public/logout", url.Values{}, func(r *http.Request) {
		r.AddCookie(sid)
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, e, http.MethodGet, "/user", nil, func(r *http.Request) {
		r.AddCookie(sid)
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFormLogin_BadCredentials(t *testing.T) {
	e := newTestApp(t)

	w := postForm(t, e, "/api/public/login", url.Values{
		"username": {testUser}, "password": {"nope"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	e := newTestApp(t)

	w := doJSON(t, e, http.MethodGet, "/user", nil, func(r *http.Request) {
		r.SetBasicAuth(testUser, "wrong")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
