package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teckas-Technologies/spring-crud/internal/domain"
)

func TestHealth_Public(t *testing.T) {
	e := newTestApp(t)
	w := doJSON(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUser_RequiresAuth(t *testing.T) {
	e := newTestApp(t)

	w := doJSON(t, e, http.MethodGet, "/user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")

	body := decode[errorBody](t, w)
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "Unauthorized", body.Error)
}

func TestUser_CRUDScenario(t *testing.T) {
	e := newTestApp(t)

	// POST → 201，回显字段 + 生成 id
	w := doJSON(t, e, http.MethodPost, "/user", domain.UserInput{
		Email: "a@b.com", FirstName: "Ann", LastName: "Lee",
	}, withBasicAuth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.User](t, w)
	require.NotZero(t, created.ID)
	assert.Equal(t, "a@b.com", created.Email)

	// GET → 200，同样的字段
	w = doJSON(t, e, http.MethodGet, fmt.Sprintf("/user/%d", created.ID), nil, withBasicAuth)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.User](t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "Lee", got.LastName)

	// PUT → 200 + 文本
	w = doJSON(t, e, http.MethodPut, fmt.Sprintf("/user/%d", created.ID), domain.UserInput{
		Email: "a@b.com", FirstName: "Anna", LastName: "Lee",
	}, withBasicAuth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User updated successfully", w.Body.String())

	// DELETE → 200 + 文本
	w = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/user/%d", created.ID), nil, withBasicAuth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully", w.Body.String())

	// GET → 404 统一信封
	w = doJSON(t, e, http.MethodGet, fmt.Sprintf("/user/%d", created.ID), nil, withBasicAuth)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Not Found", body.Error)
	assert.NotEmpty(t, body.Message)
}

func TestUser_ValidationErrors(t *testing.T) {
	e := newTestApp(t)

	cases := []struct {
		name string
		in   domain.UserInput
	}{
		{"first name too short", domain.UserInput{Email: "a@b.com", FirstName: "A", LastName: "Lee"}},
		{"missing last name", domain.UserInput{Email: "a@b.com", FirstName: "Ann"}},
		{"bad email", domain.UserInput{Email: "not-an-email", FirstName: "Ann", LastName: "Lee"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, e, http.MethodPost, "/user", tc.in, withBasicAuth)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decode[errorBody](t, w)
			assert.Equal(t, http.StatusBadRequest, body.Status)
		})
	}
}

func TestUser_InvalidPathID(t *testing.T) {
	e := newTestApp(t)

	w := doJSON(t, e, http.MethodGet, "/user/abc", nil, withBasicAuth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUser_List_PageShape(t *testing.T) {
	e := newTestApp(t)

	for i := 0; i < 5; i++ {
		w := doJSON(t, e, http.MethodPost, "/user", domain.UserInput{
			Email: fmt.Sprintf("u%d@x.com", i), FirstName: "Fn", LastName: "Ln",
		}, withBasicAuth)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, e, http.MethodGet, "/user?pageNo=1&pageSize=2", nil, withBasicAuth)
	require.Equal(t, http.StatusOK, w.Code)

	page := decode[struct {
		Data       []domain.User `json:"data"`
		PageNumber int           `json:"pageNumber"`
		PageSize   int           `json:"pageSize"`
		TotalPages int           `json:"totalPages"`
	}](t, w)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
}

func TestUser_List_RejectsBadPageSize(t *testing.T) {
	e := newTestApp(t)

	w := doJSON(t, e, http.MethodGet, "/user?pageSize=0", nil, withBasicAuth)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, e, http.MethodGet, "/user?pageSize=oops", nil, withBasicAuth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
