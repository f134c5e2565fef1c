package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Teckas-Technologies/spring-crud/internal/core/auth"
	"github.com/Teckas-Technologies/spring-crud/internal/core/database"
	"github.com/Teckas-Technologies/spring-crud/internal/core/session"
	"github.com/Teckas-Technologies/spring-crud/internal/domain"
	"github.com/Teckas-Technologies/spring-crud/internal/repo"
	"github.com/Teckas-Technologies/spring-crud/internal/service"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/handler"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/router"
	"github.com/Teckas-Technologies/spring-crud/pkg/utils"
)

const (
	testUser = "admin"
	testPass = "secret123"
)

// memSessions 测试用会话存储，替代 redis
type memSessions struct{ m map[string]string }

func newMemSessions() *memSessions { return &memSessions{m: map[string]string{}} }

func (s *memSessions) Create(_ context.Context, username string) (string, error) {
	id := uuid.NewString()
	s.m[id] = username
	return id, nil
}

func (s *memSessions) Get(_ context.Context, id string) (string, error) {
	if u, ok := s.m[id]; ok {
		return u, nil
	}
	return "", session.ErrNoSession
}

func (s *memSessions) Destroy(_ context.Context, id string) error {
	delete(s.m, id)
	return nil
}

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Entity{}, &domain.Account{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := zap.NewNop()
	accounts := repo.NewAccountRepo(db)
	require.NoError(t, accounts.Create(context.Background(), &domain.Account{
		Username:     testUser,
		PasswordHash: utils.HashPassword(testPass),
		Role:         "admin",
	}))

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
	sessions := newMemSessions()

	userSvc := service.NewUserService(repo.NewUserRepo(db), log)
	entitySvc := service.NewEntityService(repo.NewEntityRepo(db),
		[]string{"USER", "ORGANIZATION", "DEVICE"}, log)

	return router.NewAPIEngine(log, router.Deps{
		Users:    handler.NewUserHandler(userSvc, log),
		Entities: handler.NewEntityHandler(entitySvc, log),
		Auth:     handler.NewAuthHandler(accounts, jwter, sessions, log),
		Accounts: accounts,
		JWTer:    jwter,
		Sessions: sessions,
	})
}

type reqOpt func(*http.Request)

func withBasicAuth(r *http.Request) { r.SetBasicAuth(testUser, testPass) }

func doJSON(t *testing.T, e *gin.Engine, method, path string, body any, opts ...reqOpt) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		o(req)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

type errorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func postForm(t *testing.T, e *gin.Engine, path string, form url.Values, opts ...reqOpt) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, o := range opts {
		o(req)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}
