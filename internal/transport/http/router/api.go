package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Teckas-Technologies/spring-crud/internal/core/auth"
	"github.com/Teckas-Technologies/spring-crud/internal/core/session"
	"github.com/Teckas-Technologies/spring-crud/internal/domain"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/handler"
	mdw "github.com/Teckas-Technologies/spring-crud/internal/transport/http/middleware"
)

// Deps 显式传依赖，不走全局注册表
type Deps struct {
	Users    *handler.UserHandler
	Entities *handler.EntityHandler
	Auth     *handler.AuthHandler
	Accounts domain.AccountRepository
	JWTer    *auth.JWTer
	Sessions session.Store
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 公开路由：健康检查 / 指标 / 文档 / 登录
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"openapi": "/docs/openapi.yaml"})
	})
	r.StaticFile("/docs/openapi.yaml", "./api/openapi.yaml")

	public := r.Group("/api/public")
	d.Auth.Register(public)

	// 其余全部要求认证（Basic / Bearer / 会话）
	protected := r.Group("")
	protected.Use(mdw.Authenticated(d.Accounts, d.JWTer, d.Sessions))
	d.Users.Register(protected)
	d.Entities.Register(protected)

	return r
}
