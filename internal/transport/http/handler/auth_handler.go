package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Teckas-Technologies/spring-crud/internal/core/auth"
	"github.com/Teckas-Technologies/spring-crud/internal/core/session"
	"github.com/Teckas-Technologies/spring-crud/internal/domain"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/response"
	"github.com/Teckas-Technologies/spring-crud/pkg/utils"
)

const sessionCookie = "SESSION"

type AuthHandler struct {
	accounts domain.AccountRepository
	jwter    *auth.JWTer
	sessions session.Store
	log      *zap.Logger
}

func NewAuthHandler(accounts domain.AccountRepository, jwter *auth.JWTer, sessions session.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwter: jwter, sessions: sessions, log: log}
}

// Register 挂在公开前缀下（/api/public）
func (h *AuthHandler) Register(g *gin.RouterGroup) {
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.POST("/token", h.token)
}

// login 表单登录：校验通过后发服务端会话 cookie
func (h *AuthHandler) login(c *gin.Context) {
	var in struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&in); err != nil {
		response.AbortError(c, http.StatusBadRequest, err.Error())
		return
	}
	a := h.verify(c, in.Username, in.Password)
	if a == nil {
		return
	}
	if h.sessions == nil {
		response.AbortError(c, http.StatusServiceUnavailable, "session store not configured")
		return
	}
	sid, err := h.sessions.Create(c.Request.Context(), a.Username)
	if err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
	h.log.Info("form login", zap.String("username", a.Username))
	c.JSON(http.StatusOK, gin.H{"message": "login successful"})
}

func (h *AuthHandler) logout(c *gin.Context) {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" && h.sessions != nil {
		_ = h.sessions.Destroy(c.Request.Context(), sid)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// token 颁发 Bearer JWT，给非浏览器客户端用
func (h *AuthHandler) token(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.AbortError(c, http.StatusBadRequest, err.Error())
		return
	}
	a := h.verify(c, in.Username, in.Password)
	if a == nil {
		return
	}
	tok, err := h.jwter.Issue(a.Username, a.Role)
	if err != nil || tok == "" {
		response.AbortError(c, http.StatusInternalServerError, "issue token failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     tok,
		"expiresIn": int(h.jwter.TTL.Seconds()),
	})
}

// verify 失败时已写好 401 并返回 nil；绝不记录明文口令
func (h *AuthHandler) verify(c *gin.Context, username, password string) *domain.Account {
	a, err := h.accounts.FindByUsername(c.Request.Context(), username)
	if err != nil {
		response.AbortDomainErr(c, err)
		return nil
	}
	if a == nil || !utils.CheckPassword(password, a.PasswordHash) {
		h.log.Warn("login rejected", zap.String("username", username))
		response.AbortError(c, http.StatusUnauthorized, "invalid credentials")
		return nil
	}
	return a
}
