package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Teckas-Technologies/spring-crud/internal/core/auth"
	"github.com/Teckas-Technologies/spring-crud/internal/core/session"
	"github.com/Teckas-Technologies/spring-crud/internal/domain"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/response"
	"github.com/Teckas-Technologies/spring-crud/pkg/utils"
)

// KeyAccount 认证通过后写入 gin.Context 的账号名
const KeyAccount = "account"

const sessionCookie = "SESSION"

// Authenticated 接受三种凭证：HTTP Basic、Bearer JWT、表单登录会话 cookie。
// 全部失败时回 401 并带 WWW-Authenticate，便于 curl/浏览器直接走 Basic。
func Authenticated(accounts domain.AccountRepository, jwter *auth.JWTer, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Basic
		if username, password, ok := c.Request.BasicAuth(); ok {
			a, err := accounts.FindByUsername(c.Request.Context(), username)
			if err == nil && a != nil && utils.CheckPassword(password, a.PasswordHash) {
				c.Set(KeyAccount, a.Username)
				c.Next()
				return
			}
			unauthorized(c, "invalid credentials")
			return
		}

		// Bearer
		if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
			claims, err := jwter.Parse(strings.TrimPrefix(ah, "Bearer "))
			if err != nil {
				unauthorized(c, "invalid token")
				return
			}
			c.Set(KeyAccount, claims.Subject)
			c.Next()
			return
		}

		// 会话 cookie
		if sessions != nil {
			if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
				username, err := sessions.Get(c.Request.Context(), sid)
				if err == nil {
					c.Set(KeyAccount, username)
					c.Next()
					return
				}
			}
		}

		unauthorized(c, "authentication required")
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Basic realm="restricted"`)
	response.AbortError(c, http.StatusUnauthorized, msg)
}
