package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Teckas-Technologies/spring-crud/internal/domain"
)

// ErrorBody 统一错误信封，两个资源共用同一结构
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewError(status int, message string) ErrorBody {
	return ErrorBody{Status: status, Error: http.StatusText(status), Message: message}
}

// AbortError 按给定状态码写错误信封并中断
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewError(status, message))
}

// AbortDomainErr 将领域错误映射为状态码；未识别的错误不向外泄露细节
func AbortDomainErr(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		AbortError(c, http.StatusNotFound, err.Error())
	case domain.IsInvalidArgument(err):
		AbortError(c, http.StatusBadRequest, err.Error())
	case domain.IsConflict(err):
		AbortError(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		AbortError(c, http.StatusInternalServerError, "internal server error")
	}
}
