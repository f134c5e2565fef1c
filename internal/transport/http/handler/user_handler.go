package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Teckas-Technologies/spring-crud/internal/domain"
	"github.com/Teckas-Technologies/spring-crud/internal/service"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) Register(g *gin.RouterGroup) {
	u := g.Group("/user")
	u.POST("", h.create)
	u.GET("", h.list)
	u.GET("/:id", h.get)
	u.PUT("/:id", h.update)
	u.DELETE("/:id", h.delete)
}

func (h *UserHandler) create(c *gin.Context) {
	var in domain.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.AbortError(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.svc.Add(c.Request.Context(), &in)
	if err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) list(c *gin.Context) {
	pageNo, pageSize, ok := pageParams(c)
	if !ok {
		return
	}
	page, err := h.svc.List(c.Request.Context(), pageNo, pageSize)
	if err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.AbortError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, &in); err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.String(http.StatusOK, "User updated successfully")
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.String(http.StatusOK, "User deleted successfully")
}

// pathID 解析 :id，失败时已写好 400
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid id: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

// pageParams 解析 pageNo/pageSize，默认 0/10，和原接口保持一致
func pageParams(c *gin.Context) (pageNo, pageSize int, ok bool) {
	var err error
	if pageNo, err = strconv.Atoi(c.DefaultQuery("pageNo", "0")); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid pageNo")
		return 0, 0, false
	}
	if pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", "10")); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid pageSize")
		return 0, 0, false
	}
	return pageNo, pageSize, true
}
