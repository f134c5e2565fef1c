package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Teckas-Technologies/spring-crud/internal/domain"
	"github.com/Teckas-Technologies/spring-crud/internal/service"
	"github.com/Teckas-Technologies/spring-crud/internal/transport/http/response"
)

type EntityHandler struct {
	svc *service.EntityService
	log *zap.Logger
}

func NewEntityHandler(svc *service.EntityService, log *zap.Logger) *EntityHandler {
	return &EntityHandler{svc: svc, log: log}
}

func (h *EntityHandler) Register(g *gin.RouterGroup) {
	e := g.Group("/entities")
	e.POST("", h.create)
	e.GET("", h.list)
	e.GET("/:id", h.get)
	e.PUT("/:id", h.update)
	e.DELETE("/:id", h.delete)
}

func (h *EntityHandler) create(c *gin.Context) {
	var in domain.EntityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.AbortError(c, http.StatusBadRequest, err.Error())
		return
	}
	e, err := h.svc.Add(c.Request.Context(), &in)
	if err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EntityHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EntityHandler) list(c *gin.Context) {
	pageNo, pageSize, ok := pageParams(c)
	if !ok {
		return
	}
	page, err := h.svc.List(c.Request.Context(), service.EntityListParams{
		PageNo:     pageNo,
		PageSize:   pageSize,
		Name:       c.Query("name"),
		SortBy:     c.DefaultQuery("sortBy", "createdAt"),
		EntityType: c.Query("entityType"),
	})
	if err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EntityHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.EntityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.AbortError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, &in); err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.String(http.StatusOK, "Entity updated successfully")
}

func (h *EntityHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.AbortDomainErr(c, err)
		return
	}
	c.String(http.StatusOK, "Entity deleted successfully")
}
