package handler

import (
	"net/http"

	"github.com/coolcut/siphon/internal/models"
	"github.com/coolcut/siphon/internal/storage"
	"github.com/coolcut/siphon/internal/util"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the service (provider) endpoints.
type ServiceHandler struct {
	Store storage.ServiceStorage
}

func NewServiceHandler(store storage.ServiceStorage) *ServiceHandler {
	return &ServiceHandler{Store: store}
}

type createServiceReq struct {
	Name              string  `json:"name" binding:"required"`
	IconURL           *string `json:"icon_url"`
	URL               *string `json:"url"`
	DefaultCategoryID *string `json:"default_category_id"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.Store.ListServices(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list services")
		return
	}
	util.Success(c, util.Response{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req createServiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}

	id, err := h.Store.CreateService(c.Request.Context(), models.CreateServicePayload{
		Name:              req.Name,
		IconURL:           req.IconURL,
		URL:               req.URL,
		DefaultCategoryID: req.DefaultCategoryID,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create service")
		return
	}
	util.Success(c, util.Response{"id": id})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.Store.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete service")
		return
	}
	util.Success(c, util.Response{})
}
