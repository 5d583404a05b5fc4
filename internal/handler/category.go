package handler

import (
	"net/http"

	"github.com/coolcut/siphon/internal/models"
	"github.com/coolcut/siphon/internal/storage"
	"github.com/coolcut/siphon/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	Store storage.CategoryStorage
}

func NewCategoryHandler(store storage.CategoryStorage) *CategoryHandler {
	return &CategoryHandler{Store: store}
}

type createCategoryReq struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Store.ListCategories(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list categories")
		return
	}
	util.Success(c, util.Response{"categories": categories})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}

	id, err := h.Store.CreateCategory(c.Request.Context(), models.CreateCategoryPayload{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create category")
		return
	}
	util.Success(c, util.Response{"id": id})
}

// Delete removes a category by id. Deleting an unknown id succeeds; deleting a
// referenced category leaves referencing subscriptions untouched.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.Store.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete category")
		return
	}
	util.Success(c, util.Response{})
}
