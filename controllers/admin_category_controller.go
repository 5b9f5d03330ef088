package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/services"
)

type AdminCategoryController struct {
	api  *libs.KejoraAPI
	auth *services.AuthService
}

func NewAdminCategoryController(api *libs.KejoraAPI, auth *services.AuthService) *AdminCategoryController {
	return &AdminCategoryController{api: api, auth: auth}
}

// GetCategories godoc
// @Summary List categories
// @Tags admin-categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/categories [get]
func (ctrl *AdminCategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.api.ListCategories(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to load categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Categories fetched",
		"data":    categories,
	})
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CategoryRequest true "Category name"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *AdminCategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name is required"})
		return
	}

	category, err := ctrl.api.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Category created",
		"data":    category,
	})
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param body body models.CategoryRequest true "Category name"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories/{id} [put]
func (ctrl *AdminCategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name is required"})
		return
	}

	category, err := ctrl.api.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category updated",
		"data":    category,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags admin-categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *AdminCategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	if err := ctrl.api.DeleteCategory(c.Request.Context(), id); err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted",
	})
}
