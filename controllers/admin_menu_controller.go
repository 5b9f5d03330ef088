package controllers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/services"
	"github.com/dendisetiawann/kejora-frontend/utils"
)

type AdminMenuController struct {
	api  *libs.KejoraAPI
	auth *services.AuthService
}

func NewAdminMenuController(api *libs.KejoraAPI, auth *services.AuthService) *AdminMenuController {
	return &AdminMenuController{api: api, auth: auth}
}

var menuFormFields = []string{"name", "category_id", "price", "description", "is_visible"}

// menuFormFromRequest collects the posted form fields and, when a photo was
// attached, validates and buffers it for the upstream multipart request.
func menuFormFromRequest(c *gin.Context) (libs.MenuForm, error) {
	form := libs.MenuForm{Fields: map[string]string{}}
	for _, field := range menuFormFields {
		if value, ok := c.GetPostForm(field); ok {
			form.Fields[field] = value
		}
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		// No photo attached is fine, the upstream keeps the existing one.
		return form, nil
	}
	if err := utils.ValidateImageUpload(fileHeader); err != nil {
		return form, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return form, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return form, err
	}

	form.Photo = &libs.MultipartFile{
		Field:    "photo",
		Filename: fileHeader.Filename,
		Content:  bytes.NewReader(content),
	}
	return form, nil
}

// GetMenus godoc
// @Summary List all menus
// @Description List every menu including hidden ones, with resolved photo URLs
// @Tags admin-menus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/menus [get]
func (ctrl *AdminMenuController) GetMenus(c *gin.Context) {
	menus, err := ctrl.api.ListAdminMenus(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to load menus")
		return
	}

	views := make([]menuView, 0, len(menus))
	for _, menu := range menus {
		views = append(views, newMenuView(menu))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menus fetched",
		"data":    views,
	})
}

// CreateMenu godoc
// @Summary Create a menu
// @Tags admin-menus
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Menu name"
// @Param category_id formData int true "Category ID"
// @Param price formData number true "Price"
// @Param description formData string false "Description"
// @Param is_visible formData bool false "Visible on the storefront"
// @Param photo formData file false "Menu photo"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menus [post]
func (ctrl *AdminMenuController) CreateMenu(c *gin.Context) {
	form, err := menuFormFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	menu, err := ctrl.api.CreateMenu(c.Request.Context(), form)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to create menu")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Menu created",
		"data":    newMenuView(*menu),
	})
}

// UpdateMenu godoc
// @Summary Update a menu
// @Description Update menu fields, replace the photo, or toggle storefront visibility
// @Tags admin-menus
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Param name formData string false "Menu name"
// @Param category_id formData int false "Category ID"
// @Param price formData number false "Price"
// @Param description formData string false "Description"
// @Param is_visible formData bool false "Visible on the storefront"
// @Param photo formData file false "Menu photo"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menus/{id} [put]
func (ctrl *AdminMenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid menu ID"})
		return
	}

	form, err := menuFormFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	menu, err := ctrl.api.UpdateMenu(c.Request.Context(), id, form)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to update menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu updated",
		"data":    newMenuView(*menu),
	})
}

// DeleteMenu godoc
// @Summary Delete a menu
// @Tags admin-menus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menus/{id} [delete]
func (ctrl *AdminMenuController) DeleteMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid menu ID"})
		return
	}

	if err := ctrl.api.DeleteMenu(c.Request.Context(), id); err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to delete menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu deleted",
	})
}
