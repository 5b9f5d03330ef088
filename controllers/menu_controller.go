package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/utils"
)

type MenuController struct {
	api *libs.KejoraAPI
}

func NewMenuController(api *libs.KejoraAPI) *MenuController {
	return &MenuController{api: api}
}

type menuView struct {
	models.Menu
	PhotoURL       string `json:"photo_url"`
	PriceFormatted string `json:"price_formatted"`
}

func newMenuView(menu models.Menu) menuView {
	return menuView{
		Menu:           menu,
		PhotoURL:       utils.ResolveMenuPhoto(menu),
		PriceFormatted: utils.FormatCurrency(menu.Price),
	}
}

// GetMenus godoc
// @Summary Storefront menu list
// @Description List visible menus with resolved photo URLs, optionally filtered
// @Tags storefront
// @Produce json
// @Param search query string false "Search by menu name"
// @Param category query string false "Filter by category name"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /order/menus [get]
func (ctrl *MenuController) GetMenus(c *gin.Context) {
	params := url.Values{}
	if search := c.Query("search"); search != "" {
		params.Set("search", search)
	}
	if category := c.Query("category"); category != "" {
		params.Set("category", category)
	}

	menus, err := ctrl.api.ListPublicMenus(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"message": libs.ExtractErrorMessage(err, "Failed to load menus"),
		})
		return
	}

	views := make([]menuView, 0, len(menus))
	for _, menu := range menus {
		if !menu.IsVisible {
			continue
		}
		views = append(views, newMenuView(menu))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menus fetched",
		"data":    views,
	})
}

// GetMenuByID godoc
// @Summary Storefront menu detail
// @Tags storefront
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/menus/{id} [get]
func (ctrl *MenuController) GetMenuByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid menu ID"})
		return
	}

	menu, err := ctrl.api.GetPublicMenu(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": libs.ExtractErrorMessage(err, "Menu not found"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu fetched",
		"data":    newMenuView(*menu),
	})
}
