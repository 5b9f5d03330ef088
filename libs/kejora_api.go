package libs

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dendisetiawann/kejora-frontend/models"
)

// KejoraAPI exposes the upstream café API through the public and admin
// client configurations.
type KejoraAPI struct {
	Public *APIClient
	Admin  *APIClient
}

func NewKejoraAPI(baseURL string, token TokenFunc) *KejoraAPI {
	return &KejoraAPI{
		Public: NewPublicClient(baseURL),
		Admin:  NewAdminClient(baseURL, token),
	}
}

func (a *KejoraAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := a.Public.Post(ctx, "/admin/login", JSONBody{Payload: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.Admin.Get(ctx, "/admin/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := a.Admin.Get(ctx, "/admin/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (a *KejoraAPI) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	var out models.Category
	if err := a.Admin.Post(ctx, "/admin/categories", JSONBody{Payload: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) UpdateCategory(ctx context.Context, id int, req models.CategoryRequest) (*models.Category, error) {
	var out models.Category
	if err := a.Admin.Put(ctx, "/admin/categories/"+strconv.Itoa(id), JSONBody{Payload: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) DeleteCategory(ctx context.Context, id int) error {
	return a.Admin.Delete(ctx, "/admin/categories/"+strconv.Itoa(id), nil)
}

func (a *KejoraAPI) ListAdminMenus(ctx context.Context) ([]models.Menu, error) {
	menus := []models.Menu{}
	if err := a.Admin.Get(ctx, "/admin/menus", nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// MenuForm is the multipart payload for menu create/update. Photo is
// optional; when nil only the fields are sent.
type MenuForm struct {
	Fields map[string]string
	Photo  *MultipartFile
}

func (f MenuForm) body() MultipartBody {
	body := MultipartBody{Fields: f.Fields}
	if f.Photo != nil {
		body.Files = []MultipartFile{*f.Photo}
	}
	return body
}

func (a *KejoraAPI) CreateMenu(ctx context.Context, form MenuForm) (*models.Menu, error) {
	var out models.Menu
	if err := a.Admin.Post(ctx, "/admin/menus", form.body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) UpdateMenu(ctx context.Context, id int, form MenuForm) (*models.Menu, error) {
	var out models.Menu
	if err := a.Admin.Put(ctx, "/admin/menus/"+strconv.Itoa(id), form.body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) DeleteMenu(ctx context.Context, id int) error {
	return a.Admin.Delete(ctx, "/admin/menus/"+strconv.Itoa(id), nil)
}

func (a *KejoraAPI) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := a.Admin.Get(ctx, "/admin/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *KejoraAPI) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var out models.Order
	if err := a.Admin.Get(ctx, "/admin/orders/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) UpdateOrderStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	var out models.Order
	payload := map[string]string{"status": status}
	if err := a.Admin.Put(ctx, fmt.Sprintf("/admin/orders/%d/status", id), JSONBody{Payload: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) UpdatePaymentStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	var out models.Order
	payload := map[string]string{"status": status}
	if err := a.Admin.Put(ctx, fmt.Sprintf("/admin/orders/%d/payment-status", id), JSONBody{Payload: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) ListPublicMenus(ctx context.Context, params url.Values) ([]models.Menu, error) {
	menus := []models.Menu{}
	if err := a.Public.Get(ctx, "/public/menus", params, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (a *KejoraAPI) GetPublicMenu(ctx context.Context, id int) (*models.Menu, error) {
	var out models.Menu
	if err := a.Public.Get(ctx, "/public/menus/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderResponse, error) {
	var out models.OrderResponse
	if err := a.Public.Post(ctx, "/public/orders", JSONBody{Payload: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) GetPublicOrder(ctx context.Context, id int) (*models.Order, error) {
	var out models.Order
	if err := a.Public.Get(ctx, "/public/orders/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KejoraAPI) MarkOrderPaid(ctx context.Context, id int) (*models.Order, error) {
	var out models.MarkPaidResponse
	if err := a.Public.Post(ctx, fmt.Sprintf("/public/orders/%d/mark-paid", id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}
