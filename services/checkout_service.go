package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/repositories"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrItemNotFound    = errors.New("item not in cart")
	ErrMenuUnavailable = errors.New("menu is not available")
)

// MenuGetter resolves a menu so cart lines carry a trustworthy name and
// price instead of client-supplied ones.
type MenuGetter interface {
	GetPublicMenu(ctx context.Context, id int) (*models.Menu, error)
}

// OrderSubmitter submits the order upstream.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderResponse, error)
}

// CheckoutService owns the checkout draft lifecycle: cart mutations,
// payment-method and note selection, validation, and submission. Every
// mutation is a read-modify-write against the draft store, which persists
// the draft whole.
type CheckoutService struct {
	drafts  *repositories.DraftRepository
	success *repositories.OrderSuccessRepository
	menus   MenuGetter
	orders  OrderSubmitter
}

func NewCheckoutService(drafts *repositories.DraftRepository, success *repositories.OrderSuccessRepository, menus MenuGetter, orders OrderSubmitter) *CheckoutService {
	return &CheckoutService{
		drafts:  drafts,
		success: success,
		menus:   menus,
		orders:  orders,
	}
}

// StartCart creates (or re-creates) the draft with customer identity; the
// first cart mutation owns draft creation.
func (s *CheckoutService) StartCart(ctx context.Context, sessionID string, req models.StartCartRequest) (*models.CheckoutDraft, error) {
	name := strings.TrimSpace(req.CustomerName)
	table := strings.TrimSpace(req.TableNumber)
	if name == "" {
		return nil, errors.New("customer name is required")
	}
	if table == "" {
		return nil, errors.New("table number is required")
	}

	draft, err := s.drafts.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		draft = &models.CheckoutDraft{
			Items:     []models.DraftItem{},
			CreatedAt: time.Now(),
		}
	}
	draft.CustomerName = name
	draft.TableNumber = table

	if err := s.drafts.Save(ctx, sessionID, *draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddItem resolves the menu upstream and adds (or tops up) a cart line.
func (s *CheckoutService) AddItem(ctx context.Context, sessionID string, req models.AddCartItemRequest) (*models.CheckoutDraft, error) {
	if req.Qty < 1 {
		return nil, errors.New("qty must be at least 1")
	}

	menu, err := s.menus.GetPublicMenu(ctx, req.MenuID)
	if err != nil {
		return nil, err
	}
	if !menu.IsVisible {
		return nil, ErrMenuUnavailable
	}
	if menu.Price <= 0 {
		return nil, errors.New("menu price must be positive")
	}

	draft, err := s.drafts.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		draft = &models.CheckoutDraft{
			Items:     []models.DraftItem{},
			CreatedAt: time.Now(),
		}
	}

	found := false
	for i := range draft.Items {
		if draft.Items[i].MenuID == req.MenuID {
			draft.Items[i].Qty += req.Qty
			if req.Note != "" {
				draft.Items[i].Note = req.Note
			}
			found = true
			break
		}
	}
	if !found {
		draft.Items = append(draft.Items, models.DraftItem{
			MenuID: menu.ID,
			Name:   menu.Name,
			Price:  menu.Price,
			Qty:    req.Qty,
			Note:   req.Note,
		})
	}

	if err := s.drafts.Save(ctx, sessionID, *draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateItem sets a cart line's qty and note; qty zero removes the line.
func (s *CheckoutService) UpdateItem(ctx context.Context, sessionID string, menuID int, req models.UpdateCartItemRequest) (*models.CheckoutDraft, error) {
	draft, err := s.drafts.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrItemNotFound
	}

	index := -1
	for i := range draft.Items {
		if draft.Items[i].MenuID == menuID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrItemNotFound
	}

	if req.Qty == 0 {
		draft.Items = append(draft.Items[:index], draft.Items[index+1:]...)
	} else {
		draft.Items[index].Qty = req.Qty
		draft.Items[index].Note = req.Note
	}

	if err := s.drafts.Save(ctx, sessionID, *draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetOptions persists payment method and order note choices made on the
// checkout page so they survive navigation back to the menu.
func (s *CheckoutService) SetOptions(ctx context.Context, sessionID string, req models.CheckoutOptionsRequest) (*models.CheckoutDraft, error) {
	draft, err := s.drafts.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrEmptyCart
	}

	if req.PaymentMethod != "" {
		draft.PaymentMethod = req.PaymentMethod
	}
	draft.OrderNote = req.OrderNote

	if err := s.drafts.Save(ctx, sessionID, *draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Cart returns the current draft, nil when none exists.
func (s *CheckoutService) Cart(ctx context.Context, sessionID string) (*models.CheckoutDraft, error) {
	return s.drafts.Read(ctx, sessionID)
}

// Reset discards the draft.
func (s *CheckoutService) Reset(ctx context.Context, sessionID string) error {
	return s.drafts.Clear(ctx, sessionID)
}

// Submit validates the draft, creates the order upstream, clears the draft,
// and stores the success payload for the confirmation page.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string) (*models.OrderSuccessPayload, error) {
	draft, err := s.drafts.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil || len(draft.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateDraft(*draft); err != nil {
		return nil, err
	}

	method := draft.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCash
	}

	var note *string
	if trimmed := strings.TrimSpace(draft.OrderNote); trimmed != "" {
		note = &trimmed
	}

	req := models.CreateOrderRequest{
		CustomerName:  draft.CustomerName,
		TableNumber:   draft.TableNumber,
		PaymentMethod: method,
		CustomerNote:  note,
		Items:         make([]models.CreateOrderItemRequest, 0, len(draft.Items)),
	}
	for _, item := range draft.Items {
		req.Items = append(req.Items, models.CreateOrderItemRequest{
			MenuID: item.MenuID,
			Qty:    item.Qty,
			Note:   item.Note,
		})
	}

	resp, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Clear(ctx, sessionID); err != nil {
		log.Printf("Failed to clear checkout draft: %v", err)
	}

	createdAt := resp.Order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	payload := models.OrderSuccessPayload{
		OrderID:       resp.Order.ID,
		OrderCode:     resp.Order.Code(),
		CustomerName:  draft.CustomerName,
		TableNumber:   draft.TableNumber,
		PaymentMethod: method,
		Total:         draft.Total(),
		Items:         draft.Items,
		CustomerNote:  draft.OrderNote,
		Message:       resp.Message,
		CreatedAt:     createdAt,
		PaymentStatus: resp.Order.PaymentStatus,
		OrderStatus:   resp.Order.OrderStatus,
	}
	if resp.SnapToken != nil {
		payload.SnapToken = *resp.SnapToken
	} else if resp.Order.SnapToken != nil {
		payload.SnapToken = *resp.Order.SnapToken
	}

	if err := s.success.Save(ctx, sessionID, payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func validateDraft(draft models.CheckoutDraft) error {
	if strings.TrimSpace(draft.CustomerName) == "" {
		return errors.New("customer name is required")
	}
	if strings.TrimSpace(draft.TableNumber) == "" {
		return errors.New("table number is required")
	}
	for _, item := range draft.Items {
		if item.Qty < 1 {
			return errors.New("item qty must be at least 1")
		}
		if item.Price <= 0 {
			return errors.New("item price must be positive")
		}
	}
	return nil
}
