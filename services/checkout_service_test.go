package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/repositories"
)

type fakeMenus struct {
	menus map[int]models.Menu
}

func (f *fakeMenus) GetPublicMenu(ctx context.Context, id int) (*models.Menu, error) {
	menu, ok := f.menus[id]
	if !ok {
		return nil, errors.New("menu not found")
	}
	return &menu, nil
}

type fakeSubmitter struct {
	req  *models.CreateOrderRequest
	resp *models.OrderResponse
	err  error
}

func (f *fakeSubmitter) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderResponse, error) {
	f.req = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func checkoutFixture(submitter *fakeSubmitter) (*CheckoutService, *repositories.OrderSuccessRepository) {
	kv := repositories.NewMemoryKV()
	drafts := repositories.NewDraftRepository(kv)
	success := repositories.NewOrderSuccessRepository(kv)
	menus := &fakeMenus{menus: map[int]models.Menu{
		1: {ID: 1, Name: "Es Kopi Susu", Price: 15000, IsVisible: true},
		2: {ID: 2, Name: "Nasi Goreng", Price: 25000, IsVisible: true},
		3: {ID: 3, Name: "Hidden", Price: 10000, IsVisible: false},
	}}
	return NewCheckoutService(drafts, success, menus, submitter), success
}

func startCart(t *testing.T, svc *CheckoutService, sessionID string) {
	t.Helper()
	_, err := svc.StartCart(context.Background(), sessionID, models.StartCartRequest{
		CustomerName: "Sari",
		TableNumber:  "3",
	})
	if err != nil {
		t.Fatalf("start cart: %v", err)
	}
}

func TestStartCartRequiresIdentity(t *testing.T) {
	svc, _ := checkoutFixture(&fakeSubmitter{})
	ctx := context.Background()

	if _, err := svc.StartCart(ctx, "sess", models.StartCartRequest{TableNumber: "3"}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := svc.StartCart(ctx, "sess", models.StartCartRequest{CustomerName: "Sari", TableNumber: "  "}); err == nil {
		t.Fatal("expected error for blank table")
	}
}

func TestAddItemAccumulatesTotal(t *testing.T) {
	svc, _ := checkoutFixture(&fakeSubmitter{})
	ctx := context.Background()
	startCart(t, svc, "sess")

	if _, err := svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 1, Qty: 2}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	draft, err := svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 2, Qty: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	if got := draft.Total(); got != 55000 {
		t.Fatalf("expected total 55000, got %v", got)
	}
}

func TestAddItemTopsUpExistingLine(t *testing.T) {
	svc, _ := checkoutFixture(&fakeSubmitter{})
	ctx := context.Background()
	startCart(t, svc, "sess")

	svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 1, Qty: 1})
	draft, err := svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 1, Qty: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	if len(draft.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(draft.Items))
	}
	if draft.Items[0].Qty != 3 {
		t.Fatalf("expected qty 3, got %d", draft.Items[0].Qty)
	}
}

func TestAddItemRejectsHiddenMenu(t *testing.T) {
	svc, _ := checkoutFixture(&fakeSubmitter{})
	startCart(t, svc, "sess")

	_, err := svc.AddItem(context.Background(), "sess", models.AddCartItemRequest{MenuID: 3, Qty: 1})
	if !errors.Is(err, ErrMenuUnavailable) {
		t.Fatalf("expected ErrMenuUnavailable, got %v", err)
	}
}

func TestUpdateItemZeroQtyRemovesLine(t *testing.T) {
	svc, _ := checkoutFixture(&fakeSubmitter{})
	ctx := context.Background()
	startCart(t, svc, "sess")
	svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 1, Qty: 2})

	draft, err := svc.UpdateItem(ctx, "sess", 1, models.UpdateCartItemRequest{Qty: 0})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if len(draft.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(draft.Items))
	}
}

func TestUpdateItemUnknownLine(t *testing.T) {
	svc, _ := checkoutFixture(&fakeSubmitter{})
	startCart(t, svc, "sess")

	_, err := svc.UpdateItem(context.Background(), "sess", 99, models.UpdateCartItemRequest{Qty: 1})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	svc, _ := checkoutFixture(&fakeSubmitter{})

	if _, err := svc.Submit(context.Background(), "sess"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitPlacesOrderAndClearsDraft(t *testing.T) {
	submitter := &fakeSubmitter{resp: &models.OrderResponse{
		Message: "Pesanan berhasil dibuat",
		Order: models.Order{
			ID:            12,
			PaymentStatus: models.PaymentStatusUnpaid,
			OrderStatus:   models.OrderStatusNew,
		},
	}}
	svc, success := checkoutFixture(submitter)
	ctx := context.Background()
	startCart(t, svc, "sess")
	svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 1, Qty: 2})
	svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 2, Qty: 1})

	payload, err := svc.Submit(ctx, "sess")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if submitter.req == nil {
		t.Fatal("expected an upstream order request")
	}
	if submitter.req.PaymentMethod != models.PaymentMethodCash {
		t.Fatalf("expected default cash method, got %q", submitter.req.PaymentMethod)
	}
	if len(submitter.req.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(submitter.req.Items))
	}

	if payload.Total != 55000 {
		t.Fatalf("expected total 55000, got %v", payload.Total)
	}
	if payload.OrderCode != "ORD-12" {
		t.Fatalf("expected fallback code ORD-12, got %q", payload.OrderCode)
	}

	if draft, _ := svc.Cart(ctx, "sess"); draft != nil {
		t.Fatal("expected draft cleared after submit")
	}
	stored, err := success.Read(ctx, "sess")
	if err != nil || stored == nil {
		t.Fatalf("expected stored success payload, got %v %v", stored, err)
	}
	if stored.OrderID != 12 {
		t.Fatalf("expected stored order 12, got %d", stored.OrderID)
	}
}

func TestSubmitCarriesQRISOptions(t *testing.T) {
	token := "https://pay.example/invoice/abc"
	submitter := &fakeSubmitter{resp: &models.OrderResponse{
		Order: models.Order{
			ID:            13,
			OrderNumber:   "KJR-0013",
			PaymentStatus: models.PaymentStatusPending,
			OrderStatus:   models.OrderStatusNew,
		},
		SnapToken: &token,
	}}
	svc, _ := checkoutFixture(submitter)
	ctx := context.Background()
	startCart(t, svc, "sess")
	svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 1, Qty: 1})

	if _, err := svc.SetOptions(ctx, "sess", models.CheckoutOptionsRequest{
		PaymentMethod: models.PaymentMethodQRIS,
		OrderNote:     "tanpa gula",
	}); err != nil {
		t.Fatalf("set options: %v", err)
	}

	payload, err := svc.Submit(ctx, "sess")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if submitter.req.PaymentMethod != models.PaymentMethodQRIS {
		t.Fatalf("expected qris method, got %q", submitter.req.PaymentMethod)
	}
	if submitter.req.CustomerNote == nil || *submitter.req.CustomerNote != "tanpa gula" {
		t.Fatalf("expected customer note forwarded, got %v", submitter.req.CustomerNote)
	}
	if payload.SnapToken != token {
		t.Fatalf("expected snap token carried, got %q", payload.SnapToken)
	}
	if payload.OrderCode != "KJR-0013" {
		t.Fatalf("expected upstream order number, got %q", payload.OrderCode)
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("upstream down")}
	svc, _ := checkoutFixture(submitter)
	ctx := context.Background()
	startCart(t, svc, "sess")
	svc.AddItem(ctx, "sess", models.AddCartItemRequest{MenuID: 1, Qty: 1})

	if _, err := svc.Submit(ctx, "sess"); err == nil {
		t.Fatal("expected submit error")
	}

	draft, err := svc.Cart(ctx, "sess")
	if err != nil || draft == nil {
		t.Fatalf("expected draft kept after failed submit, got %v %v", draft, err)
	}
}
