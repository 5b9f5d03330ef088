package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/repositories"
)

var ErrNoActiveOrder = errors.New("no active order")

// OrderWatcher is the slice of the upstream API the reconciliation needs.
type OrderWatcher interface {
	GetPublicOrder(ctx context.Context, id int) (*models.Order, error)
	MarkOrderPaid(ctx context.Context, id int) (*models.Order, error)
}

// Convergence phases of a submitted order as seen by the success page.
const (
	PhasePending         = "pending"
	PhaseConvergedPaid   = "converged_paid"
	PhaseConvergedUnpaid = "converged_unpaid"
)

type markPaidState int

const (
	markPaidIdle markPaidState = iota
	markPaidLoading
	markPaidCompleted
)

const providerStatusSuccess = "success"

// SuccessView is what the success page renders.
type SuccessView struct {
	Payload         models.OrderSuccessPayload `json:"payload"`
	Phase           string                     `json:"phase"`
	QRImageURL      string                     `json:"qr_image_url,omitempty"`
	PaymentDeadline *time.Time                 `json:"payment_deadline,omitempty"`
	GatewayURL      string                     `json:"gateway_url,omitempty"`
	Receipts        []string                   `json:"receipts,omitempty"`
	MerchantID      string                     `json:"merchant_id,omitempty"`
}

// OrderSuccessService converges a just-submitted order to its true payment
// state. Payment confirmation (especially QRIS) may complete on the
// provider's side after the page first rendered, so the service polls the
// order until paymentStatus or orderStatus reaches a terminal-for-this-page
// condition, with a one-shot mark-paid fallback and one-shot side effects
// (receipt generation, gateway handoff) guarded by explicit state.
type OrderSuccessService struct {
	repo       *repositories.OrderSuccessRepository
	api        OrderWatcher
	receipts   libs.ReceiptGenerator
	interval   time.Duration
	merchantID string

	mu       sync.Mutex
	watchers map[string]*successWatcher
}

func NewOrderSuccessService(repo *repositories.OrderSuccessRepository, api OrderWatcher, receipts libs.ReceiptGenerator, interval time.Duration, merchantID string) *OrderSuccessService {
	return &OrderSuccessService{
		repo:       repo,
		api:        api,
		receipts:   receipts,
		interval:   interval,
		merchantID: merchantID,
		watchers:   map[string]*successWatcher{},
	}
}

// StartWatch begins reconciliation for the session's stored payload.
// providerStatus carries the payment provider's redirect indicator when the
// success page was reached through one. A watch already running for the same
// order is reused, with a newly seen providerStatus folded in; the provider
// redirect polls the success URL with the query string intact, and a rebuild
// on every poll would reset the one-shot guards (mark-paid tri-state,
// generated receipts, gateway handoff). Only a different order ID in the
// stored payload tears the watch down and starts over.
func (s *OrderSuccessService) StartWatch(ctx context.Context, sessionID, providerStatus string) (*SuccessView, error) {
	payload, err := s.repo.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, ErrNoActiveOrder
	}

	s.mu.Lock()
	existing := s.watchers[sessionID]
	s.mu.Unlock()
	if existing != nil && existing.orderID() == payload.OrderID {
		existing.observeProviderStatus(ctx, providerStatus)
		return existing.view(), nil
	}

	s.StopWatch(sessionID)

	w := &successWatcher{
		svc:            s,
		sessionID:      sessionID,
		providerStatus: providerStatus,
		payload:        *payload,
		phase:          PhasePending,
		generated:      map[string]bool{},
	}

	w.mu.Lock()
	w.evaluate(ctx)
	pending := w.phase == PhasePending
	w.mu.Unlock()

	s.mu.Lock()
	s.watchers[sessionID] = w
	s.mu.Unlock()

	if pending {
		watchCtx, cancel := context.WithCancel(context.Background())
		w.cancel = cancel
		go w.run(watchCtx)
	}

	return w.view(), nil
}

// HasWatch reports whether the session already has a reconciliation running
// or completed for the current page lifetime.
func (s *OrderSuccessService) HasWatch(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.watchers[sessionID]
	return ok
}

// State returns the current view for the session's watch.
func (s *OrderSuccessService) State(sessionID string) (*SuccessView, error) {
	s.mu.Lock()
	w, ok := s.watchers[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoActiveOrder
	}
	return w.view(), nil
}

// StopWatch cancels the session's polling; an in-flight request resolving
// afterwards is not acted upon.
func (s *OrderSuccessService) StopWatch(sessionID string) {
	s.mu.Lock()
	w, ok := s.watchers[sessionID]
	delete(s.watchers, sessionID)
	s.mu.Unlock()
	if ok && w.cancel != nil {
		w.cancel()
	}
}

// Clear tears down the watch and removes the stored payload; called when the
// customer returns to the menu.
func (s *OrderSuccessService) Clear(ctx context.Context, sessionID string) error {
	s.StopWatch(sessionID)
	return s.repo.Clear(ctx, sessionID)
}

type successWatcher struct {
	svc            *OrderSuccessService
	sessionID      string
	providerStatus string
	cancel         context.CancelFunc

	mu            sync.Mutex
	payload       models.OrderSuccessPayload
	phase         string
	markPaid      markPaidState
	gatewayOpened bool
	generated     map[string]bool
	receiptFiles  []string
}

func (w *successWatcher) orderID() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.payload.OrderID
}

// observeProviderStatus folds a provider redirect indicator seen mid-watch
// into the running watch. The one-shot guards keep their state; evaluate
// runs so a fresh success indicator can arm the mark-paid fallback.
func (w *successWatcher) observeProviderStatus(ctx context.Context, providerStatus string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if providerStatus == "" || w.providerStatus == providerStatus {
		return
	}
	w.providerStatus = providerStatus
	w.evaluate(ctx)
}

func (w *successWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.svc.interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *successWatcher) tick(ctx context.Context) {
	w.mu.Lock()
	if w.phase != PhasePending {
		w.mu.Unlock()
		if w.cancel != nil {
			w.cancel()
		}
		return
	}
	orderID := w.payload.OrderID
	w.mu.Unlock()

	order, err := w.svc.api.GetPublicOrder(ctx, orderID)
	if err != nil {
		// silent fail, retried next tick
		return
	}

	w.mu.Lock()
	w.merge(ctx, *order)
	w.evaluate(ctx)
	converged := w.phase != PhasePending
	w.mu.Unlock()

	if converged && w.cancel != nil {
		w.cancel()
	}
}

// merge folds the observed statuses into the payload and persists it.
// Callers hold w.mu.
func (w *successWatcher) merge(ctx context.Context, order models.Order) {
	w.payload.PaymentStatus = order.PaymentStatus
	w.payload.OrderStatus = order.OrderStatus
	if err := w.svc.repo.Save(ctx, w.sessionID, w.payload); err != nil {
		log.Printf("Failed to persist order success payload: %v", err)
	}
}

// evaluate advances the state machine and fires any one-shot effects whose
// transition guard became true. Callers hold w.mu.
func (w *successWatcher) evaluate(ctx context.Context) {
	switch {
	case w.payload.PaymentCleared():
		w.phase = PhaseConvergedPaid
	case w.payload.PaymentStatus == models.PaymentStatusFailed,
		w.payload.OrderStatus == models.OrderStatusCancelled:
		w.phase = PhaseConvergedUnpaid
	default:
		w.phase = PhasePending
	}

	if w.payload.PaymentMethod == models.PaymentMethodQRIS &&
		w.providerStatus == providerStatusSuccess &&
		w.phase == PhasePending &&
		w.markPaid == markPaidIdle {
		w.markPaid = markPaidLoading
		go w.runMarkPaid()
	}

	w.maybeGenerateReceipt()
}

// runMarkPaid covers the provider redirect arriving before the provider's
// own webhook has updated upstream state. It fires at most once per page
// lifetime; failure is logged and leaves the tri-state at completed.
func (w *successWatcher) runMarkPaid() {
	ctx := context.Background()

	w.mu.Lock()
	orderID := w.payload.OrderID
	w.mu.Unlock()

	order, err := w.svc.api.MarkOrderPaid(ctx, orderID)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.markPaid = markPaidCompleted
	if err != nil {
		log.Printf("Failed to mark QRIS payment automatically: %v", err)
		return
	}
	w.merge(ctx, *order)
	w.evaluate(ctx)
}

func (w *successWatcher) qrisSuccess() bool {
	return w.providerStatus == providerStatusSuccess || w.payload.PaymentCleared()
}

// maybeGenerateReceipt produces at most one receipt per distinct resolved
// status; a transition to a different resolved status permits one new
// generation. Callers hold w.mu.
func (w *successWatcher) maybeGenerateReceipt() {
	var paid bool
	if w.payload.PaymentMethod == models.PaymentMethodQRIS {
		if !w.qrisSuccess() {
			return
		}
		paid = true
	} else {
		paid = w.payload.PaymentCleared()
	}

	resolved := "unpaid"
	if paid {
		resolved = "paid"
	}
	if w.generated[resolved] {
		return
	}

	name, err := w.svc.receipts.Generate(w.payload, paid)
	if err != nil {
		log.Printf("Failed to generate receipt PDF: %v", err)
		return
	}
	w.generated[resolved] = true
	w.receiptFiles = append(w.receiptFiles, name)
}

func (w *successWatcher) view() *SuccessView {
	w.mu.Lock()
	defer w.mu.Unlock()

	view := &SuccessView{
		Payload:  w.payload,
		Phase:    w.phase,
		Receipts: append([]string(nil), w.receiptFiles...),
	}

	if w.payload.PaymentMethod == models.PaymentMethodQRIS {
		view.MerchantID = w.svc.merchantID
		deadline := w.payload.PaymentDeadline()
		view.PaymentDeadline = &deadline

		if w.payload.SnapToken != "" && !w.qrisSuccess() {
			view.QRImageURL = fmt.Sprintf(
				"https://api.qrserver.com/v1/create-qr-code/?size=220x220&data=%s",
				url.QueryEscape(w.payload.SnapToken),
			)
		}

		// The payment link is handed to the browser exactly once per page
		// lifetime.
		if w.payload.SnapToken != "" && !w.gatewayOpened {
			w.gatewayOpened = true
			view.GatewayURL = w.payload.SnapToken
		}
	}

	return view
}
