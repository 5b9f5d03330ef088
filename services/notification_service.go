package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/dendisetiawann/kejora-frontend/models"
)

// OrderLister is the slice of the upstream API the polling engine needs.
type OrderLister interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// NotificationState is a point-in-time view of the engine, rendered by the
// admin panel on every poll of its own.
type NotificationState struct {
	UnreadCount  int           `json:"unread_count"`
	ShowBanner   bool          `json:"show_banner"`
	SoundPlaying bool          `json:"sound_playing"`
	LatestOrder  *models.Order `json:"latest_order,omitempty"`
}

// NotificationEngine keeps a rolling view of orders the staff has not yet
// acknowledged by diffing consecutive poll snapshots.
//
// Two classes of difference raise an alert: orders whose identity was not in
// the previous snapshot, and QRIS orders whose payment status moved to paid
// between snapshots. Cash orders only ever surface as new, because cash is
// marked paid by staff action.
type NotificationEngine struct {
	orders      OrderLister
	interval    time.Duration
	bannerDelay time.Duration

	mu          sync.Mutex
	previous    []models.Order
	unread      int
	latest      *models.Order
	showBanner  bool
	sound       bool
	issueSeq    uint64
	adoptedSeq  uint64
	bannerTimer *time.Timer
	cancel      context.CancelFunc
}

func NewNotificationEngine(orders OrderLister, interval, bannerDelay time.Duration) *NotificationEngine {
	return &NotificationEngine{
		orders:      orders,
		interval:    interval,
		bannerDelay: bannerDelay,
	}
}

// Start launches the polling loop with a fresh, empty baseline. Restarting a
// running engine stops the previous loop first, so every staff-area entry
// behaves like a new session.
func (e *NotificationEngine) Start(ctx context.Context) {
	e.Stop()

	ctx, cancel := context.WithCancel(ctx)

	e.mu.Lock()
	e.previous = nil
	e.cancel = cancel
	e.mu.Unlock()

	go e.run(ctx)
}

func (e *NotificationEngine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	if e.bannerTimer != nil {
		e.bannerTimer.Stop()
		e.bannerTimer = nil
	}
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (e *NotificationEngine) run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Poll(ctx)
		}
	}
}

// Poll performs one fetch-diff-adopt cycle. It is also invoked out of band
// by RefreshOrders; snapshot adoption is sequenced by request-issue order so
// a late-resolving stale fetch cannot regress a newer baseline.
func (e *NotificationEngine) Poll(ctx context.Context) {
	e.mu.Lock()
	e.issueSeq++
	seq := e.issueSeq
	e.mu.Unlock()

	orders, err := e.orders.ListOrders(ctx)
	if err != nil {
		log.Printf("Failed to poll orders: %v", err)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq <= e.adoptedSeq {
		return
	}
	e.adoptedSeq = seq

	// An empty baseline means this is the first observation since the staff
	// area was entered; adopt it silently to suppress a false alert burst.
	if len(e.previous) == 0 {
		e.previous = orders
		return
	}

	previousByID := make(map[int]models.Order, len(e.previous))
	for _, order := range e.previous {
		previousByID[order.ID] = order
	}

	var alerts []models.Order
	for _, order := range orders {
		prev, seen := previousByID[order.ID]
		if !seen {
			alerts = append(alerts, order)
			continue
		}
		if order.PaymentMethod == models.PaymentMethodQRIS && !prev.IsPaid() && order.IsPaid() {
			alerts = append(alerts, order)
		}
	}

	if len(alerts) > 0 {
		e.unread += len(alerts)
		first := alerts[0]
		e.latest = &first
		e.showBanner = true
		e.sound = true

		if e.bannerTimer != nil {
			e.bannerTimer.Stop()
		}
		e.bannerTimer = time.AfterFunc(e.bannerDelay, e.autoHideBanner)
	}

	e.previous = orders
}

func (e *NotificationEngine) autoHideBanner() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.showBanner = false
}

// DismissBanner hides the banner and stops the audible alert.
func (e *NotificationEngine) DismissBanner() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.showBanner = false
	e.sound = false
	if e.bannerTimer != nil {
		e.bannerTimer.Stop()
		e.bannerTimer = nil
	}
}

// ClearUnread zeroes the counter and dismisses the banner.
func (e *NotificationEngine) ClearUnread() {
	e.DismissBanner()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.unread = 0
}

// RefreshOrders forces an out-of-band fetch.
func (e *NotificationEngine) RefreshOrders(ctx context.Context) {
	e.Poll(ctx)
}

func (e *NotificationEngine) State() NotificationState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return NotificationState{
		UnreadCount:  e.unread,
		ShowBanner:   e.showBanner,
		SoundPlaying: e.sound,
		LatestOrder:  e.latest,
	}
}

// NotificationService owns one engine per admin session. Engines are started
// on staff-area entry and stopped on logout or explicit leave.
type NotificationService struct {
	mu        sync.Mutex
	engines   map[string]*NotificationEngine
	newEngine func() *NotificationEngine
}

func NewNotificationService(orders OrderLister, interval, bannerDelay time.Duration) *NotificationService {
	return &NotificationService{
		engines: map[string]*NotificationEngine{},
		newEngine: func() *NotificationEngine {
			return NewNotificationEngine(orders, interval, bannerDelay)
		},
	}
}

// EnsureStarted returns the session's engine, starting it if this is the
// first admin request since the session entered the staff area. ctx outlives
// the request and must carry whatever identity the order lister's token
// source resolves, or every background tick goes out unauthenticated.
func (s *NotificationService) EnsureStarted(ctx context.Context, sessionID string) *NotificationEngine {
	s.mu.Lock()
	engine, ok := s.engines[sessionID]
	if !ok {
		engine = s.newEngine()
		s.engines[sessionID] = engine
		s.mu.Unlock()
		engine.Start(ctx)
		return engine
	}
	s.mu.Unlock()
	return engine
}

// Engine returns the session's engine without starting one.
func (s *NotificationService) Engine(sessionID string) (*NotificationEngine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	engine, ok := s.engines[sessionID]
	return engine, ok
}

// Stop tears down the session's engine so re-entry starts from a fresh
// baseline.
func (s *NotificationService) Stop(sessionID string) {
	s.mu.Lock()
	engine, ok := s.engines[sessionID]
	delete(s.engines, sessionID)
	s.mu.Unlock()
	if ok {
		engine.Stop()
	}
}
