package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dendisetiawann/kejora-frontend/models"
)

type listerFunc func(ctx context.Context) ([]models.Order, error)

func (f listerFunc) ListOrders(ctx context.Context) ([]models.Order, error) {
	return f(ctx)
}

// queueLister returns one queued response per call, repeating the last one
// once the queue runs out.
type queueLister struct {
	mu        sync.Mutex
	responses [][]models.Order
	calls     int
}

func (l *queueLister) ListOrders(ctx context.Context) ([]models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if len(l.responses) == 0 {
		return nil, nil
	}
	resp := l.responses[0]
	if len(l.responses) > 1 {
		l.responses = l.responses[1:]
	}
	return resp, nil
}

func cashOrder(id int) models.Order {
	return models.Order{
		ID:            id,
		PaymentMethod: models.PaymentMethodCash,
		PaymentStatus: models.PaymentStatusUnpaid,
		OrderStatus:   models.OrderStatusNew,
	}
}

func qrisOrder(id int, paymentStatus string) models.Order {
	return models.Order{
		ID:            id,
		PaymentMethod: models.PaymentMethodQRIS,
		PaymentStatus: paymentStatus,
		OrderStatus:   models.OrderStatusNew,
	}
}

func TestPollAdoptsFirstSnapshotSilently(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1), cashOrder(2)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)

	engine.Poll(context.Background())

	state := engine.State()
	if state.UnreadCount != 0 {
		t.Fatalf("expected no unread after first snapshot, got %d", state.UnreadCount)
	}
	if state.ShowBanner || state.SoundPlaying {
		t.Fatalf("expected no alert after first snapshot, got %+v", state)
	}
}

func TestPollAlertsOnNewOrder(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
		{cashOrder(1), cashOrder(2)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)

	state := engine.State()
	if state.UnreadCount != 1 {
		t.Fatalf("expected 1 unread, got %d", state.UnreadCount)
	}
	if !state.ShowBanner || !state.SoundPlaying {
		t.Fatalf("expected banner and sound, got %+v", state)
	}
	if state.LatestOrder == nil || state.LatestOrder.ID != 2 {
		t.Fatalf("expected latest order 2, got %+v", state.LatestOrder)
	}
}

func TestPollAlertsOnQRISPaidTransition(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{qrisOrder(1, models.PaymentStatusUnpaid)},
		{qrisOrder(1, models.PaymentStatusPaid)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)

	state := engine.State()
	if state.UnreadCount != 1 {
		t.Fatalf("expected 1 unread for QRIS paid transition, got %d", state.UnreadCount)
	}
	if state.LatestOrder == nil || state.LatestOrder.ID != 1 {
		t.Fatalf("expected latest order 1, got %+v", state.LatestOrder)
	}
}

func TestPollIgnoresCashPaidTransition(t *testing.T) {
	paid := cashOrder(1)
	paid.PaymentStatus = models.PaymentStatusPaid

	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
		{paid},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)

	if state := engine.State(); state.UnreadCount != 0 {
		t.Fatalf("cash paid transition must not alert, got %d unread", state.UnreadCount)
	}
}

func TestPollReadoptsAfterEmptySnapshot(t *testing.T) {
	// An empty café means the baseline stays empty, so the next order is
	// adopted silently rather than alerted.
	lister := &queueLister{responses: [][]models.Order{
		{},
		{cashOrder(1)},
		{cashOrder(1), cashOrder(2)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)
	if state := engine.State(); state.UnreadCount != 0 {
		t.Fatalf("order after empty baseline must be silent, got %d unread", state.UnreadCount)
	}

	engine.Poll(ctx)
	if state := engine.State(); state.UnreadCount != 1 {
		t.Fatalf("expected 1 unread once a baseline exists, got %d", state.UnreadCount)
	}
}

func TestPollAccumulatesUnreadAcrossCycles(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
		{cashOrder(1), cashOrder(2)},
		{cashOrder(1), cashOrder(2), cashOrder(3), cashOrder(4)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)
	engine.Poll(ctx)

	if state := engine.State(); state.UnreadCount != 3 {
		t.Fatalf("expected 3 unread accumulated, got %d", state.UnreadCount)
	}
}

func TestPollErrorKeepsState(t *testing.T) {
	var fail bool
	lister := listerFunc(func(ctx context.Context) ([]models.Order, error) {
		if fail {
			return nil, errors.New("upstream down")
		}
		return []models.Order{cashOrder(1)}, nil
	})
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	fail = true
	engine.Poll(ctx)

	// The baseline survives the failed cycle, so recovery diffs against it.
	fail = false
	engine.Poll(ctx)
	if state := engine.State(); state.UnreadCount != 0 {
		t.Fatalf("recovered poll with identical snapshot must not alert, got %d", state.UnreadCount)
	}
}

func TestPollStaleResponseNotAdopted(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var calls int
	var mu sync.Mutex

	lister := listerFunc(func(ctx context.Context) ([]models.Order, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(entered)
			<-release
			// Stale view from before order 2 existed.
			return []models.Order{cashOrder(1)}, nil
		}
		return []models.Order{cashOrder(1), cashOrder(2)}, nil
	})
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		engine.Poll(ctx)
		close(done)
	}()
	<-entered

	engine.Poll(ctx)
	close(release)
	<-done

	// The first request resolved last; adopting it would shrink the baseline
	// and make order 2 alert on the next cycle even though it was already in
	// the adopted snapshot.
	engine.Poll(ctx)
	if state := engine.State(); state.UnreadCount != 0 {
		t.Fatalf("stale snapshot must not regress the baseline, got %d unread", state.UnreadCount)
	}
}

func TestDismissBannerKeepsUnread(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
		{cashOrder(1), cashOrder(2)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)
	engine.DismissBanner()

	state := engine.State()
	if state.ShowBanner || state.SoundPlaying {
		t.Fatalf("expected banner and sound off, got %+v", state)
	}
	if state.UnreadCount != 1 {
		t.Fatalf("dismiss must keep the unread count, got %d", state.UnreadCount)
	}
}

func TestClearUnreadResetsCounter(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
		{cashOrder(1), cashOrder(2)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)
	engine.ClearUnread()

	state := engine.State()
	if state.UnreadCount != 0 || state.ShowBanner || state.SoundPlaying {
		t.Fatalf("expected cleared state, got %+v", state)
	}
}

func TestBannerAutoHides(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
		{cashOrder(1), cashOrder(2)},
	}}
	engine := NewNotificationEngine(lister, time.Minute, 20*time.Millisecond)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Poll(ctx)

	deadline := time.Now().Add(time.Second)
	for engine.State().ShowBanner {
		if time.Now().After(deadline) {
			t.Fatal("banner did not auto-hide")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if state := engine.State(); state.UnreadCount != 1 {
		t.Fatalf("auto-hide must keep the unread count, got %d", state.UnreadCount)
	}
}

func TestStartResetsBaseline(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
	}}
	engine := NewNotificationEngine(lister, time.Hour, time.Minute)
	ctx := context.Background()

	engine.Poll(ctx)
	engine.Start(ctx)
	defer engine.Stop()

	// Restart wiped the baseline, so the same snapshot is adopted silently.
	engine.Poll(ctx)
	if state := engine.State(); state.UnreadCount != 0 {
		t.Fatalf("restart must reset the baseline, got %d unread", state.UnreadCount)
	}
}

func TestEngineRunPollsOnInterval(t *testing.T) {
	lister := &queueLister{responses: [][]models.Order{
		{cashOrder(1)},
		{cashOrder(1), cashOrder(2)},
	}}
	engine := NewNotificationEngine(lister, 5*time.Millisecond, time.Minute)
	engine.Start(context.Background())
	defer engine.Stop()

	deadline := time.Now().Add(time.Second)
	for engine.State().UnreadCount == 0 {
		if time.Now().After(deadline) {
			t.Fatal("engine never alerted on its own interval")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServiceEnsureStartedReturnsSameEngine(t *testing.T) {
	lister := &queueLister{}
	svc := NewNotificationService(lister, time.Hour, time.Minute)
	defer svc.Stop("sess")

	first := svc.EnsureStarted(context.Background(), "sess")
	second := svc.EnsureStarted(context.Background(), "sess")
	if first != second {
		t.Fatal("expected the same engine for repeated entries")
	}

	if _, ok := svc.Engine("other"); ok {
		t.Fatal("unexpected engine for an unknown session")
	}
}

func TestServiceStopRemovesEngine(t *testing.T) {
	lister := &queueLister{}
	svc := NewNotificationService(lister, time.Hour, time.Minute)

	svc.EnsureStarted(context.Background(), "sess")
	svc.Stop("sess")

	if _, ok := svc.Engine("sess"); ok {
		t.Fatal("expected engine removed after stop")
	}
}
