package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/dendisetiawann/kejora-frontend/models"
)

func TestDraftRoundTrip(t *testing.T) {
	repo := NewDraftRepository(NewMemoryKV())
	ctx := context.Background()

	draft := models.CheckoutDraft{
		CustomerName: "Sari",
		TableNumber:  "3",
		Items: []models.DraftItem{
			{MenuID: 1, Name: "Es Kopi Susu", Price: 15000, Qty: 2},
			{MenuID: 2, Name: "Nasi Goreng", Price: 25000, Qty: 1},
		},
		CreatedAt:     time.Now().Truncate(time.Second),
		PaymentMethod: models.PaymentMethodQRIS,
		OrderNote:     "tanpa gula",
	}

	if err := repo.Save(ctx, "sess", draft); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Read(ctx, "sess")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil {
		t.Fatal("expected a draft")
	}
	if got.CustomerName != "Sari" || got.TableNumber != "3" {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if len(got.Items) != 2 || got.Total() != 55000 {
		t.Fatalf("items mismatch: %+v", got.Items)
	}
	if got.PaymentMethod != models.PaymentMethodQRIS || got.OrderNote != "tanpa gula" {
		t.Fatalf("options mismatch: %+v", got)
	}
}

func TestDraftReadAbsent(t *testing.T) {
	repo := NewDraftRepository(NewMemoryKV())

	got, err := repo.Read(context.Background(), "sess")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent draft, got %+v", got)
	}
}

func TestDraftReadCorruptedContent(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewDraftRepository(kv)
	ctx := context.Background()

	if err := kv.Set(ctx, "kejora_checkout_draft:sess", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := repo.Read(ctx, "sess")
	if err != nil {
		t.Fatalf("corruption must not surface as an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for corrupted draft, got %+v", got)
	}
}

func TestDraftSaveOverwritesWhole(t *testing.T) {
	repo := NewDraftRepository(NewMemoryKV())
	ctx := context.Background()

	first := models.CheckoutDraft{
		CustomerName: "Sari",
		TableNumber:  "3",
		Items:        []models.DraftItem{{MenuID: 1, Name: "Es Kopi Susu", Price: 15000, Qty: 2}},
	}
	if err := repo.Save(ctx, "sess", first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := first
	second.Items = nil
	if err := repo.Save(ctx, "sess", second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Read(ctx, "sess")
	if err != nil || got == nil {
		t.Fatalf("read: %v %v", got, err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected items gone after overwrite, got %+v", got.Items)
	}
}

func TestDraftClear(t *testing.T) {
	repo := NewDraftRepository(NewMemoryKV())
	ctx := context.Background()

	if err := repo.Save(ctx, "sess", models.CheckoutDraft{CustomerName: "Sari"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx, "sess"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Read(ctx, "sess")
	if err != nil || got != nil {
		t.Fatalf("expected nil after clear, got %+v %v", got, err)
	}
}

func TestDraftsAreSessionScoped(t *testing.T) {
	repo := NewDraftRepository(NewMemoryKV())
	ctx := context.Background()

	if err := repo.Save(ctx, "sess-a", models.CheckoutDraft{CustomerName: "Sari"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Read(ctx, "sess-b")
	if err != nil || got != nil {
		t.Fatalf("expected no draft for another session, got %+v %v", got, err)
	}
}
