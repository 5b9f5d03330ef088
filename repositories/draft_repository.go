package repositories

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dendisetiawann/kejora-frontend/models"
)

const checkoutDraftKey = "kejora_checkout_draft"

type DraftRepository struct {
	kv KV
}

func NewDraftRepository(kv KV) *DraftRepository {
	return &DraftRepository{kv: kv}
}

// Save overwrites the stored draft whole. Callers must read-modify-write.
func (r *DraftRepository) Save(ctx context.Context, sessionID string, draft models.CheckoutDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, checkoutDraftKey+":"+sessionID, string(raw))
}

// Read returns nil when no draft exists or the stored content does not parse
// as a draft. Corruption is logged and treated as absence.
func (r *DraftRepository) Read(ctx context.Context, sessionID string) (*models.CheckoutDraft, error) {
	raw, err := r.kv.Get(ctx, checkoutDraftKey+":"+sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var draft models.CheckoutDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Printf("Failed to read checkout draft: %v", err)
		return nil, nil
	}
	return &draft, nil
}

func (r *DraftRepository) Clear(ctx context.Context, sessionID string) error {
	return r.kv.Del(ctx, checkoutDraftKey+":"+sessionID)
}
