package repositories

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dendisetiawann/kejora-frontend/models"
)

const orderSuccessKey = "kejora_order_success"

type OrderSuccessRepository struct {
	kv KV
}

func NewOrderSuccessRepository(kv KV) *OrderSuccessRepository {
	return &OrderSuccessRepository{kv: kv}
}

func (r *OrderSuccessRepository) Save(ctx context.Context, sessionID string, payload models.OrderSuccessPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, orderSuccessKey+":"+sessionID, string(raw))
}

// Read returns nil on absence or on content that does not parse; corruption
// is logged and swallowed.
func (r *OrderSuccessRepository) Read(ctx context.Context, sessionID string) (*models.OrderSuccessPayload, error) {
	raw, err := r.kv.Get(ctx, orderSuccessKey+":"+sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var payload models.OrderSuccessPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("Failed to read order success payload: %v", err)
		return nil, nil
	}
	return &payload, nil
}

func (r *OrderSuccessRepository) Clear(ctx context.Context, sessionID string) error {
	return r.kv.Del(ctx, orderSuccessKey+":"+sessionID)
}
